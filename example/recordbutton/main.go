// SPDX-License-Identifier: Unlicense OR MIT

package main

// A record button driving a progress bar. Hold the button to record for
// up to five seconds; tap it to see its tooltip.

import (
	"errors"
	"flag"
	"image/color"
	"io/fs"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/x/recordbutton"
	"gioui.org/x/recordbutton/internal/f32color"
)

var configFile = flag.String("config", "", "button configuration file (.toml or .yaml), created if missing")

// recordDuration is the length of a full recording.
const recordDuration = 5 * time.Second

var background = color.NRGBA{R: 0x20, G: 0x22, B: 0x25, A: 0xFF}

func main() {
	flag.Parse()
	cfg := recordbutton.DefaultConfig()
	updates := make(chan recordbutton.Config, 1)
	w := new(app.Window)
	w.Option(app.Title("Record"), app.Size(unit.Dp(360), unit.Dp(480)))
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		cw, err := newWatcher(*configFile, func(c recordbutton.Config) {
			select {
			case <-updates:
			default:
			}
			updates <- c
			w.Invalidate()
		})
		if err != nil {
			log.Fatalf("Couldn't watch config file: %v", err)
		}
		defer cw.Stop()
		cw.Start()
	}
	go func() {
		if err := loop(w, cfg, updates); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadConfig(path string) (recordbutton.Config, error) {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Initializing config %s", path)
		if err := recordbutton.WriteConfig(path, recordbutton.DefaultConfig()); err != nil {
			return recordbutton.Config{}, err
		}
	}
	return recordbutton.LoadConfig(path)
}

// recorder simulates a recording while the button is held.
type recorder struct {
	running  bool
	last     time.Time
	progress time.Duration
}

func (r *recorder) LongPressStarted(b *recordbutton.Button) {
	r.running = true
	r.last = b.PressedAt()
}

func (r *recorder) LongPressStopped(b *recordbutton.Button) {
	r.running = false
}

// advance samples the elapsed time of a frame.
func (r *recorder) advance(now time.Time) {
	if r.progress > recordDuration {
		*r = recorder{}
		return
	}
	if !r.running {
		return
	}
	r.progress += now.Sub(r.last)
	r.last = now
}

func (r *recorder) fraction() float32 {
	return float32(r.progress) / float32(recordDuration)
}

func loop(w *app.Window, cfg recordbutton.Config, updates <-chan recordbutton.Config) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Fg = color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	mic := mustIcon(widget.NewIcon(icons.AVMic))

	rec := new(recorder)
	btn := &recordbutton.Button{Delegate: rec}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			select {
			case cfg = <-updates:
				log.Printf("Config reloaded, min press duration %v", cfg.MinPressDuration)
			default:
			}
			gtx := app.NewContext(&ops, e)
			paint.Fill(gtx.Ops, background)

			style := recordbutton.RecordButton(th, btn)
			style.Icon = mic
			if err := cfg.Apply(&style); err != nil {
				return err
			}
			rec.advance(gtx.Now)

			layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Center.Layout(gtx, style.Layout)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					pb := material.ProgressBar(th, rec.fraction())
					pb.TrackColor = f32color.MulAlpha(th.Fg, 0x40)
					return layout.UniformInset(unit.Dp(24)).Layout(gtx, pb.Layout)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					l := material.Body2(th, btn.PressState(gtx.Now).String())
					l.Alignment = text.Middle
					return layout.UniformInset(unit.Dp(16)).Layout(gtx, l.Layout)
				}),
			)
			if rec.running || rec.progress > recordDuration {
				gtx.Execute(op.InvalidateCmd{})
			}
			e.Frame(gtx.Ops)
		}
	}
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}
