// SPDX-License-Identifier: Unlicense OR MIT

/*
Package overlay implements a list of transient layers drawn above a
widget.

A widget owns an Overlay and lays it out after itself. Layers are
painted with op.Defer, so they appear on top of later siblings while
keeping the widget's coordinate system. A layer may detach itself from
within its own Layout.
*/
package overlay

import (
	"gioui.org/layout"
	"gioui.org/op"
)

// Layer is an element of an Overlay.
type Layer interface {
	Layout(gtx layout.Context) layout.Dimensions
}

// Overlay is an ordered list of layers. The last attached layer is
// painted on top. The zero value is an empty Overlay.
type Overlay struct {
	layers []Layer
}

// Attach adds l on top of the overlay. Attaching a layer twice has no
// effect.
func (o *Overlay) Attach(l Layer) {
	if o.index(l) >= 0 {
		return
	}
	o.layers = append(o.layers, l)
}

// Detach removes l and reports whether it was attached.
func (o *Overlay) Detach(l Layer) bool {
	i := o.index(l)
	if i < 0 {
		return false
	}
	n := copy(o.layers[i:], o.layers[i+1:])
	o.layers[i+n] = nil
	o.layers = o.layers[:i+n]
	return true
}

// Contains reports whether l is attached.
func (o *Overlay) Contains(l Layer) bool {
	return o.index(l) >= 0
}

// Len returns the number of attached layers.
func (o *Overlay) Len() int {
	return len(o.layers)
}

// Layers returns a copy of the attached layers, bottom first.
func (o *Overlay) Layers() []Layer {
	return append([]Layer(nil), o.layers...)
}

// Find returns the topmost attached layer of type T.
func Find[T Layer](o *Overlay) (T, bool) {
	for i := len(o.layers) - 1; i >= 0; i-- {
		if l, ok := o.layers[i].(T); ok {
			return l, true
		}
	}
	var zero T
	return zero, false
}

// Layout records every layer and defers its painting to the end of the
// frame.
func (o *Overlay) Layout(gtx layout.Context) {
	// Layers may detach during the loop.
	for _, l := range o.Layers() {
		m := op.Record(gtx.Ops)
		l.Layout(gtx)
		op.Defer(gtx.Ops, m.Stop())
	}
}

func (o *Overlay) index(l Layer) int {
	for i, l2 := range o.layers {
		if l2 == l {
			return i
		}
	}
	return -1
}
