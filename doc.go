// SPDX-License-Identifier: Unlicense OR MIT

/*
Package recordbutton implements a circular press-and-hold button for
starting and stopping a recording.

The button reports the start of a long press the moment a pointer goes
down, so a host can start visual feedback immediately, and reports the
stop no earlier than the button's MinPressDuration, even when the
pointer is lifted before that. A short tap additionally pops up a
tooltip above the button explaining the gesture.

Button holds the state and ButtonStyle draws it:

	var btn recordbutton.Button
	btn.Delegate = recorder

	func layoutButton(gtx layout.Context, th *material.Theme) layout.Dimensions {
		return recordbutton.RecordButton(th, &btn).Layout(gtx)
	}

The delegate is notified from within Layout, on the window's event
goroutine.
*/
package recordbutton
