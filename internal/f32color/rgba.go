// SPDX-License-Identifier: Unlicense OR MIT

// Package f32color derives state colors from a base color.
package f32color

import "image/color"

// darkenStep is 0.2 of the channel range.
const darkenStep = 0x33

// Darker returns c with every color channel lowered by 0.2, clamped at
// zero. The alpha channel is unchanged.
func Darker(c color.NRGBA) color.NRGBA {
	c.R = sub(c.R, darkenStep)
	c.G = sub(c.G, darkenStep)
	c.B = sub(c.B, darkenStep)
	return c
}

// WithAlpha returns c with its alpha replaced by alpha.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

// MulAlpha applies the alpha to the color.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Faded returns c at half opacity, the color used for the disabled,
// highlighted and selected states.
func Faded(c color.NRGBA) color.NRGBA {
	return WithAlpha(c, 0x80)
}

func sub(v, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}
