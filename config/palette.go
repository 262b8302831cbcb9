package config

import (
	"image/color"

	"github.com/elliotchance/orderedmap/v2"
)

// PaddleColors is the closed, ordered set of player paddle colors. The order
// is the cycling order of the color control.
var PaddleColors = orderedmap.NewOrderedMap[string, color.RGBA]()

func init() {
	PaddleColors.Set("red", color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff})
	PaddleColors.Set("blue", color.RGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff})
	PaddleColors.Set("green", color.RGBA{R: 0x43, G: 0xa0, B: 0x47, A: 0xff})
	PaddleColors.Set("yellow", color.RGBA{R: 0xfb, G: 0xc0, B: 0x2d, A: 0xff})
	PaddleColors.Set("purple", color.RGBA{R: 0x8e, G: 0x24, B: 0xaa, A: 0xff})
}

// PaddleColor returns the color for a palette identifier.
func PaddleColor(id string) (color.RGBA, bool) {
	return PaddleColors.Get(id)
}

// NextPaddleColor returns the identifier after id, wrapping around. Unknown
// identifiers map to the first color.
func NextPaddleColor(id string) string {
	el := PaddleColors.GetElement(id)
	if el == nil || el.Next() == nil {
		return PaddleColors.Front().Key
	}
	return el.Next().Key
}
