package game

import (
	"image"
	"image/color"
)

// Surface is a drawing target with a current draw color.
type Surface interface {
	SetDrawColor(c color.RGBA)
	// Clear fills the whole target with the current draw color.
	Clear()
	FillRect(r image.Rectangle)
}
