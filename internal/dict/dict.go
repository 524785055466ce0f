// Package dict synthesizes fiducial marker patterns. Each marker id
// maps to a fixed bit matrix; rendering draws a one-cell black border
// around the code cells and scales the grid to the requested pixel
// size without filtering, so the cell edges stay crisp.
package dict

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

const borderCells = 1

// Dictionary derives marker bit patterns deterministically from ids.
type Dictionary struct {
	// Cells is the number of code cells per marker side, excluding
	// the border.
	Cells int
}

// Default returns the 5x5 dictionary used by the exporter.
func Default() Dictionary {
	return Dictionary{Cells: 5}
}

// TotalCells is the marker side length in cells, border included.
func (d Dictionary) TotalCells() int {
	return d.Cells + 2*borderCells
}

// Bit reports whether the code cell (cx, cy) of the given marker is
// white. Deterministic per (id, cell).
func (d Dictionary) Bit(id, cx, cy int) bool {
	word := mix64(uint64(id)<<16 | uint64(cy)<<8 | uint64(cx))
	return word&1 != 0
}

// RenderMarker draws the marker pattern, border included, as a square
// grayscale image with the given side length in pixels.
func (d Dictionary) RenderMarker(id, side int) *image.Gray {
	total := d.TotalCells()
	cells := image.NewGray(image.Rect(0, 0, total, total))
	for cy := 0; cy < total; cy++ {
		for cx := 0; cx < total; cx++ {
			onBorder := cx < borderCells || cy < borderCells ||
				cx >= total-borderCells || cy >= total-borderCells
			c := color.Gray{}
			if !onBorder && d.Bit(id, cx-borderCells, cy-borderCells) {
				c = color.Gray{Y: 255}
			}
			cells.SetGray(cx, cy, c)
		}
	}

	if side == total {
		return cells
	}
	dst := image.NewGray(image.Rect(0, 0, side, side))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), cells, cells.Bounds(), draw.Src, nil)
	return dst
}

// mix64 is the SplitMix64 finalizer.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
