// Command markerpreview renders a single marker pattern to a WebP file
// for eyeballing dictionary output.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HugoSmits86/nativewebp"

	"aruco-board-export/internal/dict"
)

func main() {
	id := flag.Int("id", 0, "Marker id to render")
	size := flag.Int("size", 0, "Image side in pixels (default: 16 px per cell)")
	out := flag.String("o", "marker.webp", "Output file")
	flag.Parse()

	d := dict.Default()
	if *size <= 0 {
		*size = d.TotalCells() * 16
	}

	img := d.RenderMarker(*id, *size)

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: WebP encode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote marker %d (%dx%d) to %s\n", *id, *size, *size, *out)
}
