// Command export generates binary glTF and SDF files from a set of
// marker board placements.
package main

import (
	"flag"
	"fmt"
	"os"

	"aruco-board-export/internal/board"
	"aruco-board-export/internal/dict"
	"aruco-board-export/internal/export"
)

func main() {
	outDir := flag.String("o", ".", "Output directory")
	wantSDF := flag.Bool("sdf", false, "Also generate SDF files for Gazebo")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o dir] [-sdf] <boards.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	boards, err := board.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	exp := export.Exporter{
		OutDir:   *outDir,
		WriteSDF: *wantSDF,
		Dict:     dict.Default(),
		Log:      os.Stderr,
	}
	if err := exp.Run(boards); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
