// Package export drives the compile-and-write pipeline over a list of
// board descriptions. Boards are processed strictly in order and the
// first failure aborts the whole run.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"aruco-board-export/internal/asset"
	"aruco-board-export/internal/board"
	"aruco-board-export/internal/dict"
	"aruco-board-export/internal/sdf"
)

// Exporter writes compiled board assets and, optionally, descriptors.
type Exporter struct {
	OutDir   string
	WriteSDF bool
	Dict     dict.Dictionary

	// Log receives a line per written file; nil silences progress.
	Log io.Writer
}

// Run compiles every board in order and writes board_<i>.glb (and
// board_<i>.sdf when requested) under OutDir. Fail-fast: the first
// open or write failure aborts the run and remaining boards are not
// attempted.
func (e *Exporter) Run(boards []board.Concrete) error {
	for i, b := range boards {
		stem := fmt.Sprintf("board_%d", i)
		glbPath := filepath.Join(e.OutDir, stem+".glb")

		doc, err := asset.Build(e.Dict, b)
		if err != nil {
			return fmt.Errorf("export: compile %s: %w", stem, err)
		}
		if err := e.writeAsset(glbPath, doc); err != nil {
			return err
		}
		e.logf("Wrote `%s`\n", glbPath)

		if !e.WriteSDF {
			continue
		}
		sdfPath := filepath.Join(e.OutDir, stem+".sdf")
		if err := e.writeDescriptor(sdfPath, stem, glbPath, b); err != nil {
			return err
		}
		e.logf("Wrote `%s`\n", sdfPath)
	}
	return nil
}

func (e *Exporter) writeAsset(path string, doc *gltf.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return e.openError(path, err)
	}

	enc := gltf.NewEncoder(f)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		f.Close()
		return fmt.Errorf("export: write glTF file `%s`: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: write glTF file `%s`: %w", path, err)
	}
	return nil
}

func (e *Exporter) writeDescriptor(path, name, assetPath string, b board.Concrete) error {
	f, err := os.Create(path)
	if err != nil {
		return e.openError(path, err)
	}

	if err := sdf.Write(f, name, assetPath, b); err != nil {
		f.Close()
		return fmt.Errorf("export: write SDF file `%s`: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: write SDF file `%s`: %w", path, err)
	}
	return nil
}

// openError explains why an output file failed to open. The directory
// checks are racy, but they only improve the diagnostic.
func (e *Exporter) openError(path string, err error) error {
	info, statErr := os.Stat(e.OutDir)
	switch {
	case os.IsNotExist(statErr):
		return fmt.Errorf("export: open `%s`: directory `%s` does not exist: %w", path, e.OutDir, err)
	case statErr == nil && !info.IsDir():
		return fmt.Errorf("export: open `%s`: `%s` is not a directory: %w", path, e.OutDir, err)
	}
	return fmt.Errorf("export: open `%s`: %w", path, err)
}

func (e *Exporter) logf(format string, args ...any) {
	if e.Log != nil {
		fmt.Fprintf(e.Log, format, args...)
	}
}
