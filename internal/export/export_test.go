package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aruco-board-export/internal/asset"
	"aruco-board-export/internal/board"
	"aruco-board-export/internal/dict"
)

func twoMarkerGrid() []board.Concrete {
	return []board.Concrete{{Grid: &board.GridSettings{
		Columns:    2,
		Rows:       1,
		MarkerSize: 1,
		Separation: 0.2,
		IDs:        []int{7, 12},
	}}}
}

func oneBox() []board.Concrete {
	return []board.Concrete{{Box: &board.BoxSettings{
		Width: 1, Height: 2, Depth: 3, MarkerSize: 0.5,
		Markers: []int{0, 1, 2, 3, 4, 5},
	}}}
}

func TestGridEndToEnd(t *testing.T) {
	dir := t.TempDir()
	e := Exporter{OutDir: dir, Dict: dict.Default()}
	require.NoError(t, e.Run(twoMarkerGrid()))

	doc, err := gltf.Open(filepath.Join(dir, "board_0.glb"))
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 2)
	assert.Len(t, doc.Materials, 2)
	assert.Len(t, doc.Images, 2)

	// No descriptor was requested.
	_, err = os.Stat(filepath.Join(dir, "board_0.sdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestGridEndToEndWithSDF(t *testing.T) {
	dir := t.TempDir()
	e := Exporter{OutDir: dir, WriteSDF: true, Dict: dict.Default()}
	require.NoError(t, e.Run(twoMarkerGrid()))

	raw, err := os.ReadFile(filepath.Join(dir, "board_0.sdf"))
	require.NoError(t, err)
	text := string(raw)
	assert.Contains(t, text, "<static>true</static>")
	assert.NotContains(t, text, "<collision")
	assert.Contains(t, text, "model://"+filepath.Join(dir, "board_0.glb"))
}

func TestBoxEndToEnd(t *testing.T) {
	dir := t.TempDir()
	e := Exporter{OutDir: dir, WriteSDF: true, Dict: dict.Default()}
	require.NoError(t, e.Run(oneBox()))

	// The descriptor's collision box keeps the unscaled dimensions.
	raw, err := os.ReadFile(filepath.Join(dir, "board_0.sdf"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<size>1 2 3</size>")
	assert.NotContains(t, string(raw), "<static>")

	// The asset's box geometry is shrunk by the documented factor.
	doc, err := gltf.Open(filepath.Join(dir, "board_0.glb"))
	require.NoError(t, err)
	assert.Len(t, doc.Nodes, 7)

	last := doc.Accessors[len(doc.Accessors)-board.BoxFaces]
	require.Len(t, last.Max, 3)
	assert.Equal(t, float32(3)*asset.BoxShrink/2, last.Max[2])
}

func TestIdempotent(t *testing.T) {
	boards := append(twoMarkerGrid(), oneBox()...)

	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, (&Exporter{OutDir: dirA, WriteSDF: true, Dict: dict.Default()}).Run(boards))
	require.NoError(t, (&Exporter{OutDir: dirB, WriteSDF: true, Dict: dict.Default()}).Run(boards))

	for _, name := range []string{"board_0.glb", "board_1.glb"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, a, b, name)
	}
}

func TestMissingOutputDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	e := Exporter{OutDir: missing, Dict: dict.Default()}
	err := e.Run(twoMarkerGrid())
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestOutputDirectoryIsAFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	e := Exporter{OutDir: file, Dict: dict.Default()}
	err := e.Run(twoMarkerGrid())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestFailFastStopsAtFirstBoard(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	boards := append(twoMarkerGrid(), oneBox()...)
	e := Exporter{OutDir: missing, Dict: dict.Default()}
	require.Error(t, e.Run(boards))

	// Nothing was written for any board.
	_, err := os.Stat(missing)
	assert.True(t, os.IsNotExist(err))
}

func TestProgressLog(t *testing.T) {
	dir := t.TempDir()
	var log strings.Builder
	e := Exporter{OutDir: dir, WriteSDF: true, Dict: dict.Default(), Log: &log}
	require.NoError(t, e.Run(twoMarkerGrid()))

	assert.Contains(t, log.String(), "Wrote `"+filepath.Join(dir, "board_0.glb")+"`")
	assert.Contains(t, log.String(), "Wrote `"+filepath.Join(dir, "board_0.sdf")+"`")
}
