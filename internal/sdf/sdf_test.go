package sdf

import (
	"bytes"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aruco-board-export/internal/board"
)

func render(t *testing.T, b board.Concrete) *etree.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "board_0", "out/board_0.glb", b))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	return doc
}

func TestGridDescriptor(t *testing.T) {
	doc := render(t, board.Concrete{Grid: &board.GridSettings{Columns: 2, Rows: 1, MarkerSize: 1}})

	root := doc.FindElement("/sdf")
	require.NotNil(t, root)
	assert.Equal(t, FormatVersion, root.SelectAttrValue("version", ""))

	model := root.FindElement("model")
	require.NotNil(t, model)
	assert.Equal(t, "board_0", model.SelectAttrValue("name", ""))

	static := model.FindElement("static")
	require.NotNil(t, static)
	assert.Equal(t, "true", static.Text())

	assert.Nil(t, doc.FindElement("//collision"))
	assert.Nil(t, doc.FindElement("//inertial"))
}

func TestDescriptorPoseAndVisual(t *testing.T) {
	doc := render(t, board.Concrete{Grid: &board.GridSettings{Columns: 1, Rows: 1, MarkerSize: 1}})

	link := doc.FindElement("//link")
	require.NotNil(t, link)
	assert.Equal(t, "link", link.SelectAttrValue("name", ""))

	pose := link.FindElement("pose")
	require.NotNil(t, pose)
	assert.Equal(t, "true", pose.SelectAttrValue("degrees", ""))
	assert.Equal(t, LinkPose, pose.Text())

	uri := doc.FindElement("//visual/geometry/mesh/uri")
	require.NotNil(t, uri)
	assert.Equal(t, "model://out/board_0.glb", uri.Text())
}

func TestBoxDescriptor(t *testing.T) {
	doc := render(t, board.Concrete{Box: &board.BoxSettings{
		Width: 1, Height: 2, Depth: 3, MarkerSize: 0.5,
		Markers: []int{0, 1, 2, 3, 4, 5},
	}})

	assert.Nil(t, doc.FindElement("//static"))

	collision := doc.FindElement("//link/collision")
	require.NotNil(t, collision)
	assert.Equal(t, "collision", collision.SelectAttrValue("name", ""))
	assert.Equal(t, "10.0", collision.FindElement("density").Text())

	// Collision keeps the unscaled input dimensions.
	size := collision.FindElement("geometry/box/size")
	require.NotNil(t, size)
	assert.Equal(t, "1 2 3", size.Text())

	inertial := doc.FindElement("//link/inertial")
	require.NotNil(t, inertial)
	assert.Equal(t, "true", inertial.SelectAttrValue("auto", ""))
}

func TestBoxSizeFormatting(t *testing.T) {
	doc := render(t, board.Concrete{Box: &board.BoxSettings{
		Width: 0.25, Height: 1.5, Depth: 0.1,
	}})

	size := doc.FindElement("//collision/geometry/box/size")
	require.NotNil(t, size)
	assert.Equal(t, "0.25 1.5 0.1", size.Text())
}
