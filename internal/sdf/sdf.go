// Package sdf emits the simulation descriptor for a compiled board
// asset. The document references the asset file and adds the metadata
// Gazebo needs: staticness for grid boards, collision and inertia for
// box boards.
package sdf

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"aruco-board-export/internal/board"
)

const (
	// FormatVersion is SDFormat 1.11 (Gazebo Harmonic), which added
	// support for automatically computed inertia.
	FormatVersion = "1.11"

	// LinkPose corrects for Gazebo's glTF importer not converting
	// the coordinate system: in the Gazebo frame +X is forward, +Y
	// is left and +Z is up.
	LinkPose = "0 0 0 90 0 90"

	// TODO(board): select a proper density.
	boxDensity = "10.0"
)

// Write serializes the descriptor for one board to w. assetPath is the
// path of the compiled asset the visual references.
func Write(w io.Writer, name, assetPath string, b board.Concrete) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("sdf")
	root.CreateAttr("version", FormatVersion)

	model := root.CreateElement("model")
	model.CreateAttr("name", name)
	if b.Grid != nil {
		// A grid board never moves in simulation.
		model.CreateElement("static").SetText("true")
	}

	link := model.CreateElement("link")
	link.CreateAttr("name", "link")

	pose := link.CreateElement("pose")
	pose.CreateAttr("degrees", "true")
	pose.SetText(LinkPose)

	visual := link.CreateElement("visual")
	visual.CreateAttr("name", "visual")
	uri := visual.CreateElement("geometry").CreateElement("mesh").CreateElement("uri")
	uri.SetText("model://" + assetPath)

	if b.Box != nil {
		writeBoxExtras(link, *b.Box)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// writeBoxExtras adds the collision volume and the auto-inertia
// request. The collision box keeps the unscaled input dimensions; only
// the rendered geometry is shrunk.
func writeBoxExtras(link *etree.Element, b board.BoxSettings) {
	collision := link.CreateElement("collision")
	collision.CreateAttr("name", "collision")
	collision.CreateElement("density").SetText(boxDensity)

	size := collision.CreateElement("geometry").CreateElement("box").CreateElement("size")
	size.SetText(ftoa(b.Width) + " " + ftoa(b.Height) + " " + ftoa(b.Depth))

	inertial := link.CreateElement("inertial")
	inertial.CreateAttr("auto", "true")
}

func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
