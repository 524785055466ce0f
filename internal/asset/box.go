package asset

import (
	"github.com/qmuntal/gltf"

	"aruco-board-export/internal/board"
)

// BoxShrink scales the rendered box slightly below its nominal size so
// its faces don't z-fight with marker quads sitting flush on them. The
// markers are the important part, the box is just visual extra. The
// descriptor's collision volume keeps the unscaled dimensions.
const BoxShrink float32 = 0.995

const boxCornersPerFace = 4

// Unit cube, 6 faces x 4 corners, each face convex and wound
// counterclockwise. Face order matches board.BoxFaces.
var cubeVertices = [board.BoxFaces * boxCornersPerFace * floatsPerPosition]float32{
	// Forward
	-0.5, -0.5, +0.5,
	+0.5, -0.5, +0.5,
	+0.5, +0.5, +0.5,
	-0.5, +0.5, +0.5,
	// Backward
	+0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5,
	-0.5, +0.5, -0.5,
	+0.5, +0.5, -0.5,
	// Left
	+0.5, -0.5, +0.5,
	+0.5, -0.5, -0.5,
	+0.5, +0.5, -0.5,
	+0.5, +0.5, +0.5,
	// Right
	-0.5, -0.5, -0.5,
	-0.5, -0.5, +0.5,
	-0.5, +0.5, +0.5,
	-0.5, +0.5, -0.5,
	// Up
	-0.5, +0.5, +0.5,
	+0.5, +0.5, +0.5,
	+0.5, +0.5, -0.5,
	-0.5, +0.5, -0.5,
	// Down
	-0.5, -0.5, -0.5,
	+0.5, -0.5, -0.5,
	+0.5, -0.5, +0.5,
	-0.5, -0.5, +0.5,
}

// appendBox adds the solid box geometry, material, mesh and node to a
// marker model already holding the box's markers.
func appendBox(doc *gltf.Document, arena *Arena, b board.BoxSettings) {
	// The arena may end mid-word after an odd-length image blob.
	arena.Align(4)

	scaled := [3]float32{
		b.Width * BoxShrink,
		b.Height * BoxShrink,
		b.Depth * BoxShrink,
	}

	vertices := cubeVertices
	for v := 0; v < board.BoxFaces*boxCornersPerFace; v++ {
		vertices[floatsPerPosition*v+0] *= scaled[0]
		vertices[floatsPerPosition*v+1] *= scaled[1]
		vertices[floatsPerPosition*v+2] *= scaled[2]
	}
	view := arena.AppendFloats(vertices[:])

	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		ByteOffset: uint32(view.Offset),
		ByteLength: uint32(view.Length),
		ByteStride: floatsPerPosition * 4,
		Target:     gltf.TargetArrayBuffer,
	})
	boxView := uint32(len(doc.BufferViews) - 1)

	doc.Materials = append(doc.Materials, &gltf.Material{
		// Cardboard brown, #a58855
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{0.37626, 0.24620, 0.09084, 1},
		},
	})
	boxMaterial := uint32(len(doc.Materials) - 1)

	mesh := &gltf.Mesh{}
	for face := 0; face < board.BoxFaces; face++ {
		doc.Accessors = append(doc.Accessors, &gltf.Accessor{
			BufferView:    gltf.Index(boxView),
			ByteOffset:    uint32(face * boxCornersPerFace * floatsPerPosition * 4),
			Count:         boxCornersPerFace,
			Type:          gltf.AccessorVec3,
			ComponentType: gltf.ComponentFloat,
			Min:           faceMin(face, scaled),
			Max:           faceMax(face, scaled),
		})

		mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(len(doc.Accessors) - 1),
			},
			Mode:     gltf.PrimitiveTriangleFan,
			Material: gltf.Index(boxMaterial),
		})
	}
	doc.Meshes = append(doc.Meshes, mesh)

	doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
}

// Each face fixes one axis at +/- half the scaled size and lets the
// other two span the full half-extent range. Faces 2/4/0 sit at the
// positive x/y/z limits, faces 3/5/1 at the negative ones.
func faceMin(face int, scaled [3]float32) []float32 {
	bound := []float32{-0.5 * scaled[0], -0.5 * scaled[1], -0.5 * scaled[2]}
	switch face {
	case 2:
		bound[0] = 0.5 * scaled[0]
	case 4:
		bound[1] = 0.5 * scaled[1]
	case 0:
		bound[2] = 0.5 * scaled[2]
	}
	return bound
}

func faceMax(face int, scaled [3]float32) []float32 {
	bound := []float32{0.5 * scaled[0], 0.5 * scaled[1], 0.5 * scaled[2]}
	switch face {
	case 3:
		bound[0] = -0.5 * scaled[0]
	case 5:
		bound[1] = -0.5 * scaled[1]
	case 1:
		bound[2] = -0.5 * scaled[2]
	}
	return bound
}
