// Package asset compiles a marker board into a binary glTF document:
// marker quad geometry and embedded pattern images share one buffer,
// and the scene graph references them one visual unit per marker.
package asset

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"

	"aruco-board-export/internal/board"
	"aruco-board-export/internal/dict"
)

const (
	cornersPerMarker  = 4
	floatsPerPosition = 3
	floatsPerTexcoord = 2

	// Gazebo doesn't support texture filtering modes. Render the
	// patterns with extra pixels per cell to compensate.
	markerPixelFactor = 16
)

var quadTexcoords = [cornersPerMarker * floatsPerTexcoord]float32{
	0, 1, // bottom left
	1, 1, // bottom right
	1, 0, // top right
	0, 0, // top left
}

// Build compiles one board description into a self-contained glTF
// document ready for binary serialization.
func Build(d dict.Dictionary, b board.Concrete) (*gltf.Document, error) {
	markers := board.MakeBoard(b)

	doc, arena, err := buildMarkerModel(d, markers)
	if err != nil {
		return nil, err
	}

	if b.Box != nil {
		appendBox(doc, arena, *b.Box)
	}

	doc.Buffers[0].Data = arena.Bytes()
	doc.Buffers[0].ByteLength = uint32(arena.Len())
	return doc, nil
}

// fillMarkerData emits the quad geometry for one marker. The corners
// are walked in reverse of their supplied order to get the winding
// correct for the target renderer.
func fillMarkerData(m board.Marker, positions, texcoords []float32) {
	out := 0
	for i := len(m.Corners) - 1; i >= 0; i-- {
		positions[out+0] = m.Corners[i][0]
		positions[out+1] = m.Corners[i][1]
		positions[out+2] = m.Corners[i][2]
		out += floatsPerPosition
	}
	copy(texcoords, quadTexcoords[:])
}

func buildMarkerModel(d dict.Dictionary, markers []board.Marker) (*gltf.Document, *Arena, error) {
	positions := make([]float32, len(markers)*cornersPerMarker*floatsPerPosition)
	texcoords := make([]float32, len(markers)*cornersPerMarker*floatsPerTexcoord)
	for i, m := range markers {
		fillMarkerData(m,
			positions[i*cornersPerMarker*floatsPerPosition:(i+1)*cornersPerMarker*floatsPerPosition],
			texcoords[i*cornersPerMarker*floatsPerTexcoord:(i+1)*cornersPerMarker*floatsPerTexcoord])
	}

	arena := &Arena{}
	posView := arena.AppendFloats(positions)
	texView := arena.AppendFloats(texcoords)

	doc := &gltf.Document{
		Asset:   gltf.Asset{Version: "2.0", Generator: "aruco-board-export"},
		Scene:   gltf.Index(0),
		Scenes:  []*gltf.Scene{{}},
		Buffers: []*gltf.Buffer{{}},
		BufferViews: []*gltf.BufferView{
			{
				ByteOffset: uint32(posView.Offset),
				ByteLength: uint32(posView.Length),
				ByteStride: floatsPerPosition * 4,
				Target:     gltf.TargetArrayBuffer,
			},
			{
				ByteOffset: uint32(texView.Offset),
				ByteLength: uint32(texView.Length),
				ByteStride: floatsPerTexcoord * 4,
				Target:     gltf.TargetArrayBuffer,
			},
		},
		Samplers: []*gltf.Sampler{{
			WrapS:     gltf.WrapClampToEdge,
			WrapT:     gltf.WrapClampToEdge,
			MinFilter: gltf.MinNearest,
			MagFilter: gltf.MagNearest,
		}},
	}

	// Images must be embedded in marker order: material i binds
	// texture i, which binds image i, which binds view 2+i.
	for _, m := range markers {
		img := d.RenderMarker(m.ID, d.TotalCells()*markerPixelFactor)
		var encoded bytes.Buffer
		if err := png.Encode(&encoded, img); err != nil {
			return nil, nil, fmt.Errorf("asset: encode marker %d pattern: %w", m.ID, err)
		}
		view := arena.Append(encoded.Bytes())

		doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
			ByteOffset: uint32(view.Offset),
			ByteLength: uint32(view.Length),
		})
		doc.Images = append(doc.Images, &gltf.Image{
			BufferView: gltf.Index(uint32(len(doc.BufferViews) - 1)),
			MimeType:   "image/png",
		})
		doc.Textures = append(doc.Textures, &gltf.Texture{
			Source:  gltf.Index(uint32(len(doc.Images) - 1)),
			Sampler: gltf.Index(0),
		})
	}

	for i := range markers {
		positionAccessor := uint32(len(doc.Accessors))
		texcoordAccessor := positionAccessor + 1
		doc.Accessors = append(doc.Accessors,
			&gltf.Accessor{
				BufferView:    gltf.Index(0),
				ByteOffset:    uint32(i * cornersPerMarker * floatsPerPosition * 4),
				Count:         cornersPerMarker,
				Type:          gltf.AccessorVec3,
				ComponentType: gltf.ComponentFloat,
				Min:           cornerMin(positions, i),
				Max:           cornerMax(positions, i),
			},
			&gltf.Accessor{
				BufferView:    gltf.Index(1),
				ByteOffset:    uint32(i * cornersPerMarker * floatsPerTexcoord * 4),
				Count:         cornersPerMarker,
				Type:          gltf.AccessorVec2,
				ComponentType: gltf.ComponentFloat,
			})

		doc.Materials = append(doc.Materials, &gltf.Material{
			// NOTE: Gazebo requires all materials to have different names.
			Name: fmt.Sprintf("material%d", i),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorTexture: &gltf.TextureInfo{Index: uint32(i)},
			},
		})

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]uint32{
					gltf.POSITION:   positionAccessor,
					gltf.TEXCOORD_0: texcoordAccessor,
				},
				Mode:     gltf.PrimitiveTriangleFan,
				Material: gltf.Index(uint32(i)),
			}},
		})

		doc.Nodes = append(doc.Nodes, &gltf.Node{Mesh: gltf.Index(uint32(i))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(i))
	}

	return doc, arena, nil
}

// cornerMin scans the 4 corners belonging to marker i and returns the
// per-component minimum. Only this marker's own corners participate,
// never the whole position array.
func cornerMin(positions []float32, i int) []float32 {
	bound := []float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)}
	for j, v := range markerPositions(positions, i) {
		c := j % floatsPerPosition
		bound[c] = math32.Min(bound[c], v)
	}
	return bound
}

func cornerMax(positions []float32, i int) []float32 {
	bound := []float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)}
	for j, v := range markerPositions(positions, i) {
		c := j % floatsPerPosition
		bound[c] = math32.Max(bound[c], v)
	}
	return bound
}

func markerPositions(positions []float32, i int) []float32 {
	n := cornersPerMarker * floatsPerPosition
	return positions[i*n : (i+1)*n]
}
