// Command inspectglb prints the buffer, view, accessor and scene
// tables of compiled assets.
package main

import (
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s file.glb ...\n", os.Args[0])
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		doc, err := gltf.Open(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Open error %s: %v\n", arg, err)
			continue
		}
		fmt.Printf("\n=== %s ===\n", arg)
		printDocument(doc)
	}
}

func printDocument(doc *gltf.Document) {
	for i, b := range doc.Buffers {
		fmt.Printf("buffer %d: %d bytes\n", i, b.ByteLength)
	}

	fmt.Printf("--- views (%d) ---\n", len(doc.BufferViews))
	for i, v := range doc.BufferViews {
		kind := "blob"
		if v.Target == gltf.TargetArrayBuffer {
			kind = "array"
		}
		fmt.Printf("  %3d: off=%-8d len=%-8d stride=%-3d %s\n",
			i, v.ByteOffset, v.ByteLength, v.ByteStride, kind)
	}

	fmt.Printf("--- accessors (%d) ---\n", len(doc.Accessors))
	for i, a := range doc.Accessors {
		view := int64(-1)
		if a.BufferView != nil {
			view = int64(*a.BufferView)
		}
		fmt.Printf("  %3d: view=%d off=%-6d count=%d %v min=%v max=%v\n",
			i, view, a.ByteOffset, a.Count, a.Type, a.Min, a.Max)
	}

	fmt.Printf("--- meshes (%d) ---\n", len(doc.Meshes))
	for i, m := range doc.Meshes {
		fmt.Printf("  %3d: %d primitives\n", i, len(m.Primitives))
	}

	fmt.Printf("materials=%d images=%d textures=%d nodes=%d\n",
		len(doc.Materials), len(doc.Images), len(doc.Textures), len(doc.Nodes))
	for i, s := range doc.Scenes {
		fmt.Printf("scene %d: nodes=%v\n", i, s.Nodes)
	}
}
