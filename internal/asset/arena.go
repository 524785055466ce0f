package asset

import (
	"encoding/binary"
	"math"
)

// View is a stable handle to a byte range of an Arena.
type View struct {
	Offset int
	Length int
}

// Arena is the append-only byte buffer backing one compiled asset.
// All views and accessors reference ranges within it; the zero value
// is ready to use.
type Arena struct {
	data []byte
}

func (a *Arena) Len() int {
	return len(a.data)
}

func (a *Arena) Bytes() []byte {
	return a.data
}

// Append copies p to the end of the arena and returns its view.
func (a *Arena) Append(p []byte) View {
	v := View{Offset: len(a.data), Length: len(p)}
	a.data = append(a.data, p...)
	return v
}

// AppendFloats appends little-endian IEEE 754 float32 values. The
// caller is responsible for aligning the arena first.
func (a *Arena) AppendFloats(f []float32) View {
	v := View{Offset: len(a.data), Length: 4 * len(f)}
	var word [4]byte
	for _, x := range f {
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(x))
		a.data = append(a.data, word[:]...)
	}
	return v
}

// Align pads the arena with zero bytes so its length is a multiple of
// n. Float-array views must start 4-byte aligned, and image blobs may
// leave the arena ending mid-word.
func (a *Arena) Align(n int) {
	for len(a.data)%n != 0 {
		a.data = append(a.data, 0)
	}
}
