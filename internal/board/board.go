package board

// Marker is one fiducial with its four corner points in board-local
// space. Corner order: bottom left, bottom right, top right, top left.
type Marker struct {
	ID      int
	Corners [4]Vec3
}

// BoxFaces is the number of faces of a box board, in the fixed order
// forward (+z), back (-z), left (+x), right (-x), up (+y), down (-y).
const BoxFaces = 6

// MakeBoard produces the ordered marker list for a board description.
// It is deterministic for identical input. An empty layout yields an
// empty list.
func MakeBoard(b Concrete) []Marker {
	switch {
	case b.Grid != nil:
		return makeGrid(*b.Grid)
	case b.Box != nil:
		return makeBox(*b.Box)
	}
	return nil
}

func makeGrid(g GridSettings) []Marker {
	if g.Columns <= 0 || g.Rows <= 0 {
		return nil
	}

	step := g.MarkerSize + g.Separation
	boardW := float32(g.Columns)*g.MarkerSize + float32(g.Columns-1)*g.Separation
	boardH := float32(g.Rows)*g.MarkerSize + float32(g.Rows-1)*g.Separation

	markers := make([]Marker, 0, g.Columns*g.Rows)
	for row := 0; row < g.Rows; row++ {
		// Row 0 is the top row, matching printed-board reading order.
		top := boardH/2 - float32(row)*step
		for col := 0; col < g.Columns; col++ {
			left := -boardW/2 + float32(col)*step
			i := row*g.Columns + col
			id := g.FirstID + i
			if i < len(g.IDs) {
				id = g.IDs[i]
			}
			markers = append(markers, Marker{
				ID: id,
				Corners: [4]Vec3{
					{left, top - g.MarkerSize, 0},
					{left + g.MarkerSize, top - g.MarkerSize, 0},
					{left + g.MarkerSize, top, 0},
					{left, top, 0},
				},
			})
		}
	}
	return markers
}

// faceFrame orients a marker on one box face: the face center on the
// unit box surface, plus right and up directions for the marker plane.
type faceFrame struct {
	center Vec3
	right  Vec3
	up     Vec3
}

func boxFrames(w, h, d float32) [BoxFaces]faceFrame {
	hw, hh, hd := w/2, h/2, d/2
	return [BoxFaces]faceFrame{
		{center: Vec3{0, 0, hd}, right: Vec3{1, 0, 0}, up: Vec3{0, 1, 0}},   // forward
		{center: Vec3{0, 0, -hd}, right: Vec3{-1, 0, 0}, up: Vec3{0, 1, 0}}, // back
		{center: Vec3{hw, 0, 0}, right: Vec3{0, 0, -1}, up: Vec3{0, 1, 0}},  // left
		{center: Vec3{-hw, 0, 0}, right: Vec3{0, 0, 1}, up: Vec3{0, 1, 0}},  // right
		{center: Vec3{0, hh, 0}, right: Vec3{1, 0, 0}, up: Vec3{0, 0, -1}},  // up
		{center: Vec3{0, -hh, 0}, right: Vec3{1, 0, 0}, up: Vec3{0, 0, 1}},  // down
	}
}

func makeBox(b BoxSettings) []Marker {
	frames := boxFrames(b.Width, b.Height, b.Depth)

	n := len(b.Markers)
	if n > BoxFaces {
		n = BoxFaces
	}

	half := b.MarkerSize / 2
	markers := make([]Marker, 0, n)
	for face := 0; face < n; face++ {
		f := frames[face]
		r := f.right.Scale(half)
		u := f.up.Scale(half)
		markers = append(markers, Marker{
			ID: b.Markers[face],
			Corners: [4]Vec3{
				f.center.Sub(r).Sub(u),
				f.center.Add(r).Sub(u),
				f.center.Add(r).Add(u),
				f.center.Sub(r).Add(u),
			},
		})
	}
	return markers
}
