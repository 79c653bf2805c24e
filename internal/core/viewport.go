package core

// Viewport is a rectangular window over a ChunkMap. Anchor is the grid
// coordinate shown at the window's top-left; W and H are the window size in
// cells. The fields are plain configuration: move the anchor to pan, the
// change takes effect on the next Each call.
type Viewport[T any] struct {
	Map    *ChunkMap[T]
	Anchor Coord
	W, H   int
}

// NewViewport returns a viewport of the given size anchored at the origin.
func NewViewport[T any](m *ChunkMap[T], w, h int) *Viewport[T] {
	return &Viewport[T]{Map: m, W: w, H: h}
}

// Each visits every occupied cell inside the window, passing its offset
// from the window's top-left corner and its value. Offsets whose grid cell
// is empty are skipped entirely. The visit order is unspecified; fn
// returning false stops the walk early.
//
// Each reads the map's current state on every call, keeps no state between
// calls and never mutates the map. A window with non-positive width or
// height visits nothing.
func (v *Viewport[T]) Each(fn func(dx, dy int, val T) bool) {
	for dy := 0; dy < v.H; dy++ {
		for dx := 0; dx < v.W; dx++ {
			if val, ok := v.Map.Get(v.Anchor.X+dx, v.Anchor.Y+dy); ok {
				if !fn(dx, dy, val) {
					return
				}
			}
		}
	}
}
