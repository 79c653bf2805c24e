package core

// Chunks in a ChunkMap are always chunkSize x chunkSize. Larger chunks use
// more memory but mean fewer map lookups per region of the plane.
const chunkSize = 64

// Coord is an absolute position on the grid.
type Coord struct {
	X int
	Y int
}

// floorDiv divides a by n rounding toward negative infinity. Go's built-in
// division rounds toward zero, which would make the four chunks around the
// origin overlap at negative coordinates.
func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

// chunkCoord is the top-left corner of a chunk. Both components are always
// multiples of chunkSize.
type chunkCoord struct {
	x, y int
}

func chunkCoordOf(x, y int) chunkCoord {
	return chunkCoord{
		x: floorDiv(x, chunkSize) * chunkSize,
		y: floorDiv(y, chunkSize) * chunkSize,
	}
}

// xOffset returns the column of x inside the chunk. A result outside
// [0, chunkSize) means the chunk coordinate was not derived from x, which is
// a bug in the tiling arithmetic, so it panics rather than returning.
func (c chunkCoord) xOffset(x int) int {
	off := x - c.x
	if off < 0 || off >= chunkSize {
		panic("core: x offset outside chunk")
	}
	return off
}

// yOffset returns the row of y inside the chunk.
func (c chunkCoord) yOffset(y int) int {
	off := y - c.y
	if off < 0 || off >= chunkSize {
		panic("core: y offset outside chunk")
	}
	return off
}

// slot is one cell of a chunk: a value plus whether it is present, so the
// zero value of T is storable.
type slot[T any] struct {
	val T
	ok  bool
}

// chunk stores a fixed square block of slots in row-major order.
type chunk[T any] struct {
	slots [chunkSize * chunkSize]slot[T]
}

func (c *chunk[T]) at(xOff, yOff int) *slot[T] {
	return &c.slots[yOff*chunkSize+xOff]
}

// ChunkMap is an infinite 2D plane of elements of type T. It behaves like a
// map keyed by (x, y), but cells are grouped into fixed-size chunks so that
// walking a region costs one map lookup per chunk instead of one per cell.
// A chunk is allocated the first time anything inside it is written and
// stays allocated for the life of the map.
//
// A ChunkMap is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type ChunkMap[T any] struct {
	chunks map[chunkCoord]*chunk[T]
}

// NewChunkMap returns an empty ChunkMap.
func NewChunkMap[T any]() *ChunkMap[T] {
	return &ChunkMap[T]{chunks: make(map[chunkCoord]*chunk[T])}
}

// Get returns the value at (x, y) and whether one is present. Reading never
// allocates: querying a chunk that has never been written leaves the map
// untouched.
func (m *ChunkMap[T]) Get(x, y int) (T, bool) {
	coord := chunkCoordOf(x, y)
	ch, ok := m.chunks[coord]
	if !ok {
		var zero T
		return zero, false
	}
	s := ch.at(coord.xOffset(x), coord.yOffset(y))
	return s.val, s.ok
}

// Insert stores val at (x, y), overwriting any previous value there. The
// chunk covering (x, y) is allocated if this is the first write inside it.
func (m *ChunkMap[T]) Insert(x, y int, val T) {
	coord := chunkCoordOf(x, y)
	ch, ok := m.chunks[coord]
	if !ok {
		ch = &chunk[T]{}
		m.chunks[coord] = ch
	}
	*ch.at(coord.xOffset(x), coord.yOffset(y)) = slot[T]{val: val, ok: true}
}

// Remove clears the slot at (x, y) and returns the value that was there, if
// any. Removing from a chunk that was never written is a no-op. Chunks are
// never freed, even when a removal empties them.
func (m *ChunkMap[T]) Remove(x, y int) (T, bool) {
	coord := chunkCoordOf(x, y)
	ch, ok := m.chunks[coord]
	if !ok {
		var zero T
		return zero, false
	}
	s := ch.at(coord.xOffset(x), coord.yOffset(y))
	val, present := s.val, s.ok
	*s = slot[T]{}
	return val, present
}

// ChunkCount reports how many chunks have been allocated so far.
func (m *ChunkMap[T]) ChunkCount() int { return len(m.chunks) }

// Swap exchanges the entire contents of m and other. Only the backing map
// headers move; no chunk is copied. This supports building a replacement
// map off to the side and switching to it in one step.
func (m *ChunkMap[T]) Swap(other *ChunkMap[T]) {
	m.chunks, other.chunks = other.chunks, m.chunks
}
