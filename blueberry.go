package blueberry

// Vec2i is an integer 2D vector used for pixel positions and offsets.
type Vec2i struct {
	X, Y int
}

// Add returns v + o.
func (v Vec2i) Add(o Vec2i) Vec2i {
	return Vec2i{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2i) Sub(o Vec2i) Vec2i {
	return Vec2i{v.X - o.X, v.Y - o.Y}
}

// Vec2 is a 2D vector with float components, used for window-space mouse
// positions and sub-pixel camera motion.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned pixel rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// FrameInfo is the per-tick timing snapshot handed to every component update.
type FrameInfo struct {
	// Delta is the elapsed time in seconds since the previous update.
	Delta float64
	// Frame is the zero-based index of this tick.
	Frame uint64
}
