package structural

import "fmt"

// Renderer is the implementor side of the bridge: how to draw.
type Renderer interface {
	RenderCircle(radius float64) string
	RenderSquare(side float64) string
}

// VectorRenderer draws with lines.
type VectorRenderer struct{}

// RenderCircle describes a circle as vector output.
func (VectorRenderer) RenderCircle(radius float64) string {
	return fmt.Sprintf("vector circle r=%.1f", radius)
}

// RenderSquare describes a square as vector output.
func (VectorRenderer) RenderSquare(side float64) string {
	return fmt.Sprintf("vector square side=%.1f", side)
}

// RasterRenderer draws with pixels.
type RasterRenderer struct{}

// RenderCircle describes a circle as raster output.
func (RasterRenderer) RenderCircle(radius float64) string {
	return fmt.Sprintf("raster circle r=%.1f", radius)
}

// RenderSquare describes a square as raster output.
func (RasterRenderer) RenderSquare(side float64) string {
	return fmt.Sprintf("raster square side=%.1f", side)
}

// CircleShape is the abstraction side: what to draw. It holds its
// renderer by capability, so abstraction and implementor vary
// independently.
type CircleShape struct {
	Radius   float64
	Renderer Renderer
}

// Draw renders the circle through the bridged implementor.
func (c CircleShape) Draw() string { return c.Renderer.RenderCircle(c.Radius) }

// SquareShape is a second abstraction over the same implementor set.
type SquareShape struct {
	Side     float64
	Renderer Renderer
}

// Draw renders the square through the bridged implementor.
func (s SquareShape) Draw() string { return s.Renderer.RenderSquare(s.Side) }
