package behavioral

import "math"

// ShapeVisitor is one operation over the closed shape set. Adding a new
// operation means adding a visitor, not modifying the shapes.
type ShapeVisitor interface {
	VisitCircle(c VCircle) float64
	VisitRect(r VRect) float64
}

// VisitableShape accepts any visitor.
type VisitableShape interface {
	Accept(v ShapeVisitor) float64
}

// VCircle is a visitable circle.
type VCircle struct {
	Radius float64
}

// Accept dispatches to the circle branch of the visitor.
func (c VCircle) Accept(v ShapeVisitor) float64 { return v.VisitCircle(c) }

// VRect is a visitable rectangle.
type VRect struct {
	Width, Height float64
}

// Accept dispatches to the rectangle branch of the visitor.
func (r VRect) Accept(v ShapeVisitor) float64 { return v.VisitRect(r) }

// AreaVisitor computes shape areas.
type AreaVisitor struct{}

// VisitCircle returns πr².
func (AreaVisitor) VisitCircle(c VCircle) float64 { return math.Pi * c.Radius * c.Radius }

// VisitRect returns width × height.
func (AreaVisitor) VisitRect(r VRect) float64 { return r.Width * r.Height }

// PerimeterVisitor computes shape perimeters.
type PerimeterVisitor struct{}

// VisitCircle returns 2πr.
func (PerimeterVisitor) VisitCircle(c VCircle) float64 { return 2 * math.Pi * c.Radius }

// VisitRect returns 2(w+h).
func (PerimeterVisitor) VisitRect(r VRect) float64 { return 2 * (r.Width + r.Height) }
