package mot

import (
	"image"
	"math"
)

// Rectangle is an axis-aligned bounding box in corner form: (X1, Y1) is the
// top-left corner, (X2, Y2) is the bottom-right one, pixel coordinate space.
// Coordinates are not validated: a detector emitting inverted or negative
// corners gets them propagated unchanged.
type Rectangle struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

func NewRect(x1, y1, x2, y2 float64) Rectangle {
	return Rectangle{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}

func NewRectFrom(rect image.Rectangle) Rectangle {
	return Rectangle{
		X1: float64(rect.Min.X),
		Y1: float64(rect.Min.Y),
		X2: float64(rect.Max.X),
		Y2: float64(rect.Max.Y),
	}
}

// Center returns the rectangle's centroid with coordinates truncated toward
// zero. Truncation (not rounding) is part of the matching contract.
func (rect Rectangle) Center() Point {
	return Point{
		X: int((rect.X1 + rect.X2) / 2.0),
		Y: int((rect.Y1 + rect.Y2) / 2.0),
	}
}

// Diagonal returns the rectangle's diagonal length
func (rect Rectangle) Diagonal() float64 {
	return math.Hypot(rect.X2-rect.X1, rect.Y2-rect.Y1)
}

// Point is an integer centroid in pixel space
type Point struct {
	X int
	Y int
}

func NewPoint(x, y int) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func NewPointFrom(point image.Point) Point {
	return Point{
		X: point.X,
		Y: point.Y,
	}
}

func euclideanDistance(p1, p2 Point) float64 {
	return math.Hypot(float64(p1.X-p2.X), float64(p1.Y-p2.Y))
}

// IoU calculates Intersection over Union between two rectangles.
func IoU(r1, r2 Rectangle) float64 {
	xA := maxFloat64(r1.X1, r2.X1)
	yA := maxFloat64(r1.Y1, r2.Y1)
	xB := minFloat64(r1.X2, r2.X2)
	yB := minFloat64(r1.Y2, r2.Y2)

	interArea := maxFloat64(0, xB-xA) * maxFloat64(0, yB-yA)
	if interArea == 0 {
		return 0.0
	}

	r1Area := (r1.X2 - r1.X1) * (r1.Y2 - r1.Y1)
	r2Area := (r2.X2 - r2.X1) * (r2.Y2 - r2.Y1)

	return interArea / (r1Area + r2Area - interArea)
}

func maxFloat64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
