package clock

import "math"

// Point is a terminal cell position.
type Point struct {
	X, Y int
}

// EllipsePoints returns the outline of the ellipse centred at (cx, cy) with
// horizontal radius a and vertical radius b, using the integer midpoint
// algorithm. Points with a negative coordinate are dropped.
func EllipsePoints(cx, cy, a, b int) []Point {
	var pts []Point
	plot := func(x, y int) {
		for _, p := range [4]Point{
			{cx + x, cy + y},
			{cx - x, cy + y},
			{cx + x, cy - y},
			{cx - x, cy - y},
		} {
			if p.X >= 0 && p.Y >= 0 {
				pts = append(pts, p)
			}
		}
	}

	a2 := int64(a) * int64(a)
	b2 := int64(b) * int64(b)

	// Region 1: slope above -1.
	x, y := 0, b
	d1 := b2 - a2*int64(b) + a2/4
	for 2*b2*int64(x) < 2*a2*int64(y) {
		plot(x, y)
		if d1 < 0 {
			d1 += 2*b2*int64(x) + 3*b2
		} else {
			d1 += 2*b2*int64(x) - 2*a2*int64(y) + 3*b2
			y--
		}
		x++
	}

	// Region 2: half-pixel offset needs floating point.
	fa2, fb2 := float64(a2), float64(b2)
	d2 := fb2*math.Pow(float64(x)+0.5, 2) + fa2*math.Pow(float64(y)-1, 2) - fa2*fb2
	for y >= 0 {
		plot(x, y)
		if d2 > 0 {
			d2 -= 2*fa2*float64(y) + 3*fa2
		} else {
			d2 += 2*fb2*float64(x) - 2*fa2*float64(y) + 3*fa2
			x++
		}
		y--
	}
	return pts
}

// Line returns the Bresenham points between two ends. Points run left to
// right, or top to bottom for vertical lines, so a repeated label always
// reads the same way.
func Line(x0, y0, x1, y1 int) []Point {
	forward := x0 < x1
	if x0 == x1 {
		forward = y0 < y1
	}
	if !forward {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	pts := make([]Point, 0, max(dx, -dy)+1)
	for {
		pts = append(pts, Point{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// PolarToEllipse maps an angle onto the ellipse around (cx, cy). Zero is
// twelve o'clock and angles grow clockwise.
func PolarToEllipse(cx, cy int, angle, a, b float64) Point {
	x := float64(cx) + a*math.Sin(angle)
	y := float64(cy) - b*math.Cos(angle)
	return Point{int(math.Round(x)), int(math.Round(y))}
}

// Radii returns the horizontal and vertical radius for a width x height
// screen. The face is twice as wide as it is tall, plus extra columns.
func Radii(width, height int, extra int64) (a, b int) {
	b = min(height/2-1, (width/2-1)/2)
	a = 2*b + int(extra)
	return a, b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
