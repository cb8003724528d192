package testcases

import (
	"math"
)

var fillCases = []TestCase{
	{
		Name:       "triangle",
		Geoms:      single(Polygon{triangle(10, 14, 32, 54, 54, 14)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "rectangle",
		Geoms:      single(Polygon{box(10, 10, 54, 54)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "star",
		Geoms:      single(Polygon{fivePointStar(32, 32, 25)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "concave",
		Geoms:      single(Polygon{lShape(8, 8, 56, 56, 24)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name:       "diamond",
		Geoms:      single(Polygon{regular(32, 32, 24, 4, 0)}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
	{
		Name: "reversed_orientation",
		Geoms: single(Polygon{
			Ring{pt(10, 10), pt(10, 54), pt(54, 54), pt(54, 10)},
		}),
		BBox:       canvas(64, 64),
		Resolution: 1,
	},
}

func triangle(x1, y1, x2, y2, x3, y3 float64) Ring {
	return Ring{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// fivePointStar returns a self-intersecting five-pointed star.  Under the
// even-odd rule the central pentagon stays empty.
func fivePointStar(cx, cy, r float64) Ring {
	pts := make(Ring, 5)
	for i := range 5 {
		a := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return Ring{pts[0], pts[2], pts[4], pts[1], pts[3]}
}

// lShape returns an L-shaped ring with the given arm thickness.
func lShape(x0, y0, x1, y1, t float64) Ring {
	return Ring{
		pt(x0, y0), pt(x1, y0), pt(x1, y0+t),
		pt(x0+t, y0+t), pt(x0+t, y1), pt(x0, y1),
	}
}
