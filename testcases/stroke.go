package testcases

var strokeCases = []TestCase{
	{
		Name:        "outline_1",
		Geoms:       single(Polygon{triangle(10, 14, 32, 54, 54, 14)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 1,
	},
	{
		Name:        "outline_2",
		Geoms:       single(Polygon{triangle(10, 14, 32, 54, 54, 14)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 2,
	},
	{
		Name:        "outline_3",
		Geoms:       single(Polygon{box(10, 10, 54, 54)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 3,
	},
	{
		Name:        "outline_8",
		Geoms:       single(Polygon{regular(32, 32, 22, 5, 0.3)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 8,
	},
	{
		Name:        "hole_outline",
		Geoms:       single(Polygon{box(8, 8, 56, 56), box(20, 20, 44, 44)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 2,
	},
	{
		// outline passing the image border
		Name:        "outline_clipped",
		Geoms:       single(Polygon{box(-20, 10, 40, 80)}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 4,
	},
	{
		Name:        "steep_and_flat",
		Geoms:       single(Polygon{Ring{pt(4, 4), pt(60, 8), pt(56, 60), pt(30, 20)}}),
		BBox:        canvas(64, 64),
		Resolution:  1,
		StrokeWidth: 1,
	},
}
