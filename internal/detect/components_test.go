package detect

import "testing"

// buildMask converts rows of '#' (foreground) and '.' (background) into a
// flat mask.
func buildMask(rows []string) ([]bool, int, int) {
	height := len(rows)
	width := len(rows[0])
	mask := make([]bool, width*height)
	for y, row := range rows {
		for x, ch := range row {
			mask[y*width+x] = ch == '#'
		}
	}
	return mask, width, height
}

func TestFindComponents_DiagonalConnectivity(t *testing.T) {
	mask, w, h := buildMask([]string{
		"#....",
		".#...",
		"..#..",
		"...#.",
		"....#",
	})

	comps := findComponents(mask, w, h, 1)

	if len(comps) != 1 {
		t.Fatalf("Diagonal pixels should form one 8-connected component, got %d", len(comps))
	}
	if comps[0].area() != 5 {
		t.Errorf("Component area: got %d, want 5", comps[0].area())
	}
}

func TestFindComponents_NoRowWraparound(t *testing.T) {
	// Opposite image edges must never join, even though the flat indices of
	// (width-1, y) and (0, y+1) are adjacent.
	rows := make([]string, 20)
	for i := range rows {
		rows[i] = "#........#"
	}
	mask, w, h := buildMask(rows)

	comps := findComponents(mask, w, h, 1)

	if len(comps) != 2 {
		t.Fatalf("Edge columns should be separate components, got %d", len(comps))
	}
	for _, c := range comps {
		if c.area() != 20 {
			t.Errorf("Column area: got %d, want 20", c.area())
		}
	}
}

func TestFindComponents_MinAreaDiscard(t *testing.T) {
	mask, w, h := buildMask([]string{
		"##..........",
		"##..........",
		"....########",
		"....########",
		"....########",
	})

	comps := findComponents(mask, w, h, 20)

	if len(comps) != 1 {
		t.Fatalf("Expected only the large component, got %d", len(comps))
	}
	if comps[0].area() != 24 {
		t.Errorf("Area: got %d, want 24", comps[0].area())
	}
}

func TestFindComponents_Stats(t *testing.T) {
	mask, w, h := buildMask([]string{
		"....",
		".##.",
		".##.",
		"....",
	})

	comps := findComponents(mask, w, h, 1)
	if len(comps) != 1 {
		t.Fatalf("Expected 1 component, got %d", len(comps))
	}
	c := comps[0]

	if got := c.bounds(); got != (Bounds{X1: 1, Y1: 1, X2: 2, Y2: 2}) {
		t.Errorf("Bounds: got %+v", got)
	}
	if c.sumX != 6 || c.sumY != 6 {
		t.Errorf("Coordinate sums: got (%d,%d), want (6,6)", c.sumX, c.sumY)
	}
}

func TestFindComponents_EveryPixelOnce(t *testing.T) {
	mask, w, h := buildMask([]string{
		"###.###",
		"###.###",
		"###.###",
	})

	comps := findComponents(mask, w, h, 1)

	if len(comps) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(comps))
	}
	seen := make(map[Point]bool)
	total := 0
	for _, c := range comps {
		for _, p := range c.pixels {
			if seen[p] {
				t.Fatalf("Pixel %+v assigned to more than one component", p)
			}
			seen[p] = true
			total++
		}
	}
	if total != 18 {
		t.Errorf("Total labeled pixels: got %d, want 18", total)
	}
}

func TestBoundaryPoints_InteriorExcluded(t *testing.T) {
	mask, w, h := buildMask([]string{
		".......",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".#####.",
		".......",
	})

	comps := findComponents(mask, w, h, 1)
	if len(comps) != 1 {
		t.Fatalf("Expected 1 component, got %d", len(comps))
	}

	boundary := boundaryPoints(&comps[0], mask, w, h)

	// A 5x5 block has a 16-pixel ring; the 3x3 interior is excluded.
	if len(boundary) != 16 {
		t.Errorf("Boundary size: got %d, want 16", len(boundary))
	}
	for _, p := range boundary {
		if p.X >= 2 && p.X <= 4 && p.Y >= 2 && p.Y <= 4 {
			t.Errorf("Interior pixel %+v reported as boundary", p)
		}
	}
}

func TestBoundaryPoints_FallbackWhenNoBackground(t *testing.T) {
	mask, w, h := buildMask([]string{
		"####",
		"####",
		"####",
	})

	comps := findComponents(mask, w, h, 1)
	boundary := boundaryPoints(&comps[0], mask, w, h)

	// Out-of-bounds neighbors are skipped, so nothing qualifies and the
	// whole member set is the fallback boundary.
	if len(boundary) != 12 {
		t.Errorf("Fallback boundary size: got %d, want 12", len(boundary))
	}
}
