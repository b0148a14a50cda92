package detect

// component is one connected group of foreground pixels discovered by a
// flood-fill run. It exists only transiently during a labeling pass.
type component struct {
	pixels     []Point
	sumX, sumY int
	minX, minY int
	maxX, maxY int
}

func (c *component) area() int { return len(c.pixels) }

func (c *component) bounds() Bounds {
	return Bounds{X1: c.minX, Y1: c.minY, X2: c.maxX, Y2: c.maxY}
}

// neighbors8 lists the 8-connected neighbor offsets: the four axis-aligned
// neighbors plus the four diagonals.
var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// findComponents partitions the foreground mask into 8-connected components
// via row-major scan and iterative flood fill, discarding components whose
// pixel count is below minArea.
//
// Neighbor candidates are computed in (x, y) coordinates with explicit
// bounds checks, so a neighbor can never wrap around a row boundary the way
// a naive flat-index offset would. Every foreground pixel ends up in exactly
// one emitted or discarded component; no pixel is visited twice.
func findComponents(mask []bool, width, height, minArea int) []component {
	visited := make([]bool, width*height)
	components := make([]component, 0)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if !mask[idx] || visited[idx] {
				continue
			}
			c := floodFill(mask, visited, x, y, width, height)
			if c.area() >= minArea {
				components = append(components, c)
			}
		}
	}

	return components
}

// floodFill collects the component containing the seed pixel using an
// explicit stack. The stack is deliberately not bounded: its worst-case
// depth is the component's pixel count, and recursion would risk stack
// overflow on large connected regions.
func floodFill(mask, visited []bool, startX, startY, width, height int) component {
	c := component{
		minX: startX, maxX: startX,
		minY: startY, maxY: startY,
	}

	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := p.Y*width + p.X
		if visited[idx] || !mask[idx] {
			continue
		}
		visited[idx] = true

		c.pixels = append(c.pixels, p)
		c.sumX += p.X
		c.sumY += p.Y
		if p.X < c.minX {
			c.minX = p.X
		}
		if p.X > c.maxX {
			c.maxX = p.X
		}
		if p.Y < c.minY {
			c.minY = p.Y
		}
		if p.Y > c.maxY {
			c.maxY = p.Y
		}

		for _, d := range neighbors8 {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			nidx := ny*width + nx
			if !visited[nidx] && mask[nidx] {
				stack = append(stack, Point{X: nx, Y: ny})
			}
		}
	}

	return c
}
