package detect

// boundaryPoints selects the component pixels that touch the background: a
// member pixel qualifies iff at least one of its 8 neighbors is an in-bounds
// background pixel. Neighbors outside the image are skipped, not treated as
// background, so shapes flush with the image border contribute no boundary
// there.
//
// Order follows the component's discovery order; it carries no meaning
// beyond feeding the hull builder. If no pixel qualifies (a mask with no
// visible background), all member pixels are returned as the boundary set.
func boundaryPoints(c *component, mask []bool, width, height int) []Point {
	boundary := make([]Point, 0)

	for _, p := range c.pixels {
		for _, d := range neighbors8 {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if !mask[ny*width+nx] {
				boundary = append(boundary, p)
				break
			}
		}
	}

	if len(boundary) == 0 {
		return c.pixels
	}
	return boundary
}
