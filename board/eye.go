package board

// IsEyeish returns the color c such that every non-OUT orthogonal neighbor
// of pt is c, or Empty if the neighbors are mixed (not eyeish for anyone).
// pt itself must be empty for this to mean anything as territory.
func IsEyeish(p *Position, pt Point) Color {
	var c Color
	for _, d := range p.Geom.Orth {
		n := p.color[pt+d]
		if n == Out {
			continue
		}
		if c == Color(0) {
			c = n
		} else if n != c {
			return Empty
		}
	}
	return c
}

// IsEye additionally applies the false-eye diagonal test: the number of
// diagonal neighbors of the opposite color must be strictly fewer than 2
// in the interior and fewer than 1 (i.e. zero) on the edge, matching the
// classic false-eye rule.
func IsEye(p *Position, pt Point) Color {
	c := IsEyeish(p, pt)
	if c == Empty {
		return Empty
	}
	opp := c.swapped()
	var oppDiag int
	for _, d := range p.Geom.Diag {
		if p.color[pt+d] == opp {
			oppDiag++
		}
	}
	threshold := 2
	if p.Geom.OnEdge(pt) {
		threshold = 1
	}
	if oppDiag >= threshold {
		return Empty
	}
	return c
}
