package game

// Boundary is the square region segment centres are confined to, centred on
// the origin with half-extent Limit.
type Boundary struct {
	Limit   float64
	Epsilon float64
}

func NewBoundary(cfg Config) Boundary {
	return Boundary{Limit: cfg.Limit(), Epsilon: cfg.BoundaryEpsilon}
}

// Contains reports whether p lies inside the region (edges included).
func (b Boundary) Contains(p Vec2) bool {
	return p.X >= -b.Limit && p.X <= b.Limit && p.Z >= -b.Limit && p.Z <= b.Limit
}

// Clamp pulls p into the region one axis at a time and reports whether either
// axis had to move.
func (b Boundary) Clamp(p Vec2) (Vec2, bool) {
	if b.Contains(p) {
		return p, false
	}
	out := Vec2{
		X: clampF(p.X, -b.Limit, b.Limit),
		Z: clampF(p.Z, -b.Limit, b.Limit),
	}
	return out, out != p
}

// Normals returns the outward normals of every wall p is touching. A corner
// yields two.
func (b Boundary) Normals(p Vec2) []Vec2 {
	var ns []Vec2
	edge := b.Limit - b.Epsilon
	if p.X >= edge {
		ns = append(ns, Vec2{X: 1})
	} else if p.X <= -edge {
		ns = append(ns, Vec2{X: -1})
	}
	if p.Z >= edge {
		ns = append(ns, Vec2{Z: 1})
	} else if p.Z <= -edge {
		ns = append(ns, Vec2{Z: -1})
	}
	return ns
}

// Adjust removes the components of v that point out through any wall touched
// at pos. When that leaves nothing to move along, a unit vector sliding along
// the wall (or out of the corner) is returned instead, so a moving head never
// stalls against the boundary. Away from the walls v is returned unchanged.
func (b Boundary) Adjust(v, pos Vec2) Vec2 {
	normals := b.Normals(pos)
	if len(normals) == 0 {
		return v
	}
	out := stripOutward(v, normals)
	if out.LenSq() >= degenerateLenSq {
		return out
	}

	// up x n, then n x up. At a corner either sum still leans on one wall.
	var left, right, inward Vec2
	for _, n := range normals {
		left = left.Add(Vec2{X: n.Z, Z: -n.X})
		right = right.Add(Vec2{X: -n.Z, Z: n.X})
		inward = inward.Sub(n)
	}
	for _, t := range []Vec2{left, right} {
		t = stripOutward(t, normals)
		if t.LenSq() >= degenerateLenSq {
			return t.Normalize()
		}
	}
	return inward.Normalize()
}

func stripOutward(v Vec2, normals []Vec2) Vec2 {
	for _, n := range normals {
		if d := v.Dot(n); d > 0 {
			v = v.Sub(n.Scale(d))
		}
	}
	return v
}
