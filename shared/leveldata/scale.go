package leveldata

import "math"

// Scale converts a grid coordinate to world units, truncating toward zero so
// adjacent tiles share edges exactly.
func Scale(v, tile float64) float64 {
	return math.Trunc(v * tile)
}

func (r Rect) scaled(tile float64) Rect {
	return Rect{X: Scale(r.X, tile), Y: Scale(r.Y, tile), W: Scale(r.W, tile), H: Scale(r.H, tile)}
}

// Scaled returns a copy with every positional field in world units. Run
// lengths, directions, periods, priorities and text pass through.
func (d *Descriptor) Scaled(tile float64) *Descriptor {
	out := &Descriptor{
		Name:     d.Name,
		StartX:   Scale(d.StartX, tile),
		StartY:   Scale(d.StartY, tile),
		Entities: make([]Entity, 0, len(d.Entities)),
	}
	for _, e := range d.Entities {
		s := Entity{Kind: e.Kind}
		switch e.Kind {
		case KindWall:
			s.Wall = &Wall{Rect: e.Wall.scaled(tile)}
		case KindSpike:
			v := *e.Spike
			v.X, v.Y = Scale(v.X, tile), Scale(v.Y, tile)
			s.Spike = &v
		case KindCoin:
			s.Coin = &Coin{X: Scale(e.Coin.X, tile), Y: Scale(e.Coin.Y, tile)}
		case KindCannon:
			v := *e.Cannon
			v.X, v.Y = Scale(v.X, tile), Scale(v.Y, tile)
			s.Cannon = &v
		case KindShadow:
			s.Shadow = &Shadow{Rect: e.Shadow.scaled(tile)}
		case KindSpawn:
			v := *e.Spawn
			v.X, v.Y = Scale(v.X, tile), Scale(v.Y, tile)
			s.Spawn = &v
		case KindText:
			v := *e.Text
			v.X, v.Y = Scale(v.X, tile), Scale(v.Y, tile)
			s.Text = &v
		case KindDoor:
			s.Door = &Door{Rect: e.Door.scaled(tile), Target: e.Door.Target}
		}
		out.Entities = append(out.Entities, s)
	}
	return out
}
