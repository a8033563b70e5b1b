package leveldata

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// WallLayer is the tile layer whose filled cells become 1×1 walls.
const WallLayer = "walls"

// StartGroup is the object group holding the level's start position.
const StartGroup = "start"

// LoadTMX converts a Tiled map into a descriptor. Object groups are named
// after descriptor categories and carry the trailing fields as properties.
// Tiled is y-down; positions are flipped so the result is y-up grid units.
func LoadTMX(fsys fs.FS, tmxPath string) (*Descriptor, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	mapH := float64(levelMap.Height)

	d := &Descriptor{}
	hasStart := false

	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				d.Entities = append(d.Entities, Entity{Kind: KindWall, Wall: &Wall{Rect: Rect{
					X: float64(x),
					Y: mapH - float64(y) - 1,
					W: 1,
					H: 1,
				}}})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name == StartGroup {
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			d.StartX = o.X / tileW
			d.StartY = mapH - (o.Y+o.Height)/tileH
			hasStart = true
			continue
		}

		kind, ok := KindOf(og.Name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown object group %q", ErrMalformed, og.Name)
		}
		for i, o := range og.Objects {
			p := params{kind: kind, index: i}
			e, err := tmxEntity(kind, p, o, tileW, tileH, mapH)
			if err != nil {
				return nil, err
			}
			d.Entities = append(d.Entities, e)
		}
	}

	if !hasStart {
		return nil, fmt.Errorf("%w: no %q object", ErrMalformed, StartGroup)
	}
	return d, nil
}

func tmxEntity(kind Kind, p params, o *tiled.Object, tileW, tileH, mapH float64) (Entity, error) {
	r := Rect{
		X: o.X / tileW,
		Y: mapH - (o.Y+o.Height)/tileH,
		W: o.Width / tileW,
		H: o.Height / tileH,
	}
	props := o.Properties
	dir := func(field string) (Direction, error) {
		s := props.GetString(field)
		d, ok := ParseDirection(s)
		if !ok {
			return 0, p.fail("bad %s %q", field, s)
		}
		return d, nil
	}

	e := Entity{Kind: kind}
	switch kind {
	case KindWall:
		e.Wall = &Wall{Rect: r}
	case KindShadow:
		e.Shadow = &Shadow{Rect: r}
	case KindDoor:
		target := props.GetString("target")
		if target == "" {
			return e, p.fail("missing target")
		}
		e.Door = &Door{Rect: r, Target: target}
	case KindSpike:
		orientation, err := dir("orientation")
		if err != nil {
			return e, err
		}
		length := props.GetInt("length")
		if length < 1 {
			length = max(1, int(r.W))
		}
		e.Spike = &Spike{X: r.X, Y: r.Y, Length: length, Orientation: orientation}
	case KindCoin:
		e.Coin = &Coin{X: r.X, Y: r.Y}
	case KindCannon:
		direction, err := dir("direction")
		if err != nil {
			return e, err
		}
		period := props.GetInt("period")
		if period < 1 {
			return e, p.fail("missing period")
		}
		e.Cannon = &Cannon{X: r.X, Y: r.Y, Direction: direction, Period: period}
	case KindSpawn:
		e.Spawn = &Spawn{X: r.X, Y: r.Y, Priority: props.GetInt("priority")}
	case KindText:
		text := props.GetString("text")
		if text == "" {
			text = o.Name
		}
		if text == "" {
			return e, p.fail("missing text")
		}
		size := 0.0
		if raw := props.GetString("size"); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return e, p.fail("bad size %q", raw)
			}
			size = v
		}
		e.Text = &Text{X: r.X, Y: r.Y, Text: text, Size: size}
	}
	return e, nil
}
