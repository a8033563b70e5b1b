package leveldata

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMalformed wraps every descriptor validation failure.
	ErrMalformed = errors.New("malformed level")
	// ErrNotFound is returned when no file exists for a level name.
	ErrNotFound = errors.New("level not found")
)

// wireDescriptor is the on-disk shape. JSON files decode through the same
// YAML decoder.
type wireDescriptor struct {
	Name     string             `yaml:"name"`
	StartPos []float64          `yaml:"start_pos"`
	Sprites  map[string][][]any `yaml:"sprites"`
}

// Parse decodes a JSON or YAML descriptor. Any unknown category, missing
// field or wrongly typed field fails the whole level.
func Parse(data []byte) (*Descriptor, error) {
	var w wireDescriptor
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(w.StartPos) != 2 {
		return nil, fmt.Errorf("%w: start_pos needs 2 values, got %d", ErrMalformed, len(w.StartPos))
	}
	for category := range w.Sprites {
		if _, ok := KindOf(category); !ok {
			return nil, fmt.Errorf("%w: unknown category %q", ErrMalformed, category)
		}
	}

	d := &Descriptor{Name: w.Name, StartX: w.StartPos[0], StartY: w.StartPos[1]}

	// Walk kinds in enum order so entity order does not depend on map order.
	for k := Kind(0); k < kindCount; k++ {
		for i, raw := range w.Sprites[k.Category()] {
			e, err := decodeEntity(k, params{kind: k, index: i, values: raw})
			if err != nil {
				return nil, err
			}
			d.Entities = append(d.Entities, e)
		}
	}
	return d, nil
}

func decodeEntity(k Kind, p params) (Entity, error) {
	e := Entity{Kind: k}
	switch k {
	case KindWall, KindShadow, KindDoor:
		r, err := p.rect()
		if err != nil {
			return e, err
		}
		switch k {
		case KindWall:
			e.Wall = &Wall{Rect: r}
		case KindShadow:
			e.Shadow = &Shadow{Rect: r}
		case KindDoor:
			target, err := p.str(4, "target")
			if err != nil {
				return e, err
			}
			e.Door = &Door{Rect: r, Target: target}
		}
	case KindSpike:
		x, y, err := p.pos()
		if err != nil {
			return e, err
		}
		length, err := p.integer(2, "length")
		if err != nil {
			return e, err
		}
		if length < 1 {
			return e, p.fail("length must be positive, got %d", length)
		}
		dir, err := p.direction(3, "orientation")
		if err != nil {
			return e, err
		}
		e.Spike = &Spike{X: x, Y: y, Length: length, Orientation: dir}
	case KindCoin:
		x, y, err := p.pos()
		if err != nil {
			return e, err
		}
		e.Coin = &Coin{X: x, Y: y}
	case KindCannon:
		x, y, err := p.pos()
		if err != nil {
			return e, err
		}
		dir, err := p.direction(2, "direction")
		if err != nil {
			return e, err
		}
		period, err := p.integer(3, "period")
		if err != nil {
			return e, err
		}
		if period < 1 {
			return e, p.fail("period must be positive, got %d", period)
		}
		e.Cannon = &Cannon{X: x, Y: y, Direction: dir, Period: period}
	case KindSpawn:
		x, y, err := p.pos()
		if err != nil {
			return e, err
		}
		priority, err := p.integer(2, "priority")
		if err != nil {
			return e, err
		}
		e.Spawn = &Spawn{X: x, Y: y, Priority: priority}
	case KindText:
		x, y, err := p.pos()
		if err != nil {
			return e, err
		}
		s, err := p.str(2, "text")
		if err != nil {
			return e, err
		}
		size := 0.0
		if len(p.values) > 3 {
			if size, err = p.num(3, "size"); err != nil {
				return e, err
			}
		}
		e.Text = &Text{X: x, Y: y, Text: s, Size: size}
	default:
		return e, p.fail("unhandled kind")
	}
	return e, nil
}

// params reads positional fields of one entity record.
type params struct {
	kind   Kind
	index  int
	values []any
}

func (p params) fail(format string, args ...any) error {
	return fmt.Errorf("%w: %s[%d]: %s", ErrMalformed, p.kind.Category(), p.index, fmt.Sprintf(format, args...))
}

func (p params) get(i int, field string) (any, error) {
	if i >= len(p.values) {
		return nil, p.fail("missing %s", field)
	}
	return p.values[i], nil
}

func (p params) num(i int, field string) (float64, error) {
	v, err := p.get(i, field)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, p.fail("%s must be a number, got %T", field, v)
}

func (p params) integer(i int, field string) (int, error) {
	f, err := p.num(i, field)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, p.fail("%s must be a whole number, got %v", field, f)
	}
	return int(f), nil
}

func (p params) str(i int, field string) (string, error) {
	v, err := p.get(i, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", p.fail("%s must be a string, got %T", field, v)
	}
	return s, nil
}

func (p params) direction(i int, field string) (Direction, error) {
	s, err := p.str(i, field)
	if err != nil {
		return 0, err
	}
	d, ok := ParseDirection(s)
	if !ok {
		return 0, p.fail("bad %s %q", field, s)
	}
	return d, nil
}

func (p params) pos() (x, y float64, err error) {
	if x, err = p.num(0, "x"); err != nil {
		return 0, 0, err
	}
	if y, err = p.num(1, "y"); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (p params) rect() (Rect, error) {
	x, y, err := p.pos()
	if err != nil {
		return Rect{}, err
	}
	w, err := p.num(2, "w")
	if err != nil {
		return Rect{}, err
	}
	h, err := p.num(3, "h")
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}
