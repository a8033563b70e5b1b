package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "start_pos": [1, 2],
  "sprites": {
    "walls": [[0, 0, 10, 1]],
    "spikes": [[3, 1, 2, "up"]],
    "coins": [[4, 3]],
    "cannons": [[8, 1, "left", 90]],
    "shadows": [[0, 1, 2, 2]],
    "spawns": [[5, 1, 1], [7, 1, 2]],
    "text": [[1, 4, "hold Z to hook", 18]],
    "door": [[9, 1, 1, 2, "level1"]]
  }
}`

const sampleYAML = `
name: tower
start_pos: [0.5, 1]
sprites:
  walls:
    - [0, 0, 4, 1]
  text:
    - [1, 2, "climb"]
`

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, 1.0, d.StartX)
	assert.Equal(t, 2.0, d.StartY)
	require.Len(t, d.Entities, 9)

	// Entities come out in kind order.
	assert.Equal(t, KindWall, d.Entities[0].Kind)
	assert.Equal(t, KindDoor, d.Entities[len(d.Entities)-1].Kind)

	for _, e := range d.Entities {
		switch e.Kind {
		case KindWall:
			assert.Equal(t, Rect{0, 0, 10, 1}, e.Wall.Rect)
		case KindSpike:
			assert.Equal(t, Spike{X: 3, Y: 1, Length: 2, Orientation: Up}, *e.Spike)
		case KindCannon:
			assert.Equal(t, Cannon{X: 8, Y: 1, Direction: Left, Period: 90}, *e.Cannon)
		case KindText:
			assert.Equal(t, "hold Z to hook", e.Text.Text)
			assert.Equal(t, 18.0, e.Text.Size)
		case KindDoor:
			assert.Equal(t, "level1", e.Door.Target)
			assert.Equal(t, Rect{9, 1, 1, 2}, e.Door.Rect)
		}
	}
	assert.Equal(t, 2, d.Count(KindSpawn))
}

func TestParseYAML(t *testing.T) {
	d, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "tower", d.Name)
	assert.Equal(t, 0.5, d.StartX)
	require.Len(t, d.Entities, 2)
	assert.Equal(t, 0.0, d.Entities[1].Text.Size)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not a document", `{`},
		{"missing start", `{"sprites": {}}`},
		{"short start", `{"start_pos": [1]}`},
		{"unknown category", `{"start_pos": [0, 0], "sprites": {"lava": [[0, 0]]}}`},
		{"missing field", `{"start_pos": [0, 0], "sprites": {"walls": [[0, 0, 1]]}}`},
		{"wrong type", `{"start_pos": [0, 0], "sprites": {"coins": [["a", 1]]}}`},
		{"bad orientation", `{"start_pos": [0, 0], "sprites": {"spikes": [[0, 0, 1, "sideways"]]}}`},
		{"fractional period", `{"start_pos": [0, 0], "sprites": {"cannons": [[0, 0, "up", 1.5]]}}`},
		{"zero length run", `{"start_pos": [0, 0], "sprites": {"spikes": [[0, 0, 0, "up"]]}}`},
		{"door without target", `{"start_pos": [0, 0], "sprites": {"door": [[0, 0, 1, 2]]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.in))
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestScaleTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{1, 32},
		{1.5, 48},
		{0.33, 10},
		{-0.33, -10},
		{-1.99, -63},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Scale(tt.v, 32), "Scale(%v)", tt.v)
	}
}

func TestScaled(t *testing.T) {
	d, err := Parse([]byte(sampleJSON))
	require.NoError(t, err)
	s := d.Scaled(32)

	assert.Equal(t, 32.0, s.StartX)
	assert.Equal(t, 64.0, s.StartY)
	for _, e := range s.Entities {
		switch e.Kind {
		case KindWall:
			assert.Equal(t, Rect{0, 0, 320, 32}, e.Wall.Rect)
		case KindSpike:
			assert.Equal(t, 2, e.Spike.Length, "run length is not scaled")
			assert.Equal(t, 96.0, e.Spike.X)
		case KindCannon:
			assert.Equal(t, 90, e.Cannon.Period)
		case KindSpawn:
			assert.Contains(t, []float64{160, 224}, e.Spawn.X)
		}
	}
	// The source is untouched.
	assert.Equal(t, 1.0, d.StartX)
}

func TestIsEnd(t *testing.T) {
	assert.True(t, IsEnd("end"))
	assert.True(t, IsEnd(" END "))
	assert.False(t, IsEnd("level0"))
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level0.json": {Data: []byte(sampleJSON)},
		"levels/tower.yaml":  {Data: []byte(sampleYAML)},
		"levels/broken.json": {Data: []byte(`{"start_pos": [0, 0], "sprites": {"lava": []}}`)},
		"levels/notes.txt":   {Data: []byte("ignored")},
	}

	d, err := Load(fsys, "levels", "level0")
	require.NoError(t, err)
	assert.Equal(t, "level0", d.Name)

	d, err = Load(fsys, "levels", "tower")
	require.NoError(t, err)
	assert.Equal(t, "tower", d.Name)

	_, err = Load(fsys, "levels", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Load(fsys, "levels", "broken")
	assert.ErrorIs(t, err, ErrMalformed)

	names, err := Names(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "level0", "tower"}, names)
}
