package session

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/shared/ability"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/automoto/godofsky/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var levels = fstest.MapFS{
	"levels/level0.json": {Data: []byte(`{
  "start_pos": [0, 0],
  "sprites": {
    "walls": [[-5, -1, 20, 1]],
    "door": [[0, 0, 1, 2, "level1"]]
  }
}`)},
	"levels/level1.yaml": {Data: []byte(`
start_pos: [0, 0]
sprites:
  walls:
    - [-5, -1, 20, 1]
  spikes:
    - [8, 0, 1, up]
  door:
    - [12, 0, 1, 2, end]
`)},
	"levels/checkpoint.json": {Data: []byte(`{
  "start_pos": [2, 0],
  "sprites": {
    "walls": [[-5, -1, 20, 1]],
    "spawns": [[2, 0, 1]]
  }
}`)},
	"levels/last.json": {Data: []byte(`{
  "start_pos": [0, 0],
  "sprites": {
    "walls": [[-5, -1, 20, 1]],
    "door": [[0, 0, 1, 2, "end"]]
  }
}`)},
	"levels/spawns.json": {Data: []byte(`{
  "start_pos": [0, 0],
  "sprites": {
    "walls": [[-5, -1, 20, 1]],
    "spawns": [[2, 0, 1], [10, 0, 9]]
  }
}`)},
	"levels/cannons.yaml": {Data: []byte(`
start_pos: [0, 0]
sprites:
  walls:
    - [-5, -1, 20, 1]
  cannons:
    - [2, 6, down, 90]
    - [4, 6, down, 90]
    - [6, 6, down, 90]
    - [8, 6, down, 90]
`)},
	"levels/broken.json": {Data: []byte(`{"start_pos": [0, 0], "sprites": {"walls": [[0, 0]]}}`)},
}

type memStore struct {
	saved *Progress
	saves []Progress
}

func (m *memStore) Load() (*Progress, error) { return m.saved, nil }

func (m *memStore) Save(p Progress) error {
	m.saves = append(m.saves, p)
	m.saved = &p
	return nil
}

func newSession(t *testing.T, level string, store ProgressStore) *Session {
	t.Helper()
	s := New(levels, Options{Dir: "levels", Level: level, Tuning: cfg.DefaultTuning(), Store: store})
	require.NoError(t, s.Start())
	return s
}

func player(t *testing.T, s *Session) (*components.PlayerData, *donburi.Entry) {
	t.Helper()
	e, ok := tags.Player.First(s.World())
	require.True(t, ok)
	return components.Player.Get(e), e
}

func eventKinds(events []components.EventData) []components.EventKind {
	out := make([]components.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestLoadFailureKeepsWorld(t *testing.T) {
	s := newSession(t, "level1", nil)
	before := s.World()

	tests := []struct {
		name string
		want error
	}{
		{"missing", leveldata.ErrNotFound},
		{"broken", leveldata.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Load(tt.name)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, "level1", s.Level())
			assert.Equal(t, before, s.World())
		})
	}
}

func TestFrameRunsAllSubSteps(t *testing.T) {
	s := newSession(t, "level1", nil)
	s.Frame(ability.Input{})
	s.Frame(ability.Input{})
	assert.Equal(t, uint64(6), s.Ticks())
}

func TestEdgesOnlyApplyToFirstSubStep(t *testing.T) {
	s := newSession(t, "level1", nil)
	s.Frame(ability.Input{})

	s.Frame(ability.Input{Jump: true, JumpPressed: true})

	p, e := player(t, s)
	assert.Greater(t, components.Body.Get(e).VY, 0.0)
	assert.Zero(t, p.Ability.Mercy, "a repeated press would have failed and armed mercy")
}

func TestDoorCarriesPlayerIntoNextLevel(t *testing.T) {
	store := &memStore{}
	s := newSession(t, "level0", store)
	p, e := player(t, s)
	p.Deaths = 2
	components.Body.Get(e).VX = 150

	s.Frame(ability.Input{})

	assert.Equal(t, "level1", s.Level())
	assert.Contains(t, eventKinds(s.Events()), components.EventLevelTransition)

	p, e = player(t, s)
	assert.Equal(t, 2, p.Deaths)
	assert.Greater(t, components.Body.Get(e).VX, 0.0)

	require.NotEmpty(t, store.saves)
	assert.Equal(t, "level1", store.saved.Level)
}

func TestEndDoorCompletesSession(t *testing.T) {
	store := &memStore{}
	s := newSession(t, "last", store)

	s.Frame(ability.Input{})

	assert.True(t, s.Complete())
	assert.Equal(t, []components.EventKind{
		components.EventLevelTransition,
		components.EventSessionComplete,
	}, eventKinds(s.Events()))
	assert.Equal(t, leveldata.EndLevel, store.saved.Level)

	ticks := s.Ticks()
	s.Frame(ability.Input{})
	assert.Equal(t, ticks, s.Ticks())
}

func TestLoadEndLevel(t *testing.T) {
	s := New(levels, Options{Dir: "levels", Tuning: cfg.DefaultTuning()})
	err := s.Load("end")
	assert.ErrorIs(t, err, ErrSessionComplete)
	assert.Equal(t, []components.EventKind{components.EventSessionComplete}, eventKinds(s.Events()))
}

func TestSpawnSavesProgress(t *testing.T) {
	store := &memStore{}
	s := newSession(t, "checkpoint", store)

	s.Frame(ability.Input{})

	require.NotNil(t, store.saved)
	assert.Equal(t, Progress{Level: "checkpoint", SpawnX: 64, SpawnY: 0, SpawnPriority: 1, HasSpawn: true}, *store.saved)
	assert.Contains(t, eventKinds(s.Events()), components.EventSpawnReached)
}

func TestContinueRestoresSpawn(t *testing.T) {
	tests := []struct {
		name      string
		saved     *Progress
		wantLevel string
		wantX     float64
	}{
		{"nothing saved", nil, "level0", 0},
		{"finished run starts over", &Progress{Level: leveldata.EndLevel}, "level0", 0},
		{"level start", &Progress{Level: "level1"}, "level1", 0},
		{"spawn point", &Progress{Level: "level1", SpawnX: 64, HasSpawn: true}, "level1", 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(levels, Options{Dir: "levels", Tuning: cfg.DefaultTuning(), Store: &memStore{saved: tt.saved}})
			require.NoError(t, s.Continue())
			assert.Equal(t, tt.wantLevel, s.Level())
			_, e := player(t, s)
			assert.Equal(t, tt.wantX, components.Body.Get(e).X)
		})
	}
}

func TestRestoredSpawnIsRespawnPoint(t *testing.T) {
	s := New(levels, Options{Dir: "levels", Tuning: cfg.DefaultTuning()})
	require.NoError(t, s.Restore(Progress{Level: "level1", SpawnX: 64, HasSpawn: true}))

	_, e := player(t, s)
	body := components.Body.Get(e)
	body.X = 256
	s.Frame(ability.Input{})

	assert.Equal(t, 64.0, body.X)
	assert.Contains(t, eventKinds(s.Events()), components.EventPlayerDied)
}

func TestReloadResetsPlayer(t *testing.T) {
	s := newSession(t, "level1", nil)
	_, e := player(t, s)
	components.Body.Get(e).X = 100

	require.NoError(t, s.Reload())

	_, e = player(t, s)
	assert.Equal(t, 0.0, components.Body.Get(e).X)
}

func TestRestoredSpawnKeepsPriority(t *testing.T) {
	tests := []struct {
		name  string
		touch float64
		want  float64
	}{
		{"lower priority spawn does not replace it", 64, 192},
		{"higher priority spawn replaces it", 320, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &memStore{}
			s := New(levels, Options{Dir: "levels", Tuning: cfg.DefaultTuning(), Store: store})
			require.NoError(t, s.Restore(Progress{Level: "spawns", SpawnX: 192, SpawnPriority: 5, HasSpawn: true}))

			_, e := player(t, s)
			components.Body.Get(e).X = tt.touch
			components.Box.Get(e).X = tt.touch
			s.Frame(ability.Input{})

			lvl, ok := components.Level.First(s.World())
			require.True(t, ok)
			x, _ := components.Level.Get(lvl).RespawnPoint()
			assert.Equal(t, tt.want, x)
		})
	}
}

func cannonPeriods(s *Session) []int {
	var periods []int
	components.Cannon.Each(s.World(), func(e *donburi.Entry) {
		periods = append(periods, components.Cannon.Get(e).Period)
	})
	return periods
}

func TestCannonJitterRepeatsOnReload(t *testing.T) {
	s := newSession(t, "cannons", nil)
	first := cannonPeriods(s)
	require.Len(t, first, 4)

	require.NoError(t, s.Reload())
	assert.Equal(t, first, cannonPeriods(s))

	other := New(levels, Options{Dir: "levels", Level: "cannons", Seed: 99, Tuning: cfg.DefaultTuning()})
	require.NoError(t, other.Start())
	assert.NotEqual(t, first, cannonPeriods(other))
}
