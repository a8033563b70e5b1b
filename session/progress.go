package session

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is the saved position in a play-through. Collected coins are
// not part of it.
type Progress struct {
	Level         string  `json:"level"`
	SpawnX        float64 `json:"spawnX"`
	SpawnY        float64 `json:"spawnY"`
	SpawnPriority int     `json:"spawnPriority"`
	HasSpawn      bool    `json:"hasSpawn"`
}

// ProgressStore persists Progress between runs. Load returns nil when
// nothing has been saved.
type ProgressStore interface {
	Load() (*Progress, error)
	Save(Progress) error
}

// GDataStore keeps progress in the per-user data directory.
type GDataStore struct {
	m *gdata.Manager
}

func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progress: open: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load() (*Progress, error) {
	data, err := s.m.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("progress: load: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("progress: decode: %w", err)
	}
	return &p, nil
}

func (s *GDataStore) Save(p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.m.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("progress: save: %w", err)
	}
	return nil
}
