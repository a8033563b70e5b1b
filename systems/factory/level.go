package factory

import (
	"errors"
	"math/rand"

	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	cfg "github.com/automoto/godofsky/config"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LoadLevel populates an empty world from a grid-unit descriptor: the level
// singleton, its broadphase space, every entity and the player at the start
// position. rng only feeds cannon jitter.
func LoadLevel(w donburi.World, desc *leveldata.Descriptor, rng *rand.Rand, t cfg.Tuning) (*donburi.Entry, error) {
	if desc == nil {
		return nil, errors.New("factory: nil level descriptor")
	}
	tile := t.Level.TileSize
	d := desc.Scaled(tile)

	level := archetypes.Level.Spawn(w)
	levelData := components.LevelData{
		Name:   d.Name,
		StartX: d.StartX,
		StartY: d.StartY,
	}

	boxes := []gamemath.AABB{{X: d.StartX, Y: d.StartY, W: t.Player.Width, H: t.Player.Height}}
	for _, e := range d.Entities {
		boxes = append(boxes, entityBounds(e, t)...)
	}
	levelData.Bounds = gamemath.Union(boxes...)
	components.Level.SetValue(level, levelData)

	CreateSpace(w, components.Level.Get(level), levelData.Bounds, int(tile))

	for _, e := range d.Entities {
		switch e.Kind {
		case leveldata.KindWall:
			CreateWall(w, rectBox(e.Wall.Rect))
		case leveldata.KindSpike:
			for _, b := range SpikeBoxes(*e.Spike, tile, t.Level.SpikeHeight) {
				CreateSpike(w, b, e.Spike.Orientation)
			}
		case leveldata.KindCoin:
			CreateCoin(w, coinBox(*e.Coin, tile, t.Coins.Size))
		case leveldata.KindCannon:
			box := gamemath.AABB{X: e.Cannon.X, Y: e.Cannon.Y, W: t.Cannons.Size, H: t.Cannons.Size}
			CreateCannon(w, box, *e.Cannon, t.Cannons.Jitter, rng)
		case leveldata.KindShadow:
			CreateShadow(w, rectBox(e.Shadow.Rect))
		case leveldata.KindSpawn:
			CreateSpawnPoint(w, e.Spawn.X, e.Spawn.Y, t.Level.SpawnSize, e.Spawn.Priority)
		case leveldata.KindText:
			CreateLabel(w, e.Text.X, e.Text.Y, e.Text.Text, e.Text.Size)
		case leveldata.KindDoor:
			CreateDoor(w, rectBox(e.Door.Rect), e.Door.Target)
		}
	}

	CreatePlayer(w, d.StartX, d.StartY, t.Player)
	return level, nil
}

func rectBox(r leveldata.Rect) gamemath.AABB {
	return gamemath.AABB{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func coinBox(c leveldata.Coin, tile, size float64) gamemath.AABB {
	inset := (tile - size) / 2
	return gamemath.AABB{X: c.X + inset, Y: c.Y + inset, W: size, H: size}
}

func entityBounds(e leveldata.Entity, t cfg.Tuning) []gamemath.AABB {
	tile := t.Level.TileSize
	switch e.Kind {
	case leveldata.KindWall:
		return []gamemath.AABB{rectBox(e.Wall.Rect)}
	case leveldata.KindShadow:
		return []gamemath.AABB{rectBox(e.Shadow.Rect)}
	case leveldata.KindDoor:
		return []gamemath.AABB{rectBox(e.Door.Rect)}
	case leveldata.KindSpike:
		return SpikeBoxes(*e.Spike, tile, t.Level.SpikeHeight)
	case leveldata.KindCoin:
		return []gamemath.AABB{coinBox(*e.Coin, tile, t.Coins.Size)}
	case leveldata.KindCannon:
		return []gamemath.AABB{{X: e.Cannon.X, Y: e.Cannon.Y, W: t.Cannons.Size, H: t.Cannons.Size}}
	case leveldata.KindSpawn:
		return []gamemath.AABB{{X: e.Spawn.X, Y: e.Spawn.Y, W: t.Level.SpawnSize, H: t.Level.SpawnSize}}
	case leveldata.KindText:
		return []gamemath.AABB{{X: e.Text.X, Y: e.Text.Y}}
	}
	return nil
}
