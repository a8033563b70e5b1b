package archetypes

import (
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Box,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
		components.Box,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Spike,
		components.Object,
		components.Box,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
		components.Box,
	)
	Cannon = newArchetype(
		tags.Cannon,
		components.Cannon,
		components.Box,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Body,
		components.Box,
	)
	Shadow = newArchetype(
		tags.Shadow,
		components.Box,
	)
	Spawn = newArchetype(
		tags.Spawn,
		components.SpawnPoint,
		components.Object,
		components.Box,
	)
	Label = newArchetype(
		tags.Label,
		components.Label,
		components.Box,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
		components.Box,
	)
	Event = newArchetype(
		components.Event,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
