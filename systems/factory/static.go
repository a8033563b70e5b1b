package factory

import (
	"github.com/automoto/godofsky/archetypes"
	"github.com/automoto/godofsky/components"
	"github.com/automoto/godofsky/shared/gamemath"
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/automoto/godofsky/tags"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, box gamemath.AABB) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)
	addObject(w, wall, box, tags.ResolvSolid)
	return wall
}

// SpikeBoxes returns one hitbox per tile of a spike run. Horizontal runs
// point up or down, vertical runs point left or right; the hitbox sits flush
// with the spike's base.
func SpikeBoxes(s leveldata.Spike, tile, heightFrac float64) []gamemath.AABB {
	h := tile * heightFrac
	boxes := make([]gamemath.AABB, 0, s.Length)
	for i := 0; i < s.Length; i++ {
		step := float64(i) * tile
		var b gamemath.AABB
		switch s.Orientation {
		case leveldata.Up:
			b = gamemath.AABB{X: s.X + step, Y: s.Y, W: tile, H: h}
		case leveldata.Down:
			b = gamemath.AABB{X: s.X + step, Y: s.Y + tile - h, W: tile, H: h}
		case leveldata.Left:
			b = gamemath.AABB{X: s.X + tile - h, Y: s.Y + step, W: h, H: tile}
		case leveldata.Right:
			b = gamemath.AABB{X: s.X, Y: s.Y + step, W: h, H: tile}
		}
		boxes = append(boxes, b)
	}
	return boxes
}

func CreateSpike(w donburi.World, box gamemath.AABB, orientation leveldata.Direction) *donburi.Entry {
	spike := archetypes.Spike.Spawn(w)
	components.Spike.SetValue(spike, components.SpikeData{Orientation: orientation})
	addObject(w, spike, box, tags.ResolvHazard)
	return spike
}

func CreateCoin(w donburi.World, box gamemath.AABB) *donburi.Entry {
	coin := archetypes.Coin.Spawn(w)
	components.Coin.SetValue(coin, components.CoinData{Origin: box})
	addObject(w, coin, box, tags.ResolvCoin)
	return coin
}

func CreateShadow(w donburi.World, box gamemath.AABB) *donburi.Entry {
	shadow := archetypes.Shadow.Spawn(w)
	components.Box.SetValue(shadow, box)
	return shadow
}

func CreateLabel(w donburi.World, x, y float64, text string, size float64) *donburi.Entry {
	label := archetypes.Label.Spawn(w)
	components.Label.SetValue(label, components.LabelData{Text: text, Size: size})
	components.Box.SetValue(label, gamemath.AABB{X: x, Y: y})
	return label
}
