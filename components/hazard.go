package components

import (
	"github.com/automoto/godofsky/shared/leveldata"
	"github.com/yohamta/donburi"
)

type SpikeData struct {
	Orientation leveldata.Direction
}

var Spike = donburi.NewComponentType[SpikeData]()

// CannonData counts ticks up to Period, which was jittered once at load.
type CannonData struct {
	Direction leveldata.Direction
	Period    int
	Counter   int
}

var Cannon = donburi.NewComponentType[CannonData]()

type BulletData struct {
	Direction leveldata.Direction
}

var Bullet = donburi.NewComponentType[BulletData]()
