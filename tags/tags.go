package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Spike  = donburi.NewTag().SetName("Spike")
	Coin   = donburi.NewTag().SetName("Coin")
	Cannon = donburi.NewTag().SetName("Cannon")
	Bullet = donburi.NewTag().SetName("Bullet")
	Shadow = donburi.NewTag().SetName("Shadow")
	Spawn  = donburi.NewTag().SetName("Spawn")
	Label  = donburi.NewTag().SetName("Label")
	Door   = donburi.NewTag().SetName("Door")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvCoin   = "coin"
	ResolvSpawn  = "spawn"
	ResolvDoor   = "door"
	ResolvProbe  = "probe"
)
