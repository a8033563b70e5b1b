package components

import "github.com/yohamta/donburi"

// SpawnPointData is a respawn trigger.
type SpawnPointData struct {
	X, Y     float64
	Priority int
}

var SpawnPoint = donburi.NewComponentType[SpawnPointData]()

// DoorData requests a level change. Inside is true while the player stands
// in the door so one visit fires once.
type DoorData struct {
	Target string
	Inside bool
}

var Door = donburi.NewComponentType[DoorData]()
