package components

import "github.com/yohamta/donburi"

type LabelData struct {
	Text string
	Size float64
}

var Label = donburi.NewComponentType[LabelData]()
