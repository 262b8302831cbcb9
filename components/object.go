package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision proxy of a table entity in the resolv space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton collision space covering the table.
var Space = donburi.NewComponentType[resolv.Space]()
