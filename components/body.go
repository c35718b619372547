package components

import "github.com/yohamta/donburi"

// StaticBodyData describes level geometry. A wall is a body with no flags set.
type StaticBodyData struct {
	Ethereal bool // Passable while the player is Ethereal
	Metal    bool // Attracts the player while Magnetic
	OneWay   bool // Platform; blocks only from the side gravity pulls toward
}

var StaticBody = donburi.NewComponentType[StaticBodyData]()
