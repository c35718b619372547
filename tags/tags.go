package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Wall           = donburi.NewTag().SetName("Wall")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Portal         = donburi.NewTag().SetName("Portal")
	Collectible    = donburi.NewTag().SetName("Collectible")
	Hazard         = donburi.NewTag().SetName("Hazard")
	Powerup        = donburi.NewTag().SetName("Powerup")
)

// Resolv tags for physics collision
const (
	ResolvSolid       = "solid"
	ResolvPlatform    = "platform"
	ResolvEthereal    = "ethereal"
	ResolvMetal       = "metal"
	ResolvPlayer      = "Player"
	ResolvPortal      = "portal"
	ResolvCollectible = "collectible"
	ResolvHazard      = "hazard"
	ResolvPowerup     = "powerup"
)
