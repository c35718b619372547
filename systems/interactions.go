package systems

import (
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/components"
	cfg "github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/config"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/leveldata"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/shared/messages"
	"github.com/himanshujoshi5757hit/DimensionalShiftPuzzle/tags"
	"github.com/yohamta/donburi"
)

// UpdateInteractions handles the player touching portals, collectibles,
// hazards and powerups, in that order.
func UpdateInteractions(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		handlePortals(w, e)
		handleCollectibles(w, e)
		handleHazards(w, e)
		handlePowerups(w, e)
	})
}

func handlePortals(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	for _, portal := range contacts(e, tags.ResolvPortal) {
		if player.ShiftCooldown > 0 {
			return
		}
		from := player.Dimension
		player.Dimension = components.Portal.Get(portal).Target
		player.ShiftCooldown = cfg.Portal.ShiftCooldown
		emit(w, messages.DimensionShiftedEvent{From: from, To: player.Dimension})
	}
}

func handleCollectibles(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	for _, collectible := range contacts(e, tags.ResolvCollectible) {
		value := components.Collectible.Get(collectible).Value
		removeEntity(w, collectible)
		player.Score += value
		emit(w, messages.CollectedEvent{Value: value, Score: player.Score})
	}
}

// handleHazards applies at most one hit per tick, then relies on the
// invincibility window.
func handleHazards(w donburi.World, e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Invincible > 0 {
		return
	}

	hits := contacts(e, tags.ResolvHazard)
	if len(hits) == 0 {
		return
	}
	hazard := hits[0]
	damage := components.Hazard.Get(hazard).Damage

	health := components.Health.Get(e)
	health.Damage(damage)
	player.Invincible = cfg.Hazard.InvulnFrames

	physics := components.Physics.Get(e)
	if components.Bounds.Get(e).Center().X < components.Bounds.Get(hazard).Center().X {
		physics.SpeedX = -cfg.Hazard.KnockbackX
	} else {
		physics.SpeedX = cfg.Hazard.KnockbackX
	}
	physics.SpeedY = cfg.Hazard.KnockbackUpward

	emit(w, messages.DamagedEvent{Amount: damage, Health: health.Current})
}

func handlePowerups(w donburi.World, e *donburi.Entry) {
	for _, powerup := range contacts(e, tags.ResolvPowerup) {
		effect := components.Powerup.Get(powerup).Effect
		removeEntity(w, powerup)
		applyPowerup(w, e, effect)
	}
}

func applyPowerup(w donburi.World, e *donburi.Entry, effect leveldata.Effect) {
	player := components.Player.Get(e)
	switch effect {
	case leveldata.EffectHealth:
		health := components.Health.Get(e)
		healed := health.Heal(cfg.Powerup.HealAmount)
		emit(w, messages.HealedEvent{Amount: healed, Health: health.Current})
	case leveldata.EffectSpeed:
		player.SpeedMultiplier *= cfg.Powerup.SpeedMultiplier
	case leveldata.EffectJump:
		player.JumpMultiplier *= cfg.Powerup.JumpMultiplier
	case leveldata.EffectInvincibility:
		player.Invincible = cfg.Powerup.InvincibleFrames
	}
	emit(w, messages.PowerupEvent{Effect: effect})
}

// removeEntity discards a picked-up entity and its collision proxy.
func removeEntity(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(e.Entity())
}
