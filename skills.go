package main

import "fmt"

type SkillID int

const (
	SkillRemoveStone SkillID = iota + 1
	SkillFreeze
	SkillCounterFreeze
	SkillMightyPower
	SkillCounterStance
	SkillRematch
)

func (id SkillID) Valid() bool {
	return id >= SkillRemoveStone && id <= SkillRematch
}

func (id SkillID) String() string {
	switch id {
	case SkillRemoveStone:
		return "remove_stone"
	case SkillFreeze:
		return "freeze"
	case SkillCounterFreeze:
		return "counter_freeze"
	case SkillMightyPower:
		return "mighty_power"
	case SkillCounterStance:
		return "counter_stance"
	case SkillRematch:
		return "rematch"
	default:
		return "unknown"
	}
}

// canCast checks the cooldown gate and the per-skill preconditions. It
// never mutates state; interception is resolved later in tryCastSkill.
func (g *Game) canCast(id SkillID) (bool, string) {
	if !id.Valid() {
		return false, "unknown skill"
	}
	caster := g.playerFor(g.state.ToMove)
	if caster.Cooldowns[id] > 0 {
		return false, "on cooldown"
	}
	switch id {
	case SkillCounterFreeze:
		if !g.state.FreezeWindowOpen {
			return false, "usable only at the start of a frozen turn"
		}
	case SkillMightyPower:
		if g.history.Size() < g.settings.MightyMinMoves {
			return false, fmt.Sprintf("needs at least %d total moves", g.settings.MightyMinMoves)
		}
	case SkillRemoveStone:
		if len(g.enemyStones()) == 0 {
			return false, "no enemy stone to remove"
		}
	}
	return true, ""
}

func (g *Game) tryCastSkill(id SkillID) bool {
	if ok, _ := g.canCast(id); !ok {
		g.pushMessage("Skill unavailable or on cooldown.")
		return false
	}
	// A waiting counter stance consumes the cast: the cooldown is still
	// charged but the effect never runs.
	if g.consumeIntercept(g.state.ToMove) {
		g.chargeCooldown(id)
		g.pushMessage("Opponent's counter stance fires: your skill was intercepted!")
		return false
	}
	switch id {
	case SkillRemoveStone:
		g.castRemoveStone()
	case SkillFreeze:
		g.castFreeze()
	case SkillCounterFreeze:
		g.castCounterFreeze()
	case SkillMightyPower:
		g.castMightyPower()
	case SkillCounterStance:
		g.castCounterStance()
	case SkillRematch:
		g.castRematch()
	}
	g.chargeCooldown(id)
	return true
}

func (g *Game) consumeIntercept(caster PlayerColor) bool {
	opponent := g.playerFor(otherPlayer(caster))
	if opponent.CounterStance {
		opponent.CounterStance = false
		return true
	}
	return false
}

func (g *Game) chargeCooldown(id SkillID) {
	caster := g.playerFor(g.state.ToMove)
	caster.Cooldowns[id] = g.settings.CooldownFor(id)
}

func (g *Game) castRemoveStone() {
	g.state.TargetSelectActive = true
	g.pushMessage("Remove stone: pick the enemy stone to remove.")
}

func (g *Game) castFreeze() {
	g.playerFor(otherPlayer(g.state.ToMove)).Frozen = true
	g.pushMessage("Freeze: the opponent's next turn will be frozen.")
}

func (g *Game) castCounterFreeze() {
	if !g.state.FreezeWindowOpen {
		g.pushMessage("Counter freeze is only usable at the start of a frozen turn.")
		return
	}
	g.playerFor(g.state.ToMove).Frozen = false
	g.state.FreezeWindowOpen = false
	g.pushMessage("Counter freeze: the freeze is lifted, place a stone as usual.")
}

func (g *Game) castMightyPower() {
	chance := g.mightyChance()
	if g.roll.Float64() < chance {
		g.setWinner(g.state.ToMove)
		g.pushMessage(fmt.Sprintf("Mighty power succeeds! (%d%% chance)", int(chance*100)))
		return
	}
	g.pushMessage(fmt.Sprintf("Mighty power fails (%d%% chance).", int(chance*100)))
}

func (g *Game) castCounterStance() {
	g.playerFor(g.state.ToMove).CounterStance = true
	g.pushMessage("Counter stance: the opponent's next skill will be intercepted.")
}

func (g *Game) castRematch() {
	g.state.RematchDialogOpen = true
	g.state.RematchRequestedBy = g.state.ToMove
	g.pushMessage("Rematch: request sent to the opponent.")
}

// mightyChance folds the caster's open threes and fours into the base
// success rate, capped at the configured maximum.
func (g *Game) mightyChance() float64 {
	counts := g.rules.CountOpenPatterns(g.state.Board, g.state.ToMove)
	chance := g.settings.MightyBaseChance +
		0.02*float64(counts.OpenThree) +
		0.03*float64(counts.OpenFour)
	if chance > g.settings.MightyMaxChance {
		chance = g.settings.MightyMaxChance
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

func (g *Game) enemyStones() []Move {
	enemy := CellFromPlayer(otherPlayer(g.state.ToMove))
	size := g.state.Board.Size()
	stones := []Move{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if g.state.Board.At(x, y) == enemy {
				stones = append(stones, Move{X: x, Y: y})
			}
		}
	}
	return stones
}
