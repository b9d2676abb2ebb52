package main

type PlayerColor int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

// PlayerState is the per-side bookkeeping record: skill cooldowns plus
// the two one-shot flags (frozen, counter stance). It is mutated in
// place for the whole session and reset on rematch.
type PlayerState struct {
	Name          string
	Cooldowns     map[SkillID]int
	Frozen        bool
	CounterStance bool
}

func NewPlayerState(name string, cooldownTable map[SkillID]int) PlayerState {
	p := PlayerState{Name: name}
	p.ResetForNewGame(cooldownTable)
	return p
}

func (p *PlayerState) ResetForNewGame(cooldownTable map[SkillID]int) {
	p.Cooldowns = make(map[SkillID]int, len(cooldownTable))
	for id, cd := range cooldownTable {
		p.Cooldowns[id] = cd
	}
	p.Frozen = false
	p.CounterStance = false
}

// TickCooldowns decrements every cooldown by one, floored at zero.
// Called once at the owner's BEGIN stage.
func (p *PlayerState) TickCooldowns() {
	for id, cd := range p.Cooldowns {
		if cd > 0 {
			p.Cooldowns[id] = cd - 1
		}
	}
}

func (p PlayerState) CooldownsCopy() map[SkillID]int {
	copied := make(map[SkillID]int, len(p.Cooldowns))
	for id, cd := range p.Cooldowns {
		copied[id] = cd
	}
	return copied
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (p PlayerColor) String() string {
	if p == PlayerBlack {
		return "Black"
	}
	return "White"
}
