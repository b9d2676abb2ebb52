package main

import "fmt"

type GameSettings struct {
	BoardSize        int              `json:"board_size"`
	WinLength        int              `json:"win_length"`
	BlackName        string           `json:"black_name"`
	WhiteName        string           `json:"white_name"`
	BlackStarts      bool             `json:"black_starts"`
	Cooldowns        map[SkillID]int  `json:"cooldowns"`
	MightyMinMoves   int              `json:"mighty_min_moves"`
	MightyBaseChance float64          `json:"mighty_base_chance"`
	MightyMaxChance  float64          `json:"mighty_max_chance"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:   15,
		WinLength:   5,
		BlackName:   "Black",
		WhiteName:   "White",
		BlackStarts: true,
		Cooldowns: map[SkillID]int{
			SkillRemoveStone:   6,
			SkillFreeze:        8,
			SkillCounterFreeze: 3,
			SkillMightyPower:   20,
			SkillCounterStance: 5,
			SkillRematch:       12,
		},
		MightyMinMoves:   20,
		MightyBaseChance: 0.10,
		MightyMaxChance:  0.18,
	}
}

// Validate rejects settings a live session could not survive.
func (s GameSettings) Validate() error {
	if s.BoardSize < 5 || s.BoardSize > 32 {
		return fmt.Errorf("board size %d out of range [5,32]", s.BoardSize)
	}
	if s.WinLength < 3 || s.WinLength > s.BoardSize {
		return fmt.Errorf("win length %d out of range [3,%d]", s.WinLength, s.BoardSize)
	}
	if s.MightyMinMoves < 0 {
		return fmt.Errorf("mighty-power move threshold %d is negative", s.MightyMinMoves)
	}
	if s.MightyBaseChance < 0 || s.MightyBaseChance > 1 ||
		s.MightyMaxChance < 0 || s.MightyMaxChance > 1 {
		return fmt.Errorf("mighty-power chances must stay within [0,1]")
	}
	for id, cd := range s.Cooldowns {
		if cd < 0 {
			return fmt.Errorf("cooldown for %s is negative", id)
		}
	}
	return nil
}

func (s GameSettings) Clone() GameSettings {
	clone := s
	clone.Cooldowns = make(map[SkillID]int, len(s.Cooldowns))
	for id, cd := range s.Cooldowns {
		clone.Cooldowns[id] = cd
	}
	return clone
}

// CooldownFor falls back to one turn for unknown skill ids so a cast
// can never recharge instantly.
func (s GameSettings) CooldownFor(id SkillID) int {
	if cd, ok := s.Cooldowns[id]; ok {
		return cd
	}
	return 1
}

func (s GameSettings) NameFor(player PlayerColor) string {
	if player == PlayerBlack {
		return s.BlackName
	}
	return s.WhiteName
}
