package main

import "sync"

// GameController is the single exclusive-access point for the session.
// Handlers, the websocket reader and the tick loop all go through this
// mutex, so stage transitions stay total and ordered.
type GameController struct {
	mu   sync.Mutex
	game Game
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) RouteEvent(ev InputEvent) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.RouteEvent(ev)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Update()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings.Clone()
}

func (gc *GameController) History() []HistoryEntry {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History().All()
}

func (gc *GameController) PlayerSnapshot(color PlayerColor) PlayerState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.PlayerSnapshot(color)
}

// Targets lists the enemy stones the current side may pick while the
// removal skill is waiting for a target. Empty when no selection is up.
func (gc *GameController) Targets() []Move {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.state.TargetSelectActive {
		return []Move{}
	}
	return gc.game.enemyStones()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) UpdateSettings(update GameSettings, reset bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if reset {
		gc.game.Reset(update)
		return
	}
	gc.game.settings = update.Clone()
	gc.game.rules = NewRules(gc.game.settings)
	gc.game.black.Name = update.BlackName
	gc.game.white.Name = update.WhiteName
}
