package main

import "fmt"

// Game owns the whole session: board, history, both player records and
// the turn stage machine. All mutation happens through RouteEvent and
// Update; the controller serializes access.
type Game struct {
	settings GameSettings
	rules    Rules
	state    GameState
	history  MoveHistory
	black    PlayerState
	white    PlayerState
	roll     *rollSource
}

func NewGame(settings GameSettings) Game {
	g := Game{roll: newRollSource(GetConfig().RollSeed)}
	g.Reset(settings)
	return g
}

// Reset starts a fresh session: empty board, full cooldowns, cleared
// flags and history. Called at startup, on the reset key and on an
// accepted rematch. The roll source is deliberately not reseeded.
func (g *Game) Reset(settings GameSettings) {
	g.settings = settings.Clone()
	g.rules = NewRules(g.settings)
	g.state.Reset(g.settings)
	g.history.Clear()
	g.black = NewPlayerState(g.settings.BlackName, g.settings.Cooldowns)
	g.white = NewPlayerState(g.settings.WhiteName, g.settings.Cooldowns)
	g.pushMessage("New game started.")
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) PlayerSnapshot(color PlayerColor) PlayerState {
	p := *g.playerFor(color)
	p.Cooldowns = p.CooldownsCopy()
	return p
}

// RouteEvent dispatches one input event into the state machine. Every
// rejected action degrades to a log message; nothing here fails.
func (g *Game) RouteEvent(ev InputEvent) {
	switch ev.Kind {
	case EventBoardClick:
		g.handleBoardClick(ev.Cell)
	case EventSkillPress:
		g.handleSkillPress(ev.Skill)
	case EventKeyPress:
		g.handleKeyPress(ev.Key)
	case EventRematchResponse:
		g.handleRematchResponse(ev.Accept)
	}
}

// Update advances the stage machine by exactly one deterministic step.
// It reports whether anything changed so the caller knows to broadcast.
func (g *Game) Update() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	switch g.state.Stage {
	case StageBegin:
		g.beginTurn()
		return true
	case StageSkillWindow:
		if g.state.OverlayPending() {
			return false
		}
		g.state.Stage = StagePlacement
		return true
	case StagePostMove:
		g.judgeLastMove()
		return true
	}
	return false
}

// beginTurn is the BEGIN stage: tick down the mover's cooldowns, drop
// their stale counter stance, open the freeze window if they were
// frozen, and close any rematch dialog left over from the last turn.
func (g *Game) beginTurn() {
	mover := g.playerFor(g.state.ToMove)
	mover.TickCooldowns()
	mover.CounterStance = false
	g.state.FreezeWindowOpen = mover.Frozen
	g.state.RematchDialogOpen = false
	g.state.Stage = StageSkillWindow
}

func (g *Game) handleBoardClick(cell Move) {
	if g.state.RematchDialogOpen {
		g.handleRematchResponse(false)
		return
	}
	if g.state.Status != StatusRunning {
		return
	}
	if g.state.FreezeWindowOpen {
		g.consumeFreezeSkipTurn()
		return
	}
	if g.state.TargetSelectActive {
		g.confirmRemoveTarget(cell)
		return
	}
	if g.state.Stage != StagePlacement {
		return
	}
	if g.tryPlaceStone(cell) {
		g.state.Stage = StagePostMove
	}
}

func (g *Game) handleSkillPress(id SkillID) {
	if g.state.RematchDialogOpen {
		g.handleRematchResponse(false)
		return
	}
	if g.state.Status != StatusRunning {
		return
	}
	if g.state.FreezeWindowOpen {
		// Only the counter matters here; anything else skips the turn.
		if id == SkillCounterFreeze {
			g.tryCastSkill(id)
		} else {
			g.consumeFreezeSkipTurn()
		}
		return
	}
	if g.state.Stage == StageSkillWindow ||
		(g.state.Stage == StagePlacement && !g.movedThisTurn()) {
		g.tryCastSkill(id)
	}
}

func (g *Game) handleKeyPress(key string) {
	switch key {
	case "1", "2", "3", "4", "5", "6":
		g.handleSkillPress(SkillID(key[0] - '0'))
	case "u", "z":
		g.undoLastMove()
	case "r":
		g.Reset(g.settings)
	}
}

func (g *Game) handleRematchResponse(accept bool) {
	if !g.state.RematchDialogOpen {
		return
	}
	g.state.RematchDialogOpen = false
	if accept {
		g.Reset(g.settings)
		return
	}
	g.pushMessage("The opponent rejected the rematch request.")
}

func (g *Game) tryPlaceStone(cell Move) bool {
	if !g.state.Board.IsEmpty(cell.X, cell.Y) {
		g.pushMessage("Illegal placement ignored.")
		return false
	}
	side := g.state.ToMove
	g.state.Board.Set(cell.X, cell.Y, CellFromPlayer(side))
	g.state.LastMove = cell
	g.state.HasLastMove = true
	g.history.Push(HistoryEntry{Move: cell, Player: side})
	return true
}

func (g *Game) confirmRemoveTarget(cell Move) bool {
	if !g.state.TargetSelectActive {
		return false
	}
	if !cell.IsValid(g.settings.BoardSize) {
		return false
	}
	enemy := otherPlayer(g.state.ToMove)
	if g.state.Board.At(cell.X, cell.Y) != CellFromPlayer(enemy) {
		return false
	}
	g.state.Board.Remove(cell.X, cell.Y)
	g.history.RemoveLastMatching(cell, enemy)
	g.state.TargetSelectActive = false
	g.pushMessage("Remove stone: an enemy stone was removed.")
	return true
}

// consumeFreezeSkipTurn resolves a freeze window the hard way: the
// frozen flag is spent and the whole turn passes without a placement.
func (g *Game) consumeFreezeSkipTurn() {
	if !g.state.FreezeWindowOpen {
		return
	}
	mover := g.playerFor(g.state.ToMove)
	mover.Frozen = false
	g.state.FreezeWindowOpen = false
	g.pushMessage(fmt.Sprintf("%s is frozen: turn skipped.", mover.Name))
	g.switchTurn()
}

// undoLastMove reverts only the board cell and the history entry.
// Cooldowns and one-shot flags spent since that move stay spent; this
// is an explore tool, not a rollback.
func (g *Game) undoLastMove() bool {
	entry, ok := g.history.Pop()
	if !ok {
		g.pushMessage("Nothing to undo.")
		return false
	}
	g.state.Board.Remove(entry.Move.X, entry.Move.Y)
	if last, ok := g.history.Last(); ok {
		g.state.LastMove = last.Move
		g.state.HasLastMove = true
	} else {
		g.state.LastMove = Move{X: -1, Y: -1}
		g.state.HasLastMove = false
	}
	g.pushMessage("Undid one move.")
	return true
}

func (g *Game) judgeLastMove() {
	if g.state.HasLastMove && g.rules.CheckFive(g.state.Board, g.state.LastMove) {
		winner := g.state.ToMove
		g.setWinner(winner)
		g.pushMessage(fmt.Sprintf("%s wins!", g.settings.NameFor(winner)))
		return
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		g.pushMessage("Draw!")
		return
	}
	g.switchTurn()
}

func (g *Game) switchTurn() {
	g.state.ToMove = otherPlayer(g.state.ToMove)
	g.state.Stage = StageBegin
}

func (g *Game) setWinner(winner PlayerColor) {
	if winner == PlayerBlack {
		g.state.Status = StatusBlackWon
	} else {
		g.state.Status = StatusWhiteWon
	}
}

func (g *Game) movedThisTurn() bool {
	last, ok := g.history.Last()
	return ok && last.Player == g.state.ToMove
}

func (g *Game) playerFor(color PlayerColor) *PlayerState {
	if color == PlayerBlack {
		return &g.black
	}
	return &g.white
}

func (g *Game) pushMessage(text string) {
	g.state.Messages = append(g.state.Messages, text)
	if limit := GetConfig().MessageLogCap; limit > 0 && len(g.state.Messages) > limit {
		g.state.Messages = g.state.Messages[len(g.state.Messages)-limit:]
	}
}
