package main

type GameStatus int

const (
	StatusRunning GameStatus = iota
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

type TurnStage int

const (
	StageBegin TurnStage = iota
	StageSkillWindow
	StagePlacement
	StagePostMove
)

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Stage       TurnStage
	Status      GameStatus
	HasLastMove bool
	LastMove    Move

	// Transient overlay flags read by the presentation adapter.
	TargetSelectActive bool
	FreezeWindowOpen   bool
	RematchDialogOpen  bool
	RematchRequestedBy PlayerColor

	Messages []string
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.BoardSize)
	if settings.BlackStarts {
		s.ToMove = PlayerBlack
	} else {
		s.ToMove = PlayerWhite
	}
	s.Stage = StageBegin
	s.Status = StatusRunning
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.TargetSelectActive = false
	s.FreezeWindowOpen = false
	s.RematchDialogOpen = false
	s.RematchRequestedBy = PlayerBlack
	s.Messages = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.Messages = append([]string(nil), s.Messages...)
	return clone
}

// LastMessages returns up to n most recent log lines, oldest first.
func (s GameState) LastMessages(n int) []string {
	if n <= 0 || len(s.Messages) == 0 {
		return nil
	}
	if len(s.Messages) > n {
		return append([]string(nil), s.Messages[len(s.Messages)-n:]...)
	}
	return append([]string(nil), s.Messages...)
}

// OverlayPending reports whether an overlay is waiting for input and
// the skill window must not auto-advance to placement.
func (s GameState) OverlayPending() bool {
	return s.FreezeWindowOpen || s.TargetSelectActive || s.RematchDialogOpen
}

func (s TurnStage) String() string {
	switch s {
	case StageBegin:
		return "begin"
	case StageSkillWindow:
		return "skill_window"
	case StagePlacement:
		return "placement"
	default:
		return "post_move"
	}
}

func (s GameStatus) String() string {
	switch s {
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}
