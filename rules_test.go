package main

import "testing"

func TestCheckFiveVerticalRun(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	for y := 7; y <= 11; y++ {
		board.Set(7, y, CellBlack)
	}
	if !rules.CheckFive(board, Move{X: 7, Y: 11}) {
		t.Fatalf("expected vertical five through (7,11) to win")
	}
	if !rules.CheckFive(board, Move{X: 7, Y: 9}) {
		t.Fatalf("expected five to be detected from a middle stone too")
	}
}

func TestCheckFiveNeedsFiveStones(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	for x := 3; x <= 6; x++ {
		board.Set(x, 5, CellWhite)
	}
	if rules.CheckFive(board, Move{X: 6, Y: 5}) {
		t.Fatalf("four in a row must not win")
	}
}

func TestCheckFiveDirections(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	cases := []struct {
		name   string
		dx, dy int
	}{
		{"horizontal", 1, 0},
		{"vertical", 0, 1},
		{"diagonal", 1, 1},
		{"anti-diagonal", 1, -1},
	}
	for _, tc := range cases {
		board := NewBoard(settings.BoardSize)
		last := Move{}
		for i := 0; i < 5; i++ {
			last = Move{X: 7 + i*tc.dx, Y: 7 + i*tc.dy}
			board.Set(last.X, last.Y, CellBlack)
		}
		if !rules.CheckFive(board, last) {
			t.Fatalf("%s five not detected", tc.name)
		}
	}
}

func TestCheckFiveInvalidLastMoveIsFalse(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	board.Set(7, 7, CellBlack)
	if rules.CheckFive(board, Move{X: -1, Y: 3}) {
		t.Fatalf("out-of-range last move must be treated as no win")
	}
	if rules.CheckFive(board, Move{X: 20, Y: 20}) {
		t.Fatalf("out-of-range last move must be treated as no win")
	}
	if rules.CheckFive(board, Move{X: 4, Y: 4}) {
		t.Fatalf("empty last move cell must be treated as no win")
	}
}

// fillWithoutFive tiles the board in 3-wide blocks whose color flips
// every row, so no line of either color ever reaches five.
func fillWithoutFive(board *Board) {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/3+y)%2 == 0 {
				board.Set(x, y, CellBlack)
			} else {
				board.Set(x, y, CellWhite)
			}
		}
	}
}

func TestIsDrawOnFullBoardWithoutFive(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	if rules.IsDraw(board) {
		t.Fatalf("empty board must not be a draw")
	}
	fillWithoutFive(&board)
	if !rules.IsDraw(board) {
		t.Fatalf("full board must be a draw")
	}
	for y := 0; y < board.Size(); y++ {
		for x := 0; x < board.Size(); x++ {
			if rules.CheckFive(board, Move{X: x, Y: y}) {
				t.Fatalf("tiling unexpectedly contains a five through (%d,%d)", x, y)
			}
		}
	}
}

func TestCountOpenPatternsOpenThree(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	for x := 5; x <= 7; x++ {
		board.Set(x, 5, CellBlack)
	}
	counts := rules.CountOpenPatterns(board, PlayerBlack)
	if counts.OpenThree != 1 || counts.OpenFour != 0 {
		t.Fatalf("expected one open three, got %+v", counts)
	}
	if got := rules.CountOpenPatterns(board, PlayerWhite); got.OpenThree != 0 || got.OpenFour != 0 {
		t.Fatalf("opponent must see no open patterns, got %+v", got)
	}
}

func TestCountOpenPatternsOpenFour(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	for x := 5; x <= 8; x++ {
		board.Set(x, 5, CellBlack)
	}
	counts := rules.CountOpenPatterns(board, PlayerBlack)
	if counts.OpenFour != 1 {
		t.Fatalf("expected one open four, got %+v", counts)
	}
	if counts.OpenThree != 0 {
		t.Fatalf("an open four must not also count as an open three, got %+v", counts)
	}
}

func TestCountOpenPatternsBrokenThree(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	board.Set(5, 5, CellBlack)
	board.Set(6, 5, CellBlack)
	board.Set(8, 5, CellBlack)
	counts := rules.CountOpenPatterns(board, PlayerBlack)
	if counts.OpenThree != 1 || counts.OpenFour != 0 {
		t.Fatalf("expected one broken open three, got %+v", counts)
	}
}

func TestCountOpenPatternsBlockedByEnemy(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	for x := 5; x <= 7; x++ {
		board.Set(x, 5, CellBlack)
	}
	board.Set(4, 5, CellWhite)
	board.Set(8, 5, CellWhite)
	counts := rules.CountOpenPatterns(board, PlayerBlack)
	if counts.OpenThree != 0 {
		t.Fatalf("closed three must not count, got %+v", counts)
	}
}

func TestCountOpenPatternsKeepsOverlapCounting(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	board := NewBoard(settings.BoardSize)
	// Stones at x=1,3,4,6 on one row match both _X_XX_ and _XX_X_
	// windows sharing the middle pair; the double count is kept.
	for _, x := range []int{1, 3, 4, 6} {
		board.Set(x, 7, CellBlack)
	}
	counts := rules.CountOpenPatterns(board, PlayerBlack)
	if counts.OpenThree != 2 {
		t.Fatalf("expected overlap counting to report 2 open threes, got %+v", counts)
	}
}
