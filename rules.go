package main

import "fmt"

type Rules struct {
	settings GameSettings
}

type PatternCounts struct {
	OpenThree int
	OpenFour  int
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

// CheckFive reports whether the last placed stone completes a run of
// WinLength or more. Invalid or empty positions return false rather
// than an error; callers treat that as "no win".
func (r Rules) CheckFive(board Board, lastMove Move) bool {
	if !lastMove.IsValid(r.settings.BoardSize) {
		return false
	}
	if board.At(lastMove.X, lastMove.Y) == CellEmpty {
		return false
	}
	directions := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for i := 0; i < 4; i++ {
		dx := directions[i][0]
		dy := directions[i][1]
		count := 1
		count += r.countDirection(board, lastMove, dx, dy)
		count += r.countDirection(board, lastMove, -dx, -dy)
		if count >= r.settings.WinLength {
			return true
		}
	}
	return false
}

func (r Rules) IsDraw(board Board) bool {
	return board.CountEmpty() == 0
}

// CountOpenPatterns scans every row, column and diagonal of length >= 5
// and counts open fours (_XXXX_) and open threes (_XXX_, _XX_X_, _X_XX_)
// for the given side. Matches may overlap and the same shape can be
// counted on more than one window; the mighty-power bonus was tuned
// against that behavior, so the overlap counting is kept as is.
func (r Rules) CountOpenPatterns(board Board, side PlayerColor) PatternCounts {
	counts := PatternCounts{}
	own := CellFromPlayer(side)
	size := board.Size()

	scan := func(line []byte) {
		counts.OpenFour += countPattern(line, "_XXXX_")
		counts.OpenThree += countPattern(line, "_XXX_")
		counts.OpenThree += countPattern(line, "_XX_X_")
		counts.OpenThree += countPattern(line, "_X_XX_")
	}

	line := make([]byte, 0, size)
	for y := 0; y < size; y++ {
		line = line[:0]
		for x := 0; x < size; x++ {
			line = append(line, lineSymbol(board.At(x, y), own))
		}
		scan(line)
	}
	for x := 0; x < size; x++ {
		line = line[:0]
		for y := 0; y < size; y++ {
			line = append(line, lineSymbol(board.At(x, y), own))
		}
		scan(line)
	}
	for k := -(size - 5); k <= size-5; k++ {
		line = line[:0]
		for y := 0; y < size; y++ {
			x := y - k
			if x >= 0 && x < size {
				line = append(line, lineSymbol(board.At(x, y), own))
			}
		}
		if len(line) >= 5 {
			scan(line)
		}
	}
	for k := 4; k <= 2*size-6; k++ {
		line = line[:0]
		for y := 0; y < size; y++ {
			x := k - y
			if x >= 0 && x < size {
				line = append(line, lineSymbol(board.At(x, y), own))
			}
		}
		if len(line) >= 5 {
			scan(line)
		}
	}
	return counts
}

func (r Rules) WinLength() int {
	return r.settings.WinLength
}

func (r Rules) countDirection(board Board, start Move, dx, dy int) int {
	target := board.At(start.X, start.Y)
	x := start.X + dx
	y := start.Y + dy
	count := 0
	for board.InBounds(x, y) && board.At(x, y) == target {
		count++
		x += dx
		y += dy
	}
	return count
}

func lineSymbol(cell Cell, own Cell) byte {
	switch cell {
	case CellEmpty:
		return '_'
	case own:
		return 'X'
	default:
		return 'O'
	}
}

func countPattern(line []byte, pattern string) int {
	count := 0
	for start := 0; start+len(pattern) <= len(line); start++ {
		match := true
		for i := 0; i < len(pattern); i++ {
			if line[start+i] != pattern[i] {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d}", r.settings.BoardSize, r.settings.WinLength)
}
