package main

import "testing"

func TestHistoryPushPopOrder(t *testing.T) {
	h := MoveHistory{}
	h.Push(HistoryEntry{Move: Move{X: 1, Y: 1}, Player: PlayerBlack})
	h.Push(HistoryEntry{Move: Move{X: 2, Y: 2}, Player: PlayerWhite})

	entry, ok := h.Pop()
	if !ok || !entry.Move.Equals(Move{X: 2, Y: 2}) || entry.Player != PlayerWhite {
		t.Fatalf("expected the most recent entry first, got %+v", entry)
	}
	entry, ok = h.Pop()
	if !ok || !entry.Move.Equals(Move{X: 1, Y: 1}) {
		t.Fatalf("expected the first entry last, got %+v", entry)
	}
	if _, ok := h.Pop(); ok {
		t.Fatalf("pop on an empty history must report false")
	}
}

func TestHistoryRemoveLastMatchingPicksMostRecent(t *testing.T) {
	h := MoveHistory{}
	h.Push(HistoryEntry{Move: Move{X: 5, Y: 5}, Player: PlayerBlack})
	h.Push(HistoryEntry{Move: Move{X: 6, Y: 6}, Player: PlayerWhite})
	h.Push(HistoryEntry{Move: Move{X: 7, Y: 7}, Player: PlayerBlack})

	if !h.RemoveLastMatching(Move{X: 6, Y: 6}, PlayerWhite) {
		t.Fatalf("expected a match for white at (6,6)")
	}
	if h.Size() != 2 {
		t.Fatalf("expected 2 entries after removal, got %d", h.Size())
	}
	last, _ := h.Last()
	if !last.Move.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("removal must keep the later entries, got tail %+v", last)
	}
}

func TestHistoryRemoveLastMatchingChecksPlayer(t *testing.T) {
	h := MoveHistory{}
	h.Push(HistoryEntry{Move: Move{X: 5, Y: 5}, Player: PlayerBlack})
	if h.RemoveLastMatching(Move{X: 5, Y: 5}, PlayerWhite) {
		t.Fatalf("a stone may only be removed for its own side")
	}
	if h.Size() != 1 {
		t.Fatalf("a failed removal must not shrink the history")
	}
}
