package engine

import (
	"errors"
	"testing"
)

func newTestCursor(t *testing.T, layout Layout, src *countingSource) (*Buffer, *Cursor) {
	t.Helper()
	buf, err := newBufferFrom(layout, src)
	if err != nil {
		t.Fatalf("new buffer: %v", err)
	}
	return buf, NewCursor(buf, src)
}

func TestCursorAdvanceGrowsOneRowAhead(t *testing.T) {
	layout := Layout{WordsPerRow: 3, VisibleRows: 3}
	src := &countingSource{}
	buf, cur := newTestCursor(t, layout, src)
	initialCalls := src.calls

	var windows [][2]int
	appends := 0
	for i := 0; i < 9; i++ {
		before := buf.Len()
		if err := cur.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if buf.Len() != before {
			appends++
			if cur.Position().Row != before-1 {
				t.Fatalf("appended while cursor on row %d of %d rows", cur.Position().Row, before)
			}
		}
		if cur.Position().Row >= buf.LastRowIndex() {
			t.Fatalf("no row ahead of cursor at %+v (last %d)", cur.Position(), buf.LastRowIndex())
		}
		if cur.Position().Column == 0 {
			start, end := layout.VisibleWindow(cur.Position().Row)
			windows = append(windows, [2]int{start, end})
		}
	}
	if cur.Position() != (Position{Row: 3, Column: 0}) {
		t.Fatalf("unexpected position %+v", cur.Position())
	}
	// Rows 2 and 3 were each the last existing row when the cursor reached them.
	if appends != 2 {
		t.Fatalf("expected 2 appends, got %d", appends)
	}
	if src.calls-initialCalls != appends*layout.WordsPerRow {
		t.Fatalf("expected %d words drawn, got %d", appends*layout.WordsPerRow, src.calls-initialCalls)
	}
	want := [][2]int{{0, 3}, {1, 4}, {2, 5}}
	for i := range want {
		if windows[i] != want[i] {
			t.Fatalf("window %d: expected %v, got %v", i, want[i], windows[i])
		}
	}
	if err := cur.Advance(); err != nil {
		t.Fatalf("advance: %v", err)
	}
}

func TestCursorRetreat(t *testing.T) {
	layout := Layout{WordsPerRow: 2, VisibleRows: 2}
	_, cur := newTestCursor(t, layout, &countingSource{})
	if cur.Retreat() {
		t.Fatalf("expected retreat at origin to be a no-op")
	}
	if cur.Position() != (Position{}) {
		t.Fatalf("expected origin, got %+v", cur.Position())
	}
	for i := 0; i < 3; i++ {
		if err := cur.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	if cur.Position() != (Position{Row: 1, Column: 1}) {
		t.Fatalf("unexpected position %+v", cur.Position())
	}
	cur.Retreat()
	cur.Retreat()
	if cur.Position() != (Position{Row: 0, Column: 1}) {
		t.Fatalf("expected wrap to previous row end, got %+v", cur.Position())
	}
}

func TestCursorAdvanceRoundTrip(t *testing.T) {
	layout := Layout{WordsPerRow: 2, VisibleRows: 2}
	_, cur := newTestCursor(t, layout, &countingSource{})
	for i := 0; i < 5; i++ {
		before := cur.Position()
		if err := cur.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if !cur.Retreat() {
			t.Fatalf("expected retreat to move")
		}
		if cur.Position() != before {
			t.Fatalf("round trip: expected %+v, got %+v", before, cur.Position())
		}
		if err := cur.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
}

func TestCursorAdvanceFailsWithoutWords(t *testing.T) {
	layout := Layout{WordsPerRow: 2, VisibleRows: 2}
	src := &countingSource{limit: 4}
	_, cur := newTestCursor(t, layout, src)
	if err := cur.Advance(); err != nil {
		t.Fatalf("advance within row: %v", err)
	}
	err := cur.Advance()
	if !errors.Is(err, ErrNoWordsAvailable) {
		t.Fatalf("expected ErrNoWordsAvailable, got %v", err)
	}
	if cur.Position() != (Position{Row: 0, Column: 1}) {
		t.Fatalf("cursor moved on failed advance: %+v", cur.Position())
	}
}
