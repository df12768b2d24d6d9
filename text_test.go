package voxfolio

import (
	"strings"
	"testing"
)

// fixedFont measures every rune as 10 units wide and lines as 20 tall.
type fixedFont struct{}

func (fixedFont) MeasureString(s string) (float64, float64) {
	return float64(len([]rune(s))) * 10, 20
}

func (fixedFont) LineHeight() float64 { return 20 }

func TestTextBlockWraps(t *testing.T) {
	tb := NewTextBlock("the quick brown fox", fixedFont{}, 100)
	lines := tb.Lines()
	want := []string{"the quick", "brown fox"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", lines, want)
	}
	w, h := tb.Size()
	assertNear(t, "w", w, 90)
	assertNear(t, "h", h, 40)
}

func TestTextBlockLongWordOwnLine(t *testing.T) {
	tb := NewTextBlock("a supercalifragilistic b", fixedFont{}, 50)
	lines := tb.Lines()
	if len(lines) != 3 || lines[1] != "supercalifragilistic" {
		t.Errorf("lines = %q", lines)
	}
}

func TestTextBlockKeepsParagraphs(t *testing.T) {
	tb := NewTextBlock("one\n\ntwo", fixedFont{}, 0)
	lines := tb.Lines()
	if len(lines) != 3 || lines[1] != "" {
		t.Errorf("lines = %q", lines)
	}
}

func TestTextBlockRelayoutOnChange(t *testing.T) {
	tb := NewTextBlock("aaaa bbbb", fixedFont{}, 0)
	if len(tb.Lines()) != 1 {
		t.Fatal("no wrap without width")
	}
	tb.WrapWidth = 50
	if len(tb.Lines()) != 2 {
		t.Error("changing WrapWidth should re-wrap")
	}
	tb.Content = "aaaa"
	if len(tb.Lines()) != 1 {
		t.Error("changing Content should re-wrap")
	}
}

func TestTextBlockLineHeightOverride(t *testing.T) {
	tb := NewTextBlock("a\nb", fixedFont{}, 0)
	tb.LineHeight = 30
	tb.Invalidate()
	_, h := tb.Size()
	assertNear(t, "h", h, 60)
}

func TestLoadTTFFont_InvalidData(t *testing.T) {
	if _, err := LoadTTFFont([]byte("not a TTF file"), 16); err == nil {
		t.Error("expected error for invalid TTF data, got nil")
	}
}

func TestDefaultFont(t *testing.T) {
	f, err := DefaultFont(16)
	if err != nil {
		t.Fatal(err)
	}
	if f.LineHeight() <= 0 {
		t.Error("line height should be positive")
	}
	w, _ := f.MeasureString("hello")
	if w <= 0 {
		t.Error("width should be positive")
	}
	big := f.WithSize(32)
	bw, _ := big.MeasureString("hello")
	if bw <= w {
		t.Error("larger size should measure wider")
	}
}
