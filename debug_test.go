package voxfolio

import (
	"fmt"
	"strings"
	"testing"
)

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewGroup("parent")
	s.Root().AddChild(parent)

	child := NewBox("child", ColorWhite)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_OffAllowsDisposed(t *testing.T) {
	s := NewScene(100, 100)
	s.SetDebugMode(false)

	child := NewBox("child", ColorWhite)
	child.Dispose()
	s.Root().AddChild(child)
}

func TestCountDrawCalls(t *testing.T) {
	tests := []struct {
		faces, want int
	}{
		{0, 0},
		{1, 1},
		{maxBatchFaces, 1},
		{maxBatchFaces + 1, 2},
		{3 * maxBatchFaces, 3},
	}
	for _, tt := range tests {
		if got := countDrawCalls(tt.faces); got != tt.want {
			t.Errorf("countDrawCalls(%d) = %d, want %d", tt.faces, got, tt.want)
		}
	}
}
