package voxfolio

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"
)

func TestRuleKeys(t *testing.T) {
	n := NewBox("cat", ColorWhite)
	id := strconv.FormatUint(uint64(n.ID), 10)
	if got := RuleKey(n, RuleBob); got != id {
		t.Errorf("bob key = %q, want %q", got, id)
	}
	if got := RuleKey(n, RuleSpin); got != id+"_rotation" {
		t.Errorf("spin key = %q, want %q", got, id+"_rotation")
	}
}

func TestBobDefaultsAndBaseline(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("cloud", ColorWhite)
	n.SetPosition(0, 15, 0)
	key := r.Bob(n, 0, 0)

	rule, ok := r.Rule(key)
	if !ok {
		t.Fatal("rule not stored")
	}
	if rule.Amplitude != DefaultBobAmplitude || rule.Frequency != DefaultBobFrequency {
		t.Errorf("defaults = %v, %v", rule.Amplitude, rule.Frequency)
	}
	if rule.Baseline != 15 {
		t.Errorf("baseline = %v, want 15", rule.Baseline)
	}
	if rule.NodeName != "cloud" {
		t.Errorf("node name = %q", rule.NodeName)
	}
}

func TestBobTick(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("b", ColorWhite)
	n.SetPosition(0, 2, 0)
	r.Bob(n, 0.5, 0.002)

	now := math.Pi / 2 / 0.002 // sin = 1
	r.Tick(now)
	assertNear(t, "peak", n.Position.Y, 2.5)

	r.Tick(0)
	assertNear(t, "rest", n.Position.Y, 2)
}

func TestBobTickIsStateless(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("b", ColorWhite)
	r.Bob(n, 1, 0.001)
	r.Tick(1234)
	y1 := n.Position.Y
	r.Tick(99)
	r.Tick(1234)
	assertNear(t, "same time same height", n.Position.Y, y1)
}

func TestSpinAccumulatesPerTick(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("chest", ColorWhite)
	r.Spin(n, 0)
	for range 10 {
		r.Tick(0)
	}
	assertNear(t, "rotation", n.Rotation.Y, 10*DefaultSpinSpeed)
}

func TestBobAndSpinCoexist(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("fish", ColorWhite)
	r.Bob(n, 0, 0)
	r.Spin(n, 0)
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
}

func TestRegisterReplacesInPlace(t *testing.T) {
	r := NewAnimationRegistry()
	a := NewBox("a", ColorWhite)
	b := NewBox("b", ColorWhite)
	r.Bob(a, 1, 0)
	r.Bob(b, 1, 0)
	r.Bob(a, 2, 0)

	rules := r.Rules()
	if len(rules) != 2 {
		t.Fatalf("rules = %d, want 2", len(rules))
	}
	if rules[0].Node != a || rules[0].Amplitude != 2 {
		t.Errorf("first rule = %+v, want a with amplitude 2", rules[0])
	}
}

func TestRemoveRule(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("b", ColorWhite)
	key := r.Spin(n, 0)
	r.Remove(key)
	r.Remove("missing")
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
	r.Tick(0)
	if n.Rotation.Y != 0 {
		t.Error("removed rule should not run")
	}
}

func TestTickSkipsDisposed(t *testing.T) {
	r := NewAnimationRegistry()
	n := NewBox("b", ColorWhite)
	r.Spin(n, 0)
	n.Dispose()
	r.Tick(0)
	if n.Rotation.Y != 0 {
		t.Error("disposed node should not be animated")
	}
}

func TestRuleJSONUsesKindName(t *testing.T) {
	r := NewAnimationRegistry()
	r.Spin(NewBox("chest", ColorWhite), 0.02)
	data, err := json.Marshal(r.Rules())
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"kind":"spin","node":"chest","speed":0.02}]`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

// --- Hover ---

func TestHighlightScalesOwner(t *testing.T) {
	r := NewAnimationRegistry()
	house := NewGroup("house")
	wall := NewBox("wall", ColorWhite)
	house.AddChild(wall)
	r.AddHover(house)

	if !r.Highlight(wall) {
		t.Fatal("highlight should find hover owner")
	}
	assertVec(t, "scale", house.Scale, Vec3{HoverScale, HoverScale, HoverScale})
	if r.Highlighted() != house {
		t.Error("house should be highlighted")
	}

	r.Unhighlight(wall)
	assertVec(t, "restored", house.Scale, Vec3{1, 1, 1})
	if r.Highlighted() != nil {
		t.Error("nothing should be highlighted")
	}
}

func TestHighlightSwitchRestoresPrevious(t *testing.T) {
	r := NewAnimationRegistry()
	a, b := NewGroup("a"), NewGroup("b")
	b.SetScale(2, 2, 2)
	r.AddHover(a)
	r.AddHover(b)

	r.Highlight(a)
	r.Highlight(b)
	assertVec(t, "a", a.Scale, Vec3{1, 1, 1})
	assertVec(t, "b", b.Scale, Vec3{2 * HoverScale, 2 * HoverScale, 2 * HoverScale})
}

func TestHighlightRepeatedDoesNotCompound(t *testing.T) {
	r := NewAnimationRegistry()
	a := NewGroup("a")
	r.AddHover(a)
	r.Highlight(a)
	r.Highlight(a)
	assertVec(t, "scale", a.Scale, Vec3{HoverScale, HoverScale, HoverScale})
}

func TestHighlightWithoutOwner(t *testing.T) {
	r := NewAnimationRegistry()
	if r.Highlight(NewBox("grass", ColorWhite)) {
		t.Error("terrain should not highlight")
	}
}
