package world

import (
	"math"
	"testing"

	"github.com/phanxgames/voxfolio"
)

func generate(t *testing.T, opts Options) (*voxfolio.Scene, *World) {
	t.Helper()
	scene := voxfolio.NewScene(800, 600)
	return scene, Generate(scene, opts)
}

func countTag(scene *voxfolio.Scene, tag string) int {
	n := 0
	for _, o := range scene.Objects() {
		if o.Tag == tag {
			n++
		}
	}
	return n
}

func TestGenerateDeterministic(t *testing.T) {
	s1, w1 := generate(t, DefaultOptions())
	s2, w2 := generate(t, DefaultOptions())

	o1, o2 := s1.Objects(), s2.Objects()
	if len(o1) != len(o2) {
		t.Fatalf("object count = %d and %d, want equal", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i].Position != o2[i].Position || o1[i].Tag != o2[i].Tag {
			t.Fatalf("object %d = %s at %v, want %s at %v",
				i, o2[i].Tag, o2[i].Position, o1[i].Tag, o1[i].Position)
		}
	}
	for i := range w1.Fish {
		if w1.Fish[i].Position != w2.Fish[i].Position {
			t.Errorf("fish %d at %v and %v, want equal", i, w1.Fish[i].Position, w2.Fish[i].Position)
		}
	}
}

func TestGenerateSeedChangesLayout(t *testing.T) {
	_, w1 := generate(t, Options{Seed: 1, Fish: 4})
	_, w2 := generate(t, Options{Seed: 2, Fish: 4})
	same := true
	for i := range w1.Fish {
		if w1.Fish[i].Position != w2.Fish[i].Position {
			same = false
		}
	}
	if same {
		t.Error("different seeds placed every fish in the same spot")
	}
}

func TestEveryObjectTagged(t *testing.T) {
	scene, _ := generate(t, DefaultOptions())
	for _, o := range scene.Objects() {
		if o.Tag == "" {
			t.Fatalf("object %q has no tag", o.Name)
		}
	}
}

func TestStructuresPresent(t *testing.T) {
	scene, w := generate(t, DefaultOptions())
	for _, tag := range []string{TagTerrain, TagBridge, TagHouse, TagGarden, TagMailbox, TagCherryTree, TagBush, TagRabbit, TagCloud, TagChest} {
		if countTag(scene, tag) == 0 {
			t.Errorf("no objects tagged %q", tag)
		}
	}
	if got := countTag(scene, TagCloud); got != len(cloudPositions) {
		t.Errorf("clouds = %d, want %d", got, len(cloudPositions))
	}
	if _, ok := w.Landmark(TagAppleTree); ok {
		t.Error("apple tree placed without the option")
	}
	if p, ok := w.Landmark(TagMailbox); !ok || p != (voxfolio.Vec3{X: -10, Z: 9}) {
		t.Errorf("mailbox landmark = %v, %v, want (-10, 0, 9)", p, ok)
	}
}

func TestAppleTreeOption(t *testing.T) {
	opts := DefaultOptions()
	opts.AppleTree = true
	scene, w := generate(t, opts)
	if countTag(scene, TagCherryTree) != 0 {
		t.Error("cherry tree placed with the apple tree option")
	}
	if countTag(scene, TagAppleTree) == 0 {
		t.Error("apple tree missing")
	}
	p, ok := w.Landmark(TagAppleTree)
	if !ok || p.X != BridgeX {
		t.Errorf("apple tree landmark = %v, %v, want x = %v", p, ok, BridgeX)
	}
}

func TestFishUntracked(t *testing.T) {
	scene, w := generate(t, DefaultOptions())
	if len(w.Fish) != DefaultOptions().Fish {
		t.Fatalf("fish = %d, want %d", len(w.Fish), DefaultOptions().Fish)
	}
	if countTag(scene, TagFish) != 0 {
		t.Error("fish should not be in the object registry")
	}
	for _, f := range w.Fish {
		if f.Parent != scene.Root() {
			t.Error("fish should hang off the root")
		}
		if f.Interactable {
			t.Error("fish should not be interactable")
		}
		if math.Abs(f.Position.Z-RiverZ(f.Position.X)) > 1 {
			t.Errorf("fish at %v strays from the river centerline", f.Position)
		}
	}
}

func TestAnimationRulesRegistered(t *testing.T) {
	scene, w := generate(t, DefaultOptions())
	reg := scene.Animations()
	for _, f := range w.Fish {
		if _, ok := reg.Rule(voxfolio.RuleKey(f, voxfolio.RuleBob)); !ok {
			t.Error("fish missing bob rule")
		}
		if _, ok := reg.Rule(voxfolio.RuleKey(f, voxfolio.RuleSpin)); !ok {
			t.Error("fish missing spin rule")
		}
	}
	for _, c := range w.Clouds {
		r, ok := reg.Rule(voxfolio.RuleKey(c, voxfolio.RuleBob))
		if !ok {
			t.Fatal("cloud missing bob rule")
		}
		if r.Amplitude != cloudBobAmplitude || r.Frequency != cloudBobFrequency {
			t.Errorf("cloud bob = (%v, %v), want (%v, %v)",
				r.Amplitude, r.Frequency, cloudBobAmplitude, cloudBobFrequency)
		}
	}
	if want := 2*len(w.Fish) + len(w.Clouds); reg.Len() != want {
		t.Errorf("rules = %d, want %d", reg.Len(), want)
	}
}

func TestHoverHighlight(t *testing.T) {
	scene, w := generate(t, DefaultOptions())
	if len(w.Hoverable) != 3 {
		t.Fatalf("hoverable = %d, want 3", len(w.Hoverable))
	}
	reg := scene.Animations()
	var rabbit *voxfolio.Node
	for _, n := range w.Hoverable {
		if n.Tag == TagRabbit {
			rabbit = n
		}
	}
	if rabbit == nil {
		t.Fatal("rabbit is not hoverable")
	}
	if !reg.Highlight(rabbit.ChildAt(0)) {
		t.Fatal("Highlight(rabbit part) = false, want true")
	}
	if rabbit.Scale.X != voxfolio.HoverScale {
		t.Errorf("rabbit scale = %v, want %v", rabbit.Scale.X, voxfolio.HoverScale)
	}
	reg.Unhighlight(rabbit)
	if rabbit.Scale.X != 1 {
		t.Errorf("rabbit scale after leave = %v, want 1", rabbit.Scale.X)
	}
	if reg.Highlight(w.Terrain.block(0, 0, 0)) {
		t.Error("terrain should not highlight")
	}
}

func TestRaycastHitsRabbit(t *testing.T) {
	scene, _ := generate(t, DefaultOptions())
	hits := scene.Raycast(voxfolio.Ray{
		Origin: voxfolio.Vec3{X: HillX, Y: 12, Z: HillZ},
		Dir:    voxfolio.Vec3{Y: -1},
	})
	if len(hits) == 0 {
		t.Fatal("no hits over the hill")
	}
	if got := hits[0].Node.ResolvedTag(); got != TagRabbit {
		t.Errorf("first hit tag = %q, want %q", got, TagRabbit)
	}
}

func TestWaterNotHit(t *testing.T) {
	scene, w := generate(t, DefaultOptions())
	if w.Water.Node.Parent != scene.Root() {
		t.Error("water should hang off the root")
	}
	x := 0.0
	hits := scene.Raycast(voxfolio.Ray{
		Origin: voxfolio.Vec3{X: x, Y: 5, Z: RiverZ(x)},
		Dir:    voxfolio.Vec3{Y: -1},
	})
	for _, h := range hits {
		if h.Node.ResolvedTag() == TagWater {
			t.Fatal("ray hit the water sheet")
		}
	}
}

func TestWaterOpacity(t *testing.T) {
	for ms := 0.0; ms < 10000; ms += 137 {
		a := Opacity(ms)
		if a < 0.5-1e-9 || a > 0.7+1e-9 {
			t.Fatalf("Opacity(%v) = %v, want within [0.5, 0.7]", ms, a)
		}
	}
	if got := Opacity(0); got != 0.6 {
		t.Errorf("Opacity(0) = %v, want 0.6", got)
	}
	_, w := generate(t, DefaultOptions())
	w.Water.Shimmer(math.Pi / 2 * 1000)
	if math.Abs(w.Water.Node.Alpha-0.7) > 1e-9 {
		t.Errorf("alpha = %v, want 0.7", w.Water.Node.Alpha)
	}
}

func TestAtmosphere(t *testing.T) {
	scene, _ := generate(t, DefaultOptions())
	if scene.ClearColor != SkyColor {
		t.Errorf("ClearColor = %v, want %v", scene.ClearColor, SkyColor)
	}
	if !scene.Fog.Enabled || scene.Fog.Near != 20 || scene.Fog.Far != 50 {
		t.Errorf("Fog = %+v, want enabled 20..50", scene.Fog)
	}
	if scene.Light.Ambient != 0.8 || scene.Light.Sun != 0.6 {
		t.Errorf("Light = %+v, want ambient 0.8 sun 0.6", scene.Light)
	}
}
