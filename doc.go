// Package voxfolio is a small retained-mode 3D voxel scene engine for
// [Ebitengine], built to host an interactive portfolio diorama.
//
// It provides the node tree, affine transform hierarchy, a perspective
// camera with orbit controls, painter-sorted face batching, ray picking,
// pointer and wheel input, frame-rate independent animation rules, tweens
// (via [gween]), overlay text, screenshots and scripted input for automated
// runs.
//
// # Quick start
//
// Implement [ebiten.Game] and call [Scene.Update] and [Scene.Draw]:
//
//	type Game struct{ scene *voxfolio.Scene }
//
//	func (g *Game) Update() error        { return g.scene.Update() }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) {
//		g.scene.Resize(w, h)
//		return w, h
//	}
//
// # Scene graph
//
// Every visual element is a [Node]. Nodes form a tree rooted at
// [Scene.Root]. Children inherit their parent's transform and alpha.
// Boxes are unit cubes centered on their position and sized by Scale:
//
//	block := voxfolio.NewBox("grass", voxfolio.RGB(0x7cba3d))
//	block.SetPosition(3, 0, -2)
//	group := voxfolio.NewGroup("tree")
//	group.AddChild(block)
//	scene.Add(group)
//
// [Scene.Add] also tracks the node in the object registry that [Scene.Raycast]
// and [Scene.Pick] test against.
//
// # Camera and input
//
// The [Camera] looks from Position toward Target. [OrbitControls] rotate,
// pan and zoom it from left drag, right drag and the wheel. Every change is
// reported to [OrbitControls.OnChange] listeners along with its
// [ChangeSource], so user motion can be told apart from programmatic moves.
//
// Pointer presses that move less than the drag dead zone become clicks.
// Register scene-wide callbacks with [Scene.OnClick] (a nil node means the
// click missed every object) or per node with [Node.OnClick].
//
// # Animation
//
// [AnimationRegistry] holds keyed bob and spin rules that are evaluated
// against the scene clock each tick. [TweenPosition] and friends wrap gween
// for one-shot transitions.
//
// # Debug mode
//
// [Scene.SetDebugMode] enables disposed-node panics, tree depth warnings and
// per-frame timing logs through log/slog.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package voxfolio
