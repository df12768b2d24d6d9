package voxfolio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	NodeID    uint32
	NodeName  string
	Tag       string
	ScreenX   float64
	ScreenY   float64
	Point     Vec3
	Button    MouseButton
	Modifiers KeyModifiers
	// Drag fields (valid for EventDragStart, EventDrag, EventDragEnd)
	DeltaX float64
	DeltaY float64
}

// Fog blends distant faces toward Color linearly between Near and Far.
type Fog struct {
	Enabled   bool
	Color     Color
	Near, Far float64
}

// Lighting is an ambient term plus one directional sun.
type Lighting struct {
	Ambient float64
	Sun     float64
	// SunDir points from the scene toward the sun.
	SunDir Vec3
}

const defaultFaceCap = 16384

// Scene is the top-level object that owns the node tree, the camera and its
// orbit controls, the object registry, animation rules, input state, and
// render buffers.
type Scene struct {
	root     *Node
	camera   *Camera
	controls *OrbitControls
	anims    *AnimationRegistry
	objects  []*Node
	store    EntityStore
	debug    bool

	// ClearColor fills the screen before the scene is drawn.
	ClearColor Color
	Fog        Fog
	Light      Lighting

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	elapsedMS  float64
	updateFunc func() error
	lastStats  debugStats

	// Render state
	faces      []faceCommand
	sortBuf    []faceCommand
	batchVerts []ebiten.Vertex
	batchInds  []uint32

	// Input state
	handlers        handlerRegistry
	pointer         pointerState
	hitBuf          []Hit
	dragDeadZone    float64
	inputBlocker    func(x, y float64) bool
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root group, a camera
// covering a w x h viewport, and orbit controls bound to that camera.
func NewScene(w, h int) *Scene {
	root := NewGroup("root")
	cam := newCamera(Rect{Width: float64(w), Height: float64(h)})
	return &Scene{
		root:          root,
		camera:        cam,
		controls:      NewOrbitControls(cam),
		anims:         NewAnimationRegistry(),
		faces:         make([]faceCommand, 0, defaultFaceCap),
		sortBuf:       make([]faceCommand, 0, defaultFaceCap),
		dragDeadZone:  defaultDragDeadZone,
		ClearColor:    Color{0, 0, 0, 1},
		Light:         Lighting{Ambient: 1},
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root group node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Controls returns the orbit controls driving the camera.
func (s *Scene) Controls() *OrbitControls {
	return s.controls
}

// Animations returns the scene's animation rule registry.
func (s *Scene) Animations() *AnimationRegistry {
	return s.anims
}

// Add appends n to the root and tracks it in the object registry.
func (s *Scene) Add(n *Node) {
	s.root.AddChild(n)
	s.Track(n)
}

// Track appends n to the object registry used for ray hit-testing. The
// registry is append-only and keeps insertion order.
func (s *Scene) Track(n *Node) {
	s.objects = append(s.objects, n)
}

// Objects returns the object registry. The returned slice MUST NOT be mutated.
func (s *Scene) Objects() []*Node {
	return s.objects
}

// Elapsed returns the scene clock in milliseconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsedMS
}

// SetUpdateFunc registers fn to run at the end of every Update. A non-nil
// error is returned from Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetInputBlocker registers fn to claim screen points for UI drawn over the
// scene. Presses on claimed points never reach the scene.
func (s *Scene) SetInputBlocker(fn func(x, y float64) bool) {
	s.inputBlocker = fn
}

// Resize keeps the camera projection in sync with a new window size.
func (s *Scene) Resize(w, h int) {
	s.camera.Resize(w, h)
}

// refreshTransforms recomputes dirty world transforms.
func (s *Scene) refreshTransforms() {
	updateWorldTransform(s.root, identityAffine, 1.0, false)
}

// Update advances the scene clock, runs any attached test script, processes
// input, applies orbit motion and animation rules, then calls the update
// func.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.elapsedMS += dt * 1000

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	s.refreshTransforms()
	s.processInput()
	s.controls.Update()
	s.anims.Tick(s.elapsedMS)

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw clears the screen, renders the scene from the camera, and captures
// any queued screenshots.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.refreshTransforms()
	s.faces = s.faces[:0]
	stats.culledCount = s.collectFaces(s.root)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()
	stats.faceCount = len(s.faces)

	if s.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	s.submitFaces(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.drawCallCount = countDrawCalls(len(s.faces))
		s.debugLog(stats)
	}
	s.lastStats = stats

	s.flushScreenshots(screen)
}

// FaceCount returns the number of faces submitted by the last Draw.
func (s *Scene) FaceCount() int {
	return s.lastStats.faceCount
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame timing stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
