// Package app assembles the portfolio: it generates the world, wires the
// navigation controller to the content panel and the section menu, and
// runs the whole thing as an ebiten game.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/voxfolio"
	"github.com/phanxgames/voxfolio/config"
	"github.com/phanxgames/voxfolio/content"
	"github.com/phanxgames/voxfolio/ecs"
	"github.com/phanxgames/voxfolio/nav"
	"github.com/phanxgames/voxfolio/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ErrMissingCollaborator is returned by New when something the application
// needs at startup is absent or unusable.
var ErrMissingCollaborator = errors.New("app: missing collaborator")

const (
	bodyFontSize = 16
	menuFontSize = 15
	wheelStep    = 40

	orbitDamping = 0.05
	// Keeps the camera from dipping far below the horizon.
	maxPolarAngle = 0.6 * math.Pi
)

// liveContent reads through to whichever store is current so a reload is
// visible to the navigation controller without rebuilding it.
type liveContent struct {
	store *content.Store
}

func (l *liveContent) Lookup(id string) (content.Section, bool) {
	return l.store.Lookup(id)
}

// App is the running portfolio. It implements ebiten.Game.
type App struct {
	cfg   config.Config
	scene *voxfolio.Scene
	world *world.World
	nav   *nav.Controller
	src   *liveContent

	panel   *Panel
	menu    *Menu
	loading *loadingScreen
	fps     *voxfolio.FPSWidget

	ecs    donburi.World
	tally  *ecs.Tally
	reload <-chan *content.Store
	runner *voxfolio.TestRunner

	width, height int
}

// New builds the scene and the overlays. store must be non-empty and
// every one of its sections must have a camera pose.
func New(cfg config.Config, store *content.Store) (*App, error) {
	if err := checkStore(store); err != nil {
		return nil, err
	}
	fonts, err := newFontSet(bodyFontSize)
	if err != nil {
		return nil, fmt.Errorf("%w: font: %v", ErrMissingCollaborator, err)
	}

	scene := voxfolio.NewScene(cfg.Window.Width, cfg.Window.Height)
	scene.SetDebugMode(cfg.Debug)
	if cfg.ScreenshotDir != "" {
		scene.ScreenshotDir = cfg.ScreenshotDir
	}

	a := &App{
		cfg:    cfg,
		scene:  scene,
		src:    &liveContent{store: store},
		panel:  newPanel(fonts),
		menu:   newMenu(fonts.body.WithSize(menuFontSize), store.Sections()),
		ecs:    donburi.NewWorld(),
		tally:  &ecs.Tally{},
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	a.loading = newLoadingScreen(fonts.title, cfg.LoadingDelayMS)
	if cfg.Debug {
		a.fps = voxfolio.NewFPSWidget()
	}

	a.world = world.Generate(scene, world.Options{
		Seed:      cfg.World.Seed,
		Fish:      cfg.World.Fish,
		AppleTree: cfg.World.AppleTree,
	})
	a.nav = nav.New(scene, a.src, a.panel)
	controls := scene.Controls()
	controls.DampingFactor = orbitDamping
	controls.MaxPolarAngle = maxPolarAngle

	scene.SetEntityStore(ecs.NewDonburiStore(a.ecs))
	a.nav.SetSink(ecs.NewNavSink(a.ecs))
	a.tally.Subscribe(a.ecs)

	scene.SetInputBlocker(a.overUI)
	a.Layout(a.width, a.height)

	slog.Info("portfolio ready", "component", "app",
		"sections", store.Len(), "objects", len(scene.Objects()), "seed", cfg.World.Seed)
	return a, nil
}

// checkStore rejects stores the navigation controller cannot serve.
func checkStore(store *content.Store) error {
	if store == nil || store.Len() == 0 {
		return fmt.Errorf("%w: no content", ErrMissingCollaborator)
	}
	for _, id := range store.IDs() {
		if _, ok := nav.LookupSection(id); !ok {
			return fmt.Errorf("%w: no camera pose for section %q", ErrMissingCollaborator, id)
		}
	}
	return nil
}

// Scene returns the 3D scene.
func (a *App) Scene() *voxfolio.Scene { return a.scene }

// Nav returns the navigation controller.
func (a *App) Nav() *nav.Controller { return a.nav }

// Panel returns the content panel.
func (a *App) Panel() *Panel { return a.panel }

// Menu returns the section menu.
func (a *App) Menu() *Menu { return a.menu }

// World returns the generated map.
func (a *App) World() *world.World { return a.world }

// Tally returns the interaction counts gathered so far.
func (a *App) Tally() *ecs.Tally { return a.tally }

// Loading reports whether the loading screen still covers the scene.
func (a *App) Loading() bool { return a.loading.visible }

// AttachScript runs runner against the scene. Besides the built-in
// actions, a "menu" step activates the section named by its label. Update
// returns ebiten.Termination once the script is done.
func (a *App) AttachScript(runner *voxfolio.TestRunner) {
	runner.Handle("menu", a.menuStep)
	a.runner = runner
	a.scene.SetTestRunner(runner)
}

func (a *App) menuStep(st voxfolio.TestStep) {
	if !a.nav.Activate(st.Label) {
		slog.Warn("script menu step", "component", "app", "section", st.Label)
	}
}

// Watch reloads content from path whenever the file changes. Reloads are
// applied on the next Update.
func (a *App) Watch(ctx context.Context, path string) error {
	ch, err := content.Watch(ctx, path)
	if err != nil {
		return err
	}
	a.reload = ch
	return nil
}

// SetContent swaps in a new store. A store with sections the camera cannot
// visit is rejected and the current one kept.
func (a *App) SetContent(store *content.Store) error {
	if err := checkStore(store); err != nil {
		return err
	}
	a.src.store = store
	a.menu.rebuild(store.Sections())
	if sec, ok := a.panel.Section(); ok {
		if fresh, ok := store.Lookup(sec.ID); ok {
			a.panel.Show(fresh)
		} else {
			a.nav.Reset()
		}
	}
	slog.Info("content reloaded", "component", "app", "sections", store.Len())
	return nil
}

// overUI claims points covered by the loading screen, the menu or the
// panel so presses there never reach the scene.
func (a *App) overUI(x, y float64) bool {
	return a.loading.visible || a.menu.Contains(x, y) || a.panel.Contains(x, y)
}

func (a *App) drainReload() {
	for {
		select {
		case store, ok := <-a.reload:
			if !ok {
				a.reload = nil
				return
			}
			if err := a.SetContent(store); err != nil {
				slog.Warn("content reload rejected", "component", "app", "err", err)
			}
		default:
			return
		}
	}
}

func (a *App) handleUI() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	a.menu.Hover(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := a.menu.ItemAt(x, y); ok {
			a.nav.Activate(id)
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 && a.panel.Contains(x, y) {
		a.panel.Scroll(-wy * wheelStep)
	}
}

// processEvents delivers queued interaction and navigation events to their
// subscribers.
func (a *App) processEvents() {
	events.ProcessAllEvents(a.ecs)
}

func (a *App) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if nav.Clickable(a.scene.HoverNode()) {
		shape = ebiten.CursorShapePointer
	} else if mx, my := ebiten.CursorPosition(); a.menu.Contains(float64(mx), float64(my)) {
		shape = ebiten.CursorShapePointer
	}
	ebiten.SetCursorShape(shape)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.drainReload()
	if a.runner == nil {
		a.handleUI()
	}
	if err := a.scene.Update(); err != nil {
		return err
	}
	dt := 1.0 / float64(ebiten.TPS())
	a.nav.Update(dt)

	now := a.scene.Elapsed()
	a.world.Water.Shimmer(now)
	a.loading.update(now)
	if a.fps != nil {
		a.fps.Update(a.scene, dt)
	}
	a.updateCursor()
	a.processEvents()

	if a.runner != nil && a.runner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
	a.panel.Draw(screen)
	a.menu.Draw(screen)
	a.loading.draw(screen)
	if a.fps != nil {
		a.fps.Draw(screen, 0, float64(a.height-48))
	}
}

// Layout implements ebiten.Game. The scene and overlays follow the window
// size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height || a.panel.rect.Width == 0 {
		a.width, a.height = outsideWidth, outsideHeight
		a.scene.Resize(outsideWidth, outsideHeight)
		a.panel.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed or a script finishes.
func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Window.Title)
	ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(a)
	a.nav.Close()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
