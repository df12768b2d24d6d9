package voxfolio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// --- Pointer state ---

type pointerState struct {
	down      bool
	blocked   bool // press began over UI claimed by the input blocker
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hit       Hit
	hitNode   *Node
	hoverNode *Node // last node the pointer was hovering over (for enter/leave)
	dragging  bool
	button    MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type wheelHandler struct {
	id uint32
	fn func(WheelContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []clickHandler
	dragStart    []dragHandler
	drag         []dragHandler
	dragEnd      []dragHandler
	wheel        []wheelHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(c clickHandler) uint32 { return c.id })
	case EventDragStart:
		h.reg.dragStart = removeHandler(h.reg.dragStart, h.id, func(d dragHandler) uint32 { return d.id })
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id, func(d dragHandler) uint32 { return d.id })
	case EventDragEnd:
		h.reg.dragEnd = removeHandler(h.reg.dragEnd, h.id, func(d dragHandler) uint32 { return d.id })
	case EventWheel:
		h.reg.wheel = removeHandler(h.reg.wheel, h.id, func(w wheelHandler) uint32 { return w.id })
	}
}

// removeHandler deletes the entry with the given id, zeroing the vacated
// slot so the backing array does not retain the closure.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Scene-level event registration ---

func (s *Scene) nextHandlerID() uint32 {
	s.handlers.nextID++
	return s.handlers.nextID
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerDown = append(s.handlers.pointerDown, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerDown}
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerUp = append(s.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerUp}
}

// OnPointerMove registers a scene-level callback for pointer move events.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerMove = append(s.handlers.pointerMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerMove}
}

// OnPointerEnter registers a scene-level callback for pointer enter events.
// Fired when the pointer moves over a new node (or from nil to a node).
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerEnter = append(s.handlers.pointerEnter, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a scene-level callback for pointer leave events.
// Fired when the pointer leaves a node (moves to a different node or to empty space).
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerLeave}
}

// OnClick registers a scene-level callback for click events. Clicks on empty
// space fire with a nil Node.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.dragStart = append(s.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragStart}
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.drag = append(s.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDrag}
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.dragEnd = append(s.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDragEnd}
}

// OnWheel registers a scene-level callback for mouse wheel events that are
// not over UI.
func (s *Scene) OnWheel(fn func(WheelContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.wheel = append(s.handlers.wheel, wheelHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventWheel}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// HoverNode returns the node currently under the pointer, or nil.
func (s *Scene) HoverNode() *Node {
	return s.pointer.hoverNode
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update to handle mouse input. Injected
// events take precedence over the real mouse for the frame they are consumed.
func (s *Scene) processInput() {
	mods := readModifiers()

	if s.processInjectedInput(mods) {
		return
	}

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	// If the pointer is already down, processPointer keeps the button
	// captured at press time.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	s.processPointer(sx, sy, pressed, button, mods)

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		s.processWheel(sx, sy, wx, wy)
	}
}

func (s *Scene) blocked(sx, sy float64) bool {
	return s.inputBlocker != nil && s.inputBlocker(sx, sy)
}

// processWheel zooms the orbit controls and fires wheel handlers unless the
// pointer is over UI.
func (s *Scene) processWheel(sx, sy, dx, dy float64) {
	if s.blocked(sx, sy) {
		return
	}
	s.controls.Zoom(dy)
	ctx := WheelContext{ScreenX: sx, ScreenY: sy, DeltaX: dx, DeltaY: dy}
	for _, h := range s.handlers.wheel {
		h.fn(ctx)
	}
}

// processPointer runs the pointer state machine for the mouse.
func (s *Scene) processPointer(sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer
	overUI := s.blocked(sx, sy)

	var hit Hit
	var target *Node
	if !overUI {
		if h, ok := s.Pick(sx, sy); ok {
			hit = h
			target = h.Node
		}
	}

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, s.handlers.pointerLeave, ps.hoverNode, Hit{Node: ps.hoverNode}, sx, sy, button, mods)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, s.handlers.pointerEnter, target, hit, sx, sy, button, mods)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button for the duration of this interaction.
		ps.down = true
		ps.blocked = overUI
		ps.button = button
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.hit = hit
		ps.hitNode = target
		ps.dragging = false
		if ps.blocked {
			return
		}
		s.firePointer(EventPointerDown, s.handlers.pointerDown, target, hit, sx, sy, ps.button, mods)

	case !pressed && ps.down:
		// Just released: use button from press start.
		wasBlocked := ps.blocked
		ps.down = false
		ps.blocked = false
		if wasBlocked {
			ps.hitNode = nil
			ps.dragging = false
			return
		}
		// Any release that did not become a drag clicks whatever is under
		// the pointer now. The camera may have moved since the press.
		if ps.dragging {
			s.fireDrag(EventDragEnd, s.handlers.dragEnd, ps, sx, sy, sx-ps.lastX, sy-ps.lastY, mods)
		} else {
			s.fireClick(target, hit, sx, sy, ps.button, mods)
		}
		s.firePointer(EventPointerUp, s.handlers.pointerUp, target, hit, sx, sy, ps.button, mods)
		ps.hitNode = nil
		ps.dragging = false

	case pressed && ps.down:
		// Held down, possibly moved.
		if ps.blocked {
			return
		}
		if sx != ps.lastX || sy != ps.lastY {
			if !ps.dragging {
				dx := sx - ps.startX
				dy := sy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
					s.fireDrag(EventDragStart, s.handlers.dragStart, ps, sx, sy, dx, dy, mods)
				}
			}
			if ps.dragging {
				dx, dy := sx-ps.lastX, sy-ps.lastY
				s.fireDrag(EventDrag, s.handlers.drag, ps, sx, sy, dx, dy, mods)
				s.dragControls(ps.button, dx, dy)
			}
		}
		ps.lastX, ps.lastY = sx, sy

	default:
		// Hover move.
		if sx != ps.lastX || sy != ps.lastY {
			s.firePointer(EventPointerMove, s.handlers.pointerMove, target, hit, sx, sy, button, mods)
			ps.lastX, ps.lastY = sx, sy
		}
	}
}

// dragControls routes drag motion to the orbit controls: the primary button
// orbits, the others pan.
func (s *Scene) dragControls(button MouseButton, dx, dy float64) {
	if button == MouseButtonLeft {
		s.controls.Rotate(dx, dy)
		return
	}
	s.controls.Pan(dx, dy)
}

// --- Event dispatch ---

func (s *Scene) firePointer(ev EventType, handlers []pointerHandler, node *Node, hit Hit, sx, sy float64, button MouseButton, mods KeyModifiers) {
	var userData any
	if node != nil {
		userData = node.UserData
	}
	ctx := PointerContext{
		Node: node, UserData: userData,
		ScreenX: sx, ScreenY: sy, Point: hit.Point,
		Button: button, Modifiers: mods,
	}
	// Scene-level handlers first.
	for _, h := range handlers {
		h.fn(ctx)
	}
	// Per-node callback.
	if node != nil {
		switch {
		case ev == EventPointerEnter && node.OnPointerEnter != nil:
			node.OnPointerEnter(ctx)
		case ev == EventPointerLeave && node.OnPointerLeave != nil:
			node.OnPointerLeave(ctx)
		}
	}
	if ev != EventPointerMove {
		s.emitInteractionEvent(ev, node, sx, sy, hit.Point, button, mods, 0, 0)
	}
}

func (s *Scene) fireClick(node *Node, hit Hit, sx, sy float64, button MouseButton, mods KeyModifiers) {
	var userData any
	if node != nil {
		userData = node.UserData
	}
	ctx := ClickContext{
		Node: node, UserData: userData,
		ScreenX: sx, ScreenY: sy, Point: hit.Point,
		Button: button, Modifiers: mods,
	}
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
	s.emitInteractionEvent(EventClick, node, sx, sy, hit.Point, button, mods, 0, 0)
}

func (s *Scene) fireDrag(ev EventType, handlers []dragHandler, ps *pointerState, sx, sy, dx, dy float64, mods KeyModifiers) {
	ctx := DragContext{
		Node: ps.hitNode, ScreenX: sx, ScreenY: sy,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: dx, DeltaY: dy,
		Button: ps.button, Modifiers: mods,
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	s.emitInteractionEvent(ev, ps.hitNode, sx, sy, ps.hit.Point, ps.button, mods, dx, dy)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, sx, sy float64, point Vec3,
	button MouseButton, mods KeyModifiers, dx, dy float64) {
	if s.store == nil {
		return
	}
	ev := InteractionEvent{
		Type:      eventType,
		ScreenX:   sx,
		ScreenY:   sy,
		Point:     point,
		Button:    button,
		Modifiers: mods,
		DeltaX:    dx,
		DeltaY:    dy,
	}
	if node != nil {
		ev.NodeID = node.ID
		ev.NodeName = node.Name
		ev.Tag = node.ResolvedTag()
	}
	s.store.EmitEvent(ev)
}
