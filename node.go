package voxfolio

// --- Callback contexts ---

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	UserData  any
	ScreenX   float64
	ScreenY   float64
	Point     Vec3 // world-space hit point; zero when Node is nil
	Button    MouseButton
	Modifiers KeyModifiers
}

// ClickContext carries click event data. Node is nil for clicks that hit
// nothing in the scene.
type ClickContext struct {
	Node      *Node
	UserData  any
	ScreenX   float64
	ScreenY   float64
	Point     Vec3
	Button    MouseButton
	Modifiers KeyModifiers
}

// DragContext carries drag event data in screen pixels.
type DragContext struct {
	Node      *Node
	ScreenX   float64
	ScreenY   float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// WheelContext carries mouse wheel data.
type WheelContext struct {
	ScreenX, ScreenY float64
	DeltaX, DeltaY   float64
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, voxfolio is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// groups, boxes and planes to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType
	// Tag names the structure that created the node ("house", "mailbox").
	// Children without a tag inherit their nearest tagged ancestor's.
	Tag string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position Vec3
	Rotation Vec3 // Euler angles in radians, applied X then Y then Z
	Scale    Vec3

	// Computed, updated during traversal
	worldTransform Affine
	worldAlpha     float64
	transformDirty bool

	// Appearance
	Color Color
	// FaceColors overrides Color per box face when non-nil.
	FaceColors *[6]Color
	// HiddenFaces is a bitmask of faces (1 << Face) that are never drawn.
	HiddenFaces uint8
	// Unlit nodes skip directional shading.
	Unlit bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Metadata
	UserData any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnClick        func(ClickContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = Vec3{1, 1, 1}
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Interactable = true
	n.transformDirty = true
	n.worldTransform = identityAffine
	n.worldAlpha = 1
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewBox creates a unit cube node of the given color. Scale it to size it.
func NewBox(name string, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewPlane creates a unit horizontal quad of the given color.
func NewPlane(name string, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypePlane}
	nodeDefaults(n)
	n.Color = c
	return n
}

// FaceColor returns the color used for face f.
func (n *Node) FaceColor(f Face) Color {
	if n.FaceColors != nil {
		return n.FaceColors[f]
	}
	return n.Color
}

// HideFace marks face f as never drawn.
func (n *Node) HideFace(f Face) {
	n.HiddenFaces |= 1 << f
}

// ResolvedTag returns the node's Tag or that of its nearest tagged ancestor.
func (n *Node) ResolvedTag() string {
	for p := n; p != nil; p = p.Parent {
		if p.Tag != "" {
			return p.Tag
		}
	}
	return ""
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("voxfolio: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("voxfolio: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("voxfolio: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.FaceColors = nil
	n.UserData = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
