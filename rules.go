package voxfolio

import (
	"math"
	"strconv"
)

// RuleKind tags an animation rule.
type RuleKind uint8

const (
	RuleBob  RuleKind = iota // vertical sine oscillation around a baseline
	RuleSpin                 // constant yaw increment per tick
)

// String returns the rule kind's name.
func (k RuleKind) String() string {
	switch k {
	case RuleBob:
		return "bob"
	case RuleSpin:
		return "spin"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so rule dumps read by name.
func (k RuleKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Default rule parameters.
const (
	DefaultBobAmplitude = 0.5
	DefaultBobFrequency = 0.002 // radians per millisecond
	DefaultSpinSpeed    = 0.01  // radians per tick
	HoverScale          = 1.1
)

// Rule is a per-frame transform mutation applied by an AnimationRegistry.
// Bob rules set Position.Y = Baseline + Amplitude*sin(t*Frequency) where t
// is the tick time in milliseconds. Spin rules add Speed to Rotation.Y on
// every tick, so their rate follows the frame rate.
type Rule struct {
	Kind      RuleKind `json:"kind"`
	Node      *Node    `json:"-"`
	NodeName  string   `json:"node"`
	Amplitude float64  `json:"amplitude,omitempty"`
	Frequency float64  `json:"frequency,omitempty"`
	Baseline  float64  `json:"baseline,omitempty"`
	Speed     float64  `json:"speed,omitempty"`
}

// AnimationRegistry holds tagged animation rules keyed by node identity and
// applies them in insertion order on every Tick. It also tracks hover
// highlight state for nodes registered with AddHover.
type AnimationRegistry struct {
	order  []string
	rules  map[string]*Rule
	hovers map[*Node]Vec3 // original scale per hover-enabled node
	lit    *Node
}

// NewAnimationRegistry creates an empty registry.
func NewAnimationRegistry() *AnimationRegistry {
	return &AnimationRegistry{
		rules:  make(map[string]*Rule),
		hovers: make(map[*Node]Vec3),
	}
}

// RuleKey returns the registry key used for a rule of the given kind on n.
// Bob rules use the node ID; spin rules append "_rotation" so one node can
// carry both.
func RuleKey(n *Node, kind RuleKind) string {
	id := strconv.FormatUint(uint64(n.ID), 10)
	if kind == RuleSpin {
		return id + "_rotation"
	}
	return id
}

// Register stores rule under its key, replacing any existing rule with the
// same key in place. Returns the key.
func (r *AnimationRegistry) Register(rule Rule) string {
	key := RuleKey(rule.Node, rule.Kind)
	if rule.NodeName == "" {
		rule.NodeName = rule.Node.Name
	}
	if _, ok := r.rules[key]; !ok {
		r.order = append(r.order, key)
	}
	stored := rule
	r.rules[key] = &stored
	return key
}

// Bob registers a vertical oscillation on n around its current Y. Zero
// amplitude or frequency selects the defaults.
func (r *AnimationRegistry) Bob(n *Node, amplitude, frequency float64) string {
	if amplitude == 0 {
		amplitude = DefaultBobAmplitude
	}
	if frequency == 0 {
		frequency = DefaultBobFrequency
	}
	return r.Register(Rule{
		Kind:      RuleBob,
		Node:      n,
		Amplitude: amplitude,
		Frequency: frequency,
		Baseline:  n.Position.Y,
	})
}

// Spin registers a constant yaw rotation on n. Zero speed selects the default.
func (r *AnimationRegistry) Spin(n *Node, speed float64) string {
	if speed == 0 {
		speed = DefaultSpinSpeed
	}
	return r.Register(Rule{Kind: RuleSpin, Node: n, Speed: speed})
}

// Remove deletes the rule stored under key. No-op for unknown keys.
func (r *AnimationRegistry) Remove(key string) {
	if _, ok := r.rules[key]; !ok {
		return
	}
	delete(r.rules, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered rules.
func (r *AnimationRegistry) Len() int {
	return len(r.order)
}

// Rule returns a copy of the rule stored under key.
func (r *AnimationRegistry) Rule(key string) (Rule, bool) {
	rule, ok := r.rules[key]
	if !ok {
		return Rule{}, false
	}
	return *rule, true
}

// Rules returns copies of all rules in insertion order.
func (r *AnimationRegistry) Rules() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, *r.rules[k])
	}
	return out
}

// Tick applies every rule once, in insertion order, for the given time in
// milliseconds. Rules on disposed nodes are skipped.
func (r *AnimationRegistry) Tick(nowMillis float64) {
	for _, k := range r.order {
		rule := r.rules[k]
		n := rule.Node
		if n == nil || n.IsDisposed() {
			continue
		}
		switch rule.Kind {
		case RuleBob:
			n.Position.Y = rule.Baseline + math.Sin(nowMillis*rule.Frequency)*rule.Amplitude
		case RuleSpin:
			n.Rotation.Y += rule.Speed
		}
		n.MarkDirty()
	}
}

// --- Hover highlight ---

// AddHover enables hover highlighting on n and records its current scale
// as the value to restore.
func (r *AnimationRegistry) AddHover(n *Node) {
	r.hovers[n] = n.Scale
}

// hoverTarget returns the nearest hover-enabled node at or above n.
func (r *AnimationRegistry) hoverTarget(n *Node) *Node {
	for p := n; p != nil; p = p.Parent {
		if _, ok := r.hovers[p]; ok {
			return p
		}
	}
	return nil
}

// Highlight scales the hover-enabled node owning n by HoverScale. Any other
// highlighted node is restored first. Returns false if n has no
// hover-enabled ancestor.
func (r *AnimationRegistry) Highlight(n *Node) bool {
	t := r.hoverTarget(n)
	if t == nil {
		return false
	}
	if r.lit != nil && r.lit != t {
		r.Unhighlight(r.lit)
	}
	orig := r.hovers[t]
	t.Scale = orig.Mul(HoverScale)
	t.MarkDirty()
	r.lit = t
	return true
}

// Unhighlight restores the original scale of the hover-enabled node owning n.
func (r *AnimationRegistry) Unhighlight(n *Node) {
	t := r.hoverTarget(n)
	if t == nil {
		return
	}
	t.Scale = r.hovers[t]
	t.MarkDirty()
	if r.lit == t {
		r.lit = nil
	}
}

// Highlighted returns the node currently scaled up, or nil.
func (r *AnimationRegistry) Highlighted() *Node {
	return r.lit
}
