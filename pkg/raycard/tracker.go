package raycard

import "sync"

// Element is a measurable layout box. BoundingRect is called on every pointer
// sample, so implementations must report the current layout.
type Element interface {
	BoundingRect() Rect
}

// Subscription releases an event handler. Unsubscribe must be idempotent.
type Subscription interface {
	Unsubscribe()
}

// EventSource delivers pointer notifications from a host environment.
type EventSource interface {
	// SubscribePointerMove registers fn for every pointer move on the surface.
	SubscribePointerMove(fn func(PointerEvent)) Subscription
	// SubscribePointerLeave registers fn for the pointer leaving el.
	SubscribePointerLeave(el Element, fn func()) Subscription
}

// Box is an Element whose rectangle is assigned by its owner.
type Box struct {
	mu   sync.RWMutex
	rect Rect
}

// SetRect records the current layout of the box.
func (b *Box) SetRect(r Rect) {
	b.mu.Lock()
	b.rect = r
	b.mu.Unlock()
}

// BoundingRect implements Element.
func (b *Box) BoundingRect() Rect {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.rect
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithElement measures el instead of a tracker-owned Box.
func WithElement(el Element) TrackerOption {
	return func(t *Tracker) {
		if el != nil {
			t.element = el
		}
	}
}

// Tracker binds one card to a live pointer stream. It holds the last
// EffectState and notifies listeners only when that state changes.
type Tracker struct {
	mu        sync.Mutex
	cfg       Config
	element   Element
	owned     *Box
	source    EventSource
	subs      []Subscription
	state     EffectState
	listeners map[int]func(EffectState)
	nextID    int

	// gen identifies the current subscription; handlers from an older one
	// are ignored.
	gen uint64
}

// NewTracker creates an unmounted tracker for cfg.
func NewTracker(cfg Config, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		cfg:       cfg,
		listeners: make(map[int]func(EffectState)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	if t.element == nil {
		t.owned = &Box{}
		t.element = t.owned
	}
	return t
}

// Box returns the tracker-owned element, or nil when an external element was
// supplied with WithElement.
func (t *Tracker) Box() *Box { return t.owned }

// Element returns the element measured on each sample.
func (t *Tracker) Element() Element { return t.element }

// Mount attaches the tracker to src. Handlers are registered only while the
// configuration is enabled. Mounting again replaces the previous source.
func (t *Tracker) Mount(src EventSource) {
	t.mu.Lock()
	t.releaseLocked()
	t.source = src
	t.subscribeLocked()
	t.mu.Unlock()
}

// Unmount releases every subscription and resets to the inactive state.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	t.releaseLocked()
	t.source = nil
	changed := t.setLocked(t.state.Inactive())
	t.mu.Unlock()
	t.notify(changed)
}

// Mounted reports whether the tracker is attached to an event source.
func (t *Tracker) Mounted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source != nil
}

// Subscribed reports whether pointer handlers are currently registered.
func (t *Tracker) Subscribed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.subs) > 0
}

// Configure replaces the configuration. Toggling Disabled or changing
// Proximity re-registers the handlers; disabling forces the inactive state.
func (t *Tracker) Configure(cfg Config) {
	t.mu.Lock()
	prev := t.cfg
	t.cfg = cfg

	if prev.Disabled() != cfg.Disabled() || prev.Proximity() != cfg.Proximity() {
		t.releaseLocked()
		t.subscribeLocked()
	}

	var changed *EffectState
	if cfg.Disabled() {
		changed = t.setLocked(t.state.Inactive())
	}
	t.mu.Unlock()
	t.notify(changed)
}

// Config returns the active configuration.
func (t *Tracker) Config() Config {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cfg
}

// State returns the last published state.
func (t *Tracker) State() EffectState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Intensity returns the effective glow brightness for the current state.
func (t *Tracker) Intensity() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return EffectiveIntensity(t.state, t.cfg)
}

// OnChange registers fn for every published state change and returns a
// function that removes it.
func (t *Tracker) OnChange(fn func(EffectState)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}

// HandlePointerMove measures the element and recomputes the state.
func (t *Tracker) HandlePointerMove(ev PointerEvent) {
	t.mu.Lock()
	t.moveLocked(ev)
}

// HandlePointerLeave resets to the inactive state.
func (t *Tracker) HandlePointerLeave() {
	t.mu.Lock()
	t.leaveLocked()
}

// moveLocked and leaveLocked release t.mu before notifying.
func (t *Tracker) moveLocked(ev PointerEvent) {
	if t.cfg.Disabled() {
		t.mu.Unlock()
		return
	}
	rect := t.element.BoundingRect()
	changed := t.setLocked(t.state.Next(ev, rect, t.cfg))
	t.mu.Unlock()
	t.notify(changed)
}

func (t *Tracker) leaveLocked() {
	changed := t.setLocked(t.state.Inactive())
	t.mu.Unlock()
	t.notify(changed)
}

// handlers returns the callbacks registered with the source for generation
// gen. A source may deliver a sample it snapshotted before the subscription
// was released; those are dropped.
func (t *Tracker) handlers(gen uint64) (move func(PointerEvent), leave func()) {
	move = func(ev PointerEvent) {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.moveLocked(ev)
	}
	leave = func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.leaveLocked()
	}
	return move, leave
}

// setLocked stores next and returns it when it differs from the held state.
func (t *Tracker) setLocked(next EffectState) *EffectState {
	if next == t.state {
		return nil
	}
	t.state = next
	return &next
}

func (t *Tracker) notify(changed *EffectState) {
	if changed == nil {
		return
	}
	t.mu.Lock()
	fns := make([]func(EffectState), 0, len(t.listeners))
	for id := 0; id < t.nextID; id++ {
		if fn, ok := t.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(*changed)
	}
}

func (t *Tracker) subscribeLocked() {
	if t.source == nil || t.cfg.Disabled() {
		return
	}
	move, leave := t.handlers(t.gen)
	t.subs = append(t.subs,
		t.source.SubscribePointerMove(move),
		t.source.SubscribePointerLeave(t.element, leave),
	)
}

func (t *Tracker) releaseLocked() {
	t.gen++
	for _, sub := range t.subs {
		if sub != nil {
			sub.Unsubscribe()
		}
	}
	t.subs = nil
}
