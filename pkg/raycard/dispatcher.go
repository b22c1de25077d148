package raycard

import (
	"sync"
	"sync/atomic"
)

// Dispatcher is an in-process EventSource. Hosts feed it raw pointer samples
// and it fans them out to subscribed trackers, deriving element-scoped leave
// notifications from the sample stream.
//
// For each sample, leave handlers run before move handlers, mirroring the
// order in which browsers deliver boundary events.
type Dispatcher struct {
	mu     sync.Mutex
	moves  []*moveSub
	leaves []*leaveSub
	last   *PointerEvent
}

type subscription struct {
	d      *Dispatcher
	active atomic.Bool
}

type moveSub struct {
	subscription
	fn func(PointerEvent)
}

type leaveSub struct {
	subscription
	el      Element
	fn      func()
	hovered bool
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SubscribePointerMove implements EventSource.
func (d *Dispatcher) SubscribePointerMove(fn func(PointerEvent)) Subscription {
	sub := &moveSub{fn: fn}
	sub.d = d
	sub.active.Store(true)

	d.mu.Lock()
	d.moves = append(d.moves, sub)
	d.mu.Unlock()
	return sub
}

// SubscribePointerLeave implements EventSource.
func (d *Dispatcher) SubscribePointerLeave(el Element, fn func()) Subscription {
	sub := &leaveSub{el: el, fn: fn}
	sub.d = d
	sub.active.Store(true)

	d.mu.Lock()
	if d.last != nil && el != nil {
		sub.hovered = el.BoundingRect().Contains(d.last.ClientX, d.last.ClientY)
	}
	d.leaves = append(d.leaves, sub)
	d.mu.Unlock()
	return sub
}

// Move delivers one pointer sample.
func (d *Dispatcher) Move(ev PointerEvent) {
	d.mu.Lock()
	sample := ev
	d.last = &sample

	var left []*leaveSub
	for _, sub := range d.leaves {
		if sub.el == nil {
			continue
		}
		inside := sub.el.BoundingRect().Contains(ev.ClientX, ev.ClientY)
		if sub.hovered && !inside {
			left = append(left, sub)
		}
		sub.hovered = inside
	}
	moves := append([]*moveSub(nil), d.moves...)
	d.mu.Unlock()

	for _, sub := range left {
		if sub.active.Load() {
			sub.fn()
		}
	}
	for _, sub := range moves {
		if sub.active.Load() {
			sub.fn(ev)
		}
	}
}

// LeaveAll reports that the pointer left the host surface. Every element
// currently hovered receives a leave notification.
func (d *Dispatcher) LeaveAll() {
	d.mu.Lock()
	d.last = nil
	var left []*leaveSub
	for _, sub := range d.leaves {
		if sub.hovered {
			left = append(left, sub)
		}
		sub.hovered = false
	}
	d.mu.Unlock()

	for _, sub := range left {
		if sub.active.Load() {
			sub.fn()
		}
	}
}

// Len returns the number of live move and leave subscriptions.
func (d *Dispatcher) Len() (moves, leaves int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.moves), len(d.leaves)
}

func (s *moveSub) Unsubscribe() {
	if !s.active.Swap(false) {
		return
	}
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i, sub := range s.d.moves {
		if sub == s {
			s.d.moves = append(s.d.moves[:i], s.d.moves[i+1:]...)
			return
		}
	}
}

func (s *leaveSub) Unsubscribe() {
	if !s.active.Swap(false) {
		return
	}
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	for i, sub := range s.d.leaves {
		if sub == s {
			s.d.leaves = append(s.d.leaves[:i], s.d.leaves[i+1:]...)
			return
		}
	}
}
