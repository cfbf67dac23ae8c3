// Package reveal drives a typewriter effect: a string is disclosed one
// character at a time at a fixed cadence, and completion of one reveal
// can gate the start of another.
//
// A Reveal moves through Idle -> Revealing -> Complete. Every restart
// (re-enable, new text, new speed) bumps a generation counter; ticks
// scheduled under an older generation are discarded when they fire, so
// a stale timer can never mutate a newer run.
package reveal

import (
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/muthukumaran/portfolio/internal/clock"
)

const (
	// DefaultSpeed replaces non-positive speeds.
	DefaultSpeed = 80 * time.Millisecond

	// DefaultPreDelay is the pause between enabling a reveal and the
	// start of its first character interval.
	DefaultPreDelay = 300 * time.Millisecond
)

// Phase is the coarse position of a reveal in its run.
type Phase int

const (
	Idle Phase = iota
	Revealing
	Complete
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is a snapshot of a reveal.
type State struct {
	Text     string
	Revealed int // runes of Text currently shown
	Enabled  bool
	Phase    Phase
}

// Prefix returns the revealed part of Text.
func (s State) Prefix() string {
	if s.Revealed <= 0 {
		return ""
	}
	runes := []rune(s.Text)
	if s.Revealed >= len(runes) {
		return s.Text
	}
	return string(runes[:s.Revealed])
}

// Complete reports whether the whole text is shown while enabled.
func (s State) Complete() bool {
	return s.Enabled && s.Revealed == utf8.RuneCountInString(s.Text)
}

// Option configures a Reveal.
type Option func(*Reveal)

// WithPreDelay sets the pause before the first character interval.
// Negative values are treated as zero.
func WithPreDelay(d time.Duration) Option {
	return func(r *Reveal) {
		if d < 0 {
			d = 0
		}
		r.preDelay = d
	}
}

// WithEnabled sets the initial gate. A reveal created enabled starts
// immediately.
func WithEnabled(enabled bool) Option {
	return func(r *Reveal) { r.enabled = enabled }
}

// Reveal is one typewriter instance. It is safe for concurrent use.
//
// Listeners registered with Subscribe are called outside the internal
// lock, one at a time, in the order the state changes happened. A
// listener may call back into the Reveal; the resulting change is
// delivered after the current listener returns.
type Reveal struct {
	clock    clock.Clock
	preDelay time.Duration

	mu         sync.Mutex
	text       []rune
	speed      time.Duration
	enabled    bool
	revealed   int
	generation uint64
	timer      *clock.Timer
	stopped    bool

	listeners    map[uint64]func(State)
	nextListener uint64
	queue        []State
	delivering   bool
}

// New creates a reveal of text advancing one rune every speed.
func New(clk clock.Clock, text string, speed time.Duration, opts ...Option) *Reveal {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	r := &Reveal{
		clock:     clk,
		preDelay:  DefaultPreDelay,
		text:      []rune(text),
		speed:     speed,
		listeners: make(map[uint64]func(State)),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.mu.Lock()
	r.startLocked()
	r.mu.Unlock()
	return r
}

// State returns a snapshot of the current state.
func (r *Reveal) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

// SetEnabled opens or closes the gate. Opening starts the reveal from an
// empty prefix, including when a previous run already completed.
// Closing cancels pending ticks and clears the prefix.
func (r *Reveal) SetEnabled(enabled bool) {
	r.mu.Lock()
	if r.stopped || r.enabled == enabled {
		r.mu.Unlock()
		return
	}
	r.enabled = enabled
	r.restartLocked()
	r.publishLocked()
}

// SetText replaces the text. Any run in progress is abandoned and, if
// enabled, a new one starts from an empty prefix.
func (r *Reveal) SetText(text string) {
	r.mu.Lock()
	if r.stopped || string(r.text) == text {
		r.mu.Unlock()
		return
	}
	r.text = []rune(text)
	r.restartLocked()
	r.publishLocked()
}

// SetSpeed changes the per-character delay and restarts like SetText.
func (r *Reveal) SetSpeed(speed time.Duration) {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	r.mu.Lock()
	if r.stopped || r.speed == speed {
		r.mu.Unlock()
		return
	}
	r.speed = speed
	r.restartLocked()
	r.publishLocked()
}

// Stop tears the reveal down. Pending ticks are invalidated, listeners
// are dropped and the state is frozen. Stop is idempotent.
func (r *Reveal) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	r.generation++
	r.stopTimerLocked()
	r.listeners = nil
	r.queue = nil
}

// Subscribe registers fn for every subsequent state change and returns
// a function that removes it.
func (r *Reveal) Subscribe(fn func(State)) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return func() {}
	}
	id := r.nextListener
	r.nextListener++
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Chain gates second on the completion of first: second is enabled
// exactly while first is complete. The returned function detaches it.
func Chain(first, second *Reveal) (unchain func()) {
	follow := func(State) { second.SetEnabled(first.State().Complete()) }
	unchain = first.Subscribe(follow)
	follow(State{})
	return unchain
}

func (r *Reveal) stateLocked() State {
	s := State{
		Text:     string(r.text),
		Revealed: r.revealed,
		Enabled:  r.enabled,
	}
	switch {
	case !r.enabled:
		s.Phase = Idle
	case r.revealed >= len(r.text):
		s.Phase = Complete
	default:
		s.Phase = Revealing
	}
	return s
}

// restartLocked invalidates the current run and begins a new one if the
// gate is open.
func (r *Reveal) restartLocked() {
	r.generation++
	r.stopTimerLocked()
	r.revealed = 0
	r.startLocked()
}

// startLocked schedules the first tick of the current generation. The
// empty prefix is held for the pre-delay plus one full interval.
func (r *Reveal) startLocked() {
	if !r.enabled || len(r.text) == 0 {
		return
	}
	r.scheduleLocked(r.generation, r.preDelay+r.speed)
}

// scheduleLocked arms the next tick. d is always positive here, so
// AfterFunc never runs the callback inline while r.mu is held.
func (r *Reveal) scheduleLocked(generation uint64, d time.Duration) {
	r.timer = r.clock.AfterFunc(d, func() { r.tick(generation) })
}

func (r *Reveal) stopTimerLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Reveal) tick(generation uint64) {
	r.mu.Lock()
	if r.stopped || generation != r.generation || !r.enabled {
		r.mu.Unlock()
		return
	}
	r.timer = nil
	if r.revealed < len(r.text) {
		r.revealed++
	}
	if r.revealed < len(r.text) {
		r.scheduleLocked(generation, r.speed)
	}
	r.publishLocked()
}

// publishLocked queues the current state for listeners and releases
// r.mu. If no other goroutine is delivering, this one drains the queue.
func (r *Reveal) publishLocked() {
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.queue = append(r.queue, r.stateLocked())
	if r.delivering {
		r.mu.Unlock()
		return
	}
	r.delivering = true

	for len(r.queue) > 0 && !r.stopped {
		state := r.queue[0]
		r.queue = r.queue[1:]
		listeners := r.sortedListenersLocked()

		r.mu.Unlock()
		for _, fn := range listeners {
			fn(state)
		}
		r.mu.Lock()
	}
	r.delivering = false
	r.mu.Unlock()
}

func (r *Reveal) sortedListenersLocked() []func(State) {
	ids := make([]uint64, 0, len(r.listeners))
	for id := range r.listeners {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(State), len(ids))
	for i, id := range ids {
		fns[i] = r.listeners[id]
	}
	return fns
}
