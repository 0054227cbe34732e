package tempo

import (
	"strconv"
	"time"

	"golang.org/x/exp/slog"
)

// implicitName is the measure name recorded by [Timer.Finalize] when a timer
// finishes with nothing measured and nothing marked. It is part of the
// snapshot compatibility contract.
const implicitName = "total"

// # Timer
//
// Represents one operation being instrumented. A Timer keeps an implicit
// start instant, a set of open marks, an ordered log of completed measures
// and named child timers for sub-operations.
//
// A Timer is not safe for concurrent use: confine each instance (and its
// descendants) to a single goroutine, or serialize access externally.
// Distinct subtrees rooted at sibling children share no mutable state and may
// be driven from different goroutines.
//
// Its zero value has no meaning and should not be used. A Timer should always
// be instantiated using [New] or [Timer.WithContext].
type Timer struct {
	clock Clock
	start time.Time

	marks    map[string]time.Time
	measures []Measure

	children   map[string]*Timer
	childOrder []string
}

// New returns a started Timer. Its implicit start is the clock reading at the
// time of the call.
func New(opts ...Option) *Timer {
	t := &Timer{
		clock:    systemClock{},
		marks:    make(map[string]time.Time),
		children: make(map[string]*Timer),
	}

	for _, opt := range opts {
		opt(t)
	}

	t.start = t.clock.Now()

	return t
}

// WithContext creates a child timer for the sub-operation called name,
// registers it under t and returns it. The child starts immediately and
// inherits t's clock.
//
// If a child called name already exists, the new child is registered under
// name suffixed with "-" and the number of children before insertion, so
// repeated labels (e.g. from a loop) never overwrite earlier sub-timers. The
// returned timer is always the newly created child.
func (t *Timer) WithContext(name string) *Timer {
	child := &Timer{
		clock:    t.clock,
		start:    t.clock.Now(),
		marks:    make(map[string]time.Time),
		children: make(map[string]*Timer),
	}

	key := name
	if _, ok := t.children[key]; ok {
		key = name + "-" + strconv.Itoa(len(t.children))
		logger.Warn("child context name collision detected",
			slog.String("context", name), slog.String("renamed", key))
	}

	if _, ok := t.children[key]; !ok {
		t.childOrder = append(t.childOrder, key)
	}
	t.children[key] = child

	return child
}

// Mark records the current clock reading under name, to be consumed by a
// later [Timer.Measure] of the same name. Re-marking an open name silently
// discards the previous mark.
func (t *Timer) Mark(name string) {
	if _, ok := t.marks[name]; ok {
		logger.Debug("open mark overwritten",
			slog.String("mark", name))
	}
	t.marks[name] = t.clock.Now()
}

// Measure records a measure called name. The duration is counted from the
// open mark of the same name if one exists (consuming it), otherwise from the
// implicit start. Either way the implicit start is moved to now, so the next
// unmarked Measure counts from the end of this one.
func (t *Timer) Measure(name string) {
	now := t.clock.Now()

	ref := t.start
	if m, ok := t.marks[name]; ok {
		ref = m
		delete(t.marks, name)
	}

	t.start = now
	t.measures = append(t.measures, Measure{Name: name, Duration: now.Sub(ref)})
}

// Finalize closes out the timer and, recursively, all of its children.
//
// A timer that measured nothing and has no open marks records one implicit
// "total" measure covering its whole lifetime. Every open mark is then closed
// with a regular [Timer.Measure] call so no mark is silently dropped from the
// report. The order in which open marks are closed is unspecified.
//
// Finalize is intended to be called exactly once, after which the timer
// should only be read.
func (t *Timer) Finalize() {
	if len(t.measures) == 0 && len(t.marks) == 0 {
		t.Measure(implicitName)
	}

	open := make([]string, 0, len(t.marks))
	for name := range t.marks {
		open = append(open, name)
	}
	for _, name := range open {
		t.Measure(name)
	}

	for _, name := range t.childOrder {
		t.children[name].Finalize()
	}
}

// Snapshot exports the timer tree as a nested, read-only [Snapshot]. The
// timer is not mutated and may keep running; the snapshot is only guaranteed
// complete after [Timer.Finalize] has run on the whole tree.
func (t *Timer) Snapshot() *Snapshot {
	s := &Snapshot{
		Measures: make([]Measure, len(t.measures)),
	}
	copy(s.Measures, t.measures)

	if len(t.childOrder) > 0 {
		s.Children = make(Children, 0, len(t.childOrder))
		for _, name := range t.childOrder {
			s.Children = append(s.Children, Child{
				Name:     name,
				Snapshot: t.children[name].Snapshot(),
			})
		}
	}

	return s
}
