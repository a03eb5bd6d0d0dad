// Package schedule runs deferred game transitions, such as revealing the
// slot reels or clearing a finished blackjack table, on the goroutine that
// owns the game engines.
//
// Timers fire on a quartz.Clock. A fired task is not run on the timer
// goroutine; it is queued on Due and the owner calls Task.Run, so engines
// are only ever touched from one goroutine.
package schedule

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// queueSize bounds how many fired tasks can wait for the owner.
const queueSize = 64

// Task is a deferred transition that has become due.
type Task struct {
	Name string
	fn   func()
}

// Run executes the task.
func (t Task) Run() {
	if t.fn != nil {
		t.fn()
	}
}

// Scheduler arms one-shot timers and delivers them in firing order.
type Scheduler struct {
	clock  quartz.Clock
	logger *log.Logger

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*quartz.Timer
	closed  bool

	due  chan Task
	done chan struct{}
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// New creates a scheduler driven by clock. Pass quartz.NewReal() outside
// of tests.
func New(clock quartz.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:   clock,
		logger:  log.New(io.Discard),
		pending: make(map[uint64]*quartz.Timer),
		due:     make(chan Task, queueSize),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// After queues fn to become due once d has elapsed. Tasks cannot be
// cancelled individually; callers guard their own phase instead. After is
// a no-op once the scheduler is closed.
func (s *Scheduler) After(d time.Duration, name string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	id := s.nextID
	s.nextID++
	task := Task{Name: name, fn: fn}
	s.pending[id] = s.clock.AfterFunc(d, func() { s.fire(id, task) }, name)
	s.logger.Debug("Task scheduled", "task", name, "delay", d)
}

func (s *Scheduler) fire(id uint64, task Task) {
	s.mu.Lock()
	if _, ok := s.pending[id]; !ok || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.pending, id)
	s.mu.Unlock()

	select {
	case s.due <- task:
		s.logger.Debug("Task due", "task", task.Name)
	case <-s.done:
	}
}

// Due delivers tasks whose delay has elapsed. The receiver must call Run.
func (s *Scheduler) Due() <-chan Task {
	return s.due
}

// Done is closed when the scheduler is closed.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// RunReady runs every task already waiting on Due without blocking and
// returns how many ran.
func (s *Scheduler) RunReady() int {
	n := 0
	for {
		select {
		case task := <-s.due:
			task.Run()
			n++
		default:
			return n
		}
	}
}

// Pending reports how many timers are armed and not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close stops every armed timer and discards tasks not yet run.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
	close(s.done)
	s.mu.Unlock()

	dropped := 0
	for {
		select {
		case <-s.due:
			dropped++
		default:
			if dropped > 0 {
				s.logger.Debug("Dropped due tasks on close", "count", dropped)
			}
			return
		}
	}
}
