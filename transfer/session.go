// Package transfer runs show downloads and reports their progress.
package transfer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vod-cli/vod/errs"
	"github.com/vod-cli/vod/log"
	"github.com/vod-cli/vod/source"
)

// State of a session. A session moves from Idle to Running and then to exactly
// one of Completed or Failed.
type State int32

const (
	Idle State = iota
	Running
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "failed"
	}
}

// Config controls where and how a show is saved.
type Config struct {
	Destination string

	// Converter is the conversion tool path. Empty means look it up.
	Converter string

	Verbose          bool
	KeepIntermediate bool
}

// Request asks for one show to be saved.
type Request struct {
	Show   *source.Show
	Config Config
}

func (r Request) ShowID() string {
	return r.Show.ID
}

// Tick reports raw progress counters from a Mechanism.
type Tick func(position, total int, elapsed float64, start time.Time)

// Mechanism performs the download and conversion. It returns the artifact path.
type Mechanism interface {
	Save(ctx context.Context, req Request, tick Tick) (string, error)
}

// Progress is a raw tick as received from the mechanism.
type Progress struct {
	Position int
	Total    int
	Elapsed  float64
	Start    time.Time
}

// Result of a completed transfer.
type Result struct {
	ArtifactPath string `json:"artifact_path"`
}

type EventKind int

const (
	EventTick EventKind = iota
	EventCompleted
	EventFailed
)

// Event is emitted by a session. Ticks carry Progress and Estimate; the
// terminal event carries either Result or Err.
type Event struct {
	Kind      EventKind
	SessionID string
	Progress  Progress
	Estimate  Estimate
	Result    Result
	Err       error
}

// Terminal reports whether no event follows this one.
func (e Event) Terminal() bool {
	return e.Kind != EventTick
}

// Session is a single transfer run.
type Session struct {
	ID     string
	ShowID string

	state  atomic.Int32
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	finished bool
	last     int
	result   Result
	err      error
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Cancel stops a running session. The session then fails with a service error
// wrapping context.Canceled.
func (s *Session) Cancel() {
	s.cancel()
}

// Wait blocks until the session is over.
func (s *Session) Wait() (Result, error) {
	<-s.done
	return s.result, s.err
}

// Registry starts sessions and allows at most one running session per show.
type Registry struct {
	mechanism Mechanism

	mu      sync.Mutex
	running map[string]*Session
}

func NewRegistry(mechanism Mechanism) *Registry {
	return &Registry{
		mechanism: mechanism,
		running:   make(map[string]*Session),
	}
}

// Running reports whether a session for showID is in progress.
func (r *Registry) Running(showID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.running[showID]
	return ok
}

func (r *Registry) acquire(ctx context.Context, req Request) (*Session, context.Context, error) {
	if req.Show == nil || req.Show.ID == "" {
		return nil, nil, errs.UserInput("missing show id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.running[req.ShowID()]; ok {
		return nil, nil, errs.Concurrency("a transfer of show %s is already running", req.ShowID())
	}

	ctx, cancel := context.WithCancel(ctx)
	session := &Session{
		ID:     uuid.NewString(),
		ShowID: req.ShowID(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	session.state.Store(int32(Running))
	r.running[session.ShowID] = session

	return session, ctx, nil
}

func (r *Registry) release(session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running[session.ShowID] == session {
		delete(r.running, session.ShowID)
	}
}

// Run transfers on the calling goroutine. handler, if not nil, receives every
// tick and then the terminal event before Run returns.
func (r *Registry) Run(ctx context.Context, req Request, handler func(Event)) (Result, error) {
	session, ctx, err := r.acquire(ctx, req)
	if err != nil {
		return Result{}, err
	}

	if handler == nil {
		handler = func(Event) {}
	}

	r.run(ctx, session, req, handler)
	return session.Wait()
}

// Start transfers on a new goroutine. The returned channel delivers ordered
// ticks, then exactly one terminal event, and is then closed. It must be
// drained for the transfer to make progress.
func (r *Registry) Start(ctx context.Context, req Request) (*Session, <-chan Event, error) {
	session, ctx, err := r.acquire(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan Event, 16)
	go func() {
		defer close(events)
		r.run(ctx, session, req, func(e Event) { events <- e })
	}()

	return session, events, nil
}

func (r *Registry) run(ctx context.Context, session *Session, req Request, emit func(Event)) {
	defer session.cancel()
	defer close(session.done)

	logger := log.WithFields(logrus.Fields{"session": session.ID, "show": session.ShowID})
	logger.Info("transfer started")

	tick := func(position, total int, elapsed float64, start time.Time) {
		session.mu.Lock()
		defer session.mu.Unlock()

		if session.finished || position < 1 || position > total || position < session.last {
			return
		}
		session.last = position

		emit(Event{
			Kind:      EventTick,
			SessionID: session.ID,
			Progress:  Progress{Position: position, Total: total, Elapsed: elapsed, Start: start},
			Estimate:  OnTick(position, total, elapsed, start),
		})
	}

	path, err := r.save(ctx, req, tick)

	session.mu.Lock()
	defer session.mu.Unlock()
	session.finished = true

	terminal := Event{SessionID: session.ID}
	if err != nil {
		session.err = errs.Servicef(err, "transfer of show %s", session.ShowID)
		session.state.Store(int32(Failed))
		terminal.Kind, terminal.Err = EventFailed, session.err
		logger.WithError(err).Error("transfer failed")
	} else {
		session.result = Result{ArtifactPath: path}
		session.state.Store(int32(Completed))
		terminal.Kind, terminal.Result = EventCompleted, session.result
		logger.WithField("path", path).Info("transfer completed")
	}

	r.release(session)
	emit(terminal)
}

// save calls the mechanism and turns a panic into an error, so the session
// still reaches a terminal state and frees its show id.
func (r *Registry) save(ctx context.Context, req Request, tick Tick) (path string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("transfer mechanism panicked: %v", p)
		}
	}()
	return r.mechanism.Save(ctx, req, tick)
}
