// Package realtime keeps a live, eventually consistent copy of one checklist:
// an initial load, a change-feed subscription reconciled into the cache, and
// mutation wrappers that report failures through the observable state.
package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"realtime-checklist/internal/checklist"
	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
	pkgLog "realtime-checklist/pkg/log"
)

// DefaultReloadDebounce is the delay between a completion flip and the full reload it triggers.
const DefaultReloadDebounce = 100 * time.Millisecond

// Options tunes a session.
type Options struct {
	ReloadDebounce time.Duration
}

// Session is the stateful handle for one checklist. It is safe for concurrent use.
type Session struct {
	l           pkgLog.Logger
	repo        repository.Repository
	uc          checklist.UseCase
	checklistID string
	debounce    time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	sub    repository.Subscription

	mu         sync.Mutex
	checklist  *model.Checklist
	stats      *checklist.Stats
	loading    bool
	errMsg     string
	feedErr    string
	updating   int
	closed     bool
	changes    chan struct{}
	reload     *time.Timer
	reloadGen  uint64
	fetchSeq   uint64
	appliedSeq uint64
}

// Mount opens a session for checklistID: it subscribes to the change feed,
// performs the initial load and then starts applying events.
// Load and subscription failures are reported through State, not returned.
func Mount(ctx context.Context, l pkgLog.Logger, repo repository.Repository, uc checklist.UseCase, checklistID string, opt Options) (*Session, error) {
	if checklistID == "" {
		return nil, errors.New("realtime.Mount: checklist id is required")
	}

	debounce := opt.ReloadDebounce
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}

	sctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		l:           l,
		repo:        repo,
		uc:          uc,
		checklistID: checklistID,
		debounce:    debounce,
		ctx:         sctx,
		cancel:      cancel,
		loading:     true,
		changes:     make(chan struct{}, 1),
	}

	// Subscribing first means no event between the load and the subscription is lost;
	// buffered events are full rows applied in order after the snapshot.
	sub, err := repo.Subscribe(ctx, checklistID)
	if err != nil {
		l.Errorf(ctx, "realtime.Mount repo.Subscribe: %v", err)
		s.mu.Lock()
		s.feedErr = err.Error()
		s.mu.Unlock()
	}
	s.sub = sub

	_ = s.load(ctx)

	if sub != nil {
		s.wg.Add(1)
		go s.run(sub.Events())
	}

	return s, nil
}

// ChecklistID returns the id the session was mounted for.
func (s *Session) ChecklistID() string {
	return s.checklistID
}

// State returns a deep copy of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Loading:    s.loading,
		Error:      s.errMsg,
		IsUpdating: s.updating > 0,
	}
	// A dead feed is not repaired by a load, so it is reported until Close.
	if st.Error == "" {
		st.Error = s.feedErr
	}
	if s.checklist != nil {
		c := s.checklist.Clone()
		st.Checklist = &c
	}
	if s.stats != nil {
		stats := s.stats.Clone()
		st.Stats = &stats
	}
	return st
}

// Changes fires after every state change. Notifications coalesce: one
// pending signal stands for any number of changes. It is closed by Close.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// Close unsubscribes, cancels any pending reload and waits for background work.
// Nothing is applied to the state once Close returns.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.reloadGen++
	if s.reload != nil {
		s.reload.Stop()
		s.reload = nil
	}
	close(s.changes)
	s.mu.Unlock()

	s.cancel()

	var err error
	if s.sub != nil {
		err = s.sub.Close()
	}
	s.wg.Wait()
	return err
}

func (s *Session) run(events <-chan model.ChangeEvent) {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				s.feedClosed()
				return
			}
			s.apply(ev)
		}
	}
}

func (s *Session) feedClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.l.Warnf(s.ctx, "realtime.run: change feed for checklist %s closed", s.checklistID)
	s.feedErr = ErrFeedClosed.Error()
	s.notifyLocked()
}

// notifyLocked signals Changes. Callers hold s.mu.
func (s *Session) notifyLocked() {
	if s.closed {
		return
	}
	select {
	case s.changes <- struct{}{}:
	default:
	}
}
