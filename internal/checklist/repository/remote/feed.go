package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/model"
	pkgLog "realtime-checklist/pkg/log"
)

// feedBuffer bounds the events read off the socket but not yet consumed.
const feedBuffer = 64

// Subscribe dials the checklist's websocket feed. ctx bounds the handshake only;
// the subscription lives until Close or until the server ends it.
func (c *Client) Subscribe(ctx context.Context, checklistID string) (repository.Subscription, error) {
	if checklistID == "" {
		return nil, fmt.Errorf("%w: checklist id is required", repository.ErrFailedToSubscribe)
	}

	feedURL := c.baseURL + "/api/v1/checklists/" + url.PathEscape(checklistID) + "/feed"
	conn, _, err := websocket.Dial(ctx, feedURL, &websocket.DialOptions{
		HTTPHeader: http.Header{"Authorization": {"Bearer " + c.accessToken}},
	})
	if err != nil {
		c.l.Errorf(ctx, "remote.Subscribe websocket.Dial: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToSubscribe, err)
	}

	sctx, cancel := context.WithCancel(context.Background())
	s := &subscription{
		l:      c.l,
		conn:   conn,
		events: make(chan model.ChangeEvent, feedBuffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.read(sctx)
	return s, nil
}

type subscription struct {
	l      pkgLog.Logger
	conn   *websocket.Conn
	events chan model.ChangeEvent
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func (s *subscription) Events() <-chan model.ChangeEvent {
	return s.events
}

// Close ends the subscription and waits for the reader to stop. It is idempotent.
func (s *subscription) Close() error {
	s.once.Do(func() {
		if err := s.conn.Close(websocket.StatusNormalClosure, ""); err != nil {
			s.l.Debugf(context.Background(), "remote.subscription conn.Close: %v", err)
		}
		s.cancel()
		<-s.done
	})
	return nil
}

func (s *subscription) read(ctx context.Context) {
	defer close(s.done)
	defer close(s.events)

	for {
		var ev model.ChangeEvent
		if err := wsjson.Read(ctx, s.conn, &ev); err != nil {
			if ctx.Err() == nil && websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				s.l.Warnf(ctx, "remote.subscription wsjson.Read: %v", err)
			}
			return
		}

		select {
		case s.events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
