package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/log"
)

func itemEvent(checklistID, itemID string) model.ChangeEvent {
	return model.ItemEvent(model.OpUpdate, model.ChecklistItem{ID: itemID, ChecklistID: checklistID})
}

func TestHubFanOut(t *testing.T) {
	hub := feed.New(log.NewNop(), 4)
	a := hub.Subscribe("c1")
	b := hub.Subscribe("c1")
	other := hub.Subscribe("c2")
	defer a.Close()
	defer b.Close()
	defer other.Close()

	hub.Publish(context.Background(), itemEvent("c1", "i1"))

	for _, sub := range []*feed.Subscription{a, b} {
		select {
		case ev := <-sub.Events():
			assert.Equal(t, "i1", ev.Item.ID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}

	select {
	case ev := <-other.Events():
		t.Fatalf("subscriber of another checklist received %+v", ev)
	default:
	}
}

func TestHubDropsWhenBufferFull(t *testing.T) {
	hub := feed.New(log.NewNop(), 1)
	sub := hub.Subscribe("c1")
	defer sub.Close()

	hub.Publish(context.Background(), itemEvent("c1", "first"))
	hub.Publish(context.Background(), itemEvent("c1", "second"))

	ev := <-sub.Events()
	assert.Equal(t, "first", ev.Item.ID)
	select {
	case ev := <-sub.Events():
		t.Fatalf("expected overflow event to be dropped, got %+v", ev)
	default:
	}
}

func TestSubscriptionClose(t *testing.T) {
	hub := feed.New(log.NewNop(), 1)
	sub := hub.Subscribe("c1")
	require.Equal(t, 1, hub.Subscribers("c1"))

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())
	assert.Equal(t, 0, hub.Subscribers("c1"))

	_, ok := <-sub.Events()
	assert.False(t, ok, "events channel should be closed")

	// publishing after close must not panic
	hub.Publish(context.Background(), itemEvent("c1", "late"))
}

func TestHubClose(t *testing.T) {
	hub := feed.New(log.NewNop(), 1)
	sub := hub.Subscribe("c1")

	hub.Close()
	_, ok := <-sub.Events()
	assert.False(t, ok)
	require.NoError(t, sub.Close())

	late := hub.Subscribe("c1")
	_, ok = <-late.Events()
	assert.False(t, ok, "subscriptions on a closed hub start closed")
}
