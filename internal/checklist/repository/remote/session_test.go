package remote_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtime-checklist/config"
	"realtime-checklist/internal/checklist"
	checklistHTTP "realtime-checklist/internal/checklist/delivery/http"
	"realtime-checklist/internal/checklist/feed"
	"realtime-checklist/internal/checklist/realtime"
	"realtime-checklist/internal/checklist/repository"
	"realtime-checklist/internal/checklist/repository/remote"
	"realtime-checklist/internal/checklist/repository/sqlite"
	"realtime-checklist/internal/checklist/usecase"
	"realtime-checklist/internal/middleware"
	"realtime-checklist/internal/model"
	"realtime-checklist/pkg/log"
)

// newAPIServer serves the real checklist API over an in-memory store.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	hub := feed.New(log.NewNop(), feed.DefaultBufferSize)

	repo := sqlite.New(log.NewNop(), db, hub)
	uc := usecase.New(log.NewNop(), repo, repository.ScopeResolver{})
	mw := middleware.New(log.NewNop(),
		config.AuthConfig{Tokens: []config.TokenConfig{{Token: "tok-alice", UserID: "alice"}}},
		config.RateLimitConfig{RequestsPerMin: 60000},
	)

	r := gin.New()
	checklistHTTP.RegisterRoutes(r.Group("/api/v1"), checklistHTTP.New(log.NewNop(), uc), mw)

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
		_ = db.Close()
	})
	return srv
}

func TestSessionOverRemoteStore(t *testing.T) {
	srv := newAPIServer(t)
	ctx := context.Background()

	client := remote.New(log.NewNop(), srv.URL, "tok-alice")
	uc := usecase.New(log.NewNop(), client, client)

	created, err := uc.Create(ctx, checklist.CreateInput{})
	require.NoError(t, err)

	s, err := realtime.Mount(ctx, log.NewNop(), client, uc, created.ID, realtime.Options{ReloadDebounce: 20 * time.Millisecond})
	require.NoError(t, err)
	defer s.Close()

	st := s.State()
	require.Empty(t, st.Error)
	require.NotNil(t, st.Checklist)
	require.Len(t, st.Checklist.Items, 11)
	assert.Equal(t, "alice", st.Checklist.UserID)

	target := st.Checklist.Items[2]
	require.NoError(t, s.UpdateItem(ctx, target.ID, model.ItemPatch{IsCompleted: ptr(true)}))

	require.Eventually(t, func() bool {
		st = s.State()
		return st.Checklist.CompletedItems == 1
	}, 3*time.Second, 10*time.Millisecond, "completion reloaded over the feed")

	var got model.ChecklistItem
	for _, it := range st.Checklist.Items {
		if it.ID == target.ID {
			got = it
		}
	}
	assert.True(t, got.IsCompleted)
	require.NotNil(t, got.CompletedBy)
	assert.Equal(t, "alice", *got.CompletedBy)
	assert.Equal(t, 9, st.Stats.ProgressPercentage)

	list, err := uc.List(ctx, checklist.ListInput{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.Checklists, 1)
	assert.Equal(t, created.ID, list.Checklists[0].ID)
}

func TestSessionOverRemoteStoreMissingChecklist(t *testing.T) {
	srv := newAPIServer(t)
	client := remote.New(log.NewNop(), srv.URL, "tok-alice")
	uc := usecase.New(log.NewNop(), client, client)

	s, err := realtime.Mount(context.Background(), log.NewNop(), client, uc, "missing", realtime.Options{})
	require.NoError(t, err)
	defer s.Close()

	st := s.State()
	assert.Nil(t, st.Checklist)
	assert.NotEmpty(t, st.Error)
}

func ptr[T any](v T) *T { return &v }
