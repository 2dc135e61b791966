package handler

import (
	"bytes"
	"context"
	"sync"

	"github.com/deppfellow/threads-backend/internal/config"
	"github.com/deppfellow/threads-backend/internal/middleware"
	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/deppfellow/threads-backend/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer() (*server.Server, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}, &buf
}

func newTestEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

type storeCall struct {
	method string
	args   []string
}

// fakeStore backs both the webhook dispatcher and the thread service.
type fakeStore struct {
	mu          sync.Mutex
	calls       []storeCall
	err         error
	communities map[string]bool
	members     map[string]bool
	threads     map[uuid.UUID]*model.Thread
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		communities: map[string]bool{},
		members:     map[string]bool{},
		threads:     map[uuid.UUID]*model.Thread{},
	}
}

func (f *fakeStore) record(method string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, storeCall{method: method, args: args})
	return f.err
}

func (f *fakeStore) CreateCommunity(_ context.Context, id, name, slug, image, bio, creatorID string) error {
	return f.record("CreateCommunity", id, name, slug, image, bio, creatorID)
}

func (f *fakeStore) UpdateCommunityInfo(_ context.Context, id, name, slug, image string) error {
	return f.record("UpdateCommunityInfo", id, name, slug, image)
}

func (f *fakeStore) DeleteCommunity(_ context.Context, id string) error {
	return f.record("DeleteCommunity", id)
}

func (f *fakeStore) AddMemberToCommunity(_ context.Context, communityID, userID string) error {
	return f.record("AddMemberToCommunity", communityID, userID)
}

func (f *fakeStore) RemoveUserFromCommunity(_ context.Context, userID, communityID string) error {
	return f.record("RemoveUserFromCommunity", userID, communityID)
}

func (f *fakeStore) GetCommunity(_ context.Context, id string) (*model.Community, error) {
	if !f.communities[id] {
		return nil, sqlerr.NotFound("communities")
	}
	return &model.Community{ID: id}, nil
}

func (f *fakeStore) IsMember(_ context.Context, communityID, userID string) (bool, error) {
	return f.members[userID+":"+communityID], nil
}

func (f *fakeStore) CreateThread(_ context.Context, text, authorID, communityID string) (*model.Thread, error) {
	t := &model.Thread{ID: uuid.New(), Text: text, AuthorID: authorID}
	if communityID != "" {
		t.CommunityID = &communityID
	}
	f.threads[t.ID] = t
	return t, nil
}

func (f *fakeStore) AddComment(_ context.Context, parentID uuid.UUID, text, authorID string) (*model.Thread, error) {
	parent, ok := f.threads[parentID]
	if !ok {
		return nil, sqlerr.NotFound("threads")
	}
	t := &model.Thread{ID: uuid.New(), Text: text, AuthorID: authorID, ParentID: &parentID, CommunityID: parent.CommunityID}
	f.threads[t.ID] = t
	return t, nil
}
