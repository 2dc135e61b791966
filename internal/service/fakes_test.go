package service

import (
	"context"
	"errors"
	"sync"

	"github.com/deppfellow/threads-backend/internal/lib/job"
	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/deppfellow/threads-backend/internal/sqlerr"
	"github.com/google/uuid"
)

type call struct {
	method string
	args   []string
}

// fakeCommunityStore keeps communities by id and memberships by
// "user:community".
type fakeCommunityStore struct {
	mu          sync.Mutex
	calls       []call
	communities map[string]*model.Community
	members     map[string]bool
	err         error
}

func newFakeCommunityStore() *fakeCommunityStore {
	return &fakeCommunityStore{
		communities: map[string]*model.Community{},
		members:     map[string]bool{},
	}
}

func memberKey(userID, communityID string) string { return userID + ":" + communityID }

func (f *fakeCommunityStore) record(method string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method: method, args: args})
	return f.err
}

func (f *fakeCommunityStore) CreateCommunity(_ context.Context, id, name, slug, image, bio, creatorID string) error {
	if err := f.record("CreateCommunity", id, name, slug, image, bio, creatorID); err != nil {
		return err
	}
	f.communities[id] = &model.Community{ID: id, Name: name, Slug: slug, Image: image, Bio: bio, CreatedBy: creatorID}
	return nil
}

func (f *fakeCommunityStore) UpdateCommunityInfo(_ context.Context, id, name, slug, image string) error {
	return f.record("UpdateCommunityInfo", id, name, slug, image)
}

func (f *fakeCommunityStore) DeleteCommunity(_ context.Context, id string) error {
	return f.record("DeleteCommunity", id)
}

func (f *fakeCommunityStore) AddMemberToCommunity(_ context.Context, communityID, userID string) error {
	if err := f.record("AddMemberToCommunity", communityID, userID); err != nil {
		return err
	}
	f.members[memberKey(userID, communityID)] = true
	return nil
}

func (f *fakeCommunityStore) RemoveUserFromCommunity(_ context.Context, userID, communityID string) error {
	return f.record("RemoveUserFromCommunity", userID, communityID)
}

func (f *fakeCommunityStore) GetCommunity(_ context.Context, id string) (*model.Community, error) {
	if c, ok := f.communities[id]; ok {
		return c, nil
	}
	return nil, sqlerr.NotFound("communities")
}

func (f *fakeCommunityStore) IsMember(_ context.Context, communityID, userID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.members[memberKey(userID, communityID)], nil
}

type fakeNotifier struct {
	payloads []job.CommunityWelcomePayload
	err      error
}

func (f *fakeNotifier) EnqueueCommunityWelcome(_ context.Context, p job.CommunityWelcomePayload) error {
	f.payloads = append(f.payloads, p)
	return f.err
}

type fakeThreadStore struct {
	threads map[uuid.UUID]*model.Thread
}

func newFakeThreadStore() *fakeThreadStore {
	return &fakeThreadStore{threads: map[uuid.UUID]*model.Thread{}}
}

func (f *fakeThreadStore) CreateThread(_ context.Context, text, authorID, communityID string) (*model.Thread, error) {
	t := &model.Thread{ID: uuid.New(), Text: text, AuthorID: authorID}
	if communityID != "" {
		t.CommunityID = &communityID
	}
	f.threads[t.ID] = t
	return t, nil
}

func (f *fakeThreadStore) AddComment(_ context.Context, parentID uuid.UUID, text, authorID string) (*model.Thread, error) {
	parent, ok := f.threads[parentID]
	if !ok {
		return nil, errors.New("parent not found")
	}
	t := &model.Thread{ID: uuid.New(), Text: text, AuthorID: authorID, ParentID: &parentID, CommunityID: parent.CommunityID}
	f.threads[t.ID] = t
	return t, nil
}
