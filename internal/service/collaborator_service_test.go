package service

import (
	"context"
	"testing"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollaboratorFixture() (*fakeStore, *fakePublisher, ICollaboratorService) {
	store := newFakeStore()
	pub := &fakePublisher{}
	svc := NewCollaboratorService(newFakeFactory(store), pub, cache.NewMemoryStore(), nil, nopLogger{})
	return store, pub, svc
}

func TestCollaboratorAdd(t *testing.T) {
	store, pub, svc := newCollaboratorFixture()
	ctx := context.Background()

	owner := seedUser(store, "owner@example.com")
	friend := seedUser(store, "friend@example.com")
	note := seedNote(store, owner.Id, "shared note")

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: friend.Email})
		require.NoError(t, err)
		assert.Equal(t, friend.Email, resp.Email)
		assert.Equal(t, note.Id, resp.NoteId)
		require.Len(t, store.collaborators, 1)

		// The invitee gets a mail naming the inviter and the note.
		job := lastMailJob(t, pub)
		assert.Equal(t, dto.MailTypeCollabInvite, job.Type)
		assert.Equal(t, friend.Email, job.To)
		assert.Equal(t, "Test User", job.InviterName)
		assert.Equal(t, "shared note", job.NoteTitle)
	})

	t.Run("already invited", func(t *testing.T) {
		_, err := svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: friend.Email})
		assertAppErrCode(t, err, apperror.CodeAlreadyInvited)
	})

	t.Run("invitee has no account", func(t *testing.T) {
		_, err := svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: "ghost@example.com"})
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})

	t.Run("cannot invite yourself", func(t *testing.T) {
		_, err := svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: owner.Email})
		assertAppErrCode(t, err, apperror.CodeValidationFailed)
	})

	t.Run("only the owner invites", func(t *testing.T) {
		_, err := svc.Add(ctx, friend.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: "someone@example.com"})
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})
}

func TestCollaboratorRemove(t *testing.T) {
	store, _, svc := newCollaboratorFixture()
	ctx := context.Background()

	owner := seedUser(store, "owner@example.com")
	friend := seedUser(store, "friend@example.com")
	note := seedNote(store, owner.Id, "shared note")

	_, err := svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: friend.Email})
	require.NoError(t, err)

	t.Run("unknown collaborator", func(t *testing.T) {
		err := svc.Remove(ctx, owner.Id, &dto.RemoveCollaboratorRequest{NoteId: note.Id, Email: "ghost@example.com"})
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})

	t.Run("only the owner removes", func(t *testing.T) {
		err := svc.Remove(ctx, friend.Id, &dto.RemoveCollaboratorRequest{NoteId: note.Id, Email: friend.Email})
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		err := svc.Remove(ctx, owner.Id, &dto.RemoveCollaboratorRequest{NoteId: note.Id, Email: friend.Email})
		require.NoError(t, err)
		assert.Empty(t, store.collaborators)
	})
}

func TestCollaboratorList(t *testing.T) {
	store, _, svc := newCollaboratorFixture()
	ctx := context.Background()

	owner := seedUser(store, "owner@example.com")
	friend := seedUser(store, "friend@example.com")
	other := seedUser(store, "other@example.com")
	note := seedNote(store, owner.Id, "shared note")

	_, err := svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: friend.Email})
	require.NoError(t, err)
	_, err = svc.Add(ctx, owner.Id, &dto.AddCollaboratorRequest{NoteId: note.Id, Email: other.Email})
	require.NoError(t, err)

	list, err := svc.List(ctx, owner.Id, note.Id)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	// Collaborators cannot enumerate each other.
	_, err = svc.List(ctx, friend.Id, note.Id)
	assertAppErrCode(t, err, apperror.CodeNotFound)
}
