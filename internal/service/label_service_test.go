package service

import (
	"context"
	"testing"
	"time"

	"fundoo-notes-be/internal/dto"
	"fundoo-notes-be/internal/entity"
	"fundoo-notes-be/internal/pkg/apperror"
	"fundoo-notes-be/pkg/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLabelFixture() (*fakeStore, ILabelService) {
	store := newFakeStore()
	svc := NewLabelService(newFakeFactory(store), cache.NewMemoryStore(), nopLogger{})
	return store, svc
}

func seedLabel(store *fakeStore, userId uuid.UUID, name string) *entity.Label {
	label := &entity.Label{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      name,
		CreatedAt: time.Now(),
	}
	store.labels = append(store.labels, label)
	return label
}

func TestLabelCreate(t *testing.T) {
	store, svc := newLabelFixture()
	ctx := context.Background()
	owner := seedUser(store, "owner@example.com")

	resp, err := svc.Create(ctx, owner.Id, &dto.CreateLabelRequest{Name: "work"})
	require.NoError(t, err)
	assert.Equal(t, "work", resp.Name)
	assert.Len(t, store.labels, 1)

	_, err = svc.Create(ctx, owner.Id, &dto.CreateLabelRequest{Name: "work"})
	assertAppErrCode(t, err, apperror.CodeDuplicateName)

	// The same name is fine for a different user.
	other := seedUser(store, "other@example.com")
	_, err = svc.Create(ctx, other.Id, &dto.CreateLabelRequest{Name: "work"})
	require.NoError(t, err)
}

func TestLabelList(t *testing.T) {
	store, svc := newLabelFixture()
	ctx := context.Background()
	owner := seedUser(store, "owner@example.com")
	other := seedUser(store, "other@example.com")

	seedLabel(store, owner.Id, "work")
	seedLabel(store, owner.Id, "personal")
	seedLabel(store, other.Id, "secret")

	labels, err := svc.List(ctx, owner.Id)
	require.NoError(t, err)
	require.Len(t, labels, 2)
	// Alphabetical.
	assert.Equal(t, "personal", labels[0].Name)
	assert.Equal(t, "work", labels[1].Name)

	// Second call is served from cache and agrees with the first.
	again, err := svc.List(ctx, owner.Id)
	require.NoError(t, err)
	assert.Equal(t, len(labels), len(again))
}

func TestLabelUpdate(t *testing.T) {
	store, svc := newLabelFixture()
	ctx := context.Background()
	owner := seedUser(store, "owner@example.com")
	other := seedUser(store, "other@example.com")

	work := seedLabel(store, owner.Id, "work")
	seedLabel(store, owner.Id, "personal")

	t.Run("rename to taken name", func(t *testing.T) {
		_, err := svc.Update(ctx, owner.Id, &dto.UpdateLabelRequest{Id: work.Id, Name: "personal"})
		assertAppErrCode(t, err, apperror.CodeDuplicateName)
	})

	t.Run("rename", func(t *testing.T) {
		resp, err := svc.Update(ctx, owner.Id, &dto.UpdateLabelRequest{Id: work.Id, Name: "office"})
		require.NoError(t, err)
		assert.Equal(t, "office", resp.Name)
		assert.NotNil(t, resp.UpdatedAt)
	})

	t.Run("not the owner", func(t *testing.T) {
		_, err := svc.Update(ctx, other.Id, &dto.UpdateLabelRequest{Id: work.Id, Name: "stolen"})
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})
}

func TestLabelDeleteCascades(t *testing.T) {
	store, svc := newLabelFixture()
	ctx := context.Background()
	owner := seedUser(store, "owner@example.com")

	label := seedLabel(store, owner.Id, "work")
	note := seedNote(store, owner.Id, "note")
	store.noteLabels = append(store.noteLabels, &entity.NoteLabel{
		Id:      uuid.New(),
		NoteId:  note.Id,
		LabelId: label.Id,
	})

	require.NoError(t, svc.Delete(ctx, owner.Id, label.Id))
	assert.Empty(t, store.labels)
	assert.Empty(t, store.noteLabels)
	// The note itself is untouched.
	assert.NotNil(t, findNote(store, note.Id))

	err := svc.Delete(ctx, owner.Id, label.Id)
	assertAppErrCode(t, err, apperror.CodeNotFound)
}

func TestLabelAttachDetach(t *testing.T) {
	store, svc := newLabelFixture()
	ctx := context.Background()
	owner := seedUser(store, "owner@example.com")
	other := seedUser(store, "other@example.com")

	label := seedLabel(store, owner.Id, "work")
	note := seedNote(store, owner.Id, "note")
	foreignNote := seedNote(store, other.Id, "not yours")

	t.Run("attach", func(t *testing.T) {
		err := svc.Attach(ctx, owner.Id, &dto.AttachLabelRequest{NoteId: note.Id, LabelId: label.Id})
		require.NoError(t, err)
		assert.Len(t, store.noteLabels, 1)
	})

	t.Run("attach twice", func(t *testing.T) {
		err := svc.Attach(ctx, owner.Id, &dto.AttachLabelRequest{NoteId: note.Id, LabelId: label.Id})
		assertAppErrCode(t, err, apperror.CodeAlreadyLabeled)
	})

	t.Run("attach to a note you do not own", func(t *testing.T) {
		err := svc.Attach(ctx, owner.Id, &dto.AttachLabelRequest{NoteId: foreignNote.Id, LabelId: label.Id})
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})

	t.Run("detach", func(t *testing.T) {
		err := svc.Detach(ctx, owner.Id, note.Id, label.Id)
		require.NoError(t, err)
		assert.Empty(t, store.noteLabels)
	})

	t.Run("detach when not attached", func(t *testing.T) {
		err := svc.Detach(ctx, owner.Id, note.Id, label.Id)
		assertAppErrCode(t, err, apperror.CodeNotFound)
	})
}
