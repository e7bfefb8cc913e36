package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riordanpawley/grove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(title string) *domain.Task {
	return &domain.Task{ID: uuid.New(), Title: title, CreatedAt: time.Now()}
}

func TestStore_AddAndFind(t *testing.T) {
	s := New()
	a := newTask("a")
	b := newTask("b")

	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, uint64(1), a.Seq)
	assert.Equal(t, uint64(2), b.Seq)

	got, err := s.Find(b.ID)
	require.NoError(t, err)
	assert.Same(t, b, got, "Find should return the live task")
}

func TestStore_AddDuplicateIdentity(t *testing.T) {
	s := New()
	a := newTask("a")
	require.NoError(t, s.Add(a))

	dup := &domain.Task{ID: a.ID, Title: "imposter"}
	err := s.Add(dup)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateIdentity))
	assert.Equal(t, 1, s.Len(), "failed add must not change the store")

	got, err := s.Find(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
}

func TestStore_AddWithoutIdentity(t *testing.T) {
	s := New()
	err := s.Add(&domain.Task{Title: "anon"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Zero(t, s.Len())
}

func TestStore_FindNotFound(t *testing.T) {
	s := New()
	_, err := s.Find(uuid.New())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := New()
	a := newTask("a")
	a.Subtasks = []domain.Subtask{{ID: uuid.New(), Title: "sub"}}
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(newTask("b")))

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].Title)
	assert.Equal(t, "b", snap[1].Title)

	snap[0].Title = "changed"
	snap[0].Subtasks[0].Title = "changed"

	assert.Equal(t, "a", a.Title)
	assert.Equal(t, "sub", a.Subtasks[0].Title)
}
