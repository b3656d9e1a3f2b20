package editor

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroEditorIsClosed(t *testing.T) {
	var e Editor
	assert.Equal(t, Snapshot{State: StateClosed}, e.Snapshot())
}

func TestCreateAndEditForms(t *testing.T) {
	var e Editor

	require.NoError(t, e.OpenCreate())
	assert.Equal(t, Snapshot{State: StateOpenForCreate}, e.Snapshot())

	require.NoError(t, e.OpenEdit("3"))
	assert.Equal(t, Snapshot{State: StateOpenForEdit, Target: "3"}, e.Snapshot())

	require.NoError(t, e.Close())
	assert.Equal(t, StateClosed, e.Snapshot().State)

	assert.ErrorIs(t, e.OpenEdit(""), ErrInvalidTransition)
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	var e Editor

	_, err := e.Confirm()
	assert.ErrorIs(t, err, ErrInvalidTransition, "confirm without request")

	require.NoError(t, e.RequestDelete("2"))
	assert.Equal(t, Snapshot{State: StateConfirmingDelete, Target: "2"}, e.Snapshot())

	target, err := e.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "2", target)
	assert.Equal(t, StateClosed, e.Snapshot().State)

	// ikinci confirm bir şey silmez
	_, err = e.Confirm()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelLeavesNothingPending(t *testing.T) {
	var e Editor
	require.NoError(t, e.RequestDelete("2"))
	require.NoError(t, e.Cancel())
	assert.Equal(t, StateClosed, e.Snapshot().State)

	_, err := e.Confirm()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, e.Cancel(), ErrInvalidTransition)
}

func TestPendingDeleteBlocksForms(t *testing.T) {
	var e Editor
	require.NoError(t, e.OpenEdit("1"))
	require.NoError(t, e.RequestDelete("1"))

	assert.ErrorIs(t, e.OpenCreate(), ErrInvalidTransition)
	assert.ErrorIs(t, e.OpenEdit("1"), ErrInvalidTransition)
	assert.ErrorIs(t, e.Close(), ErrInvalidTransition)

	// yeni hedef için istek hedefi değiştirir
	require.NoError(t, e.RequestDelete("5"))
	target, err := e.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "5", target)
}

func TestRegistryIsolatesOwnersAndKinds(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Do("admin-a", "restaurants", func(e *Editor) error { return e.RequestDelete("1") }))

	assert.Equal(t, Snapshot{State: StateConfirmingDelete, Target: "1"}, r.Snapshot("admin-a", "restaurants"))
	assert.Equal(t, StateClosed, r.Snapshot("admin-b", "restaurants").State)
	assert.Equal(t, StateClosed, r.Snapshot("admin-a", "blog").State)

	err := r.Do("admin-b", "restaurants", func(e *Editor) error {
		_, err := e.Confirm()
		return err
	})
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var confirmed string
	require.NoError(t, r.Do("admin-a", "restaurants", func(e *Editor) error {
		var err error
		confirmed, err = e.Confirm()
		return err
	}))
	assert.Equal(t, "1", confirmed)
	assert.Empty(t, r.editors, "closed editors are not retained")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Do("admin", "reviews", func(e *Editor) error { return e.RequestDelete("x") })
			_ = r.Do("admin", "reviews", func(e *Editor) error { return e.Cancel() })
		}()
	}
	wg.Wait()
	assert.Equal(t, StateClosed, r.Snapshot("admin", "reviews").State)
}
