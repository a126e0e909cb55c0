package signup

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/common"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}
func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memStore) Clear(_ context.Context) error {
	m.data = map[string][]byte{}
	return nil
}
func (m *memStore) Close() error { return nil }

type stubRegistrar struct {
	err error
	got models.SignupData
}

func (s *stubRegistrar) Signup(_ context.Context, data models.SignupData) error {
	s.got = data
	return s.err
}

func TestWizardStepValidation(t *testing.T) {
	ctx := context.Background()
	w := New(ctx, newMemStore())

	require.Equal(t, StepPersonal, w.Step())
	err := w.Next()
	assert.ErrorIs(t, err, common.ErrValidation)

	require.NoError(t, w.SetField(ctx, func(f *Form) { f.Name = "Jane" }))
	require.NoError(t, w.Next())
	require.Equal(t, StepContact, w.Step())

	require.NoError(t, w.SetField(ctx, func(f *Form) { f.Email = "not-an-email" }))
	assert.ErrorIs(t, w.Next(), common.ErrValidation)

	require.NoError(t, w.SetField(ctx, func(f *Form) { f.Email = "jane@example.com" }))
	require.NoError(t, w.Next())
	require.Equal(t, StepSecurity, w.Step())

	require.NoError(t, w.SetField(ctx, func(f *Form) { f.Password = "short"; f.Confirm = "short" }))
	assert.ErrorIs(t, w.Next(), common.ErrValidation)

	require.NoError(t, w.SetField(ctx, func(f *Form) { f.Password = "secret1"; f.Confirm = "other" }))
	assert.ErrorIs(t, w.Next(), common.ErrValidation)
}

func TestWizardBack(t *testing.T) {
	ctx := context.Background()
	w := New(ctx, newMemStore())

	require.NoError(t, w.SetField(ctx, func(f *Form) { f.Name = "Jane" }))
	require.NoError(t, w.Next())
	w.Back()
	assert.Equal(t, StepPersonal, w.Step())
	assert.Equal(t, "Jane", w.Form().Name)

	w.Back()
	assert.Equal(t, StepPersonal, w.Step())
}

func TestWizardDraftResume(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()

	w := New(ctx, st)
	require.NoError(t, w.SetField(ctx, func(f *Form) {
		f.Name = "Jane"
		f.Email = "jane@example.com"
	}))

	resumed := New(ctx, st)
	assert.Equal(t, "Jane", resumed.Form().Name)
	assert.Equal(t, "jane@example.com", resumed.Form().Email)
}

func TestWizardCorruptDraftDropped(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	st.data[store.KeySignupDraft] = []byte("{not json")

	w := New(ctx, st)
	assert.Equal(t, Form{}, w.Form())
	_, ok := st.data[store.KeySignupDraft]
	assert.False(t, ok)
}

func TestWizardComplete(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	w := New(ctx, st)

	reg := &stubRegistrar{}

	assert.ErrorIs(t, w.Complete(ctx, reg), ErrNotLastStep)

	require.NoError(t, w.SetField(ctx, func(f *Form) {
		f.Name = "  Jane  "
		f.Email = "jane@example.com"
		f.Password = "secret1"
		f.Confirm = "secret1"
	}))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.Equal(t, StepSecurity, w.Step())

	require.NoError(t, w.Complete(ctx, reg))
	assert.Equal(t, "Jane", reg.got.Name)
	assert.Equal(t, "jane@example.com", reg.got.Email)

	raw, err := st.Get(ctx, store.KeySignupDraft)
	require.NoError(t, err)
	assert.Nil(t, raw, "draft must be removed after successful signup")
}

func TestWizardCompleteFailureKeepsDraft(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	w := New(ctx, st)

	require.NoError(t, w.SetField(ctx, func(f *Form) {
		f.Name = "Jane"
		f.Email = "jane@example.com"
		f.Password = "secret1"
		f.Confirm = "secret1"
	}))
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	reg := &stubRegistrar{err: common.ErrEmailExists}
	assert.ErrorIs(t, w.Complete(ctx, reg), common.ErrEmailExists)

	raw, err := st.Get(ctx, store.KeySignupDraft)
	require.NoError(t, err)
	var f Form
	require.NoError(t, json.Unmarshal(raw, &f))
	assert.Equal(t, "Jane", f.Name)
}
