package tab

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocrdesk/core/apperror"
	"ocrdesk/core/state"
)

func TestNewStore_HasOneActiveTab(t *testing.T) {
	s := NewStore()

	require.Equal(t, 1, s.Len())
	active := s.Active()
	assert.Equal(t, 0, active.ID)
	assert.Equal(t, "Scan 0", active.Label)
	assert.Equal(t, DefaultSettings(), active.Settings)
	assert.Nil(t, active.Image)
	assert.Empty(t, active.Text)
}

func TestStore_CreateTab(t *testing.T) {
	s := NewStore()

	t1 := s.CreateTab()
	t2 := s.CreateTab()

	assert.Equal(t, 1, t1.ID)
	assert.Equal(t, 2, t2.ID)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, t2.ID, s.ActiveID(), "new tab becomes active")
	assert.Equal(t, "Scan 2", t2.Label)
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	s := NewStore()
	t1 := s.CreateTab()

	closed, err := s.CloseTab(t1.ID)
	require.NoError(t, err)
	require.True(t, closed)

	t2 := s.CreateTab()
	assert.Greater(t, t2.ID, t1.ID)
}

func TestStore_CloseLastTabIsNoOp(t *testing.T) {
	s := NewStore()
	only := s.Active()

	closed, err := s.CloseTab(only.ID)

	require.NoError(t, err)
	assert.False(t, closed)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, only.ID, s.ActiveID())
}

func TestStore_CloseUnknownTab(t *testing.T) {
	s := NewStore()
	s.CreateTab()

	_, err := s.CloseTab(42)
	assert.ErrorIs(t, err, ErrTabNotFound)
	assert.True(t, apperror.Is(err, apperror.KindState))
	assert.Equal(t, 2, s.Len())
}

func TestStore_CloseActiveTabSelectsAdjacent(t *testing.T) {
	tests := []struct {
		name       string
		tabs       int
		active     int
		close      int
		wantActive int
	}{
		{"close middle active selects next", 3, 1, 1, 2},
		{"close last active selects previous", 3, 2, 2, 1},
		{"close first active selects next", 3, 0, 0, 1},
		{"close inactive keeps active", 3, 0, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			for i := 1; i < tt.tabs; i++ {
				s.CreateTab()
			}
			require.True(t, s.SetActive(tt.active))

			closed, err := s.CloseTab(tt.close)
			require.NoError(t, err)
			require.True(t, closed)
			assert.Equal(t, tt.wantActive, s.ActiveID())
		})
	}
}

func TestStore_CreateThenCloseRestoresOriginal(t *testing.T) {
	s := NewStore()
	original := s.Active()
	require.NoError(t, s.Update(original.ID, func(tb *Tab) {
		tb.Text = "kept"
		tb.Image = image.NewGray(image.Rect(0, 0, 2, 2))
		tb.Settings.SegmentationMode = 6
	}))
	before := s.Active()

	created := s.CreateTab()
	closed, err := s.CloseTab(created.ID)

	require.NoError(t, err)
	require.True(t, closed)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, original.ID, s.ActiveID())
	assert.Equal(t, before, s.Active())
}

func TestStore_SetActive(t *testing.T) {
	s := NewStore()
	s.CreateTab()

	assert.True(t, s.SetActive(0))
	assert.Equal(t, 0, s.ActiveID())

	assert.False(t, s.SetActive(-1), "control position has no id")
	assert.False(t, s.SetActive(99))
	assert.Equal(t, 0, s.ActiveID(), "failed SetActive leaves active tab")
}

func TestStore_Get(t *testing.T) {
	s := NewStore()
	created := s.CreateTab()

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.NotSame(t, created, got)

	_, err = s.Get(77)
	assert.ErrorIs(t, err, ErrTabNotFound)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	s := NewStore()

	got, err := s.Get(0)
	require.NoError(t, err)
	got.Text = "changed outside the lock"
	got.Settings.SegmentationMode = 11
	s.Active().Text = "also outside"
	s.List()[0].Label = "renamed"

	stored, err := s.Get(0)
	require.NoError(t, err)
	assert.Empty(t, stored.Text)
	assert.Equal(t, DefaultSegmentationMode, stored.Settings.SegmentationMode)
	assert.Equal(t, "Scan 0", stored.Label)
}

func TestStore_Update(t *testing.T) {
	s := NewStore()

	err := s.Update(0, func(tb *Tab) { tb.Text = "hello" })
	require.NoError(t, err)
	assert.Equal(t, "hello", s.Active().Text)

	err = s.Update(5, func(tb *Tab) { t.Fatal("must not be called") })
	assert.ErrorIs(t, err, ErrTabNotFound)
}

func TestStore_ListOrderAndIndex(t *testing.T) {
	s := NewStore()
	s.CreateTab()
	s.CreateTab()
	_, err := s.CloseTab(1)
	require.NoError(t, err)

	ids := []int{}
	for _, tb := range s.List() {
		ids = append(ids, tb.ID)
	}
	assert.Equal(t, []int{0, 2}, ids)
	assert.Equal(t, 1, s.IndexOf(2))
	assert.Equal(t, -1, s.IndexOf(1))
}

func TestStore_Enablement(t *testing.T) {
	s := NewStore()
	assert.Equal(t, state.Enablement{}, s.Enablement())

	require.NoError(t, s.Update(0, func(tb *Tab) {
		tb.Image = image.NewGray(image.Rect(0, 0, 1, 1))
	}))
	assert.Equal(t, state.Enablement{CanProcess: true}, s.Enablement())

	require.NoError(t, s.Update(0, func(tb *Tab) { tb.Text = "A" }))
	assert.Equal(t, state.Enablement{CanProcess: true, CanSave: true, CanSaveAll: true}, s.Enablement())

	// A new empty tab keeps save-all enabled through the first tab
	s.CreateTab()
	assert.Equal(t, state.Enablement{CanSaveAll: true}, s.Enablement())
}
