package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daysoflight/internal/houses"
	"daysoflight/internal/model"
	"daysoflight/internal/store"
)

func TestMemoryListOrderAndCopies(t *testing.T) {
	m := NewMemory([]model.House{
		{ID: 3, Name: "House of Rongai", Order: 2, IsActive: true},
		{ID: 1, Name: "House of Thika", Order: 1, IsActive: true},
		{ID: 2, Name: "House of AIU", Order: 1},
	})

	hs, err := m.ListHouses(context.Background())
	require.NoError(t, err)
	require.Len(t, hs, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{hs[0].ID, hs[1].ID, hs[2].ID})

	hs[0].Name = "changed"
	again, _ := m.ListHouses(context.Background())
	assert.Equal(t, "House of AIU", again[0].Name)
}

func TestMemoryGetHouse(t *testing.T) {
	m := NewMemory([]model.House{{ID: 6, Name: "House of AIU"}})

	h, err := m.GetHouse(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "House of AIU", h.Name)

	_, err = m.GetHouse(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryReplaceHouses(t *testing.T) {
	m := NewMemory(nil)
	ctx := context.Background()

	err := m.ReplaceHouses(ctx, []model.House{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}}, "batch")
	assert.ErrorContains(t, err, "duplicate id")

	require.NoError(t, m.ReplaceHouses(ctx, []model.House{{ID: 5, Name: "House of Juja"}}, "batch"))
	hs, _ := m.ListHouses(ctx)
	require.Len(t, hs, 1)
	assert.Equal(t, "House of Juja", hs[0].Name)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil))
	assert.ErrorContains(t, Validate([]model.House{{ID: 0, Name: "x"}}), "positive")
	assert.ErrorContains(t, Validate([]model.House{{ID: 1}}), "name is required")
}

func TestDecodeSeed(t *testing.T) {
	hs, err := DecodeSeed([]byte(`[
		{"id": 1, "name": "House of Thika", "day": "Monday", "time": "5:00pm - 8:00pm", "location": "Thika", "order": 1},
		{"id": 6, "name": "House of AIU", "day": "Coming Soon", "time": "TBA", "is_active": false, "order": 6}
	]`))
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.True(t, hs[0].IsActive)
	assert.Equal(t, "Monday", hs[0].Day)
	assert.False(t, hs[1].IsActive)
	assert.Equal(t, 6, hs[1].Order)

	_, err = DecodeSeed([]byte(`{"id": 1}`))
	assert.ErrorContains(t, err, "decoding seed")

	_, err = DecodeSeed([]byte(`[{"id": 1}]`))
	assert.ErrorContains(t, err, "invalid seed")
}

func TestLoadSeed(t *testing.T) {
	s, err := store.NewLocal(t.TempDir())
	require.NoError(t, err)

	hs, fromStore, err := LoadSeed(s)
	require.NoError(t, err)
	assert.False(t, fromStore)
	assert.Len(t, hs, 6)

	require.NoError(t, s.Set(SeedKey, []byte(`[{"id": 9, "name": "House of Ruiru"}]`)))
	hs, fromStore, err = LoadSeed(s)
	require.NoError(t, err)
	assert.True(t, fromStore)
	require.Len(t, hs, 1)
	assert.Equal(t, "House of Ruiru", hs[0].Name)

	require.NoError(t, s.Set(SeedKey, []byte(`[`)))
	_, _, err = LoadSeed(s)
	assert.Error(t, err)
}

func TestSaveSeedRoundTrip(t *testing.T) {
	s, err := store.NewLocal(t.TempDir())
	require.NoError(t, err)

	want := []model.House{
		{ID: 9, Name: "House of Ruiru", Day: "Friday", IsActive: false, Order: 7},
		{ID: 3, Name: "House of Juja", Day: "Thursday", IsActive: true, Order: 2},
	}
	require.NoError(t, SaveSeed(s, want))

	got, fromStore, err := LoadSeed(s)
	require.NoError(t, err)
	assert.True(t, fromStore)
	assert.Equal(t, want, got)

	err = SaveSeed(s, []model.House{{ID: 4}})
	assert.ErrorContains(t, err, "name is required")
	got, _, err = LoadSeed(s)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMemoryIsRepository(t *testing.T) {
	var r Repository = NewMemory(nil)
	require.NoError(t, r.ReplaceHouses(context.Background(), houses.DefaultHouses(), "batch"))
	hs, err := r.ListHouses(context.Background())
	require.NoError(t, err)
	assert.Len(t, hs, 6)
}
