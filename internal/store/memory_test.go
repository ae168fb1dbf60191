package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Rank    int    `json:"rank"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := testDoc{Name: "40-Mile Air", Country: "United States", Rank: 3}
	require.NoError(t, s.Insert(ctx, KindAirline, "airline_10", in))

	var out testDoc
	require.NoError(t, s.Get(ctx, KindAirline, "airline_10", &out))
	assert.Equal(t, in, out)
}

func TestMemoryStoreInsertExisting(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, KindAirline, "a", testDoc{Name: "one"}))
	err := s.Insert(ctx, KindAirline, "a", testDoc{Name: "two"})
	assert.ErrorIs(t, err, ErrExists)

	// the original document survives the rejected insert
	var out testDoc
	require.NoError(t, s.Get(ctx, KindAirline, "a", &out))
	assert.Equal(t, "one", out.Name)
}

func TestMemoryStoreUpsertReplaces(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, KindAirline, "a", testDoc{Name: "one"}))
	require.NoError(t, s.Upsert(ctx, KindAirline, "a", testDoc{Name: "two"}))

	var out testDoc
	require.NoError(t, s.Get(ctx, KindAirline, "a", &out))
	assert.Equal(t, "two", out.Name)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.ErrorIs(t, s.Delete(ctx, KindAirline, "missing"), ErrNotFound)

	require.NoError(t, s.Insert(ctx, KindAirline, "a", testDoc{Name: "one"}))
	require.NoError(t, s.Delete(ctx, KindAirline, "a"))
	assert.ErrorIs(t, s.Get(ctx, KindAirline, "a", &testDoc{}), ErrNotFound)
}

func TestMemoryStoreKindsAreIsolated(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, KindAirline, "a", testDoc{Name: "carrier"}))
	assert.ErrorIs(t, s.Get(ctx, KindAirport, "a", &testDoc{}), ErrNotFound)
}

func TestMemoryStoreQueryFilterAndPagination(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	docs := []testDoc{
		{Name: "a", Country: "France", Rank: 0},
		{Name: "b", Country: "France", Rank: 1},
		{Name: "c", Country: "Kenya", Rank: 2},
		{Name: "d", Country: "France", Rank: 3},
		{Name: "e", Country: "France", Rank: 4},
	}
	for i, d := range docs {
		require.NoError(t, s.Insert(ctx, KindAirline, string(rune('a'+i)), d))
	}

	var france []testDoc
	require.NoError(t, s.Query(ctx, KindAirline, map[string]any{"country": "France"}, 0, 0, &france))
	require.Len(t, france, 4)
	assert.Equal(t, "a", france[0].Name)

	// int filter values match after the JSON round-trip
	var ranked []testDoc
	require.NoError(t, s.Query(ctx, KindAirline, map[string]any{"rank": 2}, 0, 0, &ranked))
	require.Len(t, ranked, 1)
	assert.Equal(t, "c", ranked[0].Name)

	// non-overlapping pages over a stable set
	var page1, page2 []testDoc
	require.NoError(t, s.Query(ctx, KindAirline, map[string]any{"country": "France"}, 2, 0, &page1))
	require.NoError(t, s.Query(ctx, KindAirline, map[string]any{"country": "France"}, 2, 2, &page2))
	require.Len(t, page1, 2)
	require.Len(t, page2, 2)
	assert.NotEqual(t, page1[0].Name, page2[0].Name)
	assert.NotEqual(t, page1[1].Name, page2[1].Name)

	// offset past the end is an empty result, not an error
	var empty []testDoc
	require.NoError(t, s.Query(ctx, KindAirline, nil, 2, 50, &empty))
	assert.Empty(t, empty)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, KindAirline, "a", testDoc{Name: "one"}))

	var first testDoc
	require.NoError(t, s.Get(ctx, KindAirline, "a", &first))
	first.Name = "mutated"

	var second testDoc
	require.NoError(t, s.Get(ctx, KindAirline, "a", &second))
	assert.Equal(t, "one", second.Name)
}
