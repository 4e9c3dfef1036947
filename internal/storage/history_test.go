package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RecordAndRecent(t *testing.T) {
	h, err := NewHistory("sqlite:///:memory:")
	require.NoError(t, err)
	defer h.Close()

	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, h.Record(ctx, RunRecord{
		PRNumber:   7,
		Kind:       RunKindSuggest,
		TotalItems: 3,
		Critical:   1,
		Bugs:       2,
		CreatedAt:  base,
	}))
	require.NoError(t, h.Record(ctx, RunRecord{
		PRNumber:  7,
		Kind:      RunKindStatus,
		CreatedAt: base.Add(time.Minute),
	}))

	records, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.Equal(t, RunKindStatus, records[0].Kind)
	assert.Equal(t, RunKindSuggest, records[1].Kind)

	suggest := records[1]
	assert.NotEmpty(t, suggest.ID, "a UUID is assigned when the record has none")
	assert.Equal(t, 7, suggest.PRNumber)
	assert.Equal(t, 3, suggest.TotalItems)
	assert.Equal(t, 1, suggest.Critical)
	assert.Equal(t, 2, suggest.Bugs)
	assert.True(t, suggest.CreatedAt.Equal(base))
}

func TestHistory_RecentRespectsLimit(t *testing.T) {
	h, err := NewHistory("sqlite:///:memory:")
	require.NoError(t, err)
	defer h.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, h.Record(ctx, RunRecord{PRNumber: i, Kind: RunKindSuggest}))
	}

	records, err := h.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHistory_FileBacked(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	url := "sqlite:////" + dbPath[1:]

	h, err := NewHistory(url)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, h.Record(ctx, RunRecord{PRNumber: 1, Kind: RunKindSuggest}))
	require.NoError(t, h.Close())

	// Reopening the same file sees the recorded run
	h2, err := NewHistory(url)
	require.NoError(t, err)
	defer h2.Close()

	records, err := h2.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].PRNumber)
}
