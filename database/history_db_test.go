package database

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docparser/classification"
)

func setupTestHistoryDB(t *testing.T) *HistoryDB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "history_test.db")
	db, err := NewHistoryDBWithConfig(dbPath, DBConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestHistoryDB_SaveAndList(t *testing.T) {
	db := setupTestHistoryDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveResults(ctx, "req-1", "7707083893", classification.Classify("7707083893")))
	require.NoError(t, db.SaveResults(ctx, "req-2", "garbage", classification.Classify("garbage")))

	count, err := db.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	records, err := db.ListHistory(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Новые записи первыми
	assert.Equal(t, "req-2", records[0].RequestID)
	assert.Equal(t, string(classification.DocTypeNotFound), records[0].DocType)
	assert.False(t, records[0].IsValidationApplicable)

	last := records[3]
	assert.Equal(t, "req-1", last.RequestID)
	assert.Equal(t, string(classification.DocTypeINNUL), last.DocType)
	assert.Equal(t, "7707083893", last.Value)
	assert.True(t, last.IsValid)
	assert.False(t, last.CreatedAt.IsZero())
}

func TestHistoryDB_Pagination(t *testing.T) {
	db := setupTestHistoryDB(t)
	ctx := context.Background()

	for _, input := range []string{"1027700132195", "304500116000157", "11223344595"} {
		require.NoError(t, db.SaveResults(ctx, input, input, classification.Classify(input)))
	}

	page, err := db.ListHistory(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "304500116000157", page[0].Input)
	assert.Equal(t, "1027700132195", page[1].Input)
}

func TestHistoryDB_SaveEmpty(t *testing.T) {
	db := setupTestHistoryDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveResults(ctx, "req", "x", nil))

	count, err := db.CountHistory(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestHistoryDB_StatisticsByType(t *testing.T) {
	db := setupTestHistoryDB(t)
	ctx := context.Background()

	inputs := []string{"1027700132195", "1027700132194", "1037739010891", "unknown"}
	for i, input := range inputs {
		require.NoError(t, db.SaveResults(ctx, string(rune('a'+i)), input, classification.Classify(input)))
	}

	stats, err := db.StatisticsByType(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, TypeStatistics{DocType: "NOT_FOUND", Total: 1, Valid: 0, Invalid: 0}, stats[0])
	assert.Equal(t, TypeStatistics{DocType: "OGRN", Total: 3, Valid: 2, Invalid: 1}, stats[1])
}

func TestHistoryDB_StatisticsEmpty(t *testing.T) {
	db := setupTestHistoryDB(t)

	stats, err := db.StatisticsByType(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestHistoryDB_WALMode(t *testing.T) {
	db := setupTestHistoryDB(t)

	var mode string
	require.NoError(t, db.conn.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestHistoryDB_ConcurrentSaves(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history_concurrent.db")
	db, err := NewHistoryDBWithConfig(dbPath, DBConfig{MaxOpenConns: 8, MaxIdleConns: 8})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	docs := classification.Classify("11223344595")

	const workers, perWorker = 8, 10
	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				errs <- db.SaveResults(ctx, fmt.Sprintf("req-%d-%d", w, i), "11223344595", docs)
			}
		}(w)
	}

	// Чтение истории параллельно с записью
	_, err = db.StatisticsByType(ctx)
	require.NoError(t, err)

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	count, err := db.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, count)
}
