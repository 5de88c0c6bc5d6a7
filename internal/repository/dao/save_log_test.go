package dao

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	require.NoError(t, InitTables(db))
	return db
}

func TestDefaultSaveLogDAO_Insert(t *testing.T) {
	t.Parallel()

	d := NewDefaultSaveLogDAO(newTestDB(t))

	log, err := d.Insert(t.Context(), ShippingSaveLog{
		Kind:     "rate",
		Operator: "alice",
		Deleted:  `["GB"]`,
		Upserted: `[]`,
		Status:   "success",
	})
	require.NoError(t, err)
	assert.NotZero(t, log.Id)
	assert.NotZero(t, log.CreatedAt)
	assert.Equal(t, log.CreatedAt, log.UpdatedAt)
}

func TestDefaultSaveLogDAO_Find(t *testing.T) {
	t.Parallel()

	d := NewDefaultSaveLogDAO(newTestDB(t))
	for _, kind := range []string{"rate", "time", "rate", "rate"} {
		_, err := d.Insert(t.Context(), ShippingSaveLog{Kind: kind, Status: "success"})
		require.NoError(t, err)
	}

	tcs := []struct {
		name    string
		kind    string
		limit   int
		wantIds []uint64
	}{
		{name: "all kinds", kind: "", limit: 10, wantIds: []uint64{4, 3, 2, 1}},
		{name: "rate only", kind: "rate", limit: 10, wantIds: []uint64{4, 3, 1}},
		{name: "limited", kind: "rate", limit: 2, wantIds: []uint64{4, 3}},
		{name: "no match", kind: "zone", limit: 10, wantIds: []uint64{}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			logs, err := d.Find(t.Context(), tc.kind, tc.limit)
			require.NoError(t, err)

			ids := make([]uint64, 0, len(logs))
			for _, l := range logs {
				ids = append(ids, l.Id)
			}
			assert.Equal(t, tc.wantIds, ids)
		})
	}
}
