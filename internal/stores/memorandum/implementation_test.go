package memorandum

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// newDryRunStore creates a MySQL store that builds statements without a server
func newDryRunStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "gestuab:secret@tcp(127.0.0.1:3306)/gestuab?parseTime=true",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)

	store := &Store{db: db}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_ListQuery(t *testing.T) {
	store := newDryRunStore(t)
	daily := memorandum.DailyRate

	tests := []struct {
		name       string
		opts       memorandum.ListOptions
		contains   []string
		notContain []string
	}{
		{
			name:       "no options",
			opts:       memorandum.ListOptions{},
			contains:   []string{"FROM `memorandums`", "`memorandums`.`deleted_at` IS NULL", "ORDER BY created_at,id"},
			notContain: []string{"type =", "LIMIT", "OFFSET"},
		},
		{
			name:     "type and page",
			opts:     memorandum.ListOptions{Type: &daily, Limit: 2, Offset: 1},
			contains: []string{"type = 1", "LIMIT 2", "OFFSET 1", "ORDER BY created_at,id"},
		},
		{
			name:       "limit only",
			opts:       memorandum.ListOptions{Limit: 10},
			contains:   []string{"LIMIT 10"},
			notContain: []string{"OFFSET"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sql := store.db.ToSQL(func(tx *gorm.DB) *gorm.DB {
				return listQuery(tx, test.opts).Find(&[]MemorandumModel{})
			})

			for _, s := range test.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range test.notContain {
				assert.NotContains(t, sql, s)
			}
		})
	}
}

func TestStore_CountQueryIgnoresPaging(t *testing.T) {
	store := newDryRunStore(t)
	general := memorandum.General

	sql := store.db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var count int64
		return filterQuery(tx, memorandum.ListOptions{Type: &general, Limit: 5, Offset: 3}).Count(&count)
	})

	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, "type = 0")
	assert.Contains(t, sql, "`memorandums`.`deleted_at` IS NULL")
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
}

func TestStore_UpdateQuery(t *testing.T) {
	store := newDryRunStore(t)
	m := newMemo("maria.silva", memorandum.DailyRate)
	m.StartDate = strings.Repeat("1", 80)

	sql := store.db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return updateQuery(tx, m)
	})

	assert.Contains(t, sql, "UPDATE `memorandums` SET")
	for _, column := range []string{"observation", "destiny", "start_date", "finish_date", "requester_name", "bank_account", "covenant_number", "type", "updated_at"} {
		assert.Contains(t, sql, "`"+column+"`=", column)
	}
	assert.Contains(t, sql, m.StartDate)
	assert.Contains(t, sql, m.Id.String())
	assert.Contains(t, sql, "`memorandums`.`deleted_at` IS NULL")

	// The ID only addresses the row
	assert.NotContains(t, sql, "`id`=")
}

func TestStore_CreateInvalid(t *testing.T) {
	store := newDryRunStore(t)
	ctx := context.Background()

	assert.Error(t, store.Create(ctx, nil))

	m := newMemo("maria.silva", memorandum.General)
	m.Id = uuid.Nil
	assert.Error(t, store.Create(ctx, m))

	assert.Error(t, store.Update(ctx, nil))
}

func TestMemorandumModel_Columns(t *testing.T) {
	s, err := schema.Parse(&MemorandumModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, "memorandums", s.Table)

	// Fields without a length rule must hold values of any length
	for _, column := range []string{"observation", "destiny", "start_date", "finish_date", "bank_account", "covenant_number"} {
		field := s.LookUpField(column)
		require.NotNil(t, field, column)
		assert.Equal(t, schema.DataType("text"), field.DataType, column)
		assert.Zero(t, field.Size, column)
	}

	requester := s.LookUpField("requester_name")
	require.NotNil(t, requester)
	assert.Equal(t, 50, requester.Size)

	id := s.LookUpField("id")
	require.NotNil(t, id)
	assert.True(t, id.PrimaryKey)
}
