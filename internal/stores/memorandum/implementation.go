package memorandum

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Store handles storage and retrieval of memoranda using MySQL
type Store struct {
	db *gorm.DB
}

// NewStore creates a new memorandum store with MySQL connection
func NewStore(databaseURL string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return NewStoreWithDB(db)
}

// NewStoreWithDB creates a memorandum store on top of an existing GORM connection
func NewStoreWithDB(db *gorm.DB) (*Store, error) {
	store := &Store{db: db}

	// Auto-migrate tables
	if err := store.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}

	return store, nil
}

// migrate creates or updates the required database tables
func (s *Store) migrate() error {
	return s.db.AutoMigrate(&MemorandumModel{})
}

// Create stores a new memorandum
func (s *Store) Create(ctx context.Context, m *memorandum.Memorandum) error {
	if m == nil {
		return fmt.Errorf("memorandum cannot be nil")
	}
	if m.Id == uuid.Nil {
		return fmt.Errorf("memorandum id cannot be empty")
	}

	if err := s.db.WithContext(ctx).Create(toModel(m)).Error; err != nil {
		return fmt.Errorf("failed to create memorandum: %w", err)
	}

	return nil
}

// Get retrieves a memorandum by ID
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*memorandum.Memorandum, error) {
	var model MemorandumModel
	result := s.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, memorandum.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get memorandum: %w", result.Error)
	}

	return model.toMemorandum(), nil
}

// Update replaces every mutable field of an existing memorandum. The ID is
// only used to address the row.
func (s *Store) Update(ctx context.Context, m *memorandum.Memorandum) error {
	if m == nil {
		return fmt.Errorf("memorandum cannot be nil")
	}

	result := updateQuery(s.db.WithContext(ctx), m)
	if result.Error != nil {
		return fmt.Errorf("failed to update memorandum: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Rows with unchanged values also report zero rows, so check existence
		if _, err := s.Get(ctx, m.Id); err != nil {
			return err
		}
	}

	return nil
}

// Delete soft-deletes a memorandum by ID
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&MemorandumModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete memorandum: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return memorandum.ErrNotFound
	}

	return nil
}

// List returns memoranda ordered by creation time
func (s *Store) List(ctx context.Context, opts memorandum.ListOptions) ([]*memorandum.Memorandum, error) {
	var models []MemorandumModel
	if err := listQuery(s.db.WithContext(ctx), opts).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list memoranda: %w", err)
	}

	memoranda := make([]*memorandum.Memorandum, len(models))
	for i := range models {
		memoranda[i] = models[i].toMemorandum()
	}

	return memoranda, nil
}

// Count returns the number of stored memoranda matching the type filter of
// opts. Paging options are ignored.
func (s *Store) Count(ctx context.Context, opts memorandum.ListOptions) (int64, error) {
	var count int64
	if err := filterQuery(s.db.WithContext(ctx), opts).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count memoranda: %w", err)
	}
	return count, nil
}

// filterQuery scopes a query to the memoranda selected by opts
func filterQuery(db *gorm.DB, opts memorandum.ListOptions) *gorm.DB {
	query := db.Model(&MemorandumModel{})
	if opts.Type != nil {
		query = query.Where("type = ?", int(*opts.Type))
	}
	return query
}

// listQuery adds ordering and paging to filterQuery
func listQuery(db *gorm.DB, opts memorandum.ListOptions) *gorm.DB {
	query := filterQuery(db, opts).Order("created_at").Order("id")
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	return query
}

// updateQuery writes every mutable column of m to the row with its ID
func updateQuery(db *gorm.DB, m *memorandum.Memorandum) *gorm.DB {
	return db.Model(&MemorandumModel{}).Where("id = ?", m.Id).Updates(map[string]any{
		"observation":     m.Observation,
		"destiny":         m.Destiny,
		"start_date":      m.StartDate,
		"finish_date":     m.FinishDate,
		"requester_name":  m.RequesterName,
		"bank_account":    m.BankAccount,
		"covenant_number": m.CovenantNumber,
		"type":            int(m.Type),
	})
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	return sqlDB.Close()
}
