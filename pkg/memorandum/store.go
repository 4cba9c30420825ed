package memorandum

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no memorandum has the requested identifier
var ErrNotFound = errors.New("memorandum not found")

// ListOptions filters and pages a memorandum listing
type ListOptions struct {
	Type   *MemorandumType // Only return memoranda of this type
	Limit  int             // Maximum number of results, 0 for no limit
	Offset int             // Number of results to skip
}

// StoreInterface defines the storage operations for memoranda
type StoreInterface interface {
	Create(ctx context.Context, m *Memorandum) error
	Get(ctx context.Context, id uuid.UUID) (*Memorandum, error)
	Update(ctx context.Context, m *Memorandum) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, opts ListOptions) ([]*Memorandum, error)
	Count(ctx context.Context, opts ListOptions) (int64, error) // Applies only the type filter of opts
	Close() error
}
