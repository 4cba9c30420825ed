package memorandum_module

import (
	"context"
	"fmt"
	"log"

	memorandum_store "github.com/ethanbaker/gestuab/internal/stores/memorandum"
	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/ethanbaker/gestuab/pkg/sdk"
	"github.com/ethanbaker/gestuab/pkg/utils"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// MemorandumService validates memoranda and hands them to the store
type MemorandumService struct {
	store     memorandum.StoreInterface
	storeKind string
	fields    []memorandum.FieldDescriptor
}

var memorandumService *MemorandumService

/** ---- INIT ---- */

// Init creates the memorandum service from the global configuration
func Init(cfg *utils.Config) error {
	var err error

	// Create MySQL config
	dbConfig := mysql.Config{
		User:                 cfg.Get("MYSQL_USER"),
		Passwd:               cfg.Get("MYSQL_ROOT_PASSWORD"),
		Net:                  "tcp",
		Addr:                 fmt.Sprintf("%s:%s", cfg.GetWithDefault("MYSQL_HOST", "localhost"), cfg.GetWithDefault("MYSQL_PORT", "3306")),
		DBName:               cfg.Get("MYSQL_DATABASE"),
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	// Create store
	var store memorandum.StoreInterface
	storeKind := "mysql"
	if dbConfig.DBName != "" {
		// Create sql store
		if store, err = memorandum_store.NewStore(dbConfig.FormatDSN()); err != nil {
			return err
		}
	} else {
		// Fallback to in-memory store
		log.Println("[MEMORANDUM]: Warning, MYSQL_DATABASE not set, using in-memory store (data will not persist across restarts)")
		store = memorandum_store.NewInMemoryStore()
		storeKind = "memory"
	}

	// Load field descriptors, applying overrides when configured
	fields := memorandum.Fields()
	if path := cfg.Get("MEMORANDUM_FIELDS_PATH"); path != "" {
		if fields, err = memorandum.LoadFields(path); err != nil {
			store.Close()
			return fmt.Errorf("failed to load memorandum fields: %w", err)
		}
		log.Printf("[MEMORANDUM]: Loaded field overrides from %s", path)
	}

	InitWithStore(store, storeKind, fields)
	return nil
}

// InitWithStore creates the memorandum service on top of an existing store
func InitWithStore(store memorandum.StoreInterface, storeKind string, fields []memorandum.FieldDescriptor) {
	if fields == nil {
		fields = memorandum.Fields()
	}

	memorandumService = &MemorandumService{
		store:     store,
		storeKind: storeKind,
		fields:    fields,
	}
}

// Close releases the store of the running service
func Close() error {
	if memorandumService == nil {
		return nil
	}
	return memorandumService.store.Close()
}

// StoreKind returns the kind of store backing the service ("mysql" or "memory")
func StoreKind() string {
	if memorandumService == nil {
		return ""
	}
	return memorandumService.storeKind
}

/** ---- SERVICE METHODS ---- */

// Create validates a new memorandum with the default rule set and stores it.
// Validation failures are returned as memorandum.ValidationErrors.
func (s *MemorandumService) Create(ctx context.Context, req *sdk.MemorandumRequest) (*memorandum.Memorandum, error) {
	m := memorandum.DefaultMemorandum()
	req.ApplyTo(m)

	if failures := memorandum.Validate(m, memorandum.RuleSetDefault); len(failures) > 0 {
		return nil, failures
	}

	if err := s.store.Create(ctx, m); err != nil {
		return nil, err
	}

	log.Printf("[MEMORANDUM]: Created memorandum %s for '%s'", m.Id, m.RequesterName)
	return m, nil
}

// Update validates changes with the update rule set and stores them. The
// identifier always comes from the stored memorandum.
func (s *MemorandumService) Update(ctx context.Context, id uuid.UUID, req *sdk.MemorandumRequest) (*memorandum.Memorandum, error) {
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(m)

	if failures := memorandum.Validate(m, memorandum.RuleSetUpdate); len(failures) > 0 {
		return nil, failures
	}

	if err := s.store.Update(ctx, m); err != nil {
		return nil, err
	}

	log.Printf("[MEMORANDUM]: Updated memorandum %s", m.Id)
	return m, nil
}

// Get returns a memorandum by identifier
func (s *MemorandumService) Get(ctx context.Context, id uuid.UUID) (*memorandum.Memorandum, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a memorandum by identifier
func (s *MemorandumService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("[MEMORANDUM]: Deleted memorandum %s", id)
	return nil
}

// List returns a page of memoranda along with the number matching the filter
func (s *MemorandumService) List(ctx context.Context, opts memorandum.ListOptions) (*sdk.MemorandumListResponse, error) {
	memoranda, err := s.store.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Count(ctx, memorandum.ListOptions{Type: opts.Type})
	if err != nil {
		return nil, err
	}

	return &sdk.MemorandumListResponse{
		Memorandums: memoranda,
		Count:       len(memoranda),
		Total:       total,
		Limit:       opts.Limit,
		Offset:      opts.Offset,
	}, nil
}

// Validate runs a rule set against a request without storing anything
func (s *MemorandumService) Validate(set memorandum.RuleSet, req *sdk.MemorandumRequest) *sdk.ValidateResponse {
	m := memorandum.DefaultMemorandum()
	req.ApplyTo(m)

	failures := memorandum.Validate(m, set)
	return &sdk.ValidateResponse{
		RuleSet:  set,
		Valid:    len(failures) == 0,
		Failures: failures,
	}
}

// Fields returns the field descriptor table
func (s *MemorandumService) Fields() []memorandum.FieldDescriptor {
	return s.fields
}

// Types returns every memorandum type with its label
func (s *MemorandumService) Types() []sdk.TypeResponse {
	types := []sdk.TypeResponse{}
	for _, t := range memorandum.Types() {
		types = append(types, sdk.TypeResponse{Value: int(t), Name: t.String(), Label: t.Label()})
	}
	return types
}
