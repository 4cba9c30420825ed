package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/google/uuid"
)

// checkStatus converts a non-success envelope into an error
func checkStatus[T any](out *ApiResponse[T], action string) error {
	switch out.Status {
	case api_types.StatusFail:
		return fmt.Errorf("failed to %s: %s", action, out.Message)
	case api_types.StatusError:
		return fmt.Errorf("error trying to %s (%s): %v", action, out.Message, out.Error)
	}
	return nil
}

// Health checks that the backend is running
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out ApiResponse[HealthResponse]
	if err := c.NewRequest(ctx, http.MethodGet, "/api/health", nil, &out).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "get health"); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// CreateMemorandum stores a new memorandum. The backend assigns its identifier.
func (c *Client) CreateMemorandum(ctx context.Context, req *MemorandumRequest) (*memorandum.Memorandum, error) {
	path := "/api/memorandums"

	var out ApiResponse[memorandum.Memorandum]
	if err := c.NewRequest(ctx, http.MethodPost, path, req, &out).WithApiKey(c.apiKey).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "create memorandum"); err != nil {
		return nil, err
	}

	if out.Data.Id == uuid.Nil {
		return nil, fmt.Errorf("no id returned")
	}

	return &out.Data, nil
}

// GetMemorandum retrieves a memorandum by UUID
func (c *Client) GetMemorandum(ctx context.Context, id uuid.UUID) (*memorandum.Memorandum, error) {
	path := fmt.Sprintf("/api/memorandums/%s", id)

	var out ApiResponse[memorandum.Memorandum]
	if err := c.NewRequest(ctx, http.MethodGet, path, nil, &out).WithApiKey(c.apiKey).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "get memorandum"); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// ListMemorandums lists stored memoranda
func (c *Client) ListMemorandums(ctx context.Context, opts memorandum.ListOptions) (*MemorandumListResponse, error) {
	path := "/api/memorandums"

	query := url.Values{}
	if opts.Type != nil {
		query.Set("type", strconv.Itoa(int(*opts.Type)))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}

	var out ApiResponse[MemorandumListResponse]
	if err := c.NewRequest(ctx, http.MethodGet, path, nil, &out).WithApiKey(c.apiKey).WithQuery(query).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "list memorandums"); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// UpdateMemorandum changes an existing memorandum addressed by UUID
func (c *Client) UpdateMemorandum(ctx context.Context, id uuid.UUID, req *MemorandumRequest) (*memorandum.Memorandum, error) {
	path := fmt.Sprintf("/api/memorandums/%s", id)

	var out ApiResponse[memorandum.Memorandum]
	if err := c.NewRequest(ctx, http.MethodPut, path, req, &out).WithApiKey(c.apiKey).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "update memorandum"); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// DeleteMemorandum removes a memorandum by UUID
func (c *Client) DeleteMemorandum(ctx context.Context, id uuid.UUID) error {
	path := fmt.Sprintf("/api/memorandums/%s", id)

	return c.NewRequest(ctx, http.MethodDelete, path, nil, nil).WithApiKey(c.apiKey).doJSON()
}

// ValidateMemorandum runs a rule set against a memorandum without storing it
func (c *Client) ValidateMemorandum(ctx context.Context, set memorandum.RuleSet, req *MemorandumRequest) (*ValidateResponse, error) {
	path := "/api/memorandums/validate"
	query := url.Values{"rule_set": []string{string(set)}}

	var out ApiResponse[ValidateResponse]
	if err := c.NewRequest(ctx, http.MethodPost, path, req, &out).WithApiKey(c.apiKey).WithQuery(query).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "validate memorandum"); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// GetFields retrieves the field descriptor table
func (c *Client) GetFields(ctx context.Context) ([]memorandum.FieldDescriptor, error) {
	path := "/api/memorandums/fields"

	var out ApiResponse[[]memorandum.FieldDescriptor]
	if err := c.NewRequest(ctx, http.MethodGet, path, nil, &out).WithApiKey(c.apiKey).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "get fields"); err != nil {
		return nil, err
	}

	return out.Data, nil
}

// GetTypes retrieves the memorandum types and their labels
func (c *Client) GetTypes(ctx context.Context) ([]TypeResponse, error) {
	path := "/api/memorandums/types"

	var out ApiResponse[[]TypeResponse]
	if err := c.NewRequest(ctx, http.MethodGet, path, nil, &out).WithApiKey(c.apiKey).doJSON(); err != nil {
		return nil, err
	}

	if err := checkStatus(&out, "get types"); err != nil {
		return nil, err
	}

	return out.Data, nil
}
