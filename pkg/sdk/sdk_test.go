package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethanbaker/gestuab/internal/api"
	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/ethanbaker/gestuab/pkg/sdk"
	"github.com/ethanbaker/gestuab/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts the API on an in-memory store and returns a client for it
func newTestClient(t *testing.T) *sdk.Client {
	t.Helper()

	cfg := utils.NewConfig(map[string]string{"GIN_MODE": "test"})
	engine, err := api.NewEngine(cfg)
	require.NoError(t, err)

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return sdk.NewClient(server.URL, "test-key").WithHTTPClient(server.Client())
}

func TestClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "memory", health.Store)

	// Create
	m := memorandum.DefaultMemorandum()
	m.RequesterName = "john.doe123"
	m.Observation = "trip"
	m.Destiny = "city"
	created, err := client.CreateMemorandum(ctx, sdk.NewMemorandumRequest(m))
	require.NoError(t, err)
	assert.NotEqual(t, m.Id, created.Id, "the server assigns its own id")

	// Get
	got, err := client.GetMemorandum(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	// Update
	req := sdk.NewMemorandumRequest(got)
	req.Type = memorandum.DailyRate
	updated, err := client.UpdateMemorandum(ctx, created.Id, req)
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, memorandum.DailyRate, updated.Type)

	// List
	daily := memorandum.DailyRate
	list, err := client.ListMemorandums(ctx, memorandum.ListOptions{Type: &daily, Limit: 10})
	require.NoError(t, err)
	require.Len(t, list.Memorandums, 1)
	assert.Equal(t, created.Id, list.Memorandums[0].Id)

	// Delete
	require.NoError(t, client.DeleteMemorandum(ctx, created.Id))

	_, err = client.GetMemorandum(ctx, created.Id)
	var statusErr *sdk.StatusError
	require.True(t, errors.As(err, &statusErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestClient_ValidationError(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.CreateMemorandum(ctx, &sdk.MemorandumRequest{
		RequesterName: "ab",
		Observation:   "trip",
		Destiny:       "city",
	})

	var verr *sdk.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, memorandum.ValidationErrors{
		{Field: "RequesterName", Message: memorandum.MessageRequesterLength},
	}, verr.Failures)

	_, err = client.UpdateMemorandum(ctx, uuid.New(), &sdk.MemorandumRequest{})
	var statusErr *sdk.StatusError
	require.True(t, errors.As(err, &statusErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestClient_Metadata(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	fields, err := client.GetFields(ctx)
	require.NoError(t, err)
	assert.Equal(t, memorandum.Fields(), fields)

	types, err := client.GetTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Diária", types[1].Label)

	res, err := client.ValidateMemorandum(ctx, memorandum.RuleSetUpdate, &sdk.MemorandumRequest{})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, memorandum.RuleSetUpdate, res.RuleSet)
	assert.Len(t, res.Failures, 5)
}
