package sdk

import (
	"encoding/json"
	"net/http"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/ethanbaker/gestuab/pkg/memorandum"
)

// ApiResponse represents a standard API response structure
type ApiResponse[T any] struct {
	Status  api_types.StatusType `json:"status"`          // Status message
	Code    int                  `json:"code"`            // Status code
	Message string               `json:"message"`         // Human-readable message
	Data    T                    `json:"data,omitempty"`  // Optional data field for successful responses
	Error   any                  `json:"error,omitempty"` // Optional errors field for error responses
}

// AsGinResponse converts the ApiResponse to a format suitable for Gin framework
func (r ApiResponse[T]) AsGinResponse() (int, any) {
	return r.Code, r
}

// AsJSON converts the ApiResponse to a format suitable for JSON responses
func (r ApiResponse[T]) AsJSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NewSuccess(message string) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  api_types.StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
	}
}

func NewSuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Status:  api_types.StatusSuccess,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	}
}

// NewCreatedResponse is a success response for a newly stored resource
func NewCreatedResponse[T any](message string, data T) ApiResponse[T] {
	res := NewSuccessResponse(message, data)
	res.Code = http.StatusCreated
	return res
}

// NewFailResponse reports a request rejected because of its content, such as
// a memorandum that did not pass validation
func NewFailResponse(code int, message string, failures any) ApiResponse[any] {
	return ApiResponse[any]{
		Status:  api_types.StatusFail,
		Code:    code,
		Message: message,
		Error:   failures,
	}
}

func NewErrorResponse(code int, message string, err any) ApiResponse[any] {
	// Errors do not marshal to JSON, so send their text
	if e, ok := err.(error); ok {
		err = e.Error()
	}

	return ApiResponse[any]{
		Status:  api_types.StatusError,
		Code:    code,
		Message: message,
		Error:   err,
	}
}

/** Requests */

// MemorandumRequest is the body used to create or update a memorandum. The
// identifier is never taken from the body.
type MemorandumRequest struct {
	Observation    string                    `json:"observation"`
	Destiny        string                    `json:"destiny"`
	StartDate      string                    `json:"start_date"`
	FinishDate     string                    `json:"finish_date"`
	RequesterName  string                    `json:"requester_name"`
	BankAccount    string                    `json:"bank_account"`
	CovenantNumber string                    `json:"covenant_number"`
	Type           memorandum.MemorandumType `json:"type"`
}

// NewMemorandumRequest copies the mutable fields of a memorandum into a request
func NewMemorandumRequest(m *memorandum.Memorandum) *MemorandumRequest {
	return &MemorandumRequest{
		Observation:    m.Observation,
		Destiny:        m.Destiny,
		StartDate:      m.StartDate,
		FinishDate:     m.FinishDate,
		RequesterName:  m.RequesterName,
		BankAccount:    m.BankAccount,
		CovenantNumber: m.CovenantNumber,
		Type:           m.Type,
	}
}

// ApplyTo copies the request fields onto a memorandum, leaving its identifier as is
func (r *MemorandumRequest) ApplyTo(m *memorandum.Memorandum) {
	m.Observation = r.Observation
	m.Destiny = r.Destiny
	m.StartDate = r.StartDate
	m.FinishDate = r.FinishDate
	m.RequesterName = r.RequesterName
	m.BankAccount = r.BankAccount
	m.CovenantNumber = r.CovenantNumber
	m.Type = r.Type
}

/** Responses */

// MemorandumListResponse is returned when listing memoranda
type MemorandumListResponse struct {
	Memorandums []*memorandum.Memorandum `json:"memorandums"`
	Count       int                      `json:"count"`  // Number of memoranda in this page
	Total       int64                    `json:"total"`  // Number of stored memoranda matching the type filter
	Limit       int                      `json:"limit"`  // Page size requested, 0 for none
	Offset      int                      `json:"offset"` // Page offset requested
}

// ValidateResponse is returned by the validate endpoint
type ValidateResponse struct {
	RuleSet  memorandum.RuleSet          `json:"rule_set"`
	Valid    bool                        `json:"valid"`
	Failures memorandum.ValidationErrors `json:"failures"`
}

// TypeResponse describes one memorandum type
type TypeResponse struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

/** Errors */

// ValidationError is returned by the client when the server rejects a
// memorandum because it failed validation
type ValidationError struct {
	Message  string
	Failures memorandum.ValidationErrors
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message + ": " + e.Failures.Error()
}
