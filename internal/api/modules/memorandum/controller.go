package memorandum_module

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ethanbaker/gestuab/pkg/memorandum"
	"github.com/ethanbaker/gestuab/pkg/sdk"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetFields handles GET requests for the field descriptor table
func GetFields(c *gin.Context) {
	c.JSON(sdk.NewSuccessResponse("Fields retrieved successfully", memorandumService.Fields()).AsGinResponse())
}

// GetTypes handles GET requests for the memorandum types
func GetTypes(c *gin.Context) {
	c.JSON(sdk.NewSuccessResponse("Types retrieved successfully", memorandumService.Types()).AsGinResponse())
}

// GetDefault handles GET requests for a default, unsaved memorandum
func GetDefault(c *gin.Context) {
	c.JSON(sdk.NewSuccessResponse("Default memorandum created", memorandum.DefaultMemorandum()).AsGinResponse())
}

// ValidateMemorandum handles POST requests that validate a memorandum without saving it
func ValidateMemorandum(c *gin.Context) {
	set, err := memorandum.ParseRuleSet(c.Query("rule_set"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid rule set", err).AsGinResponse())
		return
	}

	var req sdk.MemorandumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	c.JSON(sdk.NewSuccessResponse("Memorandum validated", memorandumService.Validate(set, &req)).AsGinResponse())
}

// CreateMemorandum handles POST requests to create a memorandum
func CreateMemorandum(c *gin.Context) {
	var req sdk.MemorandumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	m, err := memorandumService.Create(c.Request.Context(), &req)
	if err != nil {
		respondWithError(c, "Failed to create memorandum", err)
		return
	}

	c.JSON(sdk.NewCreatedResponse("Memorandum created successfully", m).AsGinResponse())
}

// ListMemorandums handles GET requests to list memoranda
func ListMemorandums(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid list parameters", err).AsGinResponse())
		return
	}

	list, err := memorandumService.List(c.Request.Context(), opts)
	if err != nil {
		respondWithError(c, "Failed to list memorandums", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Memorandums retrieved successfully", list).AsGinResponse())
}

// GetMemorandum handles GET requests for a single memorandum
func GetMemorandum(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	m, err := memorandumService.Get(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, "Failed to get memorandum", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Memorandum retrieved successfully", m).AsGinResponse())
}

// UpdateMemorandum handles PUT requests to change a memorandum
func UpdateMemorandum(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req sdk.MemorandumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Could not parse request body", err).AsGinResponse())
		return
	}

	m, err := memorandumService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondWithError(c, "Failed to update memorandum", err)
		return
	}

	c.JSON(sdk.NewSuccessResponse("Memorandum updated successfully", m).AsGinResponse())
}

// DeleteMemorandum handles DELETE requests to remove a memorandum
func DeleteMemorandum(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := memorandumService.Delete(c.Request.Context(), id); err != nil {
		respondWithError(c, "Failed to delete memorandum", err)
		return
	}

	c.JSON(sdk.NewSuccess("Memorandum deleted successfully").AsGinResponse())
}

/** ---- HELPERS ---- */

// parseID reads the memorandum id path parameter, answering 400 when it is not a UUID
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(sdk.NewErrorResponse(http.StatusBadRequest, "Invalid memorandum id", err).AsGinResponse())
		return uuid.Nil, false
	}
	return id, true
}

// parseListOptions reads the type, limit and offset query parameters
func parseListOptions(c *gin.Context) (memorandum.ListOptions, error) {
	var opts memorandum.ListOptions

	if raw := c.Query("type"); raw != "" {
		var t memorandum.MemorandumType
		if n, err := strconv.Atoi(raw); err == nil {
			t = memorandum.MemorandumType(n)
			if !t.IsValid() {
				return opts, errors.New("unknown memorandum type " + raw)
			}
		} else if t, err = memorandum.ParseMemorandumType(raw); err != nil {
			return opts, err
		}
		opts.Type = &t
	}

	for key, target := range map[string]*int{"limit": &opts.Limit, "offset": &opts.Offset} {
		raw := c.Query(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return opts, errors.New(key + " must be a non-negative integer")
		}
		*target = n
	}

	return opts, nil
}

// respondWithError maps service errors onto HTTP responses
func respondWithError(c *gin.Context, message string, err error) {
	var failures memorandum.ValidationErrors
	switch {
	case errors.As(err, &failures):
		c.JSON(sdk.NewFailResponse(http.StatusUnprocessableEntity, "Memorandum is invalid", failures).AsGinResponse())
	case errors.Is(err, memorandum.ErrNotFound):
		c.JSON(sdk.NewErrorResponse(http.StatusNotFound, message, err).AsGinResponse())
	default:
		log.Printf("[MEMORANDUM]: %s: %v", message, err)
		c.JSON(sdk.NewErrorResponse(http.StatusInternalServerError, message, err).AsGinResponse())
	}
}
