package http

import (
	"errors"
	"log"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"` // validation failures only
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// DeletedResponse is returned by every delete endpoint.
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// --- Error Response Helpers ---

// respondValidationError sends a 422 response. Binding errors from the
// validator are expanded into per-field details.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid request body"})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondConflict sends a 409 Conflict response.
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// --- Success Response Helpers ---

// respondDeleted sends the 200 {"deleted": true} body.
func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, DeletedResponse{Deleted: true})
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Request Parsing ---

// parseIDParam extracts a record ID from URL parameters.
// Non-integers get a 422. Integers no record can carry (zero, negative or
// beyond the id range) get a 404 for resource, like any other unknown id.
func parseIDParam(c *gin.Context, paramName, resource string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			respondNotFound(c, resource)
			return 0, false
		}
		respondError(c, http.StatusUnprocessableEntity, "invalid "+paramName)
		return 0, false
	}
	if id <= 0 || uint64(id) > uint64(math.MaxUint) {
		respondNotFound(c, resource)
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes and validates the request body into req.
// On failure it responds with 422 and returns false.
func bindJSON(c *gin.Context, req any) bool {
	useJSONFieldNames()
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidationError(c, err)
		return false
	}
	return true
}

var jsonFieldNamesOnce sync.Once

// useJSONFieldNames makes validator errors report json tag names.
func useJSONFieldNames() {
	jsonFieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}
