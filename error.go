package latitude

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Configuration errors reported before a request is sent. They can be matched
// with errors.Is.
var (
	// ErrProjectIDRequired is returned when neither the client nor the call
	// options carry a project ID.
	ErrProjectIDRequired = errors.New("project ID is required")
	// ErrConversationIDRequired is returned by conversation operations when
	// the conversation ID is empty.
	ErrConversationIDRequired = errors.New("conversation ID is required")
	// ErrLogPathRequired is returned by CreateLog when the document path is empty.
	ErrLogPathRequired = errors.New("log path is required")
	// ErrLogResponseRequired is returned by CreateLog when the response text is empty.
	ErrLogResponseRequired = errors.New("log response is required")
)

// ErrorCode identifies the error classes returned by the Latitude gateway.
type ErrorCode string

// Gateway-level error codes.
const (
	CodeUnexpected          ErrorCode = "unexpected_error"
	CodeRateLimit           ErrorCode = "rate_limit_error"
	CodeUnauthorized        ErrorCode = "unauthorized_error"
	CodeForbidden           ErrorCode = "forbidden_error"
	CodeBadRequest          ErrorCode = "bad_request_error"
	CodeNotFound            ErrorCode = "not_found_error"
	CodeConflict            ErrorCode = "conflict_error"
	CodeUnprocessableEntity ErrorCode = "unprocessable_entity_error"
)

// Document-run error codes.
const (
	CodeRunUnknown                         ErrorCode = "unknown_error"
	CodeDefaultProviderExceededQuota       ErrorCode = "default_provider_exceeded_quota_error"
	CodeDefaultProviderInvalidModel        ErrorCode = "default_provider_invalid_model_error"
	CodeDocumentConfig                     ErrorCode = "document_config_error"
	CodeMissingProvider                    ErrorCode = "missing_provider_error"
	CodeChainCompile                       ErrorCode = "chain_compile_error"
	CodeAIRun                              ErrorCode = "ai_run_error"
	CodeUnsupportedProviderResponseType    ErrorCode = "unsupported_provider_response_type_error"
	CodeAIProviderConfig                   ErrorCode = "ai_provider_config_error"
	CodeEvaluationRunMissingProviderLog    ErrorCode = "evaluation_run_missing_provider_log_error"
	CodeEvaluationRunMissingWorkspace      ErrorCode = "evaluation_run_missing_workspace_error"
	CodeEvaluationRunUnsupportedResultType ErrorCode = "evaluation_run_unsupported_result_type_error"
	CodeEvaluationRunResponseJSONFormat    ErrorCode = "evaluation_run_response_json_format_error"
)

// Generic HTTP layer error codes.
const (
	CodeHTTPException       ErrorCode = "http_exception"
	CodeInternalServerError ErrorCode = "internal_server_error"
)

// DBErrorRef points at the database entity involved in an error.
type DBErrorRef struct {
	EntityUUID string `json:"entityUuid"`
	EntityType string `json:"entityType"`
}

// APIError is a structured error returned by the Latitude gateway. Status
// always carries the HTTP status code; the remaining fields are populated
// from the JSON error body when the gateway provides one.
type APIError struct {
	Status     int             `json:"-"`
	Code       ErrorCode       `json:"errorCode"`
	Name       string          `json:"name"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
	DBErrorRef *DBErrorRef     `json:"dbErrorRef,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("latitude: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("latitude: %s (status %d)", e.Code, e.Status)
}

// codeForStatus maps an HTTP status code to the gateway error class used when
// the response carries no decodable error body.
func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusTooManyRequests:
		return CodeRateLimit
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusBadRequest:
		return CodeBadRequest
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity:
		return CodeUnprocessableEntity
	default:
		return CodeUnexpected
	}
}

// apiErrorFromResponse builds an APIError from a non-2xx response, preferring
// the gateway's JSON error body over the bare status code.
func apiErrorFromResponse(resp *http.Response) error {
	apiErr := &APIError{
		Status: resp.StatusCode,
		Code:   codeForStatus(resp.StatusCode),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var decoded APIError
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		apiErr.Name = decoded.Name
		apiErr.Message = decoded.Message
		apiErr.Details = decoded.Details
		apiErr.DBErrorRef = decoded.DBErrorRef
		if decoded.Code != "" {
			apiErr.Code = decoded.Code
		}
	}

	return apiErr
}
