package handler

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// pathID binds the {id} segment as a positive int64.
func pathID(r *http.Request) (int64, *APIError) {
	raw := r.PathValue("id")
	if raw == "" {
		return 0, &APIError{Code: CodeMissingParameter, Message: "id is required"}
	}

	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", raw, &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil || id < 1 {
		return 0, &APIError{Code: CodeInvalidParameter, Message: fmt.Sprintf("id must be a positive integer, got %q", raw)}
	}
	return id, nil
}

// pageParams binds the optional limit and offset query parameters. Zero values let the query
// service apply its defaults.
func pageParams(r *http.Request) (limit, offset int, apiErr *APIError) {
	var limitParam, offsetParam *int
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &limitParam); err != nil {
		return 0, 0, &APIError{Code: CodeInvalidParameter, Message: "limit must be an integer"}
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", query, &offsetParam); err != nil {
		return 0, 0, &APIError{Code: CodeInvalidParameter, Message: "offset must be an integer"}
	}

	if limitParam != nil {
		limit = *limitParam
	}
	if offsetParam != nil {
		offset = *offsetParam
	}
	if limit < 0 || offset < 0 {
		return 0, 0, &APIError{Code: CodeInvalidParameter, Message: "limit and offset must not be negative"}
	}
	return limit, offset, nil
}
