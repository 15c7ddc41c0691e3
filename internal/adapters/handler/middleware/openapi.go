package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/psp-gateway/internal/adapters/handler"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
)

// OpenAPIValidator rejects requests that do not match the document's parameters and request
// bodies. Requests for paths the document does not describe pass through untouched.
func OpenAPIValidator(doc *openapi3.T, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				logger.Debug("request rejected by openapi validation",
					"method", r.Method,
					"path", r.URL.Path,
					"error", err.Error(),
				)
				handler.RespondError(w, http.StatusBadRequest, handler.CodeValidationError, clientMessage(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

// clientMessage reduces a validation failure to one line naming the offending input. Schema
// dumps and submitted values stay out of the response.
func clientMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return firstLine(err.Error())
	}

	where := "request body"
	if reqErr.Parameter != nil {
		where = fmt.Sprintf("%s parameter %q", reqErr.Parameter.In, reqErr.Parameter.Name)
	}

	reason := reqErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			where += " field " + strings.Join(pointer, ".")
		}
		reason = schemaErr.Reason
	} else if reason == "" && reqErr.Err != nil {
		reason = reqErr.Err.Error()
	}
	if reason == "" {
		reason = "invalid value"
	}
	return where + ": " + firstLine(reason)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(line)
}
