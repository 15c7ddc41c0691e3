// Package api holds the gateway's OpenAPI document.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPITemplate string

// SwaggerInfo holds exported document info so callers can override it before serving.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "PSP Gateway API",
	Description:      "Validates card payments, routes them to an acquirer and records the outcome.",
	InfoInstanceName: "gateway",
	SwaggerTemplate:  openAPITemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// ReadDoc renders the registered document.
func ReadDoc() (string, error) {
	return swag.ReadDoc(SwaggerInfo.InstanceName())
}

// Document parses and validates the rendered document.
func Document(ctx context.Context) (*openapi3.T, error) {
	raw, err := ReadDoc()
	if err != nil {
		return nil, err
	}

	doc, err := openapi3.NewLoader().LoadFromData([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// RegisterDocsRoutes serves the rendered document at /openapi.yaml.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		raw, err := ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(raw))
	})
}
