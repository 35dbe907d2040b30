package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for BMI resources.
	uriScheme = "bmi://"

	categoriesURI = uriScheme + "categories"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         categoriesURI,
		Name:        "categories",
		Description: "The six BMI categories with their ranges and descriptions",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: categoriesURI + "/{slug}",
		Name:        "category",
		Description: "A single BMI category, e.g. bmi://categories/healthy-weight",
		MIMEType:    "application/json",
	}, s.handleCategoryResource)
}

// handleCategoriesResource returns the full category table.
func (s *Server) handleCategoriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	categories := s.ports.Calculator.Categories()
	out := make([]CategoryOutput, len(categories))
	for i, c := range categories {
		out[i] = toCategoryOutput(c)
	}
	return jsonResource(req.Params.URI, out)
}

// handleCategoryResource returns one category selected by its slug.
func (s *Server) handleCategoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	slug := extractCategorySlug(req.Params.URI)
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	for _, c := range s.ports.Calculator.Categories() {
		if categorySlug(c.Name) == slug {
			return jsonResource(req.Params.URI, toCategoryOutput(c))
		}
	}
	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCategorySlug extracts the slug from a URI like bmi://categories/{slug}.
func extractCategorySlug(uri string) string {
	const prefix = categoriesURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(uri, prefix))
}

// categorySlug turns "Healthy Weight" into "healthy-weight".
func categorySlug(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}
