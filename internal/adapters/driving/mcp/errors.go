// Package mcp provides an MCP (Model Context Protocol) server adapter for the showroom.
// It lets AI assistants browse the catalog and request generated content.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
