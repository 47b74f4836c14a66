// Package httpapi exposes the showroom over a JSON HTTP API.
//
// Catalog reads live under /api/v1/vehicles, /api/v1/facets and
// /api/v1/stats. Generation endpoints live under /api/v1/generate and
// answer 503 until an API key is configured.
package httpapi
