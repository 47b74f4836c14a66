// Package domain defines the core business entities for the showroom.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Vehicle: A catalog item shown in the showroom
//   - Query: The complete set of user-controlled catalog query parameters
//   - Facets: Selectable values for each filter control
//   - Blueprint, AssetPackage, Visual, ...: Generated content records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
