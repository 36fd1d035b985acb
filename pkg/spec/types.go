package spec

import "strings"

// Map type names accepted by the generator. Any other value runs no
// hydrology stage: the grid goes straight to noise coloring.
const (
	TypeRiver   = "river"
	TypeLake    = "lake"
	TypeSeaside = "seaside"
)

// MapRequest is the top-level specification for one generated map.
type MapRequest struct {
	Type   string `yaml:"type" json:"type"`
	Seed   int64  `yaml:"seed" json:"seed"`
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
}

// Default returns a request with the service's historical defaults.
func Default() MapRequest {
	return MapRequest{
		Type:   TypeSeaside,
		Seed:   1234,
		Width:  256,
		Height: 256,
	}
}

// NormalizedType returns the request type lowered for case-insensitive
// dispatch.
func (m MapRequest) NormalizedType() string {
	return strings.ToLower(m.Type)
}

// IsKnownType reports whether the request names one of the three
// hydrology generators.
func (m MapRequest) IsKnownType() bool {
	switch m.NormalizedType() {
	case TypeRiver, TypeLake, TypeSeaside:
		return true
	}
	return false
}
