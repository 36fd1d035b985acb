package spec

import (
	"fmt"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/validation"
)

// minUsableDimension is the smallest map edge for which the hydrology and
// road heuristics behave sensibly. Smaller maps still generate, so this
// only produces a warning.
const minUsableDimension = 16

// Validate performs schema validation on a map request. Invalid
// dimensions are the core's only externally visible failure mode and are
// rejected before generation begins.
func Validate(m *MapRequest) *validation.Report {
	r := validation.NewReport()

	if m.Width <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "width must be greater than 0",
			Field:       "width",
			ActualValue: m.Width,
			Expected:    "> 0",
		})
	}
	if m.Height <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "height must be greater than 0",
			Field:       "height",
			ActualValue: m.Height,
			Expected:    "> 0",
		})
	}

	if r.Valid && (m.Width < minUsableDimension || m.Height < minUsableDimension) {
		r.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("maps smaller than %dx%d may generate degenerate features", minUsableDimension, minUsableDimension),
			Field:       "width, height",
			ActualValue: fmt.Sprintf("%dx%d", m.Width, m.Height),
		})
	}

	if !m.IsKnownType() {
		r.AddWarning(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unknown map type %q: no water features will be generated", m.Type),
			Field:       "type",
			ActualValue: m.Type,
			Expected:    "river, lake, or seaside",
		})
	}

	return r
}
