package format

import (
	"bytes"
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/routekit/routekit/engine"
)

// Load reads a YAML problem definition from path, decodes it strictly
// (unknown fields are rejected), converts it into engine types, and
// validates the resulting fleet. The matrix section, if present, backs the
// returned Problem's Transport as a MatrixTransport; without it the
// Transport is nil. Load does not accept a caller-supplied Transport.
func Load(path string) (*engine.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newFormatError(ErrDeserialize, "reading %s: %v", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var dto problemDTO
	if err := dec.Decode(&dto); err != nil {
		code := ErrDeserialize
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			code = ErrUnknownField
		}
		return nil, newFormatError(code, "decoding %s: %v", path, err)
	}

	plan, err := dto.Plan.toPlan()
	if err != nil {
		return nil, err
	}
	fleet, err := dto.Fleet.toFleet()
	if err != nil {
		return nil, err
	}

	if errs := ValidateFleet(fleet); len(errs) > 0 {
		return nil, errs[0]
	}

	var transport engine.Transport
	if dto.Matrix != nil {
		transport = &MatrixTransport{
			Distances: dto.Matrix.Distances,
			Durations: dto.Matrix.Durations,
			Size:      dto.Matrix.Size,
		}
	}

	return engine.NewProblem(plan, fleet, transport), nil
}

// MatrixTransport is a dense routing-matrix Transport: Location.Index
// addresses a row/column in a Size x Size matrix, row-major. Locations that
// are geo-coordinates rather than matrix indices are not supported here —
// pair a MatrixTransport only with problems whose locations are all indices.
type MatrixTransport struct {
	Distances []float64
	Durations []float64
	Size      int
}

func (m *MatrixTransport) Distance(from, to engine.Location) float64 {
	return m.Distances[from.Index*m.Size+to.Index]
}

func (m *MatrixTransport) Duration(from, to engine.Location) float64 {
	return m.Durations[from.Index*m.Size+to.Index]
}
