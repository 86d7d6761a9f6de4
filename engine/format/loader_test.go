package format_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/engine"
	"github.com/routekit/routekit/engine/format"
)

const validProblemYAML = `
plan:
  jobs:
    - id: j1
      places:
        - location: {index: 1}
          duration: 0
          times:
            - {start: 0, end: 1000}
fleet:
  types:
    - type_id: t1
      costs: {fixed: 10, per_distance: 1, per_driving_time: 1}
      capacity: [10]
      shifts:
        - start: {index: 0}
          start_earliest: 0
  vehicles:
    - id: v1
      type_id: t1
matrix:
  size: 2
  distances: [0, 1, 1, 0]
  travel_times: [0, 1, 1, 0]
`

func writeTempProblem(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ParsesAValidProblemEndToEnd(t *testing.T) {
	path := writeTempProblem(t, validProblemYAML)

	problem, err := format.Load(path)
	require.NoError(t, err)

	require.Len(t, problem.Plan.Jobs, 1)
	require.Len(t, problem.Fleet.Vehicles, 1)
	require.NotNil(t, problem.Transport)

	loc1 := engine.NewLocationIndex(1)
	loc0 := engine.NewLocationIndex(0)
	assert.Equal(t, 1.0, problem.Transport.Distance(loc0, loc1))
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeTempProblem(t, validProblemYAML+"\nbogus_top_level_field: true\n")

	_, err := format.Load(path)
	require.Error(t, err)
	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, format.ErrUnknownField, fe.Code)
}

func TestLoad_RejectsVehicleReferencingUnknownType(t *testing.T) {
	const badYAML = `
plan:
  jobs: []
fleet:
  types:
    - type_id: t1
      costs: {fixed: 0, per_distance: 1, per_driving_time: 1}
      capacity: [10]
      shifts:
        - start: {index: 0}
          start_earliest: 0
  vehicles:
    - id: v1
      type_id: missing
`
	path := writeTempProblem(t, badYAML)

	_, err := format.Load(path)
	require.Error(t, err)
	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, format.ErrDeserialize, fe.Code)
}

func TestLoad_SurfacesFirstFleetValidationError(t *testing.T) {
	const badYAML = `
plan:
  jobs: []
fleet:
  types:
    - type_id: t1
      costs: {fixed: 0, per_distance: 1, per_driving_time: 1}
      capacity: [10]
      shifts:
        - start: {index: 0}
          start_earliest: 0
          depots:
            - location: {index: 0}
              duration: 0
              times:
                - {start: 0, end: 10}
  vehicles:
    - id: v1
      type_id: t1
`
	path := writeTempProblem(t, badYAML)

	_, err := format.Load(path)
	require.Error(t, err)
	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, format.ErrDepotDistinctness, fe.Code)
}

func TestLoad_MissingFileReturnsDeserializeError(t *testing.T) {
	_, err := format.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	var fe *format.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, format.ErrDeserialize, fe.Code)
}
