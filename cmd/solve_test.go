package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCmd_FlagDefaults(t *testing.T) {
	// GIVEN the solve command with its registered flags
	// WHEN we check their default values
	// THEN they must match the documented defaults
	assert.Equal(t, "gaps", solveCmd.Flags().Lookup("strategy").DefValue)
	assert.Equal(t, "1", solveCmd.Flags().Lookup("seed").DefValue)
	assert.Equal(t, "2", solveCmd.Flags().Lookup("regret-min").DefValue)
	assert.Equal(t, "3", solveCmd.Flags().Lookup("regret-max").DefValue)
	assert.Equal(t, "1", solveCmd.Flags().Lookup("gaps-min-jobs").DefValue)
	assert.Equal(t, "0s", solveCmd.Flags().Lookup("time-limit").DefValue)
}

func TestSolveCmd_ProblemFlagIsRequired(t *testing.T) {
	flag := solveCmd.Flags().Lookup("problem")
	require.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
}

const smokeProblemYAML = `
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
      costs: {fixed: 0, per_distance: 1, per_driving_time: 1}
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

func TestSolveCmd_Run_PrintsSummaryForAFeasibleProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smokeProblemYAML), 0o644))

	origPath, origStrategy, origSeed, origMin := problemPath, strategy, seed, gapsMinJobs
	t.Cleanup(func() {
		problemPath, strategy, seed, gapsMinJobs = origPath, origStrategy, origSeed, origMin
	})
	problemPath = path
	strategy = "gaps"
	seed = 1
	gapsMinJobs = 1

	out := captureStdout(t, func() {
		solveCmd.Run(solveCmd, nil)
	})

	assert.Contains(t, out, "=== Solve Summary ===")
	assert.Contains(t, out, "Assigned Jobs        : 1")
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = orig

	var buf bytes.Buffer
	_, err = io.Copy(&buf, r)
	require.NoError(t, err)
	return buf.String()
}
