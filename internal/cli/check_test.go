package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/basel/internal/series"
)

func TestCheckPasses(t *testing.T) {
	for _, method := range series.MethodNames() {
		t.Run(method, func(t *testing.T) {
			stdout, _, err := execute(t, "check", "--method", method, "--n", "10000", "--tolerance", "1e-3", "--prefix", "200")
			require.NoError(t, err)

			for _, name := range []string{"exact_n1", "exact_n2", "near_n4", "monotonic", "idempotent", "convergence"} {
				assert.Contains(t, stdout, "PASS "+name)
			}
			assert.Contains(t, stdout, "Check Summary ("+method+"): 6 passed, 0 failed, 6 total")
		})
	}
}

func TestCheckConvergenceFailure(t *testing.T) {
	// The tail beyond n = 100 is about 1/100, far outside 1e-7.
	stdout, stderr, err := execute(t, "check", "--n", "100", "--prefix", "10")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, stdout, "FAIL convergence")
	assert.Contains(t, stdout, "5 passed, 1 failed")
	assert.Contains(t, stderr, "property failed")
}

func TestCheckJSON(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "check", "--n", "1000", "--tolerance", "1e-2", "--prefix", "50")
	require.NoError(t, err)

	var resp struct {
		Status  string      `json:"status"`
		Data    CheckResult `json:"data"`
		TraceID string      `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-golden", resp.TraceID)
	assert.Equal(t, "forward", resp.Data.Method)
	assert.Equal(t, 6, resp.Data.Passed)
	assert.Len(t, resp.Data.Properties, 6)
}

func TestCheckJSONFailure(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "check", "--n", "10", "--prefix", "10")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string      `json:"status"`
		Data   CheckResult `json:"data"`
		Error  *CLIError   `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeCheckFailed, resp.Error.Code)
	assert.Equal(t, 1, resp.Data.Failed)
}

func TestCheckRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero n", []string{"check", "--n", "0"}},
		{"negative prefix", []string{"check", "--prefix=-1"}},
		{"zero tolerance", []string{"check", "--tolerance", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error [E101]")
		})
	}
}

func TestPropertyChecker(t *testing.T) {
	c := propertyChecker{method: series.MethodForward}

	ok, detail := c.exact(2, 1.25)
	assert.True(t, ok, detail)

	ok, detail = c.exact(2, 1.5)
	assert.False(t, ok)
	assert.Contains(t, detail, "want exactly 1.5")

	ok, detail = c.near(1_000, series.Limit, 1e-2)
	assert.True(t, ok, detail)
	assert.Contains(t, detail, "sum(1,000)")

	ok, _ = c.monotonic(100)
	assert.True(t, ok)

	ok, detail = c.idempotent(100)
	assert.True(t, ok, detail)
	assert.Contains(t, detail, "fingerprint")
}
