package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/errors"
	"github.com/paikeys/paikeys/internal/exitcode"
	"github.com/paikeys/paikeys/internal/health"
	"github.com/paikeys/paikeys/internal/metrics"
	"github.com/paikeys/paikeys/internal/router"
	"github.com/paikeys/paikeys/internal/server"
	"github.com/paikeys/paikeys/pkg/paikeys/client"
)

func TestMain(m *testing.M) {
	canPrompt = func() bool { return false }
	os.Exit(m.Run())
}

// resetFlags restores every flag in the command tree to its default so tests
// sharing the package-level command do not leak state into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func findCommand(t *testing.T, path ...string) *cobra.Command {
	t.Helper()
	c, _, err := rootCmd.Find(path)
	require.NoError(t, err)
	return c
}

func TestCommandTree(t *testing.T) {
	tests := []struct {
		path  []string
		flags []string
	}{
		{[]string{"serve"}, []string{"port", "address", "shutdown-timeout", "read-timeout", "write-timeout", "idle-timeout"}},
		{[]string{"route", "test"}, []string{"prompt", "modality", "priority"}},
		{[]string{"route", "explain"}, []string{"prompt", "modality", "priority"}},
		{[]string{"route", "interactive"}, nil},
		{[]string{"models"}, []string{"modality"}},
		{[]string{"catalog", "validate"}, nil},
		{[]string{"catalog", "export"}, []string{"out"}},
		{[]string{"catalog", "hash"}, nil},
		{[]string{"version"}, []string{"json"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.path, " "), func(t *testing.T) {
			c := findCommand(t, tt.path...)
			assert.Equal(t, tt.path[len(tt.path)-1], c.Name())
			for _, name := range tt.flags {
				assert.NotNil(t, c.Flags().Lookup(name), "missing flag --%s", name)
			}
		})
	}

	for _, name := range []string{"config", "catalog", "log-level", "log-format", "format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing persistent flag --%s", name)
	}
}

func TestRouteTestJSON(t *testing.T) {
	stdout, _, err := execute(t, "route", "test", "--format", "json",
		"--modality", "code", "--priority", "speed", "Write a Python function to parse JSON")
	require.NoError(t, err)

	var out decisionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	assert.Contains(t, out.Primary.Capabilities, domain.ModalityCode)
	assert.Equal(t, 10, out.Insights.EstimatedTokens)
	assert.NotEmpty(t, out.Insights.Reasoning)
	assert.False(t, out.ModalityFallback)
	assert.Empty(t, out.Scores, "scores are only included by explain")
	for _, c := range out.Contenders {
		assert.NotEqual(t, out.Primary.ID, c.ID)
	}
}

func TestRouteExplainIncludesScores(t *testing.T) {
	stdout, _, err := execute(t, "route", "explain", "--format", "json",
		"-m", "vision", "--priority", "economy", "-p", "Describe this chart")
	require.NoError(t, err)

	var out decisionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.NotEmpty(t, out.Scores)
	assert.Equal(t, out.Primary.ID, out.Scores[0].ID)
}

func TestRouteTestText(t *testing.T) {
	stdout, _, err := execute(t, "route", "test", "Summarize this article")
	require.NoError(t, err)

	r, err := router.NewRouter(router.DefaultCatalog(), nil)
	require.NoError(t, err)
	result, err := r.Route(router.RoutingRequest{
		Prompt:   "Summarize this article",
		Modality: domain.ModalityText,
		Priority: domain.PriorityIntelligence,
	})
	require.NoError(t, err)

	assert.Contains(t, stdout, result.Primary.Name)
}

func TestRouteRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"missing prompt", []string{"route", "test"}, errors.ErrCodeRequestPrompt},
		{"bad modality", []string{"route", "test", "--modality", "video", "hi"}, errors.ErrCodeRequestModality},
		{"bad priority", []string{"route", "test", "--priority", "quality", "hi"}, errors.ErrCodeRequestPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestRouteTestRemote(t *testing.T) {
	r, err := router.NewRouter(router.DefaultCatalog(), nil)
	require.NoError(t, err)
	reg, m := metrics.NewRegistry()
	ts := httptest.NewServer(server.NewServer(r, health.NewProbeManager("test"), server.Config{}, server.WithMetrics(reg, m)).Handler())
	defer ts.Close()

	args := []string{"--modality", "code", "--priority", "speed", "Write a Python function to parse JSON"}

	local, _, err := execute(t, append([]string{"route", "test", "--format", "json"}, args...)...)
	require.NoError(t, err)
	remote, _, err := execute(t, append([]string{"route", "test", "--format", "json", "--server", ts.URL}, args...)...)
	require.NoError(t, err)

	assert.JSONEq(t, local, remote)

	_, _, err = execute(t, "route", "test", "--server", ts.URL, "--modality", "video", "hi")
	require.Error(t, err)
	assert.True(t, client.IsBadRequest(err))
}

func TestRouteTestRemoteExitCodes(t *testing.T) {
	r, err := router.NewRouter(router.DefaultCatalog(), nil)
	require.NoError(t, err)
	reg, m := metrics.NewRegistry()
	ts := httptest.NewServer(server.NewServer(r, health.NewProbeManager("test"), server.Config{}, server.WithMetrics(reg, m)).Handler())
	defer ts.Close()

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"unknown modality", []string{"--modality", "video", "hi"}, errors.ErrCodeRequestModality},
		{"unknown priority", []string{"--priority", "quality", "hi"}, errors.ErrCodeRequestPriority},
		{"missing prompt", nil, errors.ErrCodeRequestPrompt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"route", "test", "--server", ts.URL}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			assert.Equal(t, exitcode.UsageError, exitcode.DetermineExitCode(err))

			// Local rejections of the same request exit the same way.
			_, _, localErr := execute(t, append([]string{"route", "test"}, tt.args...)...)
			assert.Equal(t, exitcode.DetermineExitCode(localErr), exitcode.DetermineExitCode(err))
		})
	}
}

func TestRemoteErrorPassesThroughServerFailures(t *testing.T) {
	apiErr := &client.APIError{StatusCode: 502, Message: "upstream down"}
	err := remoteError(apiErr)
	assert.Same(t, apiErr, err)
	assert.Equal(t, exitcode.GeneralError, exitcode.DetermineExitCode(err))
}

func TestModelsFilter(t *testing.T) {
	stdout, _, err := execute(t, "models", "--modality", "image", "--format", "json")
	require.NoError(t, err)

	var out struct {
		Models []router.ModelDefinition `json:"models"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.NotEmpty(t, out.Models)
	for _, m := range out.Models {
		assert.Contains(t, m.Capabilities, domain.ModalityImage, m.ID)
	}
	assert.Less(t, len(out.Models), router.DefaultCatalog().Len())
}

func TestModelsTable(t *testing.T) {
	stdout, _, err := execute(t, "models")
	require.NoError(t, err)
	for _, m := range router.DefaultModels() {
		assert.Contains(t, stdout, m.ID)
	}
}

func TestModelsInvalidModality(t *testing.T) {
	_, _, err := execute(t, "models", "--modality", "smell")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequestModality, errors.CodeOf(err))
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	_, stderr, err := execute(t, "catalog", "export", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, path)

	stdout, _, err := execute(t, "catalog", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is valid")

	stdout, _, err = execute(t, "catalog", "hash", path)
	require.NoError(t, err)
	assert.Equal(t, router.DefaultCatalog().Digest(), strings.TrimSpace(stdout))

	stdout, _, err = execute(t, "catalog", "hash")
	require.NoError(t, err)
	assert.Equal(t, router.DefaultCatalog().Digest(), strings.TrimSpace(stdout))
}

func TestCatalogFlagSwitchesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	small := `models:
  - id: only-one
    name: Only One
    provider: Acme
    capabilities: [text]
    strengths: [Summaries]
    context_window: 8000
    cost_per_million: 0.5
    open_source: true
`
	require.NoError(t, os.WriteFile(path, []byte(small), 0o600))

	stdout, _, err := execute(t, "route", "test", "--catalog", path, "--format", "json", "hello")
	require.NoError(t, err)

	var out decisionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "only-one", out.Primary.ID)
	assert.Empty(t, out.Contenders)
}

func TestCatalogValidateRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	dup := `models:
  - {id: a, name: A, provider: X, capabilities: [text], context_window: 1000, cost_per_million: 1}
  - {id: a, name: A2, provider: X, capabilities: [code], context_window: 1000, cost_per_million: 1}
`
	require.NoError(t, os.WriteFile(path, []byte(dup), 0o600))

	_, _, err := execute(t, "catalog", "validate", path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogDuplicate, errors.CodeOf(err))
}

func TestCatalogValidateMissingFile(t *testing.T) {
	_, _, err := execute(t, "catalog", "validate", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogFile, errors.CodeOf(err))
}

func TestVersionJSON(t *testing.T) {
	stdout, _, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.NotEmpty(t, info["version"])
	assert.NotEmpty(t, info["goVersion"])
}

func TestVersionText(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "paikeys "), stdout)
}

func TestLoadServeSettings(t *testing.T) {
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	t.Setenv("PAIKEYS_PORT", "9191")
	t.Setenv("PAIKEYS_LOG_LEVEL", "debug")
	t.Setenv("PAIKEYS_SHUTDOWN_TIMEOUT", "5s")

	require.NoError(t, serveCmd.ParseFlags([]string{"--address", "127.0.0.1", "--log-level", "error"}))

	settings, err := loadServeSettings(serveCmd)
	require.NoError(t, err)

	assert.Equal(t, "9191", settings.Port, "environment fills unset flags")
	assert.Equal(t, "127.0.0.1", settings.Address)
	assert.Equal(t, "error", settings.LogLevel, "flags win over the environment")
	assert.Equal(t, 5*time.Second, settings.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, settings.ReadTimeout)
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := execute(t, "rout")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
