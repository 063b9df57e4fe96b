package canaries

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"CANARIES_TEMPLATE", "CANARIES_OUTPUT", "CANARIES_POLICY", "CANARIES_JOBS", "CANARIES_BUGSNAG_API_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplatePath, cfg.TemplatePath)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, string(PolicyAll), cfg.Policy)
	assert.Equal(t, 1, cfg.Jobs)
	assert.Empty(t, cfg.BugsnagAPIKey)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("CANARIES_TEMPLATE", "site/page.html")
	t.Setenv("CANARIES_OUTPUT", "public/index.html")
	t.Setenv("CANARIES_POLICY", "single")
	t.Setenv("CANARIES_JOBS", "4")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "site/page.html", cfg.TemplatePath)
	assert.Equal(t, "public/index.html", cfg.OutputPath)
	assert.Equal(t, "single", cfg.Policy)
	assert.Equal(t, 4, cfg.Jobs)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("CANARIES_POLICY", "several")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("CANARIES_POLICY", "all")
	t.Setenv("CANARIES_JOBS", "lots")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestNewLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, true)

	log.Info("loaded something")
	assert.Empty(t, buf.String())

	log.Error("folder is empty")
	assert.Contains(t, buf.String(), "folder is empty")
	assert.Contains(t, buf.String(), "logger="+LoggerName)
}

func TestNewLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Info("loaded something")
	assert.Contains(t, buf.String(), "loaded something")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, []SignedMessage{
		{Name: filepath.Join("msg", "b"), Message: "hello", Signature: "sig", Created: time.Now()},
		{Name: filepath.Join("msg", "a"), Message: "world", Signature: "sig", Created: time.Now()},
	})

	out := buf.String()
	assert.Contains(t, out, filepath.Join("msg", "b"))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(filepath.Join("msg", "b"))), bytes.Index(buf.Bytes(), []byte(filepath.Join("msg", "a"))))
}
