package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triggerflow.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	// An empty directory yields pure defaults.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Dispatcher.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Poller.Tick)
	assert.Equal(t, 10*time.Minute, cfg.Scheduler.SafetyBuffer)
	assert.Equal(t, 5*time.Minute, cfg.Scheduler.TimeOfDayWindow)
	assert.Equal(t, 30*time.Second, cfg.Executor.ActionTimeout)
	assert.Equal(t, "localhost:50051", cfg.Registry.Addr)
	assert.NotNil(t, cfg.Webhooks.Secrets)
	assert.Empty(t, cfg.OAuth)
}

func TestInitializeMergesOverDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
dispatcher:
  worker_count: 12
poller:
  batch_size: 20
webhooks:
  secrets:
    slack: shhh
  fitbit_verification_code: abc123
oauth:
  gmail:
    client_id: cid
    client_secret: csec
    token_url: https://oauth2.googleapis.com/token
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Overridden values take effect; untouched fields keep their defaults.
	assert.Equal(t, 12, cfg.Dispatcher.WorkerCount)
	assert.Equal(t, 1*time.Second, cfg.Dispatcher.PollInterval)
	assert.Equal(t, 20, cfg.Poller.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Poller.Tick)
	assert.Equal(t, "shhh", cfg.Webhooks.Secret("slack"))
	assert.Equal(t, "", cfg.Webhooks.Secret("github"))
	assert.Equal(t, "abc123", cfg.Webhooks.FitbitVerificationCode)
	require.Contains(t, cfg.OAuth, "gmail")
	assert.Equal(t, "cid", cfg.OAuth["gmail"].ClientID)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_SLACK_SECRET", "from-env")
	dir := writeConfigFile(t, `
webhooks:
  secrets:
    slack: "{{.TEST_SLACK_SECRET}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Webhooks.Secret("slack"))
}

func TestInitializeValidationFailure(t *testing.T) {
	dir := writeConfigFile(t, `
dispatcher:
  worker_count: -1
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "worker_count")
}

func TestInitializeMalformedYAML(t *testing.T) {
	dir := writeConfigFile(t, "dispatcher: [not a map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("value: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "value: ", string(out))
}

func TestValidatorCollectsAllErrors(t *testing.T) {
	cfg, err := load(context.Background(), t.TempDir())
	require.NoError(t, err)
	cfg.Dispatcher.WorkerCount = 0
	cfg.Poller.BatchSize = 0
	cfg.Scheduler.TimeOfDayWindow = 0

	err = NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dispatcher")
	assert.Contains(t, err.Error(), "poller")
	assert.Contains(t, err.Error(), "scheduler")
}
