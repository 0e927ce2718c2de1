package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// TriggerflowYAMLConfig represents the complete triggerflow.yaml file
// structure. Every section is optional; built-in defaults fill the gaps.
type TriggerflowYAMLConfig struct {
	Server     *ServerConfig                  `yaml:"server"`
	Dispatcher *DispatcherConfig              `yaml:"dispatcher"`
	Poller     *PollerConfig                  `yaml:"poller"`
	Scheduler  *SchedulerConfig               `yaml:"scheduler"`
	Executor   *ExecutorConfig                `yaml:"executor"`
	Registry   *RegistryConfig                `yaml:"registry"`
	Webhooks   *WebhookConfig                 `yaml:"webhooks"`
	OAuth      map[string]OAuthProviderConfig `yaml:"oauth"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load triggerflow.yaml from configDir (absent file → pure defaults)
//  2. Expand environment variables
//  3. Merge user values over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"webhook_services", len(cfg.Webhooks.Secrets),
		"oauth_providers", len(cfg.OAuth),
		"dispatcher_workers", cfg.Dispatcher.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	var fileCfg TriggerflowYAMLConfig
	if err := loadYAML(filepath.Join(configDir, "triggerflow.yaml"), &fileCfg); err != nil {
		if !os.IsNotExist(err) {
			return nil, NewLoadError("triggerflow.yaml", err)
		}
		// No config file: secrets arrive via env, everything else defaults.
		slog.Warn("triggerflow.yaml not found, using built-in defaults")
	}

	cfg := &Config{
		configDir:  configDir,
		Server:     DefaultServerConfig(),
		Dispatcher: DefaultDispatcherConfig(),
		Poller:     DefaultPollerConfig(),
		Scheduler:  DefaultSchedulerConfig(),
		Executor:   DefaultExecutorConfig(),
		Registry:   DefaultRegistryConfig(),
		Webhooks:   &WebhookConfig{Secrets: map[string]string{}},
		OAuth:      map[string]OAuthProviderConfig{},
	}

	// Merge user config over defaults (non-zero values override).
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"server", cfg.Server, fileCfg.Server},
		{"dispatcher", cfg.Dispatcher, fileCfg.Dispatcher},
		{"poller", cfg.Poller, fileCfg.Poller},
		{"scheduler", cfg.Scheduler, fileCfg.Scheduler},
		{"executor", cfg.Executor, fileCfg.Executor},
		{"registry", cfg.Registry, fileCfg.Registry},
		{"webhooks", cfg.Webhooks, fileCfg.Webhooks},
	}
	for _, s := range sections {
		if s.src == nil || isNilPointer(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}
	for service, provider := range fileCfg.OAuth {
		cfg.OAuth[service] = provider
	}

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

func loadYAML(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func isNilPointer(v any) bool {
	switch t := v.(type) {
	case *ServerConfig:
		return t == nil
	case *DispatcherConfig:
		return t == nil
	case *PollerConfig:
		return t == nil
	case *SchedulerConfig:
		return t == nil
	case *ExecutorConfig:
		return t == nil
	case *RegistryConfig:
		return t == nil
	case *WebhookConfig:
		return t == nil
	default:
		return v == nil
	}
}
