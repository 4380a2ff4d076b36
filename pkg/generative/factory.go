package generative

import (
	"fmt"
	"sort"
	"strings"

	"community-support-platform/config"
	"community-support-platform/pkg/completion"
)

// InitializeBackends creates Backend instances from config.
// Returns backends sorted by priority (ascending) with disabled entries
// filtered out. Entries that fail to initialize are skipped so one bad
// provider does not take the chain down.
func InitializeBackends(cfg *config.GenerativeConfig) ([]Backend, error) {
	if cfg == nil {
		return nil, fmt.Errorf("generative config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoBackendsConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var backends []Backend
	var initErrors []string

	for _, p := range enabled {
		backend, err := createBackend(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("backend %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		backends = append(backends, backend)
	}

	if len(backends) == 0 {
		return nil, fmt.Errorf("no backends successfully initialized: %s",
			strings.Join(initErrors, "; "))
	}

	return backends, nil
}

func createBackend(cfg config.ProviderConfig) (Backend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}

	client, err := completion.New(completion.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create completions client: %w", err)
	}

	return NewCompletionBackend(cfg.Name, client), nil
}
