package session

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const scriptFetchTimeout = 30 * time.Second

// loadEngineScript returns the rule engine's JavaScript source, preferring
// a local file over the configured download URL. The script is loaded once
// at session construction and re-injected into every audited page.
func loadEngineScript(cfg Config) (string, error) {
	if cfg.EnginePath != "" {
		data, err := os.ReadFile(cfg.EnginePath)
		if err != nil {
			return "", fmt.Errorf("reading engine script %s: %w", cfg.EnginePath, err)
		}
		if len(data) == 0 {
			return "", fmt.Errorf("engine script %s is empty", cfg.EnginePath)
		}
		return string(data), nil
	}

	if cfg.EngineURL == "" {
		return "", errors.New("no engine script source configured")
	}

	client := &http.Client{Timeout: scriptFetchTimeout}
	resp, err := client.Get(cfg.EngineURL)
	if err != nil {
		return "", fmt.Errorf("fetching engine script: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching engine script: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading engine script body: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("fetched engine script is empty")
	}
	return string(data), nil
}
