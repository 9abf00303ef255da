package feedgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/centum/internal/domain/types"
	"github.com/okian/centum/pkg/logger"
)

// Verify spot-checks a running instance: it triggers a reload and reads
// back the streak and leaderboard derivations.
func Verify(ctx context.Context, client *http.Client, baseURL string) error {
	log := logger.Get()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/reload", nil)
	if err != nil {
		return fmt.Errorf("build reload request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reload: unexpected status %d", resp.StatusCode)
	}

	var progress types.GoalProgress
	if err := getJSON(ctx, client, baseURL+"/streak", &progress); err != nil {
		return err
	}
	log.Info(ctx, "streak derived",
		logger.Int("current", progress.Current),
		logger.Int("longest", progress.Longest),
		logger.Bool("achieved", progress.Achieved),
	)

	var entries []types.Entry
	if err := getJSON(ctx, client, baseURL+"/leaderboard", &entries); err != nil {
		return err
	}
	log.Info(ctx, "leaderboard derived", logger.Int("entries", len(entries)))
	return nil
}

func getJSON(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
