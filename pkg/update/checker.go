// Package update decides whether a newer release of the external container
// project is available.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/container-desk/cdesk/pkg/logging"
	"github.com/container-desk/cdesk/pkg/version"
)

// Info is the derived update record. Recomputed on demand, never persisted.
type Info struct {
	LatestVersion   string `json:"latestVersion"`
	UpdateAvailable bool   `json:"updateAvailable"`
	CurrentVersion  string `json:"currentVersion"`
}

// HTTPClient abstracts the transport so tests can substitute canned responses.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Checker queries a GitHub-style releases/latest document.
type Checker struct {
	client      HTTPClient
	releasesURL string
	log         logging.Logger
}

// NewChecker builds a checker for releasesURL.
func NewChecker(client HTTPClient, releasesURL string, log logging.Logger) *Checker {
	return &Checker{client: client, releasesURL: releasesURL, log: log}
}

// Check fetches the latest release tag and compares it with current. An empty
// current version yields UpdateAvailable false: with no baseline there is
// nothing to be newer than.
func (c *Checker) Check(ctx context.Context, current string) (Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.releasesURL, nil)
	if err != nil {
		return Info{}, fmt.Errorf("update: building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("update: querying %s: %w", c.releasesURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Info{}, fmt.Errorf("update: unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Info{}, fmt.Errorf("update: reading response body: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return Info{}, fmt.Errorf("update: unmarshaling release: %w", err)
	}
	if release.TagName == "" {
		return Info{}, fmt.Errorf("update: release document has no tag")
	}

	info := Info{
		LatestVersion:   strings.TrimLeft(release.TagName, "v"),
		UpdateAvailable: version.IsNewer(release.TagName, current),
		CurrentVersion:  current,
	}
	c.log.Debugf("latest release %s, current %s, update available: %t",
		info.LatestVersion, info.CurrentVersion, info.UpdateAvailable)
	return info, nil
}
