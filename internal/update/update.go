package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultReleaseURL = "https://api.github.com/repos/matheuskafuri/aidash/releases/latest"
	cacheKey          = "aidash_latest_release"
	checkInterval     = 24 * time.Hour
	requestTimeout    = 5 * time.Second
)

// Cache is the slice of kv storage the checker persists its last answer in.
type Cache interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

type cachedRelease struct {
	Version   string    `json:"version"`
	CheckedAt time.Time `json:"checked_at"`
}

type ghRelease struct {
	TagName string `json:"tag_name"`
}

// Checker asks the release API for the latest version at most once per day.
type Checker struct {
	URL    string
	Client *http.Client
	Cache  Cache
	Now    func() time.Time
}

// NewChecker returns a checker for the project's releases. cache may be nil,
// in which case every call hits the network.
func NewChecker(cache Cache) *Checker {
	return &Checker{
		URL:    defaultReleaseURL,
		Client: http.DefaultClient,
		Cache:  cache,
		Now:    time.Now,
	}
}

// Newer returns the latest released version when it is strictly newer than
// current, or "" when current is up to date. Development builds never
// report an update.
func (c *Checker) Newer(ctx context.Context, current string) (string, error) {
	cur, ok := parseVersion(current)
	if !ok {
		return "", nil
	}
	latest, err := c.latest(ctx)
	if err != nil {
		return "", err
	}
	lv, ok := parseVersion(latest)
	if !ok || !newer(lv, cur) {
		return "", nil
	}
	return strings.TrimPrefix(latest, "v"), nil
}

func (c *Checker) latest(ctx context.Context) (string, error) {
	now := c.Now()
	if rel, ok := c.cached(); ok && now.Sub(rel.CheckedAt) < checkInterval {
		return rel.Version, nil
	}

	version, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}
	if c.Cache != nil {
		data, _ := json.Marshal(cachedRelease{Version: version, CheckedAt: now})
		if err := c.Cache.Set(cacheKey, string(data)); err != nil {
			return version, fmt.Errorf("caching release: %w", err)
		}
	}
	return version, nil
}

func (c *Checker) cached() (cachedRelease, bool) {
	var rel cachedRelease
	if c.Cache == nil {
		return rel, false
	}
	raw, ok, err := c.Cache.Get(cacheKey)
	if err != nil || !ok {
		return rel, false
	}
	if err := json.Unmarshal([]byte(raw), &rel); err != nil || rel.Version == "" {
		return rel, false
	}
	return rel, true
}

func (c *Checker) fetch(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("release check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release check: HTTP %d", resp.StatusCode)
	}

	var release ghRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("release check: decoding: %w", err)
	}
	if release.TagName == "" {
		return "", errors.New("release check: empty tag")
	}
	return release.TagName, nil
}

// parseVersion reads "v1.2.3" style tags. Pre-release and build suffixes
// are ignored.
func parseVersion(s string) ([3]int, bool) {
	var v [3]int
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return v, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return v, false
		}
		v[i] = n
	}
	return v, true
}

func newer(a, b [3]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}
