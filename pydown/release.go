package pydown

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Release is the subset of the GitHub release payload pydown consumes.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// FetchLatestRelease queries the releases API and decodes the payload.
//
// token may be empty; setting one avoids the anonymous rate limit.
func FetchLatestRelease(client *http.Client, apiURL, token string) (*Release, error) {
	req, err := http.NewRequest(http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("bad API URL %q: %w", apiURL, err)
	}
	authorize(req, token)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}

	var release Release
	if err := json.Unmarshal(data, &release); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return &release, nil
}

var versionRegex = regexp.MustCompile(`^cpython-(\d+\.\d+(?:\.\d+)?)`)

// ParseVersion extracts the version tuple from an asset name like
// "cpython-3.12.6+20240909-...". Returns false when the name does not
// start with a cpython version.
func ParseVersion(name string) ([]int, bool) {
	m := versionRegex.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	parts := strings.Split(m[1], ".")
	version := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		version[i] = n
	}
	return version, true
}

// VersionString renders a version tuple as "3.12.6".
func VersionString(version []int) string {
	parts := make([]string, len(version))
	for i, n := range version {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// versionLess orders version tuples element-wise, shorter first on ties.
func versionLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// SelectAsset picks the newest asset matching the triplet, variant and an
// optional version pin ("3.12" or "3.12.6").
func SelectAsset(release *Release, triplet, variant, wantVersion string) (*Asset, error) {
	var candidates []Asset
	for _, asset := range release.Assets {
		if strings.HasPrefix(asset.Name, "cpython-") &&
			strings.Contains(asset.Name, triplet) &&
			strings.Contains(asset.Name, variant) {
			candidates = append(candidates, asset)
		}
	}

	if wantVersion != "" {
		// Allow "3.12" as well as "3.12.6": the pin must be followed by
		// a version separator so "3.1" does not match "3.12".
		pin, err := regexp.Compile(`^cpython-` + regexp.QuoteMeta(wantVersion) + `(\.|t|\+)`)
		if err != nil {
			return nil, fmt.Errorf("bad version %q: %w", wantVersion, err)
		}
		filtered := candidates[:0]
		for _, asset := range candidates {
			if pin.MatchString(asset.Name) {
				filtered = append(filtered, asset)
			}
		}
		candidates = filtered
	}

	if len(candidates) == 0 {
		version := wantVersion
		if version == "" {
			version = "latest"
		}
		return nil, fmt.Errorf("no matching asset for triplet=%s variant=%s version=%s",
			triplet, variant, version)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		vi, _ := ParseVersion(candidates[i].Name)
		vj, _ := ParseVersion(candidates[j].Name)
		return versionLess(vi, vj)
	})
	return &candidates[len(candidates)-1], nil
}
