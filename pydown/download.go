package pydown

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// Download streams url to outPath.
//
// The file is written via a temporary sibling and renamed into place, so a
// broken connection never leaves a truncated archive behind.
func Download(client *http.Client, url, outPath, token string) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("bad download URL %q: %w", url, err)
	}
	authorize(req, token)
	// Asset URLs serve raw bytes, not the API media type.
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return httpError(resp)
	}

	tmp := outPath + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("download failed: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to finalize %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	return nil
}
