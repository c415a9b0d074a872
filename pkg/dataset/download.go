package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/andrew-torda/motifer/pkg/seq/common"
)

// Download fetches url into path unless path is already there. It says
// whether it really downloaded. The body goes to a temporary file
// which is renamed at the end, so a failure leaves nothing behind.
func Download(ctx context.Context, client *http.Client, url, path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("download %s: status %d", url, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".download-*")
	if err != nil {
		return false, &common.IOError{Path: path, Err: err}
	}
	_, err = io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return false, &common.IOError{Path: path, Err: err}
	}
	return true, nil
}
