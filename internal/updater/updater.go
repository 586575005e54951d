package updater

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// SelfUpdate downloads a replacement binary and swaps it in over the
// running executable. Download goes to a sidecar file first so a
// failed transfer never clobbers the current binary.
func SelfUpdate(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update download failed: %s", resp.Status)
	}

	exe, err := os.Executable()
	if err != nil {
		return err
	}

	tmp := exe + ".new"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, exe)
}
