package updater

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"inz-data-scraper/lib/scrapers/inz"
)

// WriteRecords replaces the file at `path` with the JSON encoding of
// `records`. The file is written next to the target first and renamed
// over it, so readers never observe a partial document.
func WriteRecords(ctx context.Context, path string, records []inz.Record) error {
	data, err := inz.EncodeRecords(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	err = tmp.Sync()
	if err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	err = os.Chmod(tmpPath, 0644)
	if err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	slog.InfoContext(ctx, "wrote records", "path", path, "count", len(records))
	return nil
}
