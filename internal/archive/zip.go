package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeZip mirrors the planned export layout into a single archive file.
func writeZip(path string, entries []entry) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create zip: %w", err)
	}
	zw := zip.NewWriter(out)

	for _, e := range entries {
		// Zip entries always use forward slashes.
		name := filepath.ToSlash(e.relPath)
		fw, err := zw.Create(name)
		if err != nil {
			_ = zw.Close()
			_ = out.Close()
			return fmt.Errorf("create zip entry %s: %w", name, err)
		}
		if e.content != nil {
			if _, err := fw.Write(e.content); err != nil {
				_ = zw.Close()
				_ = out.Close()
				return fmt.Errorf("write zip entry %s: %w", name, err)
			}
			continue
		}
		if err := copyIntoZip(fw, e.sourcePath); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return fmt.Errorf("write zip entry %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("finalize zip: %w", err)
	}
	return out.Close()
}

func copyIntoZip(dst io.Writer, sourcePath string) error {
	in, err := os.Open(sourcePath)
	if err != nil {
		return err
	}
	defer in.Close()
	_, err = io.Copy(dst, in)
	return err
}
