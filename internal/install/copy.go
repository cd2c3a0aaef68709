package install

import (
	"io"
	"os"
	"path/filepath"
)

// copyFile copies a single file, overwriting any existing destination.
// The source's permission bits are preserved.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}

// copyTree recursively copies a directory tree, overwriting existing
// files, and returns the number of files copied.
func copyTree(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			n, err := copyTree(srcPath, dstPath)
			if err != nil {
				return count, err
			}
			count += n
			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
