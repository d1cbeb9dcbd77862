package pydown

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// Extract unpacks archive into targetDir, dispatching on the file name.
//
// Supported: .tar.gz/.tgz, .tar.xz, .zip. .tar.zst needs an external tar
// with zstd support; anything else is an error.
func Extract(archive, targetDir string) error {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", targetDir, err)
	}

	name := strings.ToLower(filepath.Base(archive))
	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return extractTarStream(archive, targetDir, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case strings.HasSuffix(name, ".tar.xz"):
		return extractTarStream(archive, targetDir, func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r)
		})
	case strings.HasSuffix(name, ".zip"):
		return extractZip(archive, targetDir)
	case strings.HasSuffix(name, ".tar.zst"):
		if _, err := exec.LookPath("tar"); err != nil {
			return fmt.Errorf("cannot extract .tar.zst without an external tar supporting zstd")
		}
		if out, err := exec.Command("tar", "-axf", archive, "-C", targetDir).CombinedOutput(); err != nil {
			return fmt.Errorf("tar failed: %w (output: %s)", err, string(out))
		}
		return nil
	default:
		return fmt.Errorf("unknown archive format: %s", filepath.Base(archive))
	}
}

// extractTarStream opens archive, wraps it in the given decompressor and
// unpacks the tar stream.
func extractTarStream(archive, targetDir string, decompress func(io.Reader) (io.Reader, error)) error {
	f, err := os.Open(archive)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archive, err)
	}
	defer f.Close()

	r, err := decompress(f)
	if err != nil {
		return fmt.Errorf("failed to decompress %s: %w", archive, err)
	}

	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("corrupt tar stream: %w", err)
		}

		dest, err := safeJoin(targetDir, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dest, 0755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(dest, tr, os.FileMode(header.Mode)); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return err
			}
			os.Remove(dest)
			if err := os.Symlink(header.Linkname, dest); err != nil {
				return err
			}
		}
		// Other entry types (devices, fifos) do not occur in these archives.
	}
}

// extractZip unpacks a zip archive.
func extractZip(archive, targetDir string) error {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", archive, err)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		dest, err := safeJoin(targetDir, entry.Name)
		if err != nil {
			return err
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return err
			}
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return err
		}
		err = writeFile(dest, rc, entry.Mode())
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// safeJoin joins target and name, rejecting entries that escape the target
// directory.
func safeJoin(targetDir, name string) (string, error) {
	dest := filepath.Join(targetDir, filepath.FromSlash(name))
	if !strings.HasPrefix(dest, filepath.Clean(targetDir)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry escapes target directory: %s", name)
	}
	return dest, nil
}

func writeFile(dest string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FindPythonBinary locates the interpreter inside an extracted tree.
//
// Checks the common python-build-standalone layouts first, then falls back
// to scanning for any executable python3* file.
func FindPythonBinary(root string) (string, bool) {
	for _, candidate := range []string{
		filepath.Join(root, "python", "bin", "python3"),
		filepath.Join(root, "python", "python.exe"),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	var found string
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || found != "" || info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if strings.HasPrefix(base, "python3") && info.Mode()&0111 != 0 {
			found = path
		} else if base == "python.exe" {
			found = path
		}
		return nil
	})
	return found, found != ""
}

// CreateShims symlinks "python" and "python<minor>" in binDir to target.
func CreateShims(binDir, target, minor string) error {
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", binDir, err)
	}

	for _, name := range []string{"python", "python" + minor} {
		shim := filepath.Join(binDir, name)
		if _, err := os.Lstat(shim); err == nil {
			if err := os.Remove(shim); err != nil {
				return fmt.Errorf("failed to replace shim %s: %w", shim, err)
			}
		}
		if err := os.Symlink(target, shim); err != nil {
			return fmt.Errorf("failed to create shim %s: %w", shim, err)
		}
	}
	return nil
}
