package pydown

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// DetectTriplet returns the platform triplet used in python-build-standalone
// asset names, e.g. "x86_64-unknown-linux-gnu" or "aarch64-apple-darwin".
func DetectTriplet() (string, error) {
	var arch string
	switch runtime.GOARCH {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	default:
		return "", fmt.Errorf("unsupported CPU architecture: %s", runtime.GOARCH)
	}

	switch runtime.GOOS {
	case "linux":
		return fmt.Sprintf("%s-unknown-linux-%s", arch, detectLibc()), nil
	case "darwin":
		return arch + "-apple-darwin", nil
	case "windows":
		return arch + "-pc-windows-msvc", nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}

// detectLibc distinguishes musl from glibc on Linux.
func detectLibc() string {
	// ldd --version prints the libc banner on both glibc and musl systems,
	// though musl's ldd exits non-zero; inspect the output either way.
	if out, err := exec.Command("ldd", "--version").CombinedOutput(); err == nil || len(out) > 0 {
		if strings.Contains(strings.ToLower(string(out)), "musl") {
			return "musl"
		}
		if err == nil {
			return "gnu"
		}
	}
	// Alpine hint
	if _, err := os.Stat("/etc/alpine-release"); err == nil {
		return "musl"
	}
	return "gnu"
}
