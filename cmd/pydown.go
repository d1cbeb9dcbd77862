package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dukatools/config"
	"dukatools/pydown"
)

var (
	pydownDest    string
	pydownVersion string
	pydownVariant string
	pydownAPI     string
	pydownTriplet string
	pydownExtract bool
)

var pydownCmd = &cobra.Command{
	Use:   "pydown",
	Short: "Download a standalone CPython build",
	Long: `Fetch a relocatable CPython build from the python-build-standalone
releases, picking the newest asset that matches this machine (or an
explicit --triplet) and the requested version.

With --extract the archive is unpacked under the destination and
"python"/"python<minor>" shims are symlinked into <dest>/bin.

Set GITHUB_TOKEN to avoid the anonymous API rate limit.`,
	RunE: runPydown,
}

func init() {
	flags := pydownCmd.Flags()
	flags.StringVarP(&pydownDest, "dest", "d", "", "destination directory (required)")
	flags.StringVarP(&pydownVersion, "version", "v", "", "version pin, e.g. 3.12 or 3.12.6 (default: newest)")
	flags.StringVar(&pydownVariant, "variant", "", "asset variant: "+strings.Join(config.VariantValues(), ", "))
	flags.StringVar(&pydownAPI, "api", "", "releases API endpoint")
	flags.StringVar(&pydownTriplet, "triplet", "", "target triplet, e.g. x86_64-unknown-linux-gnu (default: detect)")
	flags.BoolVarP(&pydownExtract, "extract", "x", false, "extract the archive and create shims")
	pydownCmd.MarkFlagRequired("dest")

	rootCmd.AddCommand(pydownCmd)
}

func runPydown(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	apiURL := pydownAPI
	if apiURL == "" {
		apiURL = cfg.Pydown.API
	}
	variant := pydownVariant
	if variant == "" {
		variant = cfg.Pydown.Variant
	}
	if !config.IsValidVariant(variant) {
		return fmt.Errorf("unknown variant %q (valid: %s)", variant, strings.Join(config.VariantValues(), ", "))
	}

	triplet := pydownTriplet
	if triplet == "" {
		triplet, err = pydown.DetectTriplet()
		if err != nil {
			return err
		}
	}
	token := os.Getenv("GITHUB_TOKEN")

	fmt.Printf("querying %s\n", apiURL)
	release, err := pydown.FetchLatestRelease(pydown.NewAPIClient(), apiURL, token)
	if err != nil {
		return err
	}

	asset, err := pydown.SelectAsset(release, triplet, variant, pydownVersion)
	if err != nil {
		return err
	}
	version, _ := pydown.ParseVersion(asset.Name)
	fmt.Printf("selected %s (%s, %.1f MB)\n",
		asset.Name, pydown.VersionString(version), float64(asset.Size)/(1024*1024))

	if err := os.MkdirAll(pydownDest, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", pydownDest, err)
	}
	archivePath := filepath.Join(pydownDest, asset.Name)
	fmt.Printf("downloading to %s\n", archivePath)
	if err := pydown.Download(pydown.NewDownloadClient(), asset.BrowserDownloadURL, archivePath, token); err != nil {
		return err
	}

	if !pydownExtract {
		fmt.Println("done")
		return nil
	}

	fmt.Printf("extracting into %s\n", pydownDest)
	if err := pydown.Extract(archivePath, pydownDest); err != nil {
		return err
	}

	binary, ok := pydown.FindPythonBinary(pydownDest)
	if !ok {
		return fmt.Errorf("no python binary found under %s after extraction", pydownDest)
	}
	fmt.Printf("interpreter: %s\n", binary)

	if runtime.GOOS != "windows" {
		binDir := filepath.Join(pydownDest, "bin")
		if err := pydown.CreateShims(binDir, binary, minorOf(version)); err != nil {
			return err
		}
		fmt.Printf("shims: %s\n", binDir)
	}
	return nil
}

// minorOf renders "3.12" from a parsed version tuple.
func minorOf(version []int) string {
	if len(version) < 2 {
		return ""
	}
	return strconv.Itoa(version[0]) + "." + strconv.Itoa(version[1])
}
