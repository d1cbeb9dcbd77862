package cmd

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"dukatools/ffmpeg"
	"dukatools/ffprobe"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that external tools are available",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	healthy := true

	path, err := ffmpeg.Resolve(cfg.FFmpeg)
	if err != nil {
		fmt.Printf("ffmpeg:  MISSING (%v)\n", err)
		healthy = false
	} else {
		version, verr := ffmpeg.Version(path)
		if verr != nil {
			version = "version unknown"
		}
		fmt.Printf("ffmpeg:  %s (%s)\n", path, version)
	}

	if ffprobe.Available() {
		probePath, _ := exec.LookPath("ffprobe")
		fmt.Printf("ffprobe: %s\n", probePath)
	} else {
		fmt.Println("ffprobe: not found, falling back to ffmpeg banner parsing")
	}

	if !healthy {
		return fmt.Errorf("some required tools are missing")
	}
	return nil
}
