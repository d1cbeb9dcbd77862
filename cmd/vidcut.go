package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dukatools/ffmpeg"
	"dukatools/ffprobe"
	"dukatools/internal/timeutil"
	"dukatools/models"
	"dukatools/runner"
)

var (
	vidcutFrom      string
	vidcutTo        string
	vidcutDuration  string
	vidcutTrimStart string
	vidcutTrimEnd   string
	vidcutOut       string
	vidcutSuffix    string
	vidcutFFmpeg    string
	vidcutAccurate  bool
	vidcutFast      bool
	vidcutOverwrite bool
	vidcutDryRun    bool
)

var vidcutCmd = &cobra.Command{
	Use:   "vidcut <input>...",
	Short: "Trim videos with ffmpeg, fast by default",
	Long: `Trim one or more videos. The fast path copies streams without
re-encoding, which snaps the cut to the nearest keyframe; when that
fails the whole file is re-encoded for a frame-accurate cut.

Times accept plain seconds (90, 12.5), suffixed values (90s, 2m,
1.5h, 500ms) and clock notation (1:30, 01:02:03.250).

Inputs may be literal paths or glob patterns:

  dukatools vidcut --from 1:00 --to 2:30 talk.mp4
  dukatools vidcut --trim-start 10 'clips/*.mkv'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVidcut,
}

func init() {
	flags := vidcutCmd.Flags()
	flags.StringVar(&vidcutFrom, "from", "", "start of the kept range")
	flags.StringVar(&vidcutTo, "to", "", "end of the kept range")
	flags.StringVarP(&vidcutDuration, "duration", "t", "", "length of the kept range")
	flags.StringVar(&vidcutTrimStart, "trim-start", "", "drop this much from the beginning")
	flags.StringVar(&vidcutTrimEnd, "trim-end", "", "drop this much from the end")
	flags.StringVarP(&vidcutOut, "out", "o", "", "output path (single input only)")
	flags.StringVar(&vidcutSuffix, "suffix", "", "output stem suffix for batch runs")
	flags.StringVar(&vidcutFFmpeg, "ffmpeg", "", "ffmpeg binary to use")
	flags.BoolVar(&vidcutAccurate, "accurate", false, "always re-encode for frame-accurate cuts")
	flags.BoolVar(&vidcutFast, "fast", false, "stream copy only, never fall back to re-encoding")
	flags.BoolVarP(&vidcutOverwrite, "overwrite", "y", false, "overwrite existing outputs")
	flags.BoolVar(&vidcutDryRun, "dry-run", false, "print the ffmpeg commands without running them")

	rootCmd.AddCommand(vidcutCmd)
}

func runVidcut(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if vidcutAccurate && vidcutFast {
		return fmt.Errorf("--accurate and --fast are mutually exclusive")
	}
	mode := models.ModeAuto
	if vidcutAccurate {
		mode = models.ModeAccurate
	}
	if vidcutFast {
		mode = models.ModeFast
	}

	window, err := parseWindowFlags()
	if err != nil {
		return err
	}

	hint := vidcutFFmpeg
	if hint == "" {
		hint = cfg.FFmpeg
	}
	ffmpegPath, err := ffmpeg.Resolve(hint)
	if err != nil {
		return err
	}

	suffix := vidcutSuffix
	if suffix == "" {
		suffix = cfg.Vidcut.Suffix
	}

	planner := runner.NewPlanner(args, runner.Options{
		Window:    window,
		Output:    vidcutOut,
		Suffix:    suffix,
		Overwrite: vidcutOverwrite,
		ForceMode: mode,
	}).SetProber(durationProber(ffmpegPath))

	jobs, preFailed, err := planner.Plan()
	if err != nil {
		return err
	}

	run := runner.NewRunner(ffmpegPath).
		SetDryRun(vidcutDryRun).
		SetEncoder(cfg.Vidcut.Video.Codec, cfg.Vidcut.Video.Preset, cfg.Vidcut.Video.CRF).
		SetAttemptCallback(func(job *models.CutJob, strategy models.CutStrategy) {
			if job.ForceMode == models.ModeAuto && strategy == models.StrategyReencode {
				fmt.Fprintf(os.Stderr, "stream copy failed for %s, retrying with re-encode\n",
					filepath.Base(job.InputPath))
			}
		})

	results := append(preFailed, run.Run(jobs)...)
	for _, res := range results {
		switch {
		case res.Success && vidcutDryRun:
			fmt.Println(res.Detail)
		case res.Success:
			fmt.Printf("✓ %s -> %s (%s)\n", res.Job.InputPath, res.Job.OutputPath, res.Strategy)
		default:
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", res.Job.InputPath, res.Err)
		}
	}
	return runner.Summarize(results)
}

// parseWindowFlags converts the raw time flags into window options.
// An empty flag counts as absent; "0" is a real value.
func parseWindowFlags() (models.WindowOptions, error) {
	var window models.WindowOptions
	for _, f := range []struct {
		name  string
		text  string
		value *float64
		has   *bool
	}{
		{"--from", vidcutFrom, &window.Start, &window.HasStart},
		{"--to", vidcutTo, &window.End, &window.HasEnd},
		{"--duration", vidcutDuration, &window.Duration, &window.HasDuration},
		{"--trim-start", vidcutTrimStart, &window.TrimStart, &window.HasTrimStart},
		{"--trim-end", vidcutTrimEnd, &window.TrimEnd, &window.HasTrimEnd},
	} {
		if f.text == "" {
			continue
		}
		seconds, err := timeutil.Parse(f.text)
		if err != nil {
			return models.WindowOptions{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.value = seconds
		*f.has = true
	}
	return window, nil
}

// durationProber prefers ffprobe metadata and falls back to scraping
// the Duration line from ffmpeg's banner output.
func durationProber(ffmpegPath string) runner.DurationProber {
	return func(path string) (float64, error) {
		if ffprobe.Available() {
			if result, err := ffprobe.Probe(path); err == nil {
				if seconds, err := result.GetDuration(); err == nil {
					return seconds, nil
				}
			}
		}
		return ffmpeg.ProbeDuration(ffmpegPath, path)
	}
}
