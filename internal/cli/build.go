package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/billtracer/internal/compare"
	"github.com/dgallion1/billtracer/internal/config"
	"github.com/dgallion1/billtracer/internal/fetch"
	"github.com/dgallion1/billtracer/internal/loader"
	"github.com/dgallion1/billtracer/internal/render"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	OldPath   string
	NewPath   string
	DataDir   string
	OutPath   string
	Label     string
	StageA    string
	StageB    string
	Profile   string
	MinTokens int
	MinRatio  float64
	Spelled   bool
	Pdftotext bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a static comparison page from two local bill files",
		Long: `Compare two local bill files (txt, md, html, pdf or docx) and write a
self-contained HTML viewer.

With --data, reads bill_v1.txt, bill_v2.txt and meta.json produced by
"billtracer fetch". Otherwise --old and --new name the files directly.

Example:
  billtracer build --data data --out output/index.html
  billtracer build --old v1.txt --new v2.txt --profile strict`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.OldPath, "old", "", "older version file")
	cmd.Flags().StringVar(&opts.NewPath, "new", "", "newer version file")
	cmd.Flags().StringVar(&opts.DataDir, "data", "", "directory written by billtracer fetch")
	cmd.Flags().StringVar(&opts.OutPath, "out", filepath.Join("output", "index.html"), "output HTML file")
	cmd.Flags().StringVar(&opts.Label, "label", "", "bill label shown on the page")
	cmd.Flags().StringVar(&opts.StageA, "stage-a", "", "label for the older version")
	cmd.Flags().StringVar(&opts.StageB, "stage-b", "", "label for the newer version")
	cmd.Flags().StringVar(&opts.Profile, "profile", "default", "threshold profile (default|strict)")
	cmd.Flags().IntVar(&opts.MinTokens, "min-tokens", -1, "override minimum changed tokens")
	cmd.Flags().Float64Var(&opts.MinRatio, "min-ratio", -1, "override equal-ratio threshold")
	cmd.Flags().BoolVar(&opts.Spelled, "spelled-out-headers", false, "also match SECTION/Section headers")
	cmd.Flags().BoolVar(&opts.Pdftotext, "pdftotext-fallback", true, "fall back to pdftotext for stubborn PDFs")

	return cmd
}

func runBuild(cmd *cobra.Command, opts *BuildOptions) error {
	meta := render.Meta{
		Label:     opts.Label,
		StageA:    opts.StageA,
		StageB:    opts.StageB,
		Version:   config.AppVersion,
		Generated: time.Now(),
	}

	oldPath, newPath := opts.OldPath, opts.NewPath
	if opts.DataDir != "" {
		oldPath = filepath.Join(opts.DataDir, "bill_v1.txt")
		newPath = filepath.Join(opts.DataDir, "bill_v2.txt")
		if bm, err := readMeta(filepath.Join(opts.DataDir, "meta.json")); err == nil {
			if meta.Label == "" {
				meta.Label = bm.Label
			}
			if meta.StageA == "" {
				meta.StageA = fetch.StageLabel(bm.V1)
			}
			if meta.StageB == "" {
				meta.StageB = fetch.StageLabel(bm.V2)
			}
		}
	}
	if oldPath == "" || newPath == "" {
		return fmt.Errorf("either --data or both --old and --new are required")
	}
	if meta.Label == "" {
		meta.Label = fmt.Sprintf("%s vs %s", filepath.Base(oldPath), filepath.Base(newPath))
	}
	if meta.StageA == "" {
		meta.StageA = filepath.Base(oldPath)
	}
	if meta.StageB == "" {
		meta.StageB = filepath.Base(newPath)
	}

	loadOpts := loader.Options{PDFFallbackPdftotext: opts.Pdftotext}
	oldText, err := loader.Load(oldPath, loadOpts)
	if err != nil {
		return err
	}
	newText, err := loader.Load(newPath, loadOpts)
	if err != nil {
		return err
	}

	cfg, err := buildCompareConfig(opts)
	if err != nil {
		return err
	}

	cs, err := compare.Compare(oldText, newText, cfg)
	if err != nil {
		return err
	}
	slog.Debug("compared",
		"added", cs.Stats.Added,
		"removed", cs.Stats.Removed,
		"modified", cs.Stats.Modified,
		"unchanged", cs.Stats.Unchanged,
	)

	page, err := render.BuildPage(meta, cs)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(opts.OutPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(opts.OutPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.OutPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d modified, %d added, %d removed, %d unchanged)\n",
		opts.OutPath, cs.Stats.Modified, cs.Stats.Added, cs.Stats.Removed, cs.Stats.Unchanged)
	return nil
}

func buildCompareConfig(opts *BuildOptions) (compare.Config, error) {
	var cfg compare.Config
	switch opts.Profile {
	case "default":
		cfg = compare.DefaultConfig()
	case "strict":
		cfg = compare.StrictConfig()
	default:
		return cfg, fmt.Errorf("invalid profile %q: must be default or strict", opts.Profile)
	}
	if opts.MinTokens >= 0 {
		cfg.MinDiffTokens = opts.MinTokens
	}
	if opts.MinRatio >= 0 {
		cfg.MinEqualRatio = opts.MinRatio
	}
	cfg.SpelledOutHeaders = opts.Spelled
	return cfg, nil
}

func readMeta(path string) (billMeta, error) {
	var bm billMeta
	blob, err := os.ReadFile(path)
	if err != nil {
		return bm, err
	}
	if err := json.Unmarshal(blob, &bm); err != nil {
		return bm, fmt.Errorf("parse %s: %w", path, err)
	}
	return bm, nil
}
