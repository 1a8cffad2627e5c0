package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/billtracer/internal/fetch"
)

// FetchOptions holds flags for the fetch command.
type FetchOptions struct {
	*RootOptions
	Preset   string
	Congress int
	Chamber  string
	Number   int
	V1       string
	V2       string
	OutDir   string
	Timeout  time.Duration
}

// billMeta is written next to the downloaded texts so build can label the
// page without re-deriving anything.
type billMeta struct {
	Label     string    `json:"label"`
	Congress  int       `json:"congress"`
	Chamber   string    `json:"chamber"`
	Number    int       `json:"number"`
	V1        string    `json:"v1"`
	V2        string    `json:"v2"`
	FetchedAt time.Time `json:"fetched_at"`
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FetchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download two versions of a bill to a local directory",
		Long: `Download both versions of a bill from the govinfo/congress.gov mirror
cascade into a directory as bill_v1.txt, bill_v2.txt and meta.json, ready
for "billtracer build".

Example:
  billtracer fetch --preset hr3684-117 --out data
  billtracer fetch --congress 117 --chamber house --number 3684 --v1 ih --v2 enr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Preset, "preset", "", "known bill preset (e.g. hr3684-117)")
	cmd.Flags().IntVar(&opts.Congress, "congress", 0, "congress number")
	cmd.Flags().StringVar(&opts.Chamber, "chamber", "house", "chamber (house|senate)")
	cmd.Flags().IntVar(&opts.Number, "number", 0, "bill number")
	cmd.Flags().StringVar(&opts.V1, "v1", "ih", "older version code")
	cmd.Flags().StringVar(&opts.V2, "v2", "enr", "newer version code")
	cmd.Flags().StringVar(&opts.OutDir, "out", "data", "output directory")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 60*time.Second, "per-request timeout")

	return cmd
}

func runFetch(cmd *cobra.Command, opts *FetchOptions) error {
	meta := billMeta{
		Congress:  opts.Congress,
		Chamber:   opts.Chamber,
		Number:    opts.Number,
		V1:        opts.V1,
		V2:        opts.V2,
		FetchedAt: time.Now(),
	}
	if opts.Preset != "" {
		p, ok := fetch.Presets[opts.Preset]
		if !ok {
			return fmt.Errorf("unknown preset %q", opts.Preset)
		}
		meta.Label = p.Label
		meta.Congress, meta.Chamber, meta.Number = p.Congress, p.Chamber, p.Number
		meta.V1, meta.V2 = p.V1, p.V2
	}
	if meta.Congress == 0 || meta.Number == 0 {
		return fmt.Errorf("either --preset or --congress and --number are required")
	}
	if meta.Label == "" {
		meta.Label = fmt.Sprintf("%s %d (%dth)", meta.Chamber, meta.Number, meta.Congress)
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	client := fetch.NewClient(opts.Timeout, "")
	defer client.Close()
	ctx := cmd.Context()

	for i, ver := range []string{meta.V1, meta.V2} {
		slog.Info("fetching bill version",
			"package", fetch.PackageID(meta.Congress, meta.Chamber, meta.Number, ver))
		text, err := client.FetchVersion(ctx, meta.Congress, meta.Chamber, meta.Number, ver)
		if err != nil {
			return err
		}
		path := filepath.Join(opts.OutDir, fmt.Sprintf("bill_v%d.txt", i+1))
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		slog.Info("saved", "path", path, "bytes", len(text))
	}

	metaPath := filepath.Join(opts.OutDir, "meta.json")
	blob, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	if err := os.WriteFile(metaPath, blob, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", metaPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fetched %s -> %s\n", meta.Label, opts.OutDir)
	return nil
}
