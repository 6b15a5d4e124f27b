package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/seanfahey1/congress2corpus/corpus"
)

var Cmd = &cobra.Command{
	Use:   "congress2corpus",
	Short: "Split Senate record documents into per-party text corpora",
	Long: `Extract Senate record text from govinfo.gov PDF (or plain text)
documents, split it by speaker, normalize it, and write one aggregated
corpus file per political party. Party affiliation is resolved against the
theunitedstates.io legislator datasets, which can also be supplied from
disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var args struct {
	docs       []string
	current    string
	historical string
	outdir     string
	start      string
	end        string
	config     string
}

func init() {
	Cmd.Flags().StringSliceVarP(&args.docs, "pdf", "p", nil, "Path to input document(s); repeatable")
	Cmd.Flags().StringVar(&args.current, "current", corpus.DefaultCurrentSource, "Path or URL of current legislator data")
	Cmd.Flags().StringVar(&args.historical, "historical", corpus.DefaultHistoricalSource, "Path or URL of historical legislator data")
	Cmd.Flags().StringVarP(&args.outdir, "outdir", "o", "", "Output directory for corpus files")
	// The default window is intentionally inverted (start in the far
	// future, end in the far past) so that every term qualifies until the
	// caller narrows it. See DESIGN.md before changing.
	Cmd.Flags().StringVarP(&args.start, "start", "s", "2100-01-01", "Start date for filtering the legislator list (YYYY-MM-DD)")
	Cmd.Flags().StringVarP(&args.end, "end", "e", "1770-01-01", "End date for filtering the legislator list (YYYY-MM-DD)")
	Cmd.Flags().StringVar(&args.config, "config", "", "Optional YAML file with run defaults")
}

// usageError marks bad invocations, distinguished from runtime failures by
// exit code 2.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func main() {
	klog.InitFlags(nil)
	Cmd.Flags().AddGoFlagSet(flag.CommandLine)

	ctx := klog.NewContext(context.Background(), klog.Background())
	if err := Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ue usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := klog.FromContext(ctx)

	if args.config != "" {
		cfg, err := corpus.LoadRunConfig(args.config)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}

	if len(args.docs) == 0 {
		return usageError{"at least one input document is required (-p/--pdf)"}
	}
	if args.outdir == "" {
		return usageError{"an output directory is required (-o/--outdir)"}
	}
	startFilter, err := parseDateFlag("start", args.start)
	if err != nil {
		return err
	}
	endFilter, err := parseDateFlag("end", args.end)
	if err != nil {
		return err
	}

	log.Info("loading legislator reference data", "current", args.current, "historical", args.historical)
	table, parties, err := corpus.LoadReferenceTable(ctx, args.current, args.historical, startFilter, endFilter)
	if err != nil {
		return fmt.Errorf("building reference table: %w", err)
	}
	log.Info("reference table built", "legislators", len(table), "parties", len(parties))

	buf := corpus.NewSpeakerBuffer()
	for _, doc := range args.docs {
		text, err := corpus.ExtractText(doc)
		if err != nil {
			return fmt.Errorf("extracting %s: %w", doc, err)
		}
		blocks := corpus.Segment(text, buf)
		log.V(2).Info("segmented document", "path", doc, "blocks", blocks)
	}
	log.Info("segmentation complete", "documents", len(args.docs), "speakers", buf.Len())

	corpora := corpus.Aggregate(buf.Normalized(), table, parties)
	written, err := corpus.WriteCorpora(args.outdir, corpora, parties)
	if err != nil {
		return err
	}
	for _, path := range written {
		log.Info("wrote corpus", "file", path)
	}
	if len(written) == 0 {
		log.Info("no party corpus was non-empty; nothing written")
	}
	return nil
}

// applyConfig fills in defaults from the run-config file for every flag the
// caller did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *corpus.RunConfig) {
	flags := cmd.Flags()
	if !flags.Changed("pdf") && len(cfg.Documents) > 0 {
		args.docs = cfg.Documents
	}
	if !flags.Changed("current") && cfg.Current != "" {
		args.current = cfg.Current
	}
	if !flags.Changed("historical") && cfg.Historical != "" {
		args.historical = cfg.Historical
	}
	if !flags.Changed("outdir") && cfg.OutDir != "" {
		args.outdir = cfg.OutDir
	}
	if !flags.Changed("start") && cfg.Start != "" {
		args.start = cfg.Start
	}
	if !flags.Changed("end") && cfg.End != "" {
		args.end = cfg.End
	}
}

func parseDateFlag(name, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, usageError{fmt.Sprintf("--%s: not a valid date: %q (want YYYY-MM-DD)", name, value)}
	}
	return t, nil
}
