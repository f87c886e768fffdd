// Command simgraph builds a similarity graph over the rows of a delimited
// data file and reports shortest-path distances, the label distribution and
// an approximate graph diameter.
//
// Usage:
//
//	simgraph [flags] [file]
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simgraph/dataset"
	"github.com/katalvlaran/simgraph/internal/config"
	"github.com/katalvlaran/simgraph/internal/pipeline"
)

// Version is set at build time.
var Version = "0.1.0"

const modePrompt = "Choose graph type: (1) All features, (2) Eating only, (3) Physical only"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "simgraph: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "simgraph [flags] [file]",
		Short: "Similarity-graph analysis of tabular samples",
		Long: `simgraph encodes every row of a delimited file as a normalized feature
vector, links rows whose Euclidean distance is within a threshold, and
reports shortest-path distances from one sample, the class distribution
and an estimate of the graph diameter with both endpoint records.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if cfg.Prompt {
				cfg.Mode, err = promptMode(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}

			level, _ := cfg.SlogLevel()
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			_, err = pipeline.Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default: ./simgraph.yaml)")
	f.String("mode", config.DefaultMode, "feature selection: 1|2|3 or all|eating|physical")
	f.Bool("prompt", false, "ask for the feature selection on stdin")
	f.String("label", config.DefaultLabel, "name of the class label column")
	f.Float64("threshold", config.DefaultThreshold, "maximum edge distance (inclusive)")
	f.Int("sample", config.DefaultSample, "number of diameter sweep sources")
	f.Int("source", 0, "sample whose distance table is reported")
	f.Int("workers", 0, "parallel workers (0 = one per CPU)")
	f.StringP("output", "o", config.DefaultOutput, "table format (text|markdown)")
	f.String("plot", "", "write a distance histogram image to this path")
	f.String("log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	f.String("delimiter", config.DefaultDelimiter, "field delimiter of the input file")
	f.Int("components", config.DefaultComponents, "largest components to list (0 = all)")
	f.Int("hops", config.DefaultHops, "deepest hop layer to report around the source (0 = all)")

	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"all", "eating", "physical"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// promptMode asks for the selection mode and returns the answer line.
// Unreadable or invalid answers select all features.
func promptMode(in io.Reader, out io.Writer) (string, error) {
	if _, err := fmt.Fprintln(out, modePrompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading mode: %w", err)
	}
	answer := strings.TrimSpace(line)

	return dataset.ParseMode(answer).String(), nil
}
