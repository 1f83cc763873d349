package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/tinyrange/freqs/pkg/buildinfo"
	"github.com/tinyrange/freqs/pkg/freq"
	"github.com/tinyrange/freqs/pkg/render"
	"github.com/tinyrange/freqs/pkg/sink"
	"github.com/tinyrange/freqs/pkg/source"
)

var (
	rootOutput     string
	rootChunkSize  int
	rootLabelFile  string
	rootDecompress bool
	rootNoProgress bool
	rootVerbose    bool
)

// runError marks a failure of the analysis itself, separating it from
// command line mistakes when the exit code is chosen.
type runError struct{ err error }

func (e runError) Error() string { return e.err.Error() }
func (e runError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   "freqs <file>",
	Short: "freqs: display how often every byte value occurs in a file",
	Long: fmt.Sprintf(`freqs version %s

freqs reads a file in fixed size chunks and prints a table of every byte
value it contains, how often each occurs and a readable label. Memory use
stays constant no matter how large the file is. Pass - to read standard
input.`, buildinfo.VERSION),
	Version:       buildinfo.VERSION,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("freqs requires exactly one file to read")
		}

		if rootChunkSize < 1 {
			return fmt.Errorf("--chunk-size must be at least 1 byte")
		}

		renderer := render.New()
		if rootLabelFile != "" {
			labels, err := render.LoadLabelFile(rootLabelFile)
			if err != nil {
				return err
			}

			renderer = render.NewWithLabels(labels)
		}

		if err := countFile(args[0], renderer); err != nil {
			return runError{err}
		}

		return nil
	},
}

func initLogging() {
	w := os.Stderr

	level := slog.LevelInfo
	if rootVerbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !isatty.IsTerminal(w.Fd()),
		}),
	))
}

// countFile runs one whole analysis: open the source, count every byte,
// render the table and write it to the selected target.
func countFile(path string, renderer *render.Renderer) error {
	src, err := source.Open(path, rootDecompress)
	if err != nil {
		return err
	}
	defer src.Close()

	slog.Debug("reading", "source", src.Name(), "size", src.Size(), "chunkSize", rootChunkSize)

	var reader io.Reader = src

	if !rootNoProgress && isatty.IsTerminal(os.Stderr.Fd()) {
		pb := progressbar.DefaultBytes(src.Size(), fmt.Sprintf("counting %s", src.Name()))
		defer pb.Close()

		reader = io.TeeReader(src, pb)
	}

	start := time.Now()

	table, total, err := freq.NewCounter(rootChunkSize).ConsumeAll(reader)
	if err != nil {
		return err
	}

	slog.Info("done", "bytes", total, "distinct", table.Distinct(), "elapsed", time.Since(start))

	out, err := sink.Open(rootOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	if failed := sink.WriteTable(out, renderer.Render(table)); failed > 0 {
		slog.Warn("some table lines could not be written", "failed", failed)
	}

	return nil
}

func printError(err error) {
	color.New(color.FgRed).Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootOutput, "output", "o", "", "append the rendered table to a file at path instead of printing it")
	rootCmd.PersistentFlags().IntVar(&rootChunkSize, "chunk-size", freq.DefaultChunkSize, "the read buffer size in bytes")
	rootCmd.PersistentFlags().StringVar(&rootLabelFile, "labels", "", "a YAML file overriding the labels shown for byte values")
	rootCmd.PersistentFlags().BoolVarP(&rootDecompress, "decompress", "z", false, "decompress .gz, .zst and .xz files while counting")
	rootCmd.PersistentFlags().BoolVar(&rootNoProgress, "no-progress", false, "disable the progress bar")
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "enable verbose logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)

		var analysis runError
		if errors.As(err, &analysis) {
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, "try 'freqs --help' for usage")
		os.Exit(2)
	}
}
