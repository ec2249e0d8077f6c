package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	sketchdata "github.com/kataras/sketch-data"
	"github.com/kataras/sketch-data/pkg/host"
	"github.com/kataras/sketch-data/pkg/sketch"

	"github.com/fatih/color"
	"github.com/go-kit/kit/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = sketch.Version

// Output targets besides a file path.
const (
	outputClipboard = "clipboard"
	outputStdout    = "-"
)

func main() {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "sketch-data",
		Short: "Create a data set from a selected design layer",
		Long: "Walks the selected layer of a design document snapshot and copies a JSON data set " +
			"built from its text layers, symbol overrides and image fills",
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(run(v, afero.NewOsFs(), os.Stdout, os.Stderr))
		},
	}

	rootCmd.Flags().StringP("document", "d", "", "Document snapshot, .json or .yaml (required)")
	rootCmd.Flags().StringP("select", "s", "", "Comma-separated layer IDs to select instead of the document selection")
	rootCmd.Flags().StringP("output", "o", outputClipboard, "Where to copy the data set: \"clipboard\", \"-\" for stdout, or a file path")
	rootCmd.Flags().String("image-placeholder", "", "Path emitted for image fills and image overrides (default \"/path/to/image.png\")")
	rootCmd.Flags().String("log-format", "", "Structured log format: logfmt or json (default colored text)")
	rootCmd.Flags().BoolP("quiet", "q", false, "Only print messages, no progress")

	if err := v.BindPFlags(rootCmd.Flags()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	v.SetEnvPrefix("SKETCH_DATA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sketch-data version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run executes one extraction and returns the process exit code.
// Messages and progress go to stderr so that stdout can carry the payload.
func run(v *viper.Viper, fs afero.Fs, stdout, stderr io.Writer) int {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	documentPath := v.GetString("document")
	if documentPath == "" {
		red.Fprintln(stderr, "Error: required flag \"document\" not set")
		return 1
	}

	logger := newLogger(v, stderr)
	if logger != nil && v.GetString("log-format") == "" {
		cyan.Fprintln(stderr, "\n🧩 Sketch Data Set")
		cyan.Fprintln(stderr, "==================")
		cyan.Fprintln(stderr)
	}

	doc, err := sketch.Load(fs, documentPath)
	if err != nil {
		red.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var selection host.SelectionProvider = doc
	if ids := v.GetString("select"); ids != "" {
		selection = sketch.Selection{Document: doc, IDs: sketch.ParseLayerIDs(ids)}
	}

	clipboard, err := newClipboard(v.GetString("output"), fs, stdout)
	if err != nil {
		red.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts := sketchdata.Options{
		Selection:        selection,
		Clipboard:        clipboard,
		Messenger:        &cliMessenger{w: stderr},
		ImagePlaceholder: v.GetString("image-placeholder"),
		Logger:           logger,
	}

	result, err := sketchdata.Run(opts)
	if err != nil {
		if logger != nil {
			logger.Errorf("%v", err)
		}
		return 1
	}

	if logger != nil && v.GetString("log-format") == "" {
		stats := result.Stats
		cyan.Fprintln(stderr, "\n📊 Data Set Summary:")
		fmt.Fprintf(stderr, "  • Layer: %s (%s)\n", result.Layer.Name, result.Layer.Kind())
		fmt.Fprintf(stderr, "  • Objects: %d\n", stats.Objects)
		fmt.Fprintf(stderr, "  • Text values: %d\n", stats.Texts)
		fmt.Fprintf(stderr, "  • Image placeholders: %d\n\n", stats.Images)
	}

	return 0
}

func newClipboard(output string, fs afero.Fs, stdout io.Writer) (host.Clipboard, error) {
	switch output {
	case "", outputClipboard:
		return &host.CommandClipboard{}, nil
	case outputStdout:
		return &host.WriterClipboard{W: stdout}, nil
	default:
		return &host.FileClipboard{Fs: fs, Path: output}, nil
	}
}

// newLogger returns nil when quiet, a go-kit logger for structured
// formats and the colored logger otherwise.
func newLogger(v *viper.Viper, w io.Writer) sketchdata.Logger {
	if v.GetBool("quiet") {
		return nil
	}

	switch format := v.GetString("log-format"); format {
	case "":
		return &cliLogger{w: w}
	case "json":
		return sketchdata.NewKitLogger(log.With(log.NewJSONLogger(log.NewSyncWriter(w)), "ts", log.DefaultTimestampUTC))
	default:
		return sketchdata.NewKitLogger(log.With(log.NewLogfmtLogger(log.NewSyncWriter(w)), "ts", log.DefaultTimestampUTC))
	}
}

// cliMessenger implements host.Messenger with colored terminal output.
type cliMessenger struct {
	w io.Writer
}

func (m *cliMessenger) Message(text string) {
	c := color.New(color.FgYellow)
	if text == sketchdata.MessageCopied {
		c = color.New(color.FgGreen)
	}
	c.Fprintln(m.w, text)
}

// cliLogger implements sketchdata.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
