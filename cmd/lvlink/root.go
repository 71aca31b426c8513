package main

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlink/core"
	"github.com/katalvlaran/lvlink/distance"
	"github.com/katalvlaran/lvlink/pointio"
)

// connectUsage describes --connect; cobra appends the (default 1000) suffix.
const connectUsage = "number of shortest edges to connect; 1000, or 10 for inputs of at most 20 points"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	strict    bool
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.StringVar(&g.logFormat, "log-format", "text", "log format (text or json)")
	fs.BoolVar(&g.strict, "strict", false, "fail on malformed input lines instead of skipping them")
}

// logger builds a logrus.Logger writing to the command's error stream.
func (g *globalFlags) logger(cmd *cobra.Command) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(g.logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "--log-level")
	}
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	l.SetLevel(level)
	switch g.logFormat {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, errors.Newf("--log-format: unknown format %q", g.logFormat)
	}

	return l, nil
}

// load parses path and builds its distance index, logging timings at debug level.
func (g *globalFlags) load(log logrus.FieldLogger, path string) (*distance.Index, error) {
	var opts []pointio.Option
	opts = append(opts, pointio.WithLogger(log))
	if g.strict {
		opts = append(opts, pointio.WithStrict())
	}

	start := time.Now()
	points, err := pointio.ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"points": points.Len(), "elapsed": time.Since(start)}).Debug("parsed input")

	start = time.Now()
	ix, err := distance.Build(points)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"edges": ix.Len(), "elapsed": time.Since(start)}).Debug("built distance index")

	return ix, nil
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "lvlink",
		Short:         "Connect 3-D points by ascending distance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	g.register(root.PersistentFlags())

	root.AddCommand(
		newSolveCmd(g),
		newEdgesCmd(g),
		newExportCmd(g),
	)

	return root
}

// defaultConnect picks the prefix length when --connect is not given:
// 1000 for large inputs, 10 for small ones, capped at the edge count.
func defaultConnect(points core.PointSet, edges int) int {
	k := 1000
	if points.Len() <= 20 {
		k = 10
	}
	if k > edges {
		k = edges
	}

	return k
}

// newTable returns a table writer that keeps every cell on a single line.
func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)

	return table
}
