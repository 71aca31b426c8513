package pointio

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlink/core"
)

// ErrMalformedLine indicates a non-blank line did not contain three comma-separated integers.
var ErrMalformedLine = errors.New("pointio: malformed line")

var (
	// lineRx finds a point anywhere in the line.
	lineRx = regexp.MustCompile(`(\d+),(\d+),(\d+)`)
	// strictRx requires the whole trimmed line to be a point.
	strictRx = regexp.MustCompile(`^(\d+),(\d+),(\d+)$`)
)

// Option configures Parse.
type Option func(*Options)

// Options holds parser settings.
type Options struct {
	// Strict rejects the first malformed line instead of skipping it.
	Strict bool

	// Logger receives one warning per skipped line.
	Logger logrus.FieldLogger
}

// DefaultOptions returns lenient parsing that logs to logrus.StandardLogger().
func DefaultOptions() Options {
	return Options{Logger: logrus.StandardLogger()}
}

// WithStrict makes malformed lines fail with ErrMalformedLine.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger routes skip reports to l. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Parse reads points from r, one per line.
func Parse(r io.Reader, opts ...Option) (core.PointSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		pts     []core.Point
		skipped int
		lineNo  int
	)
	rx := lineRx
	if o.Strict {
		rx = strictRx
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		m := rx.FindStringSubmatch(line)
		if m == nil {
			if o.Strict {
				return core.PointSet{}, errors.Wrapf(ErrMalformedLine, "line %d: %q", lineNo, line)
			}
			skipped++
			o.Logger.WithFields(logrus.Fields{"line": lineNo, "text": line}).Warn("failed to capture point, skipping line")
			continue
		}

		var xyz [3]int
		for i := range xyz {
			v, err := strconv.ParseInt(m[i+1], 10, 64)
			if err != nil || v >= core.MaxCoordinate {
				return core.PointSet{}, errors.Wrapf(core.ErrCoordinateRange, "line %d: %q", lineNo, m[i+1])
			}
			xyz[i] = int(v)
		}
		pts = append(pts, core.Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err := sc.Err(); err != nil {
		return core.PointSet{}, errors.Wrap(err, "pointio: read")
	}
	if skipped > 0 {
		o.Logger.WithFields(logrus.Fields{"skipped": skipped, "points": len(pts)}).Info("parsed points with skipped lines")
	}

	return core.NewPointSet(pts)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, opts ...Option) (core.PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.PointSet{}, errors.Wrapf(err, "pointio: open %s", path)
	}
	defer f.Close()

	return Parse(f, opts...)
}
