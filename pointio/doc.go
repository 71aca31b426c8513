// Package pointio reads point lists in the "x,y,z" line format into a
// core.PointSet.
//
// In the default mode the first (\d+),(\d+),(\d+) found in a line is taken
// and lines without one are skipped and reported to the configured
// logrus.FieldLogger. With WithStrict() the whole trimmed line must be exactly
// x,y,z; anything else is rejected with ErrMalformedLine. Blank lines are ignored in both
// modes. Point indices follow the order of accepted lines.
package pointio
