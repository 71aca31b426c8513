// Command lvlink connects 3-D points by ascending distance and reports the
// component and bottleneck queries.
//
//	lvlink solve points.txt --connect 1000
//	lvlink edges points.txt --limit 5
//	lvlink export points.txt --connect 10 --out circuits.geojson
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("lvlink failed")
		os.Exit(1)
	}
}
