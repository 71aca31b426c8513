package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlink/connectivity"
)

func newSolveCmd(g *globalFlags) *cobra.Command {
	var (
		connect int
		top     int
		verify  bool
	)
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Report the top component product and the bottleneck edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger(cmd)
			if err != nil {
				return err
			}
			ix, err := g.load(log, args[0])
			if err != nil {
				return err
			}
			k := connect
			if !cmd.Flags().Changed("connect") {
				k = defaultConnect(ix.Points(), ix.Len())
			}

			if verify {
				start := time.Now()
				if err := connectivity.CrossCheck(ix.Edges(), ix.Points().Len(), k); err != nil {
					return err
				}
				log.WithField("elapsed", time.Since(start)).Debug("cross-check passed")
			}

			start := time.Now()
			res, err := connectivity.Solve(ix, k, connectivity.WithTop(top))
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"connect": k, "elapsed": time.Since(start)}).Debug("solved")

			a, _ := ix.Points().At(res.Bottleneck.A)
			b, _ := ix.Points().At(res.Bottleneck.B)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s points, %s edges\n",
				humanize.Comma(int64(ix.Points().Len())), humanize.Comma(int64(ix.Len())))
			table := newTable(out)
			table.SetHeader([]string{"query", "result", "detail"})
			table.Append([]string{
				"component product",
				strconv.Itoa(res.Product),
				fmt.Sprintf("top %d after %s edges", top, humanize.Comma(int64(k))),
			})
			table.Append([]string{
				"bottleneck value",
				strconv.FormatInt(res.Value, 10),
				fmt.Sprintf("%s with %s, weight %d", a, b, res.Bottleneck.Weight),
			})
			table.Render()

			return nil
		},
	}
	cmd.Flags().IntVarP(&connect, "connect", "k", 1000, connectUsage)
	cmd.Flags().IntVar(&top, "top", connectivity.DefaultTop, "number of largest components to multiply")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check traversal against union-find before solving")

	return cmd
}
