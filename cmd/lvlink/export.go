package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlink/geoexport"
)

func newExportCmd(g *globalFlags) *cobra.Command {
	var (
		connect int
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write points and the first connected edges as GeoJSON",
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
			data, err := geoexport.Marshal(ix.Points(), ix.Edges(), k)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}
			log.WithField("path", out).Info("wrote GeoJSON")

			return nil
		},
	}
	cmd.Flags().IntVarP(&connect, "connect", "k", 1000, connectUsage)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output path, - for stdout")

	return cmd
}
