package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newEdgesCmd(g *globalFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "edges <file>",
		Short: "List the shortest edges in connection order",
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
			n := limit
			if n > ix.Len() || n < 0 {
				n = ix.Len()
			}
			edges, err := ix.Prefix(n)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "a", "b", "point a", "point b", "weight"})
			for i, e := range edges {
				a, _ := ix.Points().At(e.A)
				b, _ := ix.Points().At(e.B)
				table.Append([]string{
					strconv.Itoa(i + 1),
					strconv.Itoa(e.A),
					strconv.Itoa(e.B),
					a.String(),
					b.String(),
					strconv.FormatInt(e.Weight, 10),
				})
			}
			table.Render()

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of edges to list (negative lists all)")

	return cmd
}
