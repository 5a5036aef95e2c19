package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/tabular"
)

func newDiscordsCmd(opts *rootOptions) *cobra.Command {
	var (
		input, words, output string
		discords             int
		seed                 uint32
	)
	cmd := &cobra.Command{
		Use:   "discords",
		Short: "Find the most unusual windows of a series with HOT-SAX.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if cmd.Flags().Changed("discords") {
				opts.cfg.HotSAX.Discords = discords
			}
			if cmd.Flags().Changed("seed") {
				opts.cfg.HotSAX.Seed = seed
			}

			in, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer in.Close()
			series, err := tabular.ReadSeries(in)
			if err != nil {
				return err
			}

			var table []string
			if words != "" {
				wf, err := openInput(cmd, words)
				if err != nil {
					return err
				}
				defer wf.Close()
				if table, err = tabular.ReadWords(wf); err != nil {
					return err
				}
			}

			res, err := opts.node.RunHotSAX(ctx, opts.cfg.SAX, opts.cfg.HotSAX, series, table)
			if err != nil {
				return err
			}
			if res.Warning != "" {
				logging.FromContext(ctx).Warn(res.Warning)
			}
			return writeTo(cmd, output, func(w io.Writer) error {
				return tabular.WriteDiscords(w, res.Discords)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Series CSV, - reads stdin")
	cmd.Flags().StringVar(&words, "words", "", "CSV of precomputed SAX words, one per window start")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output CSV, - writes stdout")
	cmd.Flags().IntVarP(&discords, "discords", "k", 1, "Number of discords to report")
	cmd.Flags().Uint32Var(&seed, "seed", 0, "Shuffle seed, 0 picks a random one")
	return cmd
}
