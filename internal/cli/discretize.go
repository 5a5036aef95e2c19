package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/go-sod/sax/internal/tabular"
)

func newDiscretizeCmd(opts *rootOptions) *cobra.Command {
	var input, output, paaOutput string
	cmd := &cobra.Command{
		Use:   "discretize",
		Short: "Convert a (timestamp, value) CSV into SAX words.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer in.Close()
			series, err := tabular.ReadSeries(in)
			if err != nil {
				return err
			}

			res, err := opts.node.RunSAX(cmd.Context(), opts.cfg.SAX, series, paaOutput != "")
			if err != nil {
				return err
			}
			if err := writeTo(cmd, output, func(w io.Writer) error {
				return tabular.WriteSAX(w, res.Rows)
			}); err != nil {
				return err
			}
			if paaOutput == "" {
				return nil
			}
			return writeTo(cmd, paaOutput, func(w io.Writer) error {
				return tabular.WritePAA(w, res.PAA)
			})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input CSV, - reads stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Output CSV, - writes stdout")
	cmd.Flags().StringVar(&paaOutput, "paa-output", "", "Also write the PAA records of the run to this CSV")
	return cmd
}
