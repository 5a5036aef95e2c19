package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-sod/sax/internal/saxerr"
	"github.com/go-sod/sax/internal/tabular"
	"github.com/go-sod/sax/internal/vsm"
)

func readSamples(cmd *cobra.Command, name string) ([]vsm.Sample, error) {
	in, err := openInput(cmd, name)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return tabular.ReadLabelled(in)
}

func newClassifyCmd(opts *rootOptions) *cobra.Command {
	var train, test, output, confusion string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Train SAX-VSM on labelled series and evaluate it on a test set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if train == "" || test == "" {
				return saxerr.InvalidParameter("both --train and --test are required")
			}
			if train == "-" && test == "-" {
				return saxerr.InvalidParameter("--train and --test can't both read stdin")
			}
			trainSet, err := readSamples(cmd, train)
			if err != nil {
				return err
			}
			testSet, err := readSamples(cmd, test)
			if err != nil {
				return err
			}

			res, err := opts.node.RunVSM(cmd.Context(), opts.cfg.SAX, trainSet, testSet)
			if err != nil {
				return err
			}
			if err := writeTo(cmd, output, func(w io.Writer) error {
				return tabular.WritePredictions(w, res.Predictions)
			}); err != nil {
				return err
			}
			if confusion != "" {
				if err := writeTo(cmd, confusion, func(w io.Writer) error {
					return tabular.WriteConfusion(w, res.Confusion)
				}); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "accuracy %.4f, error %.4f\n", res.Accuracy, res.Error)
			return err
		},
	}
	cmd.Flags().StringVar(&train, "train", "", "Training CSV of (class, timeseries) rows")
	cmd.Flags().StringVar(&test, "test", "", "Test CSV of (class, timeseries) rows")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Predictions CSV, - writes stdout")
	cmd.Flags().StringVar(&confusion, "confusion", "", "Also write the confusion matrix to this CSV")
	return cmd
}
