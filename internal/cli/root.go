// Package cli implements the sax command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/node"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
)

// fileConfig is the layout of the --config TOML file.
type fileConfig struct {
	SAX    sax.Config    `toml:"sax"`
	HotSAX hotsax.Config `toml:"hotsax"`
}

type rootOptions struct {
	configFile string
	window     int
	paa        int
	alphabet   int
	strategy   string
	threshold  float64

	cfg  fileConfig
	node *node.Node
}

// NewRootCmd builds the sax command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{node: node.New()}
	root := &cobra.Command{
		Use:               "sax",
		Short:             "Symbolic aggregate approximation of time series.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.load,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "TOML parameter file; flags override its values")
	flags.IntVarP(&opts.window, "window", "w", 30, "Sliding window size, 0 discretises the whole series by chunking")
	flags.IntVarP(&opts.paa, "paa", "p", 4, "Number of PAA segments per window")
	flags.IntVarP(&opts.alphabet, "alphabet", "a", 3, "Alphabet size, 2 to 20")
	flags.StringVar(&opts.strategy, "strategy", "EXACT", "Numerosity reduction: NONE, EXACT or MINDIST")
	flags.Float64Var(&opts.threshold, "threshold", 0.01, "Z-normalisation threshold")

	root.AddCommand(
		newDiscretizeCmd(opts),
		newDiscordsCmd(opts),
		newClassifyCmd(opts),
		newVersionCmd(),
	)
	return root
}

// load layers the parameters: env defaults, then the TOML file, then any
// flag set on the command line.
func (o *rootOptions) load(cmd *cobra.Command, _ []string) error {
	if err := envconfig.Process("", &o.cfg); err != nil {
		return saxerr.InvalidParameter("loading environment: %v", err)
	}
	if o.configFile != "" {
		if _, err := toml.DecodeFile(o.configFile, &o.cfg); err != nil {
			return saxerr.InvalidParameter("reading %s: %v", o.configFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("window") {
		o.cfg.SAX.WindowSize = o.window
	}
	if flags.Changed("paa") {
		o.cfg.SAX.PAASize = o.paa
	}
	if flags.Changed("alphabet") {
		o.cfg.SAX.AlphabetSize = o.alphabet
	}
	if flags.Changed("strategy") {
		s, err := sax.ParseStrategy(o.strategy)
		if err != nil {
			return err
		}
		o.cfg.SAX.Strategy = s
	}
	if flags.Changed("threshold") {
		o.cfg.SAX.NormThreshold = o.threshold
	}
	return o.cfg.SAX.Validate()
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitCode(err)
	}
	return 0
}

// ExitCode maps an error kind onto the process exit status.
func ExitCode(err error) int {
	switch saxerr.KindOf(err) {
	case saxerr.KindInvalidParameter:
		return 2
	case saxerr.KindInvalidInput:
		return 3
	case saxerr.KindCancelled:
		return 130
	default:
		return 1
	}
}

func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, saxerr.InvalidInput("opening %s: %v", name, err)
	}
	return f, nil
}

// writeTo writes through fn to name, or to the command output when name is
// empty or "-".
func writeTo(cmd *cobra.Command, name string, fn func(io.Writer) error) error {
	if name == "" || name == "-" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
