// Command fstr encodes text as length-prefixed bounded strings and
// inspects encoded blobs.
package main

import (
	"fmt"
	"os"

	"github.com/rawbytedev/faststring/pkg/compactwire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	capacity int
	frame    bool
	compress bool
	safe     bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	log := zap.NewNop()

	root := &cobra.Command{
		Use:           "fstr",
		Short:         "Encode and inspect bounded wire strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			log = l
			compactwire.SetLogger(log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.IntVarP(&opts.capacity, "cap", "c", 32, "string capacity in bytes")
	flags.BoolVar(&opts.frame, "frame", false, "wrap the value in a compactwire data frame")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	encode := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text and print the wire bytes as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, log, opts, args[0])
		},
	}
	encode.Flags().BoolVar(&opts.compress, "compress", false, "compress the frame payload (implies --frame)")
	encode.Flags().BoolVar(&opts.safe, "safe", false, "truncate text that does not fit instead of failing")

	decode := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode hex wire bytes and print the value as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, log, opts, args[0])
		},
	}

	caps := &cobra.Command{
		Use:   "caps",
		Short: "List the supported capacities",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range capacities() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}

	root.AddCommand(encode, decode, caps)
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("error:", err)
		os.Exit(1)
	}
}
