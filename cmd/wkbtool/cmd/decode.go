package cmd

import (
	"fmt"
	"os"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/reader"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type decodeOptions struct {
	file   string
	format string
	strict bool
}

func newDecodeCmd() *cobra.Command {
	opts := &decodeOptions{}

	decodeCmd := &cobra.Command{
		Use:   "decode [hex]...",
		Short: "Decode WKB or EWKB records",
		Long: `Decode hex encoded records given as arguments, or one binary record
read from a file.

Repairs applied in lenient mode are reported on stderr.

Example:
  wkbtool decode 0101000000000000000000F03F0000000000000040
  wkbtool decode --file shape.wkb --format geojson --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, args)
		},
	}

	decodeCmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read one binary record from this file")
	decodeCmd.Flags().StringVar(&opts.format, "format", formatSummary, "Output format: summary, wkt or geojson")
	decodeCmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject structurally invalid geometries instead of repairing them")

	return decodeCmd
}

func readerOptions(cmd *cobra.Command, strict bool) []reader.Option {
	stderr := cmd.ErrOrStderr()

	return []reader.Option{
		reader.WithStrict(strict),
		reader.WithRepairObserver(func(r reader.Repair) {
			fmt.Fprintf(stderr, "repaired %s\n", r)
		}),
	}
}

func runDecode(cmd *cobra.Command, opts *decodeOptions, args []string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if opts.file == "" && len(args) == 0 {
		return errors.Wrap(errs.ErrInvalidOption, "nothing to decode, pass hex arguments or --file")
	}

	r, err := reader.New(readerOptions(cmd, opts.strict)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return errors.Wrapf(err, "read %s", opts.file)
		}

		g, err := r.Read(data)
		if err != nil {
			return errors.Wrap(err, opts.file)
		}
		if err := outputGeometry(out, opts.format, "", g); err != nil {
			return err
		}
	}

	for i, s := range args {
		g, err := r.ReadHex(s)
		if err != nil {
			return errors.Wrapf(err, "argument %d", i+1)
		}
		if err := outputGeometry(out, opts.format, "", g); err != nil {
			return err
		}
	}

	return nil
}
