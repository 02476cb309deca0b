package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/arloliu/wkb/column"
	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/format"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var compressionNames = map[string]format.CompressionType{
	"none": format.CompressionNone,
	"zstd": format.CompressionZstd,
	"s2":   format.CompressionS2,
	"lz4":  format.CompressionLZ4,
}

func newColumnCmd() *cobra.Command {
	columnCmd := &cobra.Command{
		Use:   "column",
		Short: "Pack and dump column blobs of WKB records",
	}

	columnCmd.AddCommand(newColumnPackCmd(), newColumnDumpCmd())

	return columnCmd
}

type packOptions struct {
	out         string
	in          string
	compression string
	bigEndian   bool
	strict      bool
}

func newColumnPackCmd() *cobra.Command {
	opts := &packOptions{}

	packCmd := &cobra.Command{
		Use:   "pack [hex]...",
		Short: "Pack hex records into a column blob",
		Long: `Pack hex encoded records into a column blob. Records come from the
arguments and, with --in, from a file holding one hex record per line.

Example:
  wkbtool column pack --out geoms.col --compression zstd 0101000000000000000000F03F0000000000000040`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumnPack(cmd, opts, args)
		},
	}

	packCmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (required)")
	packCmd.Flags().StringVarP(&opts.in, "in", "i", "", "File with one hex record per line")
	packCmd.Flags().StringVar(&opts.compression, "compression", "none", "Body compression: none, zstd, s2 or lz4")
	packCmd.Flags().BoolVar(&opts.bigEndian, "big-endian", false, "Write the header and offsets big endian")
	packCmd.Flags().BoolVar(&opts.strict, "strict", false, "Validate records in strict mode")
	_ = packCmd.MarkFlagRequired("out")

	return packCmd
}

func readHexLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	return lines, errors.Wrapf(scanner.Err(), "read %s", path)
}

func runColumnPack(cmd *cobra.Command, opts *packOptions, args []string) error {
	comp, ok := compressionNames[strings.ToLower(opts.compression)]
	if !ok {
		return errors.Wrapf(errs.ErrInvalidCompression, "unknown compression %q", opts.compression)
	}

	values := args
	if opts.in != "" {
		lines, err := readHexLines(opts.in)
		if err != nil {
			return err
		}
		values = append(values, lines...)
	}

	encOpts := []column.EncoderOption{
		column.WithCompression(comp),
		column.WithReaderOptions(readerOptions(cmd, opts.strict)...),
	}
	if opts.bigEndian {
		encOpts = append(encOpts, column.WithBigEndian())
	}

	encoder, err := column.NewEncoder(encOpts...)
	if err != nil {
		return err
	}

	for i, s := range values {
		if err := encoder.AppendHex(s); err != nil {
			return errors.Wrapf(err, "record %d", i+1)
		}
	}

	data, err := encoder.Finish()
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.out, data, 0o644); err != nil { //nolint: gosec
		return errors.Wrapf(err, "write %s", opts.out)
	}

	stats := encoder.Stats()
	fmt.Fprintf(cmd.ErrOrStderr(), "packed %d records into %s: %d -> %d bytes (%s, %.1f%% saved)\n",
		len(values), opts.out, stats.OriginalSize, stats.CompressedSize, stats.Algorithm, stats.SpaceSavings())

	return nil
}

type dumpOptions struct {
	format string
}

func newColumnDumpCmd() *cobra.Command {
	opts := &dumpOptions{}

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every record of a column blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColumnDump(cmd, opts, args[0])
		},
	}

	dumpCmd.Flags().StringVar(&opts.format, "format", formatSummary, "Output format: summary, wkt or geojson")

	return dumpCmd
}

func runColumnDump(cmd *cobra.Command, opts *dumpOptions, path string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read %s", path)
	}

	decoder, err := column.NewDecoder(data)
	if err != nil {
		return errors.Wrap(err, path)
	}

	header := decoder.Header()
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d records, %s compression\n", path, decoder.Len(), header.Compression())

	out := cmd.OutOrStdout()
	for i := range decoder.Len() {
		g, err := decoder.Geometry(i)
		if err != nil {
			return errors.Wrapf(err, "record %d", i)
		}
		if err := outputGeometry(out, opts.format, strconv.Itoa(i), g); err != nil {
			return err
		}
	}

	return nil
}
