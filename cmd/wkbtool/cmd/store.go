package cmd

import (
	"fmt"
	"strconv"

	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/reader"
	"github.com/arloliu/wkb/store"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type storeOptions struct {
	dataDir string
	format  string
	strict  bool
}

func newStoreCmd() *cobra.Command {
	opts := &storeOptions{}

	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Keep WKB records in a local store with bounding box queries",
	}

	storeCmd.PersistentFlags().StringVarP(&opts.dataDir, "data-dir", "d", "./data", "Data directory for the store")
	storeCmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "Reject structurally invalid geometries instead of repairing them")

	putCmd := &cobra.Command{
		Use:   "put <hex>...",
		Short: "Store hex records and print their ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(s *store.Store) error {
				for i, h := range args {
					data, err := reader.DecodeHex(h)
					if err != nil {
						return errors.Wrapf(err, "argument %d", i+1)
					}
					id, err := s.Put(data)
					if err != nil {
						return errors.Wrapf(err, "argument %d", i+1)
					}
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}

				return nil
			})
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <id>...",
		Short: "Print stored geometries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}

			return withStore(cmd, opts, func(s *store.Store) error {
				for _, arg := range args {
					id, err := store.ParseID(arg)
					if err != nil {
						return err
					}
					g, err := s.Get(id)
					if err != nil {
						return err
					}
					if err := outputGeometry(cmd.OutOrStdout(), opts.format, arg, g); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
	getCmd.Flags().StringVar(&opts.format, "format", formatSummary, "Output format: summary, wkt or geojson")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete stored geometries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(s *store.Store) error {
				for _, arg := range args {
					id, err := store.ParseID(arg)
					if err != nil {
						return err
					}
					if err := s.Delete(id); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	queryCmd := &cobra.Command{
		Use:   "query <minX> <minY> <maxX> <maxY>",
		Short: "Print the ids of geometries whose envelopes intersect a box",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bounds [4]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Wrapf(err, "bound %d", i+1)
				}
				bounds[i] = v
			}

			return withStore(cmd, opts, func(s *store.Store) error {
				ids, err := s.Query(geom.NewEnvelope(bounds[0], bounds[1], bounds[2], bounds[3]))
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}

				return nil
			})
		},
	}

	storeCmd.AddCommand(putCmd, getCmd, deleteCmd, queryCmd)

	return storeCmd
}

func withStore(cmd *cobra.Command, opts *storeOptions, fn func(s *store.Store) error) (err error) {
	s, err := store.Open(opts.dataDir, store.WithReaderOptions(readerOptions(cmd, opts.strict)...))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.CombineErrors(err, s.Close())
	}()

	return fn(s)
}
