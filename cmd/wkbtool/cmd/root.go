// Package cmd implements the wkbtool commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the wkbtool command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wkbtool",
		Short: "Inspect, pack and store WKB geometries",
		Long: `wkbtool decodes Well-Known Binary and PostGIS EWKB geometries.

Examples:
  wkbtool decode 0101000000000000000000F03F0000000000000040
  wkbtool decode --file point.wkb --format wkt
  wkbtool column pack --out geoms.col --compression zstd <hex>...
  wkbtool store put --data-dir ./data <hex>`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDecodeCmd(), newColumnCmd(), newStoreCmd())

	return rootCmd
}
