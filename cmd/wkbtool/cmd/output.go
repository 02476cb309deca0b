package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arloliu/wkb/errs"
	"github.com/arloliu/wkb/geom"
	"github.com/arloliu/wkb/geomconv"
	"github.com/cockroachdb/errors"
)

const (
	formatSummary = "summary"
	formatWKT     = "wkt"
	formatGeoJSON = "geojson"
)

func validateFormat(format string) error {
	switch format {
	case formatSummary, formatWKT, formatGeoJSON:
		return nil
	default:
		return errors.Wrapf(errs.ErrInvalidOption, "unknown format %q, want summary, wkt or geojson", format)
	}
}

// outputGeometry writes g to w in the given format, prefixed by label when
// label is not empty.
func outputGeometry(w io.Writer, format, label string, g geom.Geometry) error {
	switch format {
	case formatWKT:
		s, err := geomconv.WKT(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, prefixed(label, s))

		return err
	case formatGeoJSON:
		b, err := geomconv.GeoJSON(g)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, prefixed(label, string(b)))

		return err
	default:
		return outputSummary(w, label, g)
	}
}

func prefixed(label, s string) string {
	if label == "" {
		return s
	}

	return label + "\t" + s
}

// outputSummary displays a geometry in table format
func outputSummary(w io.Writer, label string, g geom.Geometry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if label != "" {
		fmt.Fprintf(tw, "ID:\t%s\n", label)
	}
	fmt.Fprintf(tw, "Type:\t%s\n", g.Type())
	fmt.Fprintf(tw, "Dimension:\t%s\n", g.Dimension())
	fmt.Fprintf(tw, "SRID:\t%d\n", g.SRID())
	fmt.Fprintf(tw, "Empty:\t%t\n", g.IsEmpty())

	if c, ok := g.(interface{ NumGeometries() int }); ok {
		fmt.Fprintf(tw, "Members:\t%d\n", c.NumGeometries())
	}

	if env := g.Envelope(); !env.IsEmpty() {
		fmt.Fprintf(tw, "Envelope:\t%g %g, %g %g\n", env.MinX, env.MinY, env.MaxX, env.MaxY)
	}

	return tw.Flush()
}
