// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package benchmark

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// WriteText renders results as an aligned table. One row per
// algorithm/size pair, engine and reference side by side.
func WriteText(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tITER\tAVG\tENGINE MB/s\tSTDLIB MB/s\tRATIO")
	for _, result := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.1f\t%.1f\t%.2fx\n",
			result.Algorithm,
			result.Size,
			result.Iterations,
			formatDuration(result.Engine.AvgNs),
			result.Engine.ThroughputMBps,
			result.Reference.ThroughputMBps,
			result.Ratio,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing benchmark report: %w", err)
	}
	return nil
}

// formatDuration renders an average with enough resolution to be
// useful at both ends of the sweep: microseconds for small payloads,
// milliseconds above one millisecond.
func formatDuration(ns int64) string {
	d := time.Duration(ns)
	switch {
	case d >= time.Millisecond:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.1fµs", float64(d)/float64(time.Microsecond))
	}
}
