/*******************************************************************************
 * Copyright (c) 2026 Genome Research Ltd.
 *
 * Author: Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/demux-automation/counts"
)

const (
	ErrPlotNeedsOutput = Error("--plot needs an --output directory")

	readCountsTSV  = "read_counts.tsv"
	readCountsHTML = "read_counts.html"
)

// options for this cmd.
var (
	countsOutput string
	countsPlot   bool
)

// countsCmd represents the read-counts command.
var countsCmd = &cobra.Command{
	Use:   "read-counts <dir>",
	Short: "Report reads per demultiplexed file.",
	Long: `Report reads per demultiplexed file.

Counts the reads in each fastq (or fasta, optionally gzip compressed) pair in
the given directory and prints a table of counts and relative counts to
STDOUT. Every sequence file in the directory must have the same extension, and
both files of each pair must be present.

With -o, a read_counts.tsv of the per-file counts is also written to the given
directory, along with a read_counts.html bar chart if --plot is supplied.

An example command line could look like this:
$ demux-automation read-counts --plot -o reports samples
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if countsPlot && countsOutput == "" {
			die("%s", ErrPlotNeedsOutput.Error())
		}

		cs, err := countReadsInDir(args[0])
		if err != nil {
			die("%s", err.Error())
		}

		if countsOutput != "" {
			if err = writeCountReports(countsOutput, cs, countsPlot); err != nil {
				die("%s", err.Error())
			}
		}

		if err = counts.WriteRelativeTSV(os.Stdout, cs); err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(countsCmd)

	// flags specific to this sub-command
	countsCmd.Flags().StringVarP(&countsOutput, outputFlag, "o", "",
		"also write a read_counts.tsv to this directory")
	countsCmd.Flags().BoolVar(&countsPlot, "plot", false,
		"also write a read_counts.html bar chart to the output directory")
}

func countReadsInDir(dir string) ([]counts.Count, error) {
	paths, err := counts.ScanDir(dir)
	if err != nil {
		return nil, err
	}

	return counts.CountFiles(paths)
}

// writeCountReports writes a read_counts.tsv of the given counts to dir,
// creating it if necessary, plus a read_counts.html bar chart if plot is
// true.
func writeCountReports(dir string, cs []counts.Count, plot bool) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	err := writeOutput(filepath.Join(dir, readCountsTSV), func(w io.Writer) error {
		return counts.WriteTSV(w, cs)
	})
	if err != nil || !plot {
		return err
	}

	return writeOutput(filepath.Join(dir, readCountsHTML), func(w io.Writer) error {
		return counts.WriteBarChart(w, cs)
	})
}
