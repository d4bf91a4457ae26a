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

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/demux-automation/ampliseq"
	"github.com/wtsi-hgi/demux-automation/samplesheet"
)

const ampliseqSheet = "ampliseq_samplesheet.csv"

// options for these cmds.
var (
	samplesheetOutput string
	parseSheetOutput  string
)

// samplesheetCmd represents the samplesheet command.
var samplesheetCmd = &cobra.Command{
	Use:   "samplesheet <dir>",
	Short: "Make an nf-core/ampliseq sample sheet for demultiplexed files.",
	Long: `Make an nf-core/ampliseq sample sheet for demultiplexed files.

Scans the given directory for the <sample>_R1.fastq.gz and
<sample>_R2.fastq.gz pairs that copy-by-pattern produced, and writes a CSV
with sampleID, forwardReads and reverseReads columns, suitable as the input
sample sheet of the nf-core/ampliseq pipeline. Files without both mates are
ignored.

The CSV goes to STDOUT, or to the -o file.

An example command line could look like this:
$ demux-automation samplesheet -o ampliseq_samplesheet.csv samples
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		rows, err := ampliseq.Scan(args[0])
		if err != nil {
			die("%s", err.Error())
		}

		if len(rows) == 0 {
			warn("no fastq pairs found in %s", args[0])
		}

		err = writeOutput(samplesheetOutput, func(w io.Writer) error {
			return ampliseq.WriteCSV(w, rows)
		})
		if err != nil {
			die("%s", err.Error())
		}
	},
}

// parseSamplesheetCmd represents the parse-samplesheet command.
var parseSamplesheetCmd = &cobra.Command{
	Use:   "parse-samplesheet <vendor sheet path>",
	Short: "Convert a Novogene vendor sheet to our sample sheet format.",
	Long: `Convert a Novogene vendor sheet to our sample sheet format.

Novogene deliver sample sheets as .xlsx with 5 columns: sample name, forward
barcode and primer sharing a cell, reverse barcode and primer sharing a cell,
forward barcode name and reverse barcode name. This reads one of those (or its
tab-delimited equivalent) and writes the 8 column tab-delimited format that
generate-patterns and run expect.

The converted sheet goes to STDOUT, or to the -o file.

An example command line could look like this:
$ demux-automation parse-samplesheet -o samplesheet.tsv vendor.xlsx
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		records, err := samplesheet.ParseNovogeneFile(args[0])
		if err != nil {
			die("%s", err.Error())
		}

		err = writeOutput(parseSheetOutput, func(w io.Writer) error {
			return samplesheet.WriteTSV(w, records)
		})
		if err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(samplesheetCmd)
	RootCmd.AddCommand(parseSamplesheetCmd)

	// flags specific to these sub-commands
	samplesheetCmd.Flags().StringVarP(&samplesheetOutput, outputFlag, "o", "",
		"write the CSV to this file instead of STDOUT")
	parseSamplesheetCmd.Flags().StringVarP(&parseSheetOutput, outputFlag, "o", "",
		"write the converted sheet to this file instead of STDOUT")
}
