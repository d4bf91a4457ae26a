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
	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/demux-automation/adapters"
	"github.com/wtsi-hgi/demux-automation/samplesheet"
	"github.com/wtsi-hgi/demux-automation/types"
)

const (
	ErrNoSheetSource   = Error("supply a sample sheet path, --run-id or --use-sheet")
	ErrTwoSheetSources = Error("a sample sheet path can't be combined with --run-id or --use-sheet")
)

// options for this cmd.
var (
	patternsOutput         string
	patternsIncludePrimers bool
	patternsMode           string
	patternsNovogene       bool
	patternsRunID          string
	patternsUseSheet       bool
)

// patternsCmd represents the generate-patterns command.
var patternsCmd = &cobra.Command{
	Use:   "generate-patterns [samplesheet.tsv]",
	Short: "Generate barcode FASTAs and a rename pattern file.",
	Long: `Generate barcode FASTAs and a rename pattern file.

Given a sample sheet, this validates it and writes the files that the
demultiplex and copy-by-pattern sub-commands consume: barcodes_fwd.fasta and
barcodes_rev.fasta give the 5' barcode of each sample on each read of a pair,
and patterns.txt maps the names cutadapt gives demultiplexed files back to
sample names.

The sample sheet is tab-delimited with one row per sample and columns
sample_name, forward_barcode, reverse_barcode, forward_barcode_name,
reverse_barcode_name, forward_primer, reverse_primer and primer_name. Only the
first 3 are required. With --novogene, the sheet is instead in the 5 column
format Novogene deliver, either tab-delimited or .xlsx.

Instead of a sheet file you can supply --run-id to fetch the samples of a
sequencing run from MLWH, and/or --use-sheet to take sample details from the
configured Google sheet. These need the DEMUX_AUTOMATION_* environment
variables set, eg. in a ~/.env file.

With --include-primers, each sample's primer is appended to its barcode in the
FASTA output, so that cutadapt requires and trims both.

By default barcodes are matched as unique dual index pairs, where no two
samples may share a forward or a reverse barcode. With --mode combinatorial,
forward and reverse barcodes are instead matched independently, and samples
may share barcodes as long as every sample has a distinct pair.

An example command line could look like this:
$ demux-automation generate-patterns -o /output/dir samplesheet.tsv

Nothing is written if the sheet is malformed or breaks those barcode rules.
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		records, err := sampleRecords(args)
		if err != nil {
			die("%s", err.Error())
		}

		mode, err := types.StringToMode(patternsMode)
		if err != nil {
			die("%s", err.Error())
		}

		g, err := adapters.New(records, adapters.Options{
			Mode:           mode,
			IncludePrimers: patternsIncludePrimers,
		})
		if err != nil {
			die("%s", err.Error())
		}

		files, err := g.WriteFiles(patternsOutput)
		if err != nil {
			die("%s", err.Error())
		}

		info("wrote %s", files.ForwardFasta)
		info("wrote %s", files.ReverseFasta)
		info("wrote %s", files.PatternFile)
	},
}

func init() {
	RootCmd.AddCommand(patternsCmd)

	// flags specific to this sub-command
	patternsCmd.Flags().StringVarP(&patternsOutput, outputFlag, "o", ".",
		"output directory for the FASTA and pattern files")
	patternsCmd.Flags().BoolVar(&patternsIncludePrimers, "include-primers", false,
		"append primers to barcodes in the FASTA output")
	patternsCmd.Flags().StringVar(&patternsMode, "mode", string(types.ModeUniqueDual),
		"barcode pairing mode: unique or combinatorial")
	patternsCmd.Flags().BoolVar(&patternsNovogene, "novogene", false,
		"treat the sample sheet as a Novogene vendor sheet")
	patternsCmd.Flags().StringVar(&patternsRunID, "run-id", "",
		"fetch the samples of this sequencing run from MLWH")
	patternsCmd.Flags().BoolVar(&patternsUseSheet, "use-sheet", false,
		"take sample details from the configured Google sheet")
}

// sampleRecords gets sample records from the sample sheet path in args, or
// from MLWH and/or the Google sheet per the --run-id and --use-sheet flags.
func sampleRecords(args []string) ([]*types.Sample, error) {
	fromFlags := patternsRunID != "" || patternsUseSheet

	switch {
	case len(args) == 1 && fromFlags:
		return nil, ErrTwoSheetSources
	case len(args) == 1 && patternsNovogene:
		return samplesheet.ParseNovogeneFile(args[0])
	case len(args) == 1:
		return samplesheet.ParseFile(args[0])
	case fromFlags:
		return clientRecords(patternsRunID, patternsUseSheet)
	default:
		return nil, ErrNoSheetSource
	}
}

func clientRecords(runID string, useSheet bool) ([]*types.Sample, error) {
	client, err := newSampleClient(runID != "", useSheet)
	if err != nil {
		return nil, err
	}

	defer client.Close()

	return client.Records(runID)
}
