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
	"github.com/wtsi-hgi/demux-automation/motifs"
)

const ErrNoMotifFastas = Error("at least one of the motif FASTA options is required")

// options for this cmd.
var (
	motifsForwardBarcodes string
	motifsReverseBarcodes string
	motifsForwardPrimers  string
	motifsReversePrimers  string
	motifsOutput          string
)

// motifsCmd represents the motif-counts command.
var motifsCmd = &cobra.Command{
	Use:   "motif-counts <dir>",
	Short: "Count barcode and primer occurrences in demultiplexed reads.",
	Long: `Count barcode and primer occurrences in demultiplexed reads.

For checking how well demultiplexing went, this counts how many reads in each
fastq (or fasta, optionally gzip compressed) file in the given directory still
contain each barcode or primer sequence, searching both strands.

The sequences come from the FASTA files given with the --forward-barcodes,
--reverse-barcodes, --forward-primers and --reverse-primers options; supply at
least one. generate-patterns output is suitable for the barcode options.

The output is a tab-delimited table with a row per file and motif, giving the
number of reads containing that motif and what fraction of the file's reads
that is. It goes to STDOUT, or to the -o file.

An example command line could look like this:
$ demux-automation motif-counts --forward-barcodes barcodes_fwd.fasta \
    --reverse-barcodes barcodes_rev.fasta -o motif_counts.tsv samples
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ms, err := loadMotifs()
		if err != nil {
			die("%s", err.Error())
		}

		counter, err := motifs.NewCounter(ms)
		if err != nil {
			die("%s", err.Error())
		}

		fileCounts, err := counter.CountDir(args[0])
		if err != nil {
			die("%s", err.Error())
		}

		err = writeOutput(motifsOutput, func(w io.Writer) error {
			return counter.WriteTSV(w, fileCounts)
		})
		if err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(motifsCmd)

	// flags specific to this sub-command
	motifsCmd.Flags().StringVar(&motifsForwardBarcodes, "forward-barcodes", "",
		"FASTA of forward barcodes to count")
	motifsCmd.Flags().StringVar(&motifsReverseBarcodes, "reverse-barcodes", "",
		"FASTA of reverse barcodes to count")
	motifsCmd.Flags().StringVar(&motifsForwardPrimers, "forward-primers", "",
		"FASTA of forward primers to count")
	motifsCmd.Flags().StringVar(&motifsReversePrimers, "reverse-primers", "",
		"FASTA of reverse primers to count")
	motifsCmd.Flags().StringVarP(&motifsOutput, outputFlag, "o", "",
		"write the table to this file instead of STDOUT")
}

// loadMotifs loads the motifs from every motif FASTA option that was
// supplied.
func loadMotifs() ([]motifs.Motif, error) {
	var ms []motifs.Motif

	for _, path := range []string{
		motifsForwardBarcodes, motifsReverseBarcodes,
		motifsForwardPrimers, motifsReversePrimers,
	} {
		if path == "" {
			continue
		}

		these, err := motifs.Load(path)
		if err != nil {
			return nil, err
		}

		ms = append(ms, these...)
	}

	if len(ms) == 0 {
		return nil, ErrNoMotifFastas
	}

	return ms, nil
}
