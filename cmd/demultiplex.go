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
	"os"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/demux-automation/cutadapt"
	"github.com/wtsi-hgi/demux-automation/types"
)

// options for this cmd.
var (
	demuxForward    string
	demuxReverse    string
	demuxOutput     string
	demuxMode       string
	demuxErrorRate  float32
	demuxMinOverlap int
	demuxCores      int
	demuxExe        string
)

// demultiplexCmd represents the demultiplex command.
var demultiplexCmd = &cobra.Command{
	Use:   "demultiplex <reads_R1.fastq.gz> <reads_R2.fastq.gz>",
	Short: "Demultiplex a pair of fastq files with cutadapt.",
	Long: `Demultiplex a pair of fastq files with cutadapt.

cutadapt (v3 or later) must be in your PATH, or supplied with --cutadapt.

Given the barcode FASTA files from generate-patterns and a pair of multiplexed
fastq files, this runs cutadapt to split the pair in to per-barcode pairs
named demux-<barcode name>_R1.fastq.gz and demux-<barcode name>_R2.fastq.gz in
the output directory. Reads that match no barcode go to the demux-unknown
pair.

Barcodes are matched anchored to the 5' end of each read and trimmed from it,
tolerating a fraction --error-rate of mismatches. --mode must match the mode
the FASTAs were generated with.

An example command line could look like this:
$ demux-automation demultiplex -o demux --forward barcodes_fwd.fasta \
    --reverse barcodes_rev.fasta reads_R1.fastq.gz reads_R2.fastq.gz
`,
	Args: cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		mode, err := types.StringToMode(demuxMode)
		if err != nil {
			die("%s", err.Error())
		}

		if err = os.MkdirAll(demuxOutput, dirPerm); err != nil {
			die("%s", err.Error())
		}

		c := cutadapt.New(mode)
		c.Exe = demuxExe
		c.ErrorRate = demuxErrorRate
		c.MinOverlap = demuxMinOverlap
		c.Cores = demuxCores

		cmd := c.Command(demuxForward, demuxReverse, args[0], args[1], demuxOutput)

		info("running cutadapt:\n%s", cmd)

		if err = executeCmd(cmd); err != nil {
			die("cutadapt failed: %s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(demultiplexCmd)

	// flags specific to this sub-command
	demultiplexCmd.Flags().StringVar(&demuxForward, "forward", "",
		"FASTA of forward barcodes, as made by generate-patterns")
	markFlagRequired(demultiplexCmd, "forward")
	demultiplexCmd.Flags().StringVar(&demuxReverse, "reverse", "",
		"FASTA of reverse barcodes, as made by generate-patterns")
	markFlagRequired(demultiplexCmd, "reverse")
	demultiplexCmd.Flags().StringVarP(&demuxOutput, outputFlag, "o", "",
		"output directory for the demultiplexed files")
	markFlagRequired(demultiplexCmd, outputFlag)

	demultiplexCmd.Flags().StringVar(&demuxMode, "mode", string(types.ModeUniqueDual),
		"barcode pairing mode: unique or combinatorial")
	demultiplexCmd.Flags().Float32Var(&demuxErrorRate, "error-rate", cutadapt.DefaultErrorRate,
		"fraction of barcode mismatches cutadapt tolerates")
	demultiplexCmd.Flags().IntVar(&demuxMinOverlap, "min-overlap", cutadapt.DefaultMinOverlap,
		"minimum number of barcode bases that must align")
	demultiplexCmd.Flags().IntVar(&demuxCores, "cores", cutadapt.DefaultCores,
		"number of cores cutadapt may use, 0 for all")
	demultiplexCmd.Flags().StringVar(&demuxExe, "cutadapt", cutadapt.DefaultExe,
		"path to the cutadapt executable")
}
