/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/demux-automation/adapters"
	"github.com/wtsi-hgi/demux-automation/ampliseq"
	"github.com/wtsi-hgi/demux-automation/counts"
	"github.com/wtsi-hgi/demux-automation/cutadapt"
	"github.com/wtsi-hgi/demux-automation/patterns"
	"github.com/wtsi-hgi/demux-automation/samplesheet"
	"github.com/wtsi-hgi/demux-automation/types"
)

const (
	barcodesSubdir = "barcodes"
	demuxSubdir    = "demux"
	samplesSubdir  = "samples"
)

// options for this cmd.
var (
	runOutput         string
	runMode           string
	runIncludePrimers bool
	runErrorRate      float32
	runMinOverlap     int
	runCores          int
	runExe            string
	runSkipPlot       bool
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run <samplesheet.tsv> <reads_R1.fastq.gz> <reads_R2.fastq.gz>",
	Short: "Demultiplex a sequencing run and report on it.",
	Long: `Demultiplex a sequencing run and report on it.

cutadapt (v3 or later) must be in your PATH, or supplied with --cutadapt.

Given a sample sheet and a pair of multiplexed fastq files, this does all the
demultiplexing steps in sequence, in sub-directories of the -o directory:

barcodes/ gets the barcode FASTA files and rename pattern file made from the
sheet, as per generate-patterns (whose --mode and --include-primers options
also apply here). demux/ gets the per-barcode fastq pairs that cutadapt splits
the run in to, as per demultiplex. samples/ gets the per-sample copies of
those, as per copy-by-pattern.

Finally the -o directory itself gets a read_counts.tsv (and a read_counts.html
bar chart, unless --skip-plot) reporting the reads per sample file, as per
read-counts, and an ampliseq_samplesheet.csv describing the files in samples/,
as per samplesheet. The read count table is also printed to STDOUT.

Processing stops at the first failure, and the sample sheet is fully validated
before anything is written.

An example command line could look like this:
$ demux-automation run -o /output/dir samplesheet.tsv \
    reads_R1.fastq.gz reads_R2.fastq.gz
`,
	Args: cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		err := runPipeline(args[0], args[1], args[2])
		if err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(runCmd)

	// flags specific to this sub-command
	runCmd.Flags().StringVarP(&runOutput, outputFlag, "o", "",
		"output directory")
	markFlagRequired(runCmd, outputFlag)

	runCmd.Flags().StringVar(&runMode, "mode", string(types.ModeUniqueDual),
		"barcode pairing mode: unique or combinatorial")
	runCmd.Flags().BoolVar(&runIncludePrimers, "include-primers", false,
		"append primers to barcodes in the FASTA output")
	runCmd.Flags().Float32Var(&runErrorRate, "error-rate", cutadapt.DefaultErrorRate,
		"fraction of barcode mismatches cutadapt tolerates")
	runCmd.Flags().IntVar(&runMinOverlap, "min-overlap", cutadapt.DefaultMinOverlap,
		"minimum number of barcode bases that must align")
	runCmd.Flags().IntVar(&runCores, "cores", cutadapt.DefaultCores,
		"number of cores cutadapt may use, 0 for all")
	runCmd.Flags().StringVar(&runExe, "cutadapt", cutadapt.DefaultExe,
		"path to the cutadapt executable")
	runCmd.Flags().BoolVar(&runSkipPlot, "skip-plot", false,
		"don't write a read_counts.html bar chart")
}

// runPipeline demultiplexes fastq1 and fastq2 per the sample sheet at
// sheetPath, writing everything under the -o directory.
func runPipeline(sheetPath, fastq1, fastq2 string) error {
	g, mode, err := generatorFromSheet(sheetPath)
	if err != nil {
		return err
	}

	files, err := g.WriteFiles(filepath.Join(runOutput, barcodesSubdir))
	if err != nil {
		return err
	}

	demuxDir := filepath.Join(runOutput, demuxSubdir)

	if err = demultiplexRun(mode, files, fastq1, fastq2, demuxDir); err != nil {
		return err
	}

	samplesDir := filepath.Join(runOutput, samplesSubdir)

	copier := &patterns.Copier{SourceDir: demuxDir, DestDir: samplesDir}

	result, err := copier.Copy(g.Patterns())
	if err != nil {
		return err
	}

	reportCopyResult(result)

	return writeRunReports(samplesDir)
}

func generatorFromSheet(sheetPath string) (*adapters.Generator, types.Mode, error) {
	records, err := samplesheet.ParseFile(sheetPath)
	if err != nil {
		return nil, "", err
	}

	mode, err := types.StringToMode(runMode)
	if err != nil {
		return nil, "", err
	}

	g, err := adapters.New(records, adapters.Options{
		Mode:           mode,
		IncludePrimers: runIncludePrimers,
	})

	return g, mode, err
}

func demultiplexRun(mode types.Mode, files *adapters.Files, fastq1, fastq2, outDir string) error {
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	c := cutadapt.New(mode)
	c.Exe = runExe
	c.ErrorRate = runErrorRate
	c.MinOverlap = runMinOverlap
	c.Cores = runCores

	cmd := c.Command(files.ForwardFasta, files.ReverseFasta, fastq1, fastq2, outDir)

	info("running cutadapt:\n%s", cmd)

	if err := executeCmd(cmd); err != nil {
		return fmt.Errorf("cutadapt failed: %w", err)
	}

	return nil
}

// writeRunReports counts the reads in the per-sample files, writes the count
// reports and ampliseq sample sheet to the -o directory, and prints the
// relative counts.
func writeRunReports(samplesDir string) error {
	cs, err := countReadsInDir(samplesDir)
	if err != nil {
		return err
	}

	if err = writeCountReports(runOutput, cs, !runSkipPlot); err != nil {
		return err
	}

	rows, err := ampliseq.Scan(samplesDir)
	if err != nil {
		return err
	}

	err = writeOutput(filepath.Join(runOutput, ampliseqSheet), func(w io.Writer) error {
		return ampliseq.WriteCSV(w, rows)
	})
	if err != nil {
		return err
	}

	return counts.WriteRelativeTSV(os.Stdout, cs)
}
