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
	"github.com/wtsi-hgi/demux-automation/patterns"
)

// options for this cmd.
var (
	copyInputDir string
	copyOutput   string
)

// copyCmd represents the copy-by-pattern command.
var copyCmd = &cobra.Command{
	Use:   "copy-by-pattern [patterns.txt]",
	Short: "Copy demultiplexed files to per-sample names.",
	Long: `Copy demultiplexed files to per-sample names.

Given the pattern file from generate-patterns and the directory of files that
demultiplex produced, this copies each demux-<barcode name> fastq pair to the
output directory under its sample's name, eg. demux-F1_R1.fastq.gz becomes
sample1_R1.fastq.gz. The demux-unknown pair is ignored, and the source files
are left in place.

The pattern file is read from the given path, or from STDIN if no path is
given. Each line is a source and destination name separated by whitespace.

Patterns that match no file, and files that match no pattern, are warned
about but are not errors: cutadapt only creates files for barcodes it saw, and
combinatorial demultiplexing creates files for barcode combinations that
belong to no sample.

An example command line could look like this:
$ demux-automation copy-by-pattern -i demux -o samples patterns.txt
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		pats, err := readPatterns(args)
		if err != nil {
			die("%s", err.Error())
		}

		copier := &patterns.Copier{SourceDir: copyInputDir, DestDir: copyOutput}

		result, err := copier.Copy(pats)
		if err != nil {
			die("%s", err.Error())
		}

		reportCopyResult(result)
	},
}

func init() {
	RootCmd.AddCommand(copyCmd)

	// flags specific to this sub-command
	copyCmd.Flags().StringVarP(&copyInputDir, "input-dir", "i", "",
		"directory containing demultiplexed files")
	markFlagRequired(copyCmd, "input-dir")
	copyCmd.Flags().StringVarP(&copyOutput, outputFlag, "o", "",
		"output directory for the renamed copies")
	markFlagRequired(copyCmd, outputFlag)
}

func readPatterns(args []string) ([]patterns.Pattern, error) {
	if len(args) == 1 {
		return patterns.ReadFile(args[0])
	}

	return patterns.Read(os.Stdin)
}

// reportCopyResult warns about unmatched patterns and files, then summarises
// what was copied.
func reportCopyResult(result *patterns.CopyResult) {
	for _, p := range result.UnmatchedPatterns {
		warn("no demultiplexed files for %s", p.Source)
	}

	for _, f := range result.UnmatchedFiles {
		warn("no pattern matches %s", f)
	}

	info("copied files for %d of %d patterns",
		len(result.Matched), len(result.Matched)+len(result.UnmatchedPatterns))
}
