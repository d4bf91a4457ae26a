/*******************************************************************************
 * Copyright (c) 2026 Genome Research Ltd.
 *
 * Authors:
 *	- Sendu Bala <sb10@sanger.ac.uk>
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

package cutadapt

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wtsi-hgi/demux-automation/types"
)

const (
	DefaultExe        = "cutadapt"
	DefaultErrorRate  = 0.14
	DefaultMinOverlap = 3
	DefaultCores      = 0

	// DemuxPrefix starts the basename of every file cutadapt writes for us,
	// so that demultiplexed output can be told apart from anything else in
	// the output directory.
	DemuxPrefix = "demux-"

	// MatePair1Suffix and MatePair2Suffix end the basenames of read 1 and
	// read 2 files.
	MatePair1Suffix = "_R1.fastq.gz"
	MatePair2Suffix = "_R2.fastq.gz"

	// UnknownName is the adapter name cutadapt uses for reads it could not
	// assign to any barcode.
	UnknownName = "unknown"

	uniqueNameTemplate        = "{name}"
	combinatorialNameTemplate = "{name1}-{name2}"
	combinatorialNameSep      = "-"

	anchoredFileAdapter = "^file:"
)

// Cutadapt represents the parameters for running cutadapt to demultiplex a
// pair of fastq files against anchored 5' barcode FASTAs. All parameters are
// required, but using New() will default them to usually fixed values.
type Cutadapt struct {
	Exe  string
	Mode types.Mode

	// ErrorRate is the fraction of mismatches tolerated when matching a
	// barcode against a read.
	ErrorRate float32

	// MinOverlap is the minimum number of barcode bases that must align.
	MinOverlap int

	// Cores is the number of threads cutadapt may use; 0 means autodetect.
	Cores int
}

// New creates a new Cutadapt instance for the given mode, with default values
// for the other properties.
func New(mode types.Mode) Cutadapt {
	return Cutadapt{
		Exe:        DefaultExe,
		Mode:       mode,
		ErrorRate:  DefaultErrorRate,
		MinOverlap: DefaultMinOverlap,
		Cores:      DefaultCores,
	}
}

// Command generates the cutadapt command to execute, demultiplexing fastq1
// and fastq2 against the given barcode FASTA files and writing per-barcode
// fastq.gz pairs to outputDir. In unique dual index mode the two FASTAs are
// treated as ordered pairs via --pair-adapters; in combinatorial mode every
// forward/reverse combination gets its own output pair.
func (c *Cutadapt) Command(forwardFasta, reverseFasta, fastq1, fastq2, outputDir string) string {
	pairAdapters := ""
	if c.Mode == types.ModeUniqueDual {
		pairAdapters = " --pair-adapters"
	}

	return fmt.Sprintf("%s -e %s -O %d%s --cores=%d -g %s%s -G %s%s -o '%s' -p '%s' %s %s",
		c.Exe, c.errorRateStr(), c.MinOverlap, pairAdapters, c.Cores,
		anchoredFileAdapter, forwardFasta, anchoredFileAdapter, reverseFasta,
		filepath.Join(outputDir, c.outputBasename(MatePair1Suffix)),
		filepath.Join(outputDir, c.outputBasename(MatePair2Suffix)),
		fastq1, fastq2)
}

func (c *Cutadapt) errorRateStr() string {
	return strconv.FormatFloat(float64(c.ErrorRate), 'g', -1, 32)
}

func (c *Cutadapt) nameTemplate() string {
	if c.Mode == types.ModeCombinatorialDual {
		return combinatorialNameTemplate
	}

	return uniqueNameTemplate
}

func (c *Cutadapt) outputBasename(mateSuffix string) string {
	return DemuxPrefix + c.nameTemplate() + mateSuffix
}

// SourceName returns the basename (minus mate suffix) that cutadapt will use
// for reads matching the given barcode names, suitable for the source side of
// a pattern file entry.
func SourceName(forwardName, reverseName string, mode types.Mode) string {
	if mode == types.ModeCombinatorialDual {
		return DemuxPrefix + forwardName + combinatorialNameSep + reverseName
	}

	return DemuxPrefix + forwardName
}

// IsUnknown reports whether the given source name (as returned by
// SourceName()) refers to reads cutadapt could not assign to a barcode on one
// or both sides.
func IsUnknown(source string) bool {
	for _, part := range strings.Split(strings.TrimPrefix(source, DemuxPrefix), combinatorialNameSep) {
		if part == UnknownName {
			return true
		}
	}

	return false
}
