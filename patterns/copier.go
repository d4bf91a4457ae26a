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

package patterns

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wtsi-hgi/demux-automation/cutadapt"
)

const dirPerm = 0755

// Copier copies demultiplexed fastq pairs from SourceDir to DestDir, renaming
// them according to patterns. Source files are never modified or removed, so
// a failed run can be rerun without re-demultiplexing.
type Copier struct {
	SourceDir string
	DestDir   string
}

// CopyResult says what a Copy() did: which patterns had files copied, which
// matched no file, and which files matched no pattern.
type CopyResult struct {
	Matched           []Pattern
	UnmatchedPatterns []Pattern
	UnmatchedFiles    []string
}

// Copy looks at every file in SourceDir, takes those ending in the
// demultiplexed fastq mate suffixes, and copies each whose basename prefix is
// a pattern source to DestDir, renamed to the pattern destination with the
// mate suffix kept. Files for reads that could not be assigned a barcode are
// ignored.
//
// Files are visited in lexical order, so when two patterns share a
// destination the lexically last source wins.
func (c *Copier) Copy(pats []Pattern) (*CopyResult, error) {
	lookup := make(map[string]string, len(pats))
	for _, p := range pats {
		lookup[p.Source] = p.Destination
	}

	entries, err := os.ReadDir(c.SourceDir)
	if err != nil {
		return nil, err
	}

	if err = os.MkdirAll(c.DestDir, dirPerm); err != nil {
		return nil, err
	}

	result := &CopyResult{}
	copied := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if err = c.copyEntry(entry.Name(), lookup, copied, result); err != nil {
			return nil, err
		}
	}

	for _, p := range pats {
		if copied[p.Source] {
			result.Matched = append(result.Matched, p)
		} else {
			result.UnmatchedPatterns = append(result.UnmatchedPatterns, p)
		}
	}

	return result, nil
}

// copyEntry copies a single directory entry if a pattern covers it, recording
// what happened in copied and result.
func (c *Copier) copyEntry(name string, lookup map[string]string,
	copied map[string]bool, result *CopyResult) error {
	suffix := mateSuffix(name)
	if suffix == "" {
		result.UnmatchedFiles = append(result.UnmatchedFiles, name)

		return nil
	}

	source := strings.TrimSuffix(name, suffix)
	if cutadapt.IsUnknown(source) {
		return nil
	}

	dest, ok := lookup[source]
	if !ok {
		result.UnmatchedFiles = append(result.UnmatchedFiles, name)

		return nil
	}

	err := copyFile(filepath.Join(c.SourceDir, name), filepath.Join(c.DestDir, dest+suffix))
	if err != nil {
		return err
	}

	copied[source] = true

	return nil
}

func mateSuffix(name string) string {
	for _, suffix := range []string{cutadapt.MatePair1Suffix, cutadapt.MatePair2Suffix} {
		if strings.HasSuffix(name, suffix) {
			return suffix
		}
	}

	return ""
}

// copyFile copies src to dst, truncating any existing dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer dstFile.Close()

	if _, err = io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return dstFile.Close()
}
