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

package ampliseq

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wtsi-hgi/demux-automation/cutadapt"
)

// Row is one input to a downstream amplicon pipeline: a sample and the paths
// of its mate pair files.
type Row struct {
	SampleID     string
	ForwardReads string
	ReverseReads string
}

// Scan finds {sample}_R1.fastq.gz/{sample}_R2.fastq.gz pairs in the given
// directory, such as those produced by pattern driven copying of
// demultiplexed files, and returns a Row per complete pair, sorted by
// sample. Files without both mates are ignored.
func Scan(dir string) ([]Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	forward := make(map[string]string)
	reverse := make(map[string]string)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		switch {
		case strings.HasSuffix(name, cutadapt.MatePair1Suffix):
			sample := strings.TrimSuffix(name, cutadapt.MatePair1Suffix)
			forward[sample] = filepath.Join(dir, name)
		case strings.HasSuffix(name, cutadapt.MatePair2Suffix):
			sample := strings.TrimSuffix(name, cutadapt.MatePair2Suffix)
			reverse[sample] = filepath.Join(dir, name)
		}
	}

	var rows []Row

	for sample, fwd := range forward {
		rev, found := reverse[sample]
		if !found {
			continue
		}

		rows = append(rows, Row{
			SampleID:     sample,
			ForwardReads: fwd,
			ReverseReads: rev,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].SampleID < rows[j].SampleID
	})

	return rows, nil
}

// WriteCSV writes rows as a sampleID,forwardReads,reverseReads csv sample
// sheet.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"sampleID", "forwardReads", "reverseReads"}); err != nil {
		return err
	}

	for _, row := range rows {
		if err := cw.Write([]string{row.SampleID, row.ForwardReads, row.ReverseReads}); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
