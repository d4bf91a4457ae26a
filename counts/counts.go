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

package counts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoSequenceFiles = Error("no sequence files found")
	ErrMixedExtensions = Error("mixed sequence file extensions")
	ErrIncompletePair  = Error("incomplete read pair")
	ErrNoReads         = Error("no reads found")

	matesPerPair = 2

	countsHeader   = "file\tnum_seqs\n"
	relativeHeader = "Filename\tRead Count\tRelative Read Count\n"
	relativeTotal  = "Total"
)

// pairRegexp splits a filename in to base, mate number, extension and
// optional gzip suffix.
var pairRegexp = regexp.MustCompile(`^(.+)([12])\.([^.]+)(\.gz)?$`)

var validExtensions = map[string]bool{
	"fasta": true,
	"fa":    true,
	"fna":   true,
	"fastq": true,
	"fq":    true,
}

// ScanDir returns the paths of the paired sequence files in dir, sorted by
// name. Filenames must look like <base><mate>.<ext> or <base><mate>.<ext>.gz
// with mate 1 or 2 and extension fasta, fa, fna, fastq or fq; other files are
// ignored. All sequence files must share one extension, and every base must
// have both mates.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var (
		paths []string
		bases []string
	)

	endings := make(map[string]bool)
	mates := make(map[string]int)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		m := pairRegexp.FindStringSubmatch(entry.Name())
		if m == nil || !validExtensions[strings.ToLower(m[3])] {
			continue
		}

		endings[strings.ToLower(m[3])+m[4]] = true

		if mates[m[1]] == 0 {
			bases = append(bases, m[1])
		}

		mates[m[1]]++

		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	return paths, validateScan(dir, paths, bases, endings, mates)
}

func validateScan(dir string, paths, bases []string,
	endings map[string]bool, mates map[string]int) error {
	if len(paths) == 0 {
		return fmt.Errorf("%w: in %s", ErrNoSequenceFiles, dir)
	}

	if len(endings) > 1 {
		all := make([]string, 0, len(endings))
		for ending := range endings {
			all = append(all, ending)
		}

		sort.Strings(all)

		return fmt.Errorf("%w: found %s", ErrMixedExtensions, strings.Join(all, ", "))
	}

	for _, base := range bases {
		if mates[base] != matesPerPair {
			return fmt.Errorf("%w: %s is missing a mate", ErrIncompletePair, base)
		}
	}

	return nil
}

// Count is the number of reads in a sequence file.
type Count struct {
	Path  string
	Reads int
}

// CountReads counts the records in the given fasta or fastq file, which may
// be gzip compressed. A file with no records has zero reads.
func CountReads(path string) (int, error) {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) || errors.Is(err, io.EOF) {
			return 0, nil
		}

		return 0, err
	}
	defer reader.Close()

	reads := 0

	for {
		_, err = reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return 0, err
		}

		reads++
	}

	return reads, nil
}

// CountFiles counts the reads in each of the given files, returning counts in
// the same order.
func CountFiles(paths []string) ([]Count, error) {
	counts := make([]Count, len(paths))

	for i, path := range paths {
		reads, err := CountReads(path)
		if err != nil {
			return nil, err
		}

		counts[i] = Count{Path: path, Reads: reads}
	}

	return counts, nil
}

// WriteTSV writes counts as a two column file/num_seqs table.
func WriteTSV(w io.Writer, counts []Count) error {
	if _, err := io.WriteString(w, countsHeader); err != nil {
		return err
	}

	for _, c := range counts {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", c.Path, c.Reads); err != nil {
			return err
		}
	}

	return nil
}

// WriteRelativeTSV writes counts with each file's fraction of the total and
// a final Total row. It returns ErrNoReads if the counts sum to nothing,
// since fractions would be meaningless.
func WriteRelativeTSV(w io.Writer, counts []Count) error {
	total := 0
	for _, c := range counts {
		total += c.Reads
	}

	if total == 0 {
		return ErrNoReads
	}

	if _, err := io.WriteString(w, relativeHeader); err != nil {
		return err
	}

	for _, c := range counts {
		_, err := fmt.Fprintf(w, "%s\t%d\t%.6f\n",
			c.Path, c.Reads, float64(c.Reads)/float64(total))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s\t%d\t%.6f\n", relativeTotal, total, 1.0)

	return err
}
