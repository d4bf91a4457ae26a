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

package motifs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/liserjrqlxue/DNA/pkg/util"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
	"github.com/wtsi-hgi/demux-automation/counts"
)

// Error is the type of the constant Err* variables.
type Error string

// Error returns a string version of the error.
func (e Error) Error() string { return string(e) }

const (
	ErrNoMotifs = Error("no motifs found")

	motifsHeader = "file\tmotif\thits\treads\tfraction\n"
)

// Motif is a named sequence to search reads for.
type Motif struct {
	Name     string
	Sequence string
}

// Load reads named motifs from the given fasta file, which may be gzip
// compressed. Record IDs become motif names and sequences are upper-cased.
func Load(path string) ([]Motif, error) {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: in %s", ErrNoMotifs, path)
		}

		return nil, err
	}

	defer reader.Close()

	var motifs []Motif

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, err
		}

		motifs = append(motifs, Motif{
			Name:     string(record.ID),
			Sequence: strings.ToUpper(string(record.Seq.Seq)),
		})
	}

	if len(motifs) == 0 {
		return nil, fmt.Errorf("%w: in %s", ErrNoMotifs, path)
	}

	return motifs, nil
}

// Counter counts reads containing motifs using an Aho-Corasick automaton
// built over every motif and its reverse complement.
type Counter struct {
	motifs        []Motif
	matcher       *ahocorasick.Matcher
	patternMotifs [][]int
}

// NewCounter returns a Counter for the given motifs. Returns ErrNoMotifs if
// none are supplied.
func NewCounter(motifs []Motif) (*Counter, error) {
	if len(motifs) == 0 {
		return nil, ErrNoMotifs
	}

	var (
		patterns      []string
		patternMotifs [][]int
	)

	patternIndexes := make(map[string]int)

	add := func(pattern string, motif int) {
		i, found := patternIndexes[pattern]
		if !found {
			i = len(patterns)
			patternIndexes[pattern] = i
			patterns = append(patterns, pattern)
			patternMotifs = append(patternMotifs, nil)
		}

		patternMotifs[i] = append(patternMotifs[i], motif)
	}

	for i, motif := range motifs {
		sequence := strings.ToUpper(motif.Sequence)
		add(sequence, i)

		if rc := util.ReverseComplement(sequence); rc != sequence {
			add(rc, i)
		}
	}

	return &Counter{
		motifs:        motifs,
		matcher:       ahocorasick.NewStringMatcher(patterns),
		patternMotifs: patternMotifs,
	}, nil
}

// Motifs returns the motifs this Counter searches for, in the order their
// hits are reported.
func (c *Counter) Motifs() []Motif {
	return c.motifs
}

// FileCount holds per-motif hit counts for one sequence file. Hits is
// ordered like the Counter's Motifs().
type FileCount struct {
	Path  string
	Reads int
	Hits  []int
}

// CountFile counts the reads in the given fasta or fastq file that contain
// each motif on either strand. A read containing a motif more than once
// still counts once for that motif.
func (c *Counter) CountFile(path string) (FileCount, error) {
	fc := FileCount{Path: path, Hits: make([]int, len(c.motifs))}

	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		if errors.Is(err, xopen.ErrNoContent) || errors.Is(err, io.EOF) {
			return fc, nil
		}

		return fc, err
	}

	defer reader.Close()

	seen := make([]bool, len(c.motifs))
	touched := make([]int, 0, len(c.motifs))

	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return fc, err
		}

		fc.Reads++

		for _, pattern := range c.matcher.Match(bytes.ToUpper(record.Seq.Seq)) {
			for _, motif := range c.patternMotifs[pattern] {
				if !seen[motif] {
					seen[motif] = true
					touched = append(touched, motif)
					fc.Hits[motif]++
				}
			}
		}

		for _, motif := range touched {
			seen[motif] = false
		}

		touched = touched[:0]
	}

	return fc, nil
}

// CountDir counts motifs in every sequence file in the given directory, as
// found by counts.ScanDir, returning one FileCount per file in name order.
func (c *Counter) CountDir(dir string) ([]FileCount, error) {
	paths, err := counts.ScanDir(dir)
	if err != nil {
		return nil, err
	}

	fcs := make([]FileCount, len(paths))

	for i, path := range paths {
		fcs[i], err = c.CountFile(path)
		if err != nil {
			return nil, err
		}
	}

	return fcs, nil
}

// WriteTSV writes one row per file and motif with the number of reads hit,
// the file's total reads, and the hit fraction (0 for a file with no reads).
func (c *Counter) WriteTSV(w io.Writer, fileCounts []FileCount) error {
	if _, err := io.WriteString(w, motifsHeader); err != nil {
		return err
	}

	for _, fc := range fileCounts {
		if err := c.writeFileRows(w, fc); err != nil {
			return err
		}
	}

	return nil
}

func (c *Counter) writeFileRows(w io.Writer, fc FileCount) error {
	for i, motif := range c.motifs {
		fraction := float64(0)
		if fc.Reads > 0 {
			fraction = float64(fc.Hits[i]) / float64(fc.Reads)
		}

		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.6f\n",
			fc.Path, motif.Name, fc.Hits[i], fc.Reads, fraction)
		if err != nil {
			return err
		}
	}

	return nil
}
