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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrMalformedPattern = Error("malformed pattern line")

	patternFields = 2
)

// Pattern maps the basename prefix of a pair of demultiplexed fastq files to
// the sample basename prefix they should be copied to.
type Pattern struct {
	Source      string
	Destination string
}

// Write writes patterns as lines of space-separated source and destination
// names, the format understood by Read().
func Write(w io.Writer, patterns []Pattern) error {
	for _, p := range patterns {
		if _, err := fmt.Fprintf(w, "%s %s\n", p.Source, p.Destination); err != nil {
			return err
		}
	}

	return nil
}

// Read parses a pattern file: one pattern per line, source name then
// destination name, whitespace separated. Blank lines are skipped.
func Read(r io.Reader) ([]Pattern, error) {
	scanner := bufio.NewScanner(r)

	var pats []Pattern

	lineNum := 0

	for scanner.Scan() {
		lineNum++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) != patternFields {
			return nil, fmt.Errorf("%w: line %d has %d fields, need %d",
				ErrMalformedPattern, lineNum, len(fields), patternFields)
		}

		pats = append(pats, Pattern{Source: fields[0], Destination: fields[1]})
	}

	return pats, scanner.Err()
}

// ReadFile is like Read(), but reads from the given path, which may be gzip
// compressed.
func ReadFile(path string) ([]Pattern, error) {
	f, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}
