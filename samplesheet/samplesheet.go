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

package samplesheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shenwei356/xopen"
	"github.com/wtsi-hgi/demux-automation/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrMalformedRow = Error("malformed sample sheet row")

	minColumns = 3
	numColumns = 8
)

// Parse reads a tab-delimited sample sheet, one row per sample, with columns
// sample name, forward barcode, reverse barcode, forward barcode name,
// reverse barcode name, forward primer, reverse primer and primer name. The
// first 3 columns are mandatory; the rest may be blank or absent. Blank lines
// are skipped and cell whitespace is trimmed.
func Parse(r io.Reader) ([]*types.Sample, error) {
	scanner := bufio.NewScanner(r)

	var records []*types.Sample

	lineNum := 0

	for scanner.Scan() {
		lineNum++

		fields, err := splitRow(scanner.Text(), lineNum)
		if err != nil {
			return nil, err
		}

		if fields == nil {
			continue
		}

		records = append(records, &types.Sample{
			Name:               fields[0],
			ForwardBarcode:     fields[1],
			ReverseBarcode:     fields[2],
			ForwardBarcodeName: fields[3],
			ReverseBarcodeName: fields[4],
			ForwardPrimer:      fields[5],
			ReversePrimer:      fields[6],
			PrimerName:         fields[7],
		})
	}

	return records, scanner.Err()
}

// splitRow splits a sheet line in to its trimmed cells, padded with blanks to
// numColumns. It returns nil cells for a blank line.
func splitRow(line string, lineNum int) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	fields := trimFields(strings.Split(line, "\t"))

	if len(fields) < minColumns {
		return nil, fmt.Errorf("%w: line %d has %d columns, need at least %d",
			ErrMalformedRow, lineNum, len(fields), minColumns)
	}

	for _, mandatory := range fields[:minColumns] {
		if mandatory == "" {
			return nil, fmt.Errorf("%w: line %d is missing a sample name or barcode",
				ErrMalformedRow, lineNum)
		}
	}

	for len(fields) < numColumns {
		fields = append(fields, "")
	}

	return fields, nil
}

func trimFields(fields []string) []string {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return fields
}

// ParseFile is like Parse(), but reads the sheet from the given path, which
// may be gzip compressed.
func ParseFile(path string) ([]*types.Sample, error) {
	f, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// WriteTSV writes records in the 8 column format understood by Parse().
func WriteTSV(w io.Writer, records []*types.Sample) error {
	for _, r := range records {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.ForwardBarcode, r.ReverseBarcode,
			r.ForwardBarcodeName, r.ReverseBarcodeName,
			r.ForwardPrimer, r.ReversePrimer, r.PrimerName)
		if err != nil {
			return err
		}
	}

	return nil
}
