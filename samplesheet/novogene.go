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
	"path/filepath"
	"strings"

	"github.com/shenwei356/xopen"
	"github.com/wtsi-hgi/demux-automation/types"
	"github.com/xuri/excelize/v2"
)

const (
	minVendorColumns = 5
	xlsxExt          = ".xlsx"
)

// ParseNovogene reads a tab-delimited Novogene vendor sheet, one row per
// sample, with columns sample name, "forward_barcode forward_primer",
// "reverse_barcode reverse_primer", forward barcode name and reverse barcode
// name. The barcode and primer share a cell, separated by a space; the primer
// may be omitted.
func ParseNovogene(r io.Reader) ([]*types.Sample, error) {
	scanner := bufio.NewScanner(r)

	var records []*types.Sample

	lineNum := 0

	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := vendorRecord(trimFields(strings.Split(line, "\t")), lineNum)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, scanner.Err()
}

// ParseNovogeneXLSX is like ParseNovogene(), but reads the first worksheet of
// the given Excel file, the format Novogene actually delivers sheets in.
func ParseNovogeneXLSX(path string) ([]*types.Sample, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	var records []*types.Sample

	for i, row := range rows {
		fields := trimFields(row)
		if rowIsBlank(fields) {
			continue
		}

		record, err := vendorRecord(fields, i+1)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// ParseNovogeneFile parses the vendor sheet at the given path with
// ParseNovogeneXLSX() if it ends in .xlsx, and otherwise with ParseNovogene(),
// in which case it may be gzip compressed.
func ParseNovogeneFile(path string) ([]*types.Sample, error) {
	if strings.EqualFold(filepath.Ext(path), xlsxExt) {
		return ParseNovogeneXLSX(path)
	}

	f, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseNovogene(f)
}

func rowIsBlank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}

	return true
}

func vendorRecord(fields []string, lineNum int) (*types.Sample, error) {
	if len(fields) < minVendorColumns {
		return nil, fmt.Errorf("%w: line %d has %d columns, need at least %d",
			ErrMalformedRow, lineNum, len(fields), minVendorColumns)
	}

	forwardBarcode, forwardPrimer := splitBarcodePrimer(fields[1])
	reverseBarcode, reversePrimer := splitBarcodePrimer(fields[2])

	if fields[0] == "" || forwardBarcode == "" || reverseBarcode == "" {
		return nil, fmt.Errorf("%w: line %d is missing a sample name or barcode",
			ErrMalformedRow, lineNum)
	}

	return &types.Sample{
		Name:               fields[0],
		ForwardBarcode:     forwardBarcode,
		ReverseBarcode:     reverseBarcode,
		ForwardBarcodeName: fields[3],
		ReverseBarcodeName: fields[4],
		ForwardPrimer:      forwardPrimer,
		ReversePrimer:      reversePrimer,
	}, nil
}

func splitBarcodePrimer(cell string) (string, string) {
	parts := strings.Fields(cell)

	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}
