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

package sheets

import (
	"fmt"

	"github.com/wtsi-hgi/demux-automation/types"
)

const ErrMissingValue = Error("missing required value in sheet")

const (
	colSampleName         = "sample_name"
	colForwardBarcode     = "forward_barcode"
	colReverseBarcode     = "reverse_barcode"
	colForwardBarcodeName = "forward_barcode_name"
	colReverseBarcodeName = "reverse_barcode_name"
	colForwardPrimer      = "forward_primer"
	colReversePrimer      = "reverse_primer"
	colPrimerName         = "primer_name"

	headerRows = 1
)

// SampleSheet reads the named sample sheet tab of the given document and
// converts its rows to sample records.
func (s *Sheets) SampleSheet(docID, sheetName string) ([]*types.Sample, error) {
	sheet, err := s.Read(docID, sheetName)
	if err != nil {
		return nil, err
	}

	return RecordsFromSheet(sheet)
}

// RecordsFromSheet converts sample sheet cells to sample records. The
// sample_name, forward_barcode and reverse_barcode columns must be present
// and filled in on every row; the barcode name and primer columns are
// optional.
func RecordsFromSheet(sheet *Sheet) ([]*types.Sample, error) {
	if sheet == nil || len(sheet.Rows) == 0 {
		return nil, ErrNoData
	}

	required, err := sheet.Columns(colSampleName, colForwardBarcode, colReverseBarcode)
	if err != nil {
		return nil, err
	}

	fwdNames := optionalColumn(sheet, colForwardBarcodeName)
	revNames := optionalColumn(sheet, colReverseBarcodeName)
	fwdPrimers := optionalColumn(sheet, colForwardPrimer)
	revPrimers := optionalColumn(sheet, colReversePrimer)
	primerNames := optionalColumn(sheet, colPrimerName)

	records := make([]*types.Sample, len(sheet.Rows))

	for i := range sheet.Rows {
		if required[i][0] == "" || required[i][1] == "" || required[i][2] == "" {
			return nil, fmt.Errorf("%w: row %d", ErrMissingValue, i+headerRows+1)
		}

		records[i] = &types.Sample{
			Name:               required[i][0],
			ForwardBarcode:     required[i][1],
			ReverseBarcode:     required[i][2],
			ForwardBarcodeName: fwdNames[i],
			ReverseBarcodeName: revNames[i],
			ForwardPrimer:      fwdPrimers[i],
			ReversePrimer:      revPrimers[i],
			PrimerName:         primerNames[i],
		}
	}

	return records, nil
}

// optionalColumn returns the named column's value for each row, or "" for
// every row if the sheet doesn't have that column.
func optionalColumn(sheet *Sheet, name string) []string {
	column := make([]string, len(sheet.Rows))

	rows, err := sheet.Columns(name)
	if err != nil {
		return column
	}

	for i, row := range rows {
		column[i] = row[0]
	}

	return column
}
