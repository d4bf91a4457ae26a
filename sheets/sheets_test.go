/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
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
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/demux-automation/config"
)

func TestColumns(t *testing.T) {
	Convey("Given a Sheet, you can get specific columns of information", t, func() {
		sheet := &Sheet{
			ColumnHeaders: []string{"sample_name", "forward_barcode", "reverse_barcode", "forward_primer"},
			Rows: [][]string{
				{"S1", "AAA", "CCC", "GGGG"},
				{"S2", "GGG", "TTT"},
			},
		}

		cols, err := sheet.Columns("forward_barcode", "sample_name")
		So(err, ShouldBeNil)
		So(cols, ShouldResemble, [][]string{
			{"AAA", "S1"},
			{"GGG", "S2"},
		})

		Convey("with short rows padded out", func() {
			cols, err = sheet.Columns("forward_primer")
			So(err, ShouldBeNil)
			So(cols, ShouldResemble, [][]string{{"GGGG"}, {""}})
		})

		Convey("but not columns that don't exist", func() {
			_, err = sheet.Columns("sample_name", "foo")
			So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "foo")
		})
	})
}

func TestSheets(t *testing.T) {
	spreadsheetID := os.Getenv(config.EnvVarSheet)
	if spreadsheetID == "" {
		SkipConvey("skipping sheet tests without "+config.EnvVarSheet+" set", t, func() {})

		return
	}

	sc, err := ServiceCredentialsFromFile(os.Getenv(config.EnvVarCreds))
	if err != nil {
		SkipConvey("skipping sheet tests without valid service credentials", t, func() {})

		return
	}

	Convey("Given real service credentials, you can make a Sheets", t, func() {
		sheets, err := New(sc)
		So(err, ShouldBeNil)
		So(sheets, ShouldNotBeNil)

		Convey("Which you can use to Read the contents of named sheets", func() {
			sheet, err := sheets.Read(spreadsheetID, "samples")
			So(err, ShouldBeNil)
			So(sheet, ShouldNotBeNil)
			So(sheet.ColumnHeaders, ShouldContain, "sample_name")
			So(sheet.ColumnHeaders, ShouldContain, "forward_barcode")
			So(sheet.ColumnHeaders, ShouldContain, "reverse_barcode")
			So(len(sheet.Rows), ShouldBeGreaterThan, 0)

			_, err = sheets.Read(spreadsheetID, "~invalid")
			So(err, ShouldNotBeNil)

			_, err = sheets.Read("invalid", "samples")
			So(err, ShouldNotBeNil)
		})

		Convey("Which you can use to retrieve sample records", func() {
			records, err := sheets.SampleSheet(spreadsheetID, "samples")
			So(err, ShouldBeNil)
			So(len(records), ShouldBeGreaterThan, 0)
			So(records[0].Name, ShouldNotBeBlank)
			So(records[0].ForwardBarcode, ShouldNotBeBlank)
			So(records[0].ReverseBarcode, ShouldNotBeBlank)
		})
	})
}
