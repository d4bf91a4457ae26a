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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenwei356/xopen"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/demux-automation/types"
)

func TestSamplesheet(t *testing.T) {
	Convey("Parse() reads an 8 column sample sheet", t, func() {
		sheet := "S1\tAAA\tCCC\tF1\tR1\tGGGG\tTTTT\tP1\n"

		records, err := Parse(strings.NewReader(sheet))
		So(err, ShouldBeNil)
		So(records, ShouldResemble, []*types.Sample{
			{
				Name:               "S1",
				ForwardBarcode:     "AAA",
				ReverseBarcode:     "CCC",
				ForwardBarcodeName: "F1",
				ReverseBarcodeName: "R1",
				ForwardPrimer:      "GGGG",
				ReversePrimer:      "TTTT",
				PrimerName:         "P1",
			},
		})
	})

	Convey("Parse() pads missing optional columns and skips blank lines", t, func() {
		sheet := "S1\tAAA\tCCC\n\nS2\tGGG\tTTT\tF2\n"

		records, err := Parse(strings.NewReader(sheet))
		So(err, ShouldBeNil)
		So(len(records), ShouldEqual, 2)
		So(records[0], ShouldResemble, &types.Sample{
			Name:           "S1",
			ForwardBarcode: "AAA",
			ReverseBarcode: "CCC",
		})
		So(records[1].ForwardBarcodeName, ShouldEqual, "F2")
		So(records[1].ReverseBarcodeName, ShouldBeBlank)
		So(records[1].PrimerName, ShouldBeBlank)
	})

	Convey("Parse() trims whitespace within cells", t, func() {
		sheet := " S1 \t AAA\tCCC \t F1\t R1 \n"

		records, err := Parse(strings.NewReader(sheet))
		So(err, ShouldBeNil)
		So(records[0].Name, ShouldEqual, "S1")
		So(records[0].ForwardBarcode, ShouldEqual, "AAA")
		So(records[0].ReverseBarcode, ShouldEqual, "CCC")
		So(records[0].ForwardBarcodeName, ShouldEqual, "F1")
		So(records[0].ReverseBarcodeName, ShouldEqual, "R1")
	})

	Convey("Parse() rejects rows missing mandatory columns", t, func() {
		records, err := Parse(strings.NewReader("S1\tAAA\n"))
		So(records, ShouldBeNil)
		So(errors.Is(err, ErrMalformedRow), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "line 1")

		records, err = Parse(strings.NewReader("S1\t\tCCC\n"))
		So(records, ShouldBeNil)
		So(errors.Is(err, ErrMalformedRow), ShouldBeTrue)

		Convey("identifying the offending line, counting blank lines", func() {
			_, err = Parse(strings.NewReader("S1\tAAA\tCCC\n\nS2\tGGG\n"))
			So(errors.Is(err, ErrMalformedRow), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "line 3")
		})
	})

	Convey("ParseFile() reads plain and gzipped sheets", t, func() {
		dir := t.TempDir()
		sheet := "S1\tAAA\tCCC\tF1\tR1\n"

		plainPath := filepath.Join(dir, "sheet.tsv")
		err := os.WriteFile(plainPath, []byte(sheet), 0600)
		So(err, ShouldBeNil)

		gzPath := filepath.Join(dir, "sheet.tsv.gz")
		w, err := xopen.Wopen(gzPath)
		So(err, ShouldBeNil)
		_, err = w.WriteString(sheet)
		So(err, ShouldBeNil)
		So(w.Close(), ShouldBeNil)

		plainRecords, err := ParseFile(plainPath)
		So(err, ShouldBeNil)

		gzRecords, err := ParseFile(gzPath)
		So(err, ShouldBeNil)
		So(gzRecords, ShouldResemble, plainRecords)
		So(plainRecords[0].Name, ShouldEqual, "S1")
	})

	Convey("WriteTSV() output round-trips through Parse()", t, func() {
		records := []*types.Sample{
			{
				Name:               "S1",
				ForwardBarcode:     "AAA",
				ReverseBarcode:     "CCC",
				ForwardBarcodeName: "F1",
				ReverseBarcodeName: "R1",
				ForwardPrimer:      "GGGG",
				ReversePrimer:      "TTTT",
				PrimerName:         "P1",
			},
			{
				Name:           "S2",
				ForwardBarcode: "GGG",
				ReverseBarcode: "TTT",
			},
		}

		var buf bytes.Buffer

		err := WriteTSV(&buf, records)
		So(err, ShouldBeNil)
		So(buf.String(), ShouldEqual,
			"S1\tAAA\tCCC\tF1\tR1\tGGGG\tTTTT\tP1\nS2\tGGG\tTTT\t\t\t\t\t\n")

		parsed, err := Parse(&buf)
		So(err, ShouldBeNil)
		So(parsed, ShouldResemble, records)
	})
}
