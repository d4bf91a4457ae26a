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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAmpliseq(t *testing.T) {
	Convey("Given a directory of copied sample files", t, func() {
		dir := t.TempDir()

		for _, name := range []string{
			"S2_R1.fastq.gz", "S2_R2.fastq.gz",
			"S1_R1.fastq.gz", "S1_R2.fastq.gz",
			"lonely_R1.fastq.gz",
			"notes.txt",
		} {
			So(os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600), ShouldBeNil)
		}

		So(os.Mkdir(filepath.Join(dir, "sub"), 0755), ShouldBeNil)

		Convey("Scan() returns complete pairs sorted by sample", func() {
			rows, err := Scan(dir)
			So(err, ShouldBeNil)
			So(rows, ShouldResemble, []Row{
				{
					SampleID:     "S1",
					ForwardReads: filepath.Join(dir, "S1_R1.fastq.gz"),
					ReverseReads: filepath.Join(dir, "S1_R2.fastq.gz"),
				},
				{
					SampleID:     "S2",
					ForwardReads: filepath.Join(dir, "S2_R1.fastq.gz"),
					ReverseReads: filepath.Join(dir, "S2_R2.fastq.gz"),
				},
			})

			Convey("and WriteCSV() turns them into a sample sheet", func() {
				var buf bytes.Buffer

				err = WriteCSV(&buf, rows)
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual,
					"sampleID,forwardReads,reverseReads\n"+
						"S1,"+filepath.Join(dir, "S1_R1.fastq.gz")+","+filepath.Join(dir, "S1_R2.fastq.gz")+"\n"+
						"S2,"+filepath.Join(dir, "S2_R1.fastq.gz")+","+filepath.Join(dir, "S2_R2.fastq.gz")+"\n")
			})
		})

		Convey("Scan() errors on a missing directory", func() {
			_, err := Scan(filepath.Join(dir, "missing"))
			So(err, ShouldNotBeNil)
		})
	})
}
