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

package cutadapt

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/demux-automation/types"
)

func TestCutadapt(t *testing.T) {
	fwdFasta := "/path/to/barcodes_fwd.fasta"
	revFasta := "/path/to/barcodes_rev.fasta"
	fastq1 := "/path/to/run_R1.fastq.gz"
	fastq2 := "/path/to/run_R2.fastq.gz"
	outDir := "/path/to/out"

	Convey("New() applies the default parameters", t, func() {
		c := New(types.ModeUniqueDual)
		So(c.Exe, ShouldEqual, DefaultExe)
		So(c.ErrorRate, ShouldEqual, float32(DefaultErrorRate))
		So(c.MinOverlap, ShouldEqual, DefaultMinOverlap)
		So(c.Cores, ShouldEqual, DefaultCores)

		Convey("Then you can generate a unique dual index command line", func() {
			cmd := c.Command(fwdFasta, revFasta, fastq1, fastq2, outDir)
			So(cmd, ShouldEqual,
				"cutadapt -e 0.14 -O 3 --pair-adapters --cores=0"+
					" -g ^file:"+fwdFasta+" -G ^file:"+revFasta+
					" -o '"+outDir+"/demux-{name}_R1.fastq.gz'"+
					" -p '"+outDir+"/demux-{name}_R2.fastq.gz'"+
					" "+fastq1+" "+fastq2)
		})

		Convey("Overridden parameters appear in the command line", func() {
			c.Exe = "/opt/cutadapt/bin/cutadapt"
			c.ErrorRate = 0.25
			c.MinOverlap = 5
			c.Cores = 16

			cmd := c.Command(fwdFasta, revFasta, fastq1, fastq2, outDir)
			So(cmd, ShouldStartWith, "/opt/cutadapt/bin/cutadapt -e 0.25 -O 5 --pair-adapters --cores=16 ")
		})
	})

	Convey("Combinatorial mode drops --pair-adapters and names outputs by both barcodes", t, func() {
		c := New(types.ModeCombinatorialDual)

		cmd := c.Command(fwdFasta, revFasta, fastq1, fastq2, outDir)
		So(cmd, ShouldEqual,
			"cutadapt -e 0.14 -O 3 --cores=0"+
				" -g ^file:"+fwdFasta+" -G ^file:"+revFasta+
				" -o '"+outDir+"/demux-{name1}-{name2}_R1.fastq.gz'"+
				" -p '"+outDir+"/demux-{name1}-{name2}_R2.fastq.gz'"+
				" "+fastq1+" "+fastq2)
	})

	Convey("SourceName() builds the basenames cutadapt will write", t, func() {
		So(SourceName("F1", "R1", types.ModeUniqueDual), ShouldEqual, "demux-F1")
		So(SourceName("F1", "R1", types.ModeCombinatorialDual), ShouldEqual, "demux-F1-R1")
	})

	Convey("IsUnknown() spots unassigned reads on either side", t, func() {
		So(IsUnknown("demux-unknown"), ShouldBeTrue)
		So(IsUnknown("demux-unknown-R1"), ShouldBeTrue)
		So(IsUnknown("demux-F1-unknown"), ShouldBeTrue)
		So(IsUnknown("demux-unknown-unknown"), ShouldBeTrue)
		So(IsUnknown("demux-F1-R1"), ShouldBeFalse)
		So(IsUnknown("demux-F1"), ShouldBeFalse)
	})
}
