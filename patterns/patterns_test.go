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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPatterns(t *testing.T) {
	pats := []Pattern{
		{Source: "demux-F1-R1", Destination: "S1"},
		{Source: "demux-F1-R2", Destination: "S2"},
	}

	Convey("Write() output round-trips through Read()", t, func() {
		var buf bytes.Buffer

		err := Write(&buf, pats)
		So(err, ShouldBeNil)
		So(buf.String(), ShouldEqual, "demux-F1-R1 S1\ndemux-F1-R2 S2\n")

		read, err := Read(&buf)
		So(err, ShouldBeNil)
		So(read, ShouldResemble, pats)
	})

	Convey("Read() skips blank lines and allows any whitespace separator", t, func() {
		read, err := Read(strings.NewReader("\ndemux-F1-R1\tS1\n\n  demux-F1-R2   S2  \n"))
		So(err, ShouldBeNil)
		So(read, ShouldResemble, pats)
	})

	Convey("Read() rejects lines without exactly two fields", t, func() {
		read, err := Read(strings.NewReader("demux-F1-R1 S1\ndemux-F1-R2\n"))
		So(read, ShouldBeNil)
		So(errors.Is(err, ErrMalformedPattern), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "line 2")

		_, err = Read(strings.NewReader("demux-F1-R1 S1 extra\n"))
		So(errors.Is(err, ErrMalformedPattern), ShouldBeTrue)
	})

	Convey("ReadFile() reads a pattern file from disk", t, func() {
		path := filepath.Join(t.TempDir(), "patterns.txt")

		err := os.WriteFile(path, []byte("demux-F1-R1 S1\n"), 0600)
		So(err, ShouldBeNil)

		read, err := ReadFile(path)
		So(err, ShouldBeNil)
		So(read, ShouldResemble, pats[:1])

		_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
		So(err, ShouldNotBeNil)
	})
}
