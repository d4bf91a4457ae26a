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

package mlwh

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/wtsi-hgi/demux-automation/config"
)

const runID = "49619"

func TestMySQLConfig(t *testing.T) {
	Convey("MySQLConfigFromConfig turns our config in to connection details", t, func() {
		mc := MySQLConfigFromConfig(&config.Config{
			User:     "user",
			Password: "pass",
			Host:     "host",
			Port:     "3306",
			DBName:   "mlwarehouse",
		})

		So(mc.User, ShouldEqual, "user")
		So(mc.Passwd, ShouldEqual, "pass")
		So(mc.Net, ShouldEqual, "tcp")
		So(mc.Addr, ShouldEqual, "host:3306")
		So(mc.DBName, ShouldEqual, "mlwarehouse")
		So(mc.FormatDSN(), ShouldContainSubstring, "user:pass@tcp(host:3306)/mlwarehouse")
	})
}

func TestMLWH(t *testing.T) {
	c, err := config.FromEnv("..")
	if err != nil {
		SkipConvey("skipping mlwh tests without DEMUX_AUTOMATION_* set", t, func() {})

		return
	}

	Convey("Given a working New MLWH", t, func() {
		mlwh, err := New(MySQLConfigFromConfig(c))
		So(err, ShouldBeNil)
		So(mlwh, ShouldNotBeNil)

		Convey("You can get the tagged samples sequenced in a given run", func() {
			samples, err := mlwh.SamplesForRun(runID)
			So(err, ShouldBeNil)
			So(len(samples), ShouldBeGreaterThan, 0)
			So(samples[0].SampleID, ShouldNotBeEmpty)
			So(samples[0].SampleName, ShouldNotBeEmpty)
			So(samples[0].RunID, ShouldEqual, runID)
			So(samples[0].StudyID, ShouldNotBeEmpty)
			So(samples[0].StudyName, ShouldNotBeEmpty)
			So(samples[0].Tag1, ShouldNotBeEmpty)

			for i, sample := range samples {
				if i == 0 {
					continue
				}

				So(sample.TagIndex, ShouldBeGreaterThanOrEqualTo, samples[i-1].TagIndex)
			}

			samples, err = mlwh.SamplesForRun("0")
			So(err, ShouldBeNil)
			So(len(samples), ShouldEqual, 0)
		})
	})
}
