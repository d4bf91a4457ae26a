/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Author: Sendu Bala <sb10@sanger.ac.uk>
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

package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"github.com/wtsi-hgi/demux-automation/config"
	"github.com/wtsi-hgi/demux-automation/mlwh"
	"github.com/wtsi-hgi/demux-automation/samples"
	"github.com/wtsi-hgi/demux-automation/sheets"
)

// sampleSheetTab is the tab of the configured Google sheet that holds sample
// details.
const sampleSheetTab = "samples"

// options for this cmd.
var infoRunID string

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Get sample info.",
	Long: `Get sample info from MLWH and the configured Google sheet.

With --run-id, shows the name, barcodes and primers of every sample in that
sequencing run, merged from MLWH and the Google sheet sample sheet tab.
Without it, shows every sample in the Google sheet.

You can check sample details here before demultiplexing with the run
sub-command, or have generate-patterns fetch them with the same --run-id and
--use-sheet options.

The DEMUX_AUTOMATION_* environment variables must be set, eg. in a ~/.env
file.
`,
	Run: func(_ *cobra.Command, _ []string) {
		err := sampleInfo(infoRunID)
		if err != nil {
			die("%s", err.Error())
		}
	},
}

func init() {
	RootCmd.AddCommand(infoCmd)

	// flags specific to this sub-command
	infoCmd.Flags().StringVar(&infoRunID, "run-id", "",
		"show the samples of this sequencing run")
}

// sampleInfo prints the merged details of each sample in the given run, or of
// every sample in the Google sheet if runID is blank.
func sampleInfo(runID string) error {
	client, err := newSampleClient(runID != "", true)
	if err != nil {
		return err
	}

	defer client.Close()

	records, err := client.Records(runID)
	if err != nil {
		return err
	}

	for _, record := range records {
		b, _ := json.MarshalIndent(record, "", "  ") //nolint:errcheck,errchkjson
		cliPrint("%s\n", string(b))
	}

	return nil
}

// newSampleClient makes a samples.Client from the environment configuration,
// connected to MLWH if useDB is true and to the Google sheets service if
// useSheet is true.
func newSampleClient(useDB, useSheet bool) (*samples.Client, error) {
	c, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	var wc samples.WarehouseClient

	if useDB {
		db, err := mlwh.New(mlwh.MySQLConfigFromConfig(c))
		if err != nil {
			return nil, err
		}

		wc = db
	}

	var sc samples.SheetsClient

	if useSheet {
		creds, err := sheets.ServiceCredentialsFromConfig(c)
		if err != nil {
			return nil, err
		}

		s, err := sheets.New(creds)
		if err != nil {
			return nil, err
		}

		sc = s
	}

	return samples.New(wc, sc, samples.ClientOptions{
		DocID:     c.SheetID,
		SheetName: sampleSheetTab,
	}), nil
}
