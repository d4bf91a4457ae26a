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

package samples

import (
	"fmt"

	"github.com/wtsi-hgi/demux-automation/mlwh"
	"github.com/wtsi-hgi/demux-automation/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoSource    = Error("no sample source configured")
	ErrRunNotFound = Error("no samples found for run")
	ErrMissingTag  = Error("sample is missing an index tag")
)

type WarehouseClient interface {
	// SamplesForRun returns all samples in the warehouse that were sequenced
	// in the given run and passed manual qc.
	SamplesForRun(runID string) ([]mlwh.Sample, error)

	// Close closes the connection to the warehouse.
	Close() error
}

type SheetsClient interface {
	// SampleSheet reads the named sample sheet tab of the given document and
	// converts its rows to sample records.
	SampleSheet(docID, sheetName string) ([]*types.Sample, error)
}

// Client gets the sample records to demultiplex with, from the MLWH, our
// Google sheet, or both.
type Client struct {
	wc WarehouseClient
	sc SheetsClient

	docID     string
	sheetName string
}

// ClientOptions are options for creating a new Client.
type ClientOptions struct {
	// DocID is the id of the google doc to get the sample sheet from.
	DocID string

	// SheetName is the name of the sample sheet tab within the doc.
	SheetName string
}

// New returns a new Client that merges sample information from the given
// warehouse and sheet clients, either of which may be nil.
func New(wc WarehouseClient, sc SheetsClient, opts ClientOptions) *Client {
	return &Client{
		wc:        wc,
		sc:        sc,
		docID:     opts.DocID,
		sheetName: opts.SheetName,
	}
}

// Records returns the sample records for the given sequencing run: the run's
// barcode tags from the warehouse, overlaid with barcode names and primers
// from the sample sheet for samples the sheet knows about.
//
// With a blank runID the sample sheet alone is the source. Returns
// ErrNoSource if the needed client was not configured.
func (c *Client) Records(runID string) ([]*types.Sample, error) {
	if runID == "" {
		return c.sheetRecords()
	}

	if c.wc == nil {
		return nil, ErrNoSource
	}

	samples, err := c.wc.SamplesForRun(runID)
	if err != nil {
		return nil, err
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	records := make([]*types.Sample, len(samples))

	for i, sample := range samples {
		records[i], err = recordFromWarehouse(sample)
		if err != nil {
			return nil, err
		}
	}

	return c.overlaySheetMetadata(records)
}

func (c *Client) sheetRecords() ([]*types.Sample, error) {
	if c.sc == nil {
		return nil, ErrNoSource
	}

	return c.sc.SampleSheet(c.docID, c.sheetName)
}

func recordFromWarehouse(sample mlwh.Sample) (*types.Sample, error) {
	name := sample.SampleName
	if name == "" {
		name = sample.SampleID
	}

	if sample.Tag1 == "" || sample.Tag2 == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingTag, name)
	}

	return &types.Sample{
		Name:           name,
		ForwardBarcode: sample.Tag1,
		ReverseBarcode: sample.Tag2,
	}, nil
}

func (c *Client) overlaySheetMetadata(records []*types.Sample) ([]*types.Sample, error) {
	if c.sc == nil {
		return records, nil
	}

	sheetRecords, err := c.sc.SampleSheet(c.docID, c.sheetName)
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]*types.Sample, len(sheetRecords))

	for _, record := range sheetRecords {
		metadata[record.Name] = record
	}

	for _, record := range records {
		meta, found := metadata[record.Name]
		if !found {
			continue
		}

		record.ForwardBarcodeName = meta.ForwardBarcodeName
		record.ReverseBarcodeName = meta.ReverseBarcodeName
		record.ForwardPrimer = meta.ForwardPrimer
		record.ReversePrimer = meta.ReversePrimer
		record.PrimerName = meta.PrimerName
	}

	return records, nil
}

// Close closes the warehouse connection, if we have one.
func (c *Client) Close() error {
	if c.wc == nil {
		return nil
	}

	return c.wc.Close()
}
