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

package adapters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shenwei356/xopen"
	"github.com/wtsi-hgi/demux-automation/patterns"
)

const (
	ForwardFastaBasename = "barcodes_fwd.fasta"
	ReverseFastaBasename = "barcodes_rev.fasta"
	PatternsBasename     = "patterns.txt"

	dirPerm = 0755
)

// Files holds the paths that WriteFiles() created.
type Files struct {
	ForwardFasta string
	ReverseFasta string
	PatternFile  string
}

// WriteFiles writes the forward and reverse barcode FASTAs and the pattern
// file to dir, creating the directory if necessary. Output is deterministic:
// writing the same generator twice produces identical files.
func (g *Generator) WriteFiles(dir string) (*Files, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, err
	}

	files := &Files{
		ForwardFasta: filepath.Join(dir, ForwardFastaBasename),
		ReverseFasta: filepath.Join(dir, ReverseFastaBasename),
		PatternFile:  filepath.Join(dir, PatternsBasename),
	}

	if err := writeFasta(files.ForwardFasta, g.forward); err != nil {
		return nil, err
	}

	if err := writeFasta(files.ReverseFasta, g.reverse); err != nil {
		return nil, err
	}

	return files, writePatternFile(files.PatternFile, g.pats)
}

func writeFasta(path string, adapters []Adapter) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return err
	}

	for _, a := range adapters {
		if _, err = fmt.Fprintf(w, ">%s\n%s\n", a.Name, a.Sequence); err != nil {
			w.Close()

			return err
		}
	}

	return w.Close()
}

func writePatternFile(path string, pats []patterns.Pattern) error {
	w, err := xopen.Wopen(path)
	if err != nil {
		return err
	}

	if err = patterns.Write(w, pats); err != nil {
		w.Close()

		return err
	}

	return w.Close()
}
