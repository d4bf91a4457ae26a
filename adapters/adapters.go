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

	"github.com/wtsi-hgi/demux-automation/cutadapt"
	"github.com/wtsi-hgi/demux-automation/patterns"
	"github.com/wtsi-hgi/demux-automation/types"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoSamples            = Error("no samples to generate adapters from")
	ErrDuplicateSample      = Error("duplicate sample name")
	ErrInconsistentBarcode  = Error("barcode name reused with a different sequence")
	ErrDuplicateBarcodePair = Error("barcode combination shared by multiple samples")
	ErrReservedName         = Error(`the name "unknown" is reserved`)
)

// Adapter is one entry of a barcode FASTA file.
type Adapter struct {
	Name     string
	Sequence string
}

// Options alter what New() generates. Mode decides how pattern sources are
// named. IncludePrimers prepends each sample's primer to its barcode, for
// libraries where the primer precedes the barcode on the read.
type Options struct {
	Mode           types.Mode
	IncludePrimers bool
}

// Generator holds the validated adapter collections and rename patterns for a
// set of sample records.
type Generator struct {
	opts    Options
	forward []Adapter
	reverse []Adapter
	pats    []patterns.Pattern
}

// New validates the given records and derives from them the forward and
// reverse adapter collections and the pattern for renaming demultiplexed
// output back to sample names.
//
// Records must have unique sample names, may not reuse a barcode name for a
// different sequence, and each must have a distinct barcode combination.
// Adapters are deduplicated by name, keeping first-seen order, so barcodes
// shared between samples appear once per FASTA.
func New(records []*types.Sample, opts Options) (*Generator, error) {
	if len(records) == 0 {
		return nil, ErrNoSamples
	}

	if err := validateNames(records); err != nil {
		return nil, err
	}

	g := &Generator{opts: opts}

	if err := g.collect(records); err != nil {
		return nil, err
	}

	return g, nil
}

func validateNames(records []*types.Sample) error {
	seen := make(map[string]int, len(records))

	for i, s := range records {
		if j, ok := seen[s.Name]; ok {
			return fmt.Errorf("%w: %q on rows %d and %d", ErrDuplicateSample, s.Name, j+1, i+1)
		}

		seen[s.Name] = i

		for _, name := range []string{s.Name, s.ForwardName(), s.ReverseName()} {
			if name == cutadapt.UnknownName {
				return fmt.Errorf("%w: row %d", ErrReservedName, i+1)
			}
		}
	}

	return nil
}

func (g *Generator) collect(records []*types.Sample) error {
	forwardSeqs := make(map[string]string)
	reverseSeqs := make(map[string]string)
	sources := make(map[string]string, len(records))
	reverseOwners := make(map[string]string, len(records))

	for i, s := range records {
		forward, reverse := s.ForwardName(), s.ReverseName()

		var err error

		g.forward, err = appendAdapter(g.forward, forwardSeqs,
			forward, s.ForwardSequence(g.opts.IncludePrimers), "forward", i)
		if err != nil {
			return err
		}

		g.reverse, err = appendAdapter(g.reverse, reverseSeqs,
			reverse, s.ReverseSequence(g.opts.IncludePrimers), "reverse", i)
		if err != nil {
			return err
		}

		if err = g.appendPattern(s.Name, forward, reverse, sources, reverseOwners); err != nil {
			return err
		}
	}

	return nil
}

// appendAdapter adds an adapter to the collection unless its name was already
// seen, in which case the sequence must be identical.
func appendAdapter(list []Adapter, seqs map[string]string,
	name, seq, side string, row int) ([]Adapter, error) {
	if existing, ok := seqs[name]; ok {
		if existing != seq {
			return nil, fmt.Errorf("%w: %s barcode %q on row %d",
				ErrInconsistentBarcode, side, name, row+1)
		}

		return list, nil
	}

	seqs[name] = seq

	return append(list, Adapter{Name: name, Sequence: seq}), nil
}

// appendPattern records the pattern for a sample, rejecting barcode reuse
// that would make demultiplexed output ambiguous. In unique dual index mode
// that means no two samples may share either side of the pair, since cutadapt
// pairs the two FASTAs entry by entry.
func (g *Generator) appendPattern(sample, forward, reverse string,
	sources, reverseOwners map[string]string) error {
	source := cutadapt.SourceName(forward, reverse, g.opts.Mode)

	if other, ok := sources[source]; ok {
		return fmt.Errorf("%w: samples %q and %q both produce %s",
			ErrDuplicateBarcodePair, other, sample, source)
	}

	sources[source] = sample

	if g.opts.Mode == types.ModeUniqueDual {
		if other, ok := reverseOwners[reverse]; ok {
			return fmt.Errorf("%w: reverse barcode %q shared by samples %q and %q",
				ErrDuplicateBarcodePair, reverse, other, sample)
		}

		reverseOwners[reverse] = sample
	}

	g.pats = append(g.pats, patterns.Pattern{Source: source, Destination: sample})

	return nil
}

// Forward returns the deduplicated forward adapters in first-seen order.
func (g *Generator) Forward() []Adapter {
	return g.forward
}

// Reverse returns the deduplicated reverse adapters in first-seen order.
func (g *Generator) Reverse() []Adapter {
	return g.reverse
}

// Patterns returns one pattern per sample, mapping the basename cutadapt will
// write to the sample name, in sheet order.
func (g *Generator) Patterns() []patterns.Pattern {
	return g.pats
}
