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

package types

type Error string

func (e Error) Error() string { return string(e) }

const (
	forwardNameSuffix = "_fwd"
	reverseNameSuffix = "_rev"
)

// Sample is one row of a demultiplexing sample sheet: a sample name, the
// barcode pair that identifies its reads, and optionally the primer pair the
// barcodes sit next to.
type Sample struct {
	Name               string
	ForwardBarcode     string
	ReverseBarcode     string
	ForwardBarcodeName string
	ReverseBarcodeName string
	ForwardPrimer      string
	ReversePrimer      string
	PrimerName         string
}

// ForwardName returns ForwardBarcodeName, or Name with a "_fwd" suffix when
// no explicit barcode name was supplied.
func (s *Sample) ForwardName() string {
	if s.ForwardBarcodeName != "" {
		return s.ForwardBarcodeName
	}

	return s.Name + forwardNameSuffix
}

// ReverseName returns ReverseBarcodeName, or Name with a "_rev" suffix when
// no explicit barcode name was supplied.
func (s *Sample) ReverseName() string {
	if s.ReverseBarcodeName != "" {
		return s.ReverseBarcodeName
	}

	return s.Name + reverseNameSuffix
}

// ForwardSequence returns the sequence to anchor at the 5' end of read 1:
// the forward primer (when includePrimers is set and a primer is known)
// followed by the forward barcode.
func (s *Sample) ForwardSequence(includePrimers bool) string {
	if includePrimers && s.ForwardPrimer != "" {
		return s.ForwardPrimer + s.ForwardBarcode
	}

	return s.ForwardBarcode
}

// ReverseSequence returns the sequence to anchor at the 5' end of read 2:
// the reverse primer (when includePrimers is set and a primer is known)
// followed by the reverse barcode.
func (s *Sample) ReverseSequence(includePrimers bool) string {
	if includePrimers && s.ReversePrimer != "" {
		return s.ReversePrimer + s.ReverseBarcode
	}

	return s.ReverseBarcode
}
