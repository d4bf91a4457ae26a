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

const ErrInvalidMode = Error("invalid demultiplex mode")

// Mode says how barcode pairs identify samples. With unique dual indexes each
// sample has its own forward barcode, and reads are assigned on forward
// barcode alone with the reverse barcode confirming. With combinatorial dual
// indexes barcodes are shared between samples and only the combination of
// forward and reverse identifies a sample.
type Mode string

const (
	ModeUniqueDual        Mode = "unique"
	ModeCombinatorialDual Mode = "combinatorial"
)

// StringToMode converts a string to a Mode type. The empty string is treated
// as ModeUniqueDual.
func StringToMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeUniqueDual, Mode(""):
		return ModeUniqueDual, nil
	case ModeCombinatorialDual:
		return ModeCombinatorialDual, nil
	default:
		return "", ErrInvalidMode
	}
}
