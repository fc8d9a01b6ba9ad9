// This file is part of Tonegen.
//
// Tonegen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tonegen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tonegen.  If not, see <https://www.gnu.org/licenses/>.

// Package digest computes a stable fingerprint of a PCM byte stream.
//
// Because the tone generators are deterministic, the digest of a generated
// stream is reproducible across runs and across machines. Hardware test
// harnesses use this to pin the exact synthesis output: a change to the
// oscillator, the envelope or the sample encoder shows up as a changed
// digest.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the working buffer isn't really important. that said, it
// needs to be at least sha1.Size bytes in length.
const bufferLength = 1024 + sha1.Size

// to allow digests of streams longer than the working buffer, the previous
// digest value is stuffed into the first part of the buffer and included in
// the next digest round.
const bufferStart = sha1.Size

// PCM accumulates a rolling SHA-1 digest over a stream of PCM bytes.
// Implements the io.Writer interface.
type PCM struct {
	buffer   []byte
	bufferCt int
}

// NewPCM is the preferred method of initialisation for the PCM type.
func NewPCM() *PCM {
	dig := &PCM{
		buffer:   make([]byte, bufferLength),
		bufferCt: bufferStart,
	}
	return dig
}

// Write adds a chunk of the PCM stream to the digest. Implements the
// io.Writer interface. It never returns an error.
func (dig *PCM) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		ct := copy(dig.buffer[dig.bufferCt:], p)
		dig.bufferCt += ct
		p = p[ct:]

		if dig.bufferCt >= bufferLength {
			dig.fold()
		}
	}
	return n, nil
}

// fold the full working buffer into a digest value and place the value at
// the front of the buffer, ready for the next round.
func (dig *PCM) fold() {
	d := sha1.Sum(dig.buffer)
	copy(dig.buffer[:bufferStart], d[:])
	dig.bufferCt = bufferStart
}

// Sum returns the digest of everything written so far, as a hex string. It
// does not disturb the rolling state; more bytes can be written afterwards.
func (dig *PCM) Sum() string {
	return fmt.Sprintf("%x", sha1.Sum(dig.buffer[:dig.bufferCt]))
}
