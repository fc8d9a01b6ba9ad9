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

package tones

import "math"

// Oscillator is a phase-accumulating sine generator.
//
// The phase accumulator is never reset by the Next() function and, crucially,
// is also left alone by SingleToneGenerator.Reset(). Successive tones issued
// from the same generator therefore remain phase-continuous, avoiding
// discontinuity clicks when chaining notes.
//
// The zero value is ready to use.
type Oscillator struct {
	// phase increases monotonically and without bound. float64 has more than
	// enough precision for the tone lengths this program deals in
	phase float64
}

// Next advances the phase accumulator and returns the next sine sample.
//
// Varying sampleRate between calls is permitted but produces a frequency
// glitch at the boundary. Callers should treat the sample rate as fixed for
// the lifetime of the oscillator.
func (osc *Oscillator) Next(sampleRate float64, frequency float64) float64 {
	osc.phase += 2.0 * math.Pi * frequency / sampleRate
	return math.Sin(osc.phase)
}
