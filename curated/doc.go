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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error thereafter.
//
// The playback package uses a const string for the patterns of the errors
// the streaming clients return. For example:
//
//	if c.state != playback.Ready {
//		return curated.Errorf(playback.NotReady, c.state)
//	}
//
// The Is() function can then be used to check whether an error was created
// with that pattern, and the Has() function whether the pattern occurs
// somewhere in the error chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors as they move up
// through the call chain.
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
package curated
