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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Program modes are specified with AddSubModes() before the call to Parse().
// The main() function of this project is the canonical example:
//
//	md.AddSubModes("PLAY", "SCALE", "WAV", "VERSION")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "PLAY":
//		...
//	}
//
// Each mode can then declare its own flags with NewMode() followed by the
// AddBool(), AddString(), AddInt() and AddFloat64() functions, and a further
// call to Parse(). The flag functions return a pointer to a variable of the
// specified type; the Parse() function sets these values according to what
// the user has requested.
//
// Non-flag arguments that remain after parsing can be retrieved with the
// RemainingArgs() or GetArg() functions.
package modalflag
