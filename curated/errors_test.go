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

package curated_test

import (
	"errors"
	"testing"

	"github.com/rhesby/tonegen/curated"
	"github.com/rhesby/tonegen/test"
)

func TestCurated(t *testing.T) {
	const pattern = "playback: %v"

	e := curated.Errorf(pattern, "no such device")
	test.ExpectEquality(t, e.Error(), "playback: no such device")
	test.ExpectEquality(t, curated.IsAny(e), true)
	test.ExpectEquality(t, curated.Is(e, pattern), true)
	test.ExpectEquality(t, curated.Is(e, "some other pattern: %v"), false)

	// uncurated errors are not recognised
	f := errors.New("playback: no such device")
	test.ExpectEquality(t, curated.IsAny(f), false)
	test.ExpectEquality(t, curated.Is(f, pattern), false)
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed when the error message is formatted
	e := curated.Errorf("scale generator: %v", curated.Errorf("scale generator: %v", "out of frames"))
	test.ExpectEquality(t, e.Error(), "scale generator: out of frames")
}

func TestHas(t *testing.T) {
	const inner = "oscillator: %v"
	const outer = "tone generator: %v"

	e := curated.Errorf(inner, "bad frequency")
	f := curated.Errorf(outer, e)

	test.ExpectEquality(t, curated.Is(f, inner), false)
	test.ExpectEquality(t, curated.Has(f, inner), true)
	test.ExpectEquality(t, curated.Has(f, outer), true)
	test.ExpectEquality(t, curated.Has(e, outer), false)
}
