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

// Package tones generates the PCM test waveforms that are pushed to an audio
// backend by one of the playback packages.
//
// Generation is fully deterministic. Two generators constructed with the same
// parameters and asked for frames in the same sequence will produce byte
// identical output. This property is what allows hardware test harnesses to
// pin the output with a digest (see the digest package).
//
// The two implementations of the FrameGenerator interface are the
// SingleToneGenerator, which produces one bounded sine tone with a fade
// envelope, and the ASharpMinorGenerator, which chains sixteen tones into an
// ascending and descending A-sharp harmonic minor scale.
package tones
