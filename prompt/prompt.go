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

// Package prompt wraps "github.com/pkg/term/termios" to wait for a single
// keypress between tones. Hardware audio tests are often run by a person with
// a meter or a pair of headphones, who wants the next tone only when they are
// ready for it.
package prompt

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"github.com/rhesby/tonegen/curated"
	"golang.org/x/sys/unix"
)

// WaitKey prints the message and blocks until a single key is pressed. The
// terminal is placed into cbreak mode for the duration, so no return key is
// needed, and is restored before the function returns.
func WaitKey(msg string) error {
	fd := os.Stdin.Fd()

	var canAttr unix.Termios
	err := termios.Tcgetattr(fd, &canAttr)
	if err != nil {
		return curated.Errorf("prompt: %v", err)
	}

	cbreakAttr := canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	err = termios.Tcsetattr(fd, termios.TCSANOW, &cbreakAttr)
	if err != nil {
		return curated.Errorf("prompt: %v", err)
	}
	defer termios.Tcsetattr(fd, termios.TCSANOW, &canAttr)

	fmt.Print(msg)

	k := make([]byte, 1)
	_, err = os.Stdin.Read(k)
	if err != nil {
		return curated.Errorf("prompt: %v", err)
	}
	fmt.Println()

	return nil
}
