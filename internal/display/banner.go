package display

import (
	"fmt"
	"os"

	"github.com/backmassage/capsheet/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Magenta != "" {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `  ___              ___ _            _
 / __|__ _ _ __   / __| |_  ___ ___| |_
| (__/ _`+"`"+` | '_ \  \__ \ ' \/ -_) -_)  _|
 \___\__,_| .__/  |___/_||_\___\___|\__|
          |_|
`)
	if term.Magenta != "" {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
