// Styled writes ANSI-styled text that adapts to the terminal.
package main

import (
	"os"

	"github.com/mdickopp/styled-output/internal/styled"
)

func main() {
	os.Exit(styled.Main())
}
