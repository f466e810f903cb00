package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PromptIndex asks the user for a 1-based row number after a table render.
// It reads a single line: empty input (or EOF, e.g. an interrupted pipe)
// means "skip" and is not an error; anything else must parse as an integer
// within [1, count]. There is deliberately no re-prompt loop: one bad
// input is one error, and the command exits non-zero.
//
// The returned index is 1-based; the boolean reports whether a selection
// was made.
func PromptIndex(in io.Reader, out io.Writer, prompt string, count int) (int, bool, error) {
	fmt.Fprint(out, prompt)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF before any input behaves like pressing Enter.
		return 0, false, nil
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return 0, false, nil
	}

	index, err := strconv.Atoi(input)
	if err != nil {
		return 0, false, fmt.Errorf("invalid number %q", input)
	}
	if index < 1 || index > count {
		return 0, false, fmt.Errorf("number must be between 1 and %d", count)
	}
	return index, true, nil
}
