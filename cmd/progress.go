package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// withProgress runs fn behind a terminal spinner on stderr. The spinner is
// suppressed with --quiet and whenever stderr is not a terminal, so piped
// and scripted invocations stay clean.
func withProgress(message string, fn func() error) error {
	if rootQuiet || !stderrIsTerminal() {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr
	s.Start()
	defer s.Stop()

	return fn()
}

func stderrIsTerminal() bool {
	info, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
