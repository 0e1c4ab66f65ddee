package spinner

import (
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI upload spinner.
func StartSpinner() {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " Uploading release artifacts..."
	loader.Start()
}

// StopSpinner stops the CLI upload spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
	}
}
