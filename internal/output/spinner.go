package output

import (
	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs fn while displaying a spinner with the given
// title. When stdout is not a terminal the spinner is skipped and fn
// runs directly, so piped output stays clean.
func RunWithSpinner(title string, fn func() error) error {
	if !IsTTY() {
		return fn()
	}

	errCh := make(chan error, 1)
	if err := spinner.New().
		Title(title).
		Action(func() { errCh <- fn() }).
		Run(); err != nil {
		return err
	}
	return <-errCh
}
