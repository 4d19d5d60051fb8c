package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Process exit statuses of the calc command.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // some expression did not evaluate
	ExitCommandError = 2 // the command could not run at all
)

// ExitError is an error from the command together with the status the
// process should exit with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// commandError marks err as preventing the command from running.
func commandError(msg string, err error) error {
	return &ExitError{Code: ExitCommandError, Message: msg, Err: err}
}

// ExitCode gives the exit status for an error returned by the calc command.
// Errors that carry no status mean an expression failed.
func ExitCode(err error) int {
	var ee *ExitError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ee):
		return ee.Code
	default:
		return ExitFailure
	}
}

// Result is the outcome of evaluating one expression.
type Result struct {
	Expression string `json:"expression"`
	Tree       string `json:"tree,omitempty"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
	Code       string `json:"code,omitempty"`
}

// OutputFormatter writes results as text or JSON lines.
type OutputFormatter struct {
	Format string
	Writer io.Writer
	Echo   bool
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Write outputs one result in the configured format.
func (f *OutputFormatter) Write(res Result) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(res)
	}
	if f.Echo && res.Tree != "" {
		if _, err := fmt.Fprintf(f.Writer, "%s : ", res.Tree); err != nil {
			return err
		}
	}
	if res.Error != "" {
		_, err := fmt.Fprintf(f.Writer, "error: %s\n", res.Error)
		return err
	}
	_, err := fmt.Fprintln(f.Writer, res.Result)
	return err
}
