package term

import (
	"fmt"
	"os"

	shared "xiaoyuan-cli/shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

// HandleApiError renders a fatal API error. Invalid-token errors get a hint
// to sign in again instead of the raw server message.
func HandleApiError(apiErr *shared.ApiError) {
	StopSpinner()

	if apiErr.IsAuthError() {
		fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 Your session has expired"))
		fmt.Fprintln(os.Stderr, "Run 'xiaoyuan sign-in' to sign in again")
		os.Exit(1)
	}

	msg := apiErr.Msg
	if msg == "" {
		msg = "something went wrong"
	}

	OutputErrorAndExit("%s", msg)
}

// OutputTransientError is for non-fatal failures of user-initiated writes:
// surface the server message when there is one, leave state intact for retry.
func OutputTransientError(apiErr *shared.ApiError) {
	msg := apiErr.Msg
	if msg == "" {
		msg = "something went wrong — please try again"
	}
	OutputSimpleError("%s", msg)
}
