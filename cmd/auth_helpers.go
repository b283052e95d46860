package cmd

import (
	"fmt"
	"os"

	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/guard"
	"xiaoyuan-cli/term"
)

// mustAllow bootstraps the session, then gates the command on the guard
// decision. Redirect decisions print the entry command and exit -- the
// guard itself stays a pure read.
func mustAllow(req guard.Requirement) {
	term.StartSpinner("")
	auth.Bootstrap()
	term.StopSpinner()

	decision := guard.Check(guard.CurrentSnapshot(), req)

	switch decision.Kind {
	case guard.Allow:
		return

	case guard.Redirect:
		switch decision.Target {
		case guard.TargetSignIn:
			term.OutputSimpleError("You need to be signed in for this")
			fmt.Println()
			term.PrintCmds("", "sign-in", "register")
		case guard.TargetVerifyStudent:
			term.OutputSimpleError("You need to verify your student identity for this")
			fmt.Println()
			term.PrintCmds("", "verify")
		}
		os.Exit(1)

	default:
		// Bootstrap always resolves before returning, so Pending can't
		// reach a command
		term.OutputErrorAndExit("auth state still pending")
	}
}

// resolveAuth bootstraps without gating, for commands that only branch on
// whether a user is present.
func resolveAuth() {
	term.StartSpinner("")
	auth.Bootstrap()
	term.StopSpinner()
}
