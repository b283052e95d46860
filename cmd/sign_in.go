package cmd

import (
	"fmt"

	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to a Xiaoyuan account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)
}

func signIn(cmd *cobra.Command, args []string) {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	term.StartSpinner("")
	apiErr := auth.SignIn(username, password)
	term.StopSpinner()

	if apiErr != nil {
		// credentials stay intact for a retry -- nothing was persisted
		term.OutputTransientError(apiErr)
		return
	}

	if auth.GetState() != auth.StateAuthenticated {
		term.OutputErrorAndExit("Signed in, but the session could not be established — please try again")
	}

	user := auth.GetUser()
	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(user.Username))

	if !user.IsVerified {
		fmt.Println()
		fmt.Println("Your student identity isn't verified yet. Verified users can create posts.")
		term.PrintCmds("", "verify")
	}
}
