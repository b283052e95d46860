package cmd

import (
	"fmt"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/term"

	"github.com/spf13/cobra"
)

var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email [token]",
	Short: "Confirm your email address with the token from the confirmation link",
	Args:  cobra.ExactArgs(1),
	Run:   verifyEmail,
}

func init() {
	RootCmd.AddCommand(verifyEmailCmd)
}

func verifyEmail(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	res, apiErr := api.Client.VerifyEmail(args[0])
	term.StopSpinner()

	if apiErr != nil {
		term.OutputTransientError(apiErr)
		return
	}

	msg := res.Message
	if msg == "" {
		msg = "Email confirmed"
	}
	fmt.Println("✅ " + msg)
	term.PrintCmds("", "sign-in")
}
