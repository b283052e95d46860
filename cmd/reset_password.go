package cmd

import (
	"fmt"

	"xiaoyuan-cli/api"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/term"

	"github.com/spf13/cobra"
)

var resetRequestOnly bool

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Request or complete a password reset",
	Args:  cobra.NoArgs,
	Run:   resetPassword,
}

func init() {
	RootCmd.AddCommand(resetPasswordCmd)

	resetPasswordCmd.Flags().BoolVar(&resetRequestOnly, "request", false, "Only request the reset email, don't complete the reset")
}

func resetPassword(cmd *cobra.Command, args []string) {
	email, err := term.GetRequiredUserStringInput("Your email:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting email: %v", err)
	}
	if apiErr := shared.ValidateEmail(email); apiErr != nil {
		term.OutputErrorAndExit("%s", apiErr.Msg)
	}

	term.StartSpinner("")
	_, apiErr := api.Client.RequestPasswordReset(email)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputTransientError(apiErr)
		return
	}

	fmt.Println("✉️  Check your email for a reset token.")

	if resetRequestOnly {
		return
	}

	token, err := term.GetRequiredUserStringInput("Reset token:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting token: %v", err)
	}

	newPassword, err := term.GetUserPasswordInput("New password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}
	if apiErr := shared.ValidatePassword(newPassword); apiErr != nil {
		term.OutputErrorAndExit("%s", apiErr.Msg)
	}

	term.StartSpinner("")
	_, apiErr = api.Client.ResetPassword(shared.ResetPasswordRequest{
		Token:       token,
		NewPassword: newPassword,
	})
	term.StopSpinner()

	if apiErr != nil {
		term.OutputTransientError(apiErr)
		return
	}

	fmt.Println("✅ Password reset")
	term.PrintCmds("", "sign-in")
}
