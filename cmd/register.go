package cmd

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/lib"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const resendCooldown = 60 * time.Second

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Xiaoyuan account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	email, err := term.GetRequiredUserStringInput("Your email:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting email: %v", err)
	}
	if apiErr := shared.ValidateEmail(email); apiErr != nil {
		term.OutputErrorAndExit("%s", apiErr.Msg)
	}

	sendCode(email)

	// resend cooldown, disposed on every exit path
	var remainingSecs atomic.Int64
	startCooldown := func() *lib.Countdown {
		remainingSecs.Store(int64(resendCooldown / time.Second))
		return lib.StartCountdown(resendCooldown,
			func(remaining time.Duration) {
				remainingSecs.Store(int64(remaining / time.Second))
			},
			func() {
				remainingSecs.Store(0)
			})
	}

	cooldown := startCooldown()
	defer func() {
		cooldown.Dispose()
	}()

	var code string
	for {
		code, err = term.GetRequiredUserStringInput("6-digit code (or 'resend'):")
		if err != nil {
			term.OutputErrorAndExit("Error prompting code: %v", err)
		}

		if strings.EqualFold(code, "resend") {
			if secs := remainingSecs.Load(); secs > 0 {
				term.OutputSimpleError("Please wait %ds before resending", secs)
				continue
			}
			sendCode(email)
			cooldown.Dispose()
			cooldown = startCooldown()
			continue
		}

		if apiErr := shared.ValidateVerificationCode(code); apiErr != nil {
			term.OutputSimpleError("%s", apiErr.Msg)
			continue
		}

		break
	}

	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	confirmPassword, err := term.GetUserPasswordInput("Confirm password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password confirmation: %v", err)
	}

	answer, err := term.GetRequiredUserStringInput("Will you follow the forum rules? (yes/no):")
	if err != nil {
		term.OutputErrorAndExit("Error prompting answer: %v", err)
	}

	agreeTerms, err := term.ConfirmYesNo("Do you agree to the terms of service?")
	if err != nil {
		term.OutputErrorAndExit("Error prompting terms agreement: %v", err)
	}

	req := shared.RegisterRequest{
		Username:           username,
		Password:           password,
		ConfirmPassword:    confirmPassword,
		Email:              email,
		VerificationCode:   code,
		VerificationAnswer: answer,
		AgreeTerms:         agreeTerms,
	}

	// resolved locally -- an invalid form never reaches the network
	if apiErr := shared.ValidateRegisterRequest(req); apiErr != nil {
		term.OutputErrorAndExit("%s", apiErr.Msg)
	}

	term.StartSpinner("")
	apiErr := auth.Register(req)
	term.StopSpinner()

	if apiErr != nil {
		// form values were already echoed; state untouched, retry is safe
		term.OutputTransientError(apiErr)
		return
	}

	if auth.GetState() != auth.StateAuthenticated {
		fmt.Println("✅ Account created. Check your email to confirm it, then sign in.")
		term.PrintCmds("", "sign-in")
		return
	}

	user := auth.GetUser()
	fmt.Printf("✅ Registered and signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(user.Username))
	fmt.Println()
	fmt.Println("New accounts start unverified. Verify your student identity to create posts.")
	term.PrintCmds("", "verify", "posts")
}

func sendCode(email string) {
	term.StartSpinner("")
	res, apiErr := api.Client.SendVerificationCode(email)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error sending verification code: %v", apiErr.Msg)
	}

	msg := res.Message
	if msg == "" {
		msg = "You'll receive a 6-digit code by email."
	}
	fmt.Println("✉️  " + msg)
}
