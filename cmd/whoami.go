package cmd

import (
	"fmt"

	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/guard"
	"xiaoyuan-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"wh"},
	Short:   "Show the signed-in user",
	Args:    cobra.NoArgs,
	Run:     whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	mustAllow(guard.RequiresUser)

	user := auth.GetUser()

	fmt.Printf("%s <%s>\n", color.New(color.Bold, term.ColorHiGreen).Sprint(user.Username), user.Email)
	fmt.Printf("Reputation: %d\n", user.Reputation)

	if user.IsVerified {
		color.New(term.ColorHiGreen).Println("Student identity: verified")
	} else {
		color.New(term.ColorHiYellow).Println("Student identity: not verified")
		term.PrintCmds("", "verify")
	}

	if user.ViolationCount > 0 {
		color.New(term.ColorHiRed).Printf("Violations: %d\n", user.ViolationCount)
	}
}
