package cmd

import (
	"fmt"

	"xiaoyuan-cli/auth"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:     "sign-out",
	Aliases: []string{"logout"},
	Short:   "Sign out and clear the local session",
	Args:    cobra.NoArgs,
	Run:     signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	// no bootstrap needed -- sign-out is synchronous and idempotent
	auth.SignOut()
	fmt.Println("✅ Signed out")
}
