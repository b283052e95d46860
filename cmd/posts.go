package cmd

import (
	"fmt"

	"xiaoyuan-cli/lib"
	"xiaoyuan-cli/term"

	"github.com/spf13/cobra"
)

var postsCategory string

var postsCmd = &cobra.Command{
	Use:     "posts",
	Aliases: []string{"ps"},
	Short:   "Browse posts, optionally by category",
	Args:    cobra.NoArgs,
	Run:     posts,
}

func init() {
	RootCmd.AddCommand(postsCmd)

	postsCmd.Flags().StringVarP(&postsCategory, "category", "c", "", "Only show posts in this category")
}

func posts(cmd *cobra.Command, args []string) {
	resolveAuth()

	var filter lib.Filter
	if postsCategory != "" {
		filter.SetCategory(postsCategory)
	}

	term.StartSpinner("")
	listing, apiErr := lib.FetchPosts(filter)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if listing.Empty() {
		if filter.Category != "" {
			fmt.Printf("🤷‍♂️ No posts in category '%s'\n", filter.Category)
		} else {
			fmt.Println("🤷‍♂️ No posts yet")
		}
		return
	}

	term.RenderPostsTable(listing.Posts)

	fmt.Println()
	term.PrintCmds("", "show", "evaluate", "search")
}
