package cmd

import (
	"fmt"
	"strings"

	"xiaoyuan-cli/lib"
	"xiaoyuan-cli/term"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:     "search [query...]",
	Aliases: []string{"se"},
	Short:   "Search posts by free text",
	Args:    cobra.MinimumNArgs(1),
	Run:     search,
}

func init() {
	RootCmd.AddCommand(searchCmd)
}

func search(cmd *cobra.Command, args []string) {
	resolveAuth()

	// free text and category are mutually exclusive filter dimensions, so a
	// search always starts from a clean filter
	var filter lib.Filter
	filter.SetQuery(strings.Join(args, " "))

	term.StartSpinner("")
	listing, apiErr := lib.FetchPosts(filter)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if listing.Empty() {
		fmt.Printf("🤷‍♂️ No posts matching '%s'\n", filter.Query)
		return
	}

	term.RenderPostsTable(listing.Posts)
}
