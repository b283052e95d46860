package cmd

import (
	"log"

	"xiaoyuan-cli/api"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/term"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [post-id]",
	Aliases: []string{"sh"},
	Short:   "Show a single post with its evaluation stats",
	Args:    cobra.ExactArgs(1),
	Run:     show,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) {
	resolveAuth()

	postId := args[0]

	term.StartSpinner("")
	post, apiErr := api.Client.GetPost(postId)

	var stats *shared.EvaluationStats
	if apiErr == nil {
		// stats are a non-critical read -- degrade to whatever the post
		// embeds when the call fails
		stats, _ = api.Client.GetEvaluationStats(postId)
		if stats == nil {
			log.Printf("no evaluation stats for post %s\n", postId)
		}
	}
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	term.RenderPostDetail(post, stats)
}
