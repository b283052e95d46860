package cmd

import (
	"errors"
	"fmt"

	"xiaoyuan-cli/guard"
	"xiaoyuan-cli/lib"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:     "evaluate [post-id] [like|neutral|dislike]",
	Aliases: []string{"ev"},
	Short:   "Like, neutral, or dislike a post",
	Args:    cobra.ExactArgs(2),
	Run:     evaluate,
}

func init() {
	RootCmd.AddCommand(evaluateCmd)
}

func evaluate(cmd *cobra.Command, args []string) {
	mustAllow(guard.RequiresUser)

	postId := args[0]
	evalType := shared.EvaluationType(args[1])

	term.StartSpinner("")
	post, err := lib.Evaluate(postId, evalType)
	term.StopSpinner()

	if err != nil {
		if errors.Is(err, lib.ErrLoginRequired) {
			term.OutputSimpleError("%s", err.Error())
			term.PrintCmds("", "sign-in")
			return
		}

		var apiErr *shared.ApiError
		if errors.As(err, &apiErr) {
			if apiErr.Type == shared.ApiErrorTypeValidation {
				term.OutputErrorAndExit("%s", apiErr.Msg)
			}
			// transient -- nothing was changed locally, retry is safe
			term.OutputTransientError(apiErr)
			return
		}

		term.OutputErrorAndExit("Error evaluating post: %v", err)
	}

	fmt.Printf("✅ Recorded your %s\n", color.New(color.Bold).Sprint(string(evalType)))

	if post != nil {
		fmt.Println()
		term.RenderPostDetail(post, nil)
	}
}
