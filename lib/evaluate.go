package lib

import (
	"errors"
	"fmt"
	"log"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/guard"
	shared "xiaoyuan-cli/shared"
)

// ErrLoginRequired means the evaluation was aborted client-side before any
// request was issued. This saves a round-trip; the server still rejects
// unauthenticated writes on its own.
var ErrLoginRequired = errors.New("please sign in to evaluate posts")

// Evaluate submits a like/neutral/dislike for a post and returns a freshly
// refetched snapshot of it. Displayed counts always come from the server,
// never from a local increment.
func Evaluate(postId string, evalType shared.EvaluationType) (*shared.Post, error) {
	if !evalType.IsValid() {
		return nil, &shared.ApiError{
			Type: shared.ApiErrorTypeValidation,
			Msg:  fmt.Sprintf("invalid evaluation type %q", evalType),
		}
	}

	decision := guard.Check(guard.CurrentSnapshot(), guard.RequiresUser)
	if decision.Kind != guard.Allow {
		return nil, ErrLoginRequired
	}

	if _, apiErr := api.Client.EvaluatePost(postId, evalType); apiErr != nil {
		return nil, apiErr
	}

	post, apiErr := api.Client.GetPost(postId)
	if apiErr != nil {
		// the evaluation itself succeeded; the stale view just stays as-is
		log.Printf("error refetching post %s after evaluation: %v\n", postId, apiErr.Msg)
		return nil, nil
	}

	return post, nil
}
