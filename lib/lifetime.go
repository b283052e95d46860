package lib

import (
	"sync/atomic"

	shared "xiaoyuan-cli/shared"
)

// Lifetime is a liveness flag bound to a consuming view. A response that
// lands after the view is gone must be discarded, not applied.
type Lifetime struct {
	cancelled atomic.Bool
}

func NewLifetime() *Lifetime {
	return &Lifetime{}
}

func (l *Lifetime) Cancel() {
	l.cancelled.Store(true)
}

func (l *Lifetime) Alive() bool {
	return !l.cancelled.Load()
}

// FetchPostsLive fetches a listing and drops the result when the lifetime
// was cancelled while the request was in flight. A discarded response
// returns (nil, nil): not an error, just no longer relevant.
func FetchPostsLive(lt *Lifetime, filter Filter) (*Listing, *shared.ApiError) {
	listing, apiErr := FetchPosts(filter)

	if !lt.Alive() {
		return nil, nil
	}

	return listing, apiErr
}
