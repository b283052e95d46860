package lib

import (
	"sort"
	"strings"

	"xiaoyuan-cli/api"
	shared "xiaoyuan-cli/shared"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter selects at most one dimension at a time: setting a category clears
// any free-text query and vice versa.
type Filter struct {
	Query    string
	Category string
}

func (f *Filter) SetQuery(q string) {
	f.Query = strings.TrimSpace(q)
	f.Category = ""
}

func (f *Filter) SetCategory(c string) {
	f.Category = strings.TrimSpace(c)
	f.Query = ""
}

func (f *Filter) Clear() {
	f.Query = ""
	f.Category = ""
}

// Listing distinguishes "not loaded yet" from an explicit empty result.
type Listing struct {
	Posts  []*shared.Post
	Loaded bool
}

func (l *Listing) Empty() bool {
	return l.Loaded && len(l.Posts) == 0
}

// FetchPosts resolves the filter to the right endpoint: category filters go
// to /posts, free text goes to /search with the results fuzzy-ranked
// client-side. Counts and ratios come back server-computed; nothing is
// recomputed here.
func FetchPosts(filter Filter) (*Listing, *shared.ApiError) {
	var posts []*shared.Post
	var apiErr *shared.ApiError

	switch {
	case filter.Category != "":
		posts, apiErr = api.Client.ListPosts(shared.ListPostsParams{Category: filter.Category})
	case filter.Query != "":
		posts, apiErr = api.Client.SearchPosts(shared.SearchParams{Query: filter.Query})
		if apiErr == nil {
			posts = rankByQuery(filter.Query, posts)
		}
	default:
		posts, apiErr = api.Client.ListPosts(shared.ListPostsParams{})
	}

	if apiErr != nil {
		return nil, apiErr
	}

	return &Listing{Posts: posts, Loaded: true}, nil
}

// rankByQuery orders title matches first by fuzzy distance, then keeps the
// server's order for the rest (content-only matches the titles don't show).
func rankByQuery(query string, posts []*shared.Post) []*shared.Post {
	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	ranked := make([]*shared.Post, 0, len(posts))
	seen := make(map[int]bool, len(ranks))

	for _, r := range ranks {
		ranked = append(ranked, posts[r.OriginalIndex])
		seen[r.OriginalIndex] = true
	}

	for i, p := range posts {
		if !seen[i] {
			ranked = append(ranked, p)
		}
	}

	return ranked
}
