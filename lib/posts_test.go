package lib

import (
	"path/filepath"
	"testing"

	"xiaoyuan-cli/api"
	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/fs"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	types.ApiClient

	listPostsFn      func(params shared.ListPostsParams) ([]*shared.Post, *shared.ApiError)
	searchPostsFn    func(params shared.SearchParams) ([]*shared.Post, *shared.ApiError)
	evaluatePostFn   func(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError)
	getPostFn        func(postId string) (*shared.Post, *shared.ApiError)
	signInFn         func(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)
	getCurrentUserFn func() (*shared.User, *shared.ApiError)

	calls int
}

func (s *stubClient) ListPosts(params shared.ListPostsParams) ([]*shared.Post, *shared.ApiError) {
	s.calls++
	return s.listPostsFn(params)
}

func (s *stubClient) SearchPosts(params shared.SearchParams) ([]*shared.Post, *shared.ApiError) {
	s.calls++
	return s.searchPostsFn(params)
}

func (s *stubClient) EvaluatePost(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError) {
	s.calls++
	return s.evaluatePostFn(postId, evalType)
}

func (s *stubClient) GetPost(postId string) (*shared.Post, *shared.ApiError) {
	s.calls++
	return s.getPostFn(postId)
}

func (s *stubClient) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	s.calls++
	return s.signInFn(req)
}

func (s *stubClient) GetCurrentUser() (*shared.User, *shared.ApiError) {
	s.calls++
	return s.getCurrentUserFn()
}

func setupLibTest(t *testing.T, stub *stubClient) {
	t.Helper()

	origClient := api.Client
	api.Client = stub
	auth.SetApiClient(stub)

	origPath := fs.HomeSessionPath
	fs.HomeSessionPath = filepath.Join(t.TempDir(), "session.json")

	t.Cleanup(func() {
		api.Client = origClient
		auth.SetApiClient(origClient)
		fs.HomeSessionPath = origPath
		auth.SignOut()
	})
}

func signInForTest(t *testing.T, stub *stubClient) {
	t.Helper()

	user := &shared.User{Id: "u1", Username: "alice01", IsVerified: false}
	stub.signInFn = func(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
		return &shared.SessionResponse{Token: "t1", User: user}, nil
	}
	stub.getCurrentUserFn = func() (*shared.User, *shared.ApiError) {
		return user, nil
	}

	require.Nil(t, auth.SignIn("alice01", "Password1"))
	require.Equal(t, auth.StateAuthenticated, auth.GetState())
	stub.calls = 0
}

func post(id, title string) *shared.Post {
	return &shared.Post{Id: id, Title: title, Category: "campus-life"}
}

func TestFilterMutualExclusion(t *testing.T) {
	var f Filter

	f.SetQuery("dining hall")
	assert.Equal(t, "dining hall", f.Query)
	assert.Empty(t, f.Category)

	f.SetCategory("study")
	assert.Equal(t, "study", f.Category)
	assert.Empty(t, f.Query, "selecting a category clears the free-text query")

	f.SetQuery("library")
	assert.Equal(t, "library", f.Query)
	assert.Empty(t, f.Category, "entering a query clears the category")
}

func TestFetchPostsByCategory(t *testing.T) {
	stub := &stubClient{
		listPostsFn: func(params shared.ListPostsParams) ([]*shared.Post, *shared.ApiError) {
			assert.Equal(t, "study", params.Category)
			return []*shared.Post{post("1", "Exam prep tips")}, nil
		},
	}
	setupLibTest(t, stub)

	var f Filter
	f.SetCategory("study")

	listing, apiErr := FetchPosts(f)

	require.Nil(t, apiErr)
	require.True(t, listing.Loaded)
	require.Len(t, listing.Posts, 1)
	assert.Equal(t, 1, stub.calls)
}

func TestFetchPostsEmptyIsExplicit(t *testing.T) {
	stub := &stubClient{
		listPostsFn: func(params shared.ListPostsParams) ([]*shared.Post, *shared.ApiError) {
			return nil, nil
		},
	}
	setupLibTest(t, stub)

	listing, apiErr := FetchPosts(Filter{})

	require.Nil(t, apiErr)
	assert.True(t, listing.Empty(), "an empty result is a loaded state, not a loading state")

	var unloaded Listing
	assert.False(t, unloaded.Empty(), "a listing that never loaded is not empty")
}

func TestFetchPostsQueryRanksTitleMatchesFirst(t *testing.T) {
	stub := &stubClient{
		searchPostsFn: func(params shared.SearchParams) ([]*shared.Post, *shared.ApiError) {
			assert.Equal(t, "dining", params.Query)
			return []*shared.Post{
				post("1", "Library quiet hours"),
				post("2", "Best dining hall on campus"),
				post("3", "Dining etiquette"),
			}, nil
		},
	}
	setupLibTest(t, stub)

	var f Filter
	f.SetQuery("dining")

	listing, apiErr := FetchPosts(f)

	require.Nil(t, apiErr)
	require.Len(t, listing.Posts, 3)

	// both title matches come before the content-only match, which keeps
	// its server position at the end
	assert.Equal(t, "1", listing.Posts[2].Id)
	ids := []string{listing.Posts[0].Id, listing.Posts[1].Id}
	assert.ElementsMatch(t, []string{"2", "3"}, ids)
}

func TestEvaluateAnonymousIssuesNoNetworkCall(t *testing.T) {
	stub := &stubClient{
		evaluatePostFn: func(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError) {
			t.Fatal("evaluation call must not be issued while anonymous")
			return nil, nil
		},
	}
	setupLibTest(t, stub)
	auth.SignOut()

	result, err := Evaluate("42", shared.EvaluationLike)

	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Nil(t, result)
	assert.Zero(t, stub.calls)
}

func TestEvaluateInvalidTypeNeverReachesNetwork(t *testing.T) {
	stub := &stubClient{}
	setupLibTest(t, stub)
	auth.SignOut()

	_, err := Evaluate("42", shared.EvaluationType("love"))

	var apiErr *shared.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Zero(t, stub.calls)
}

func TestEvaluateRefetchesInsteadOfIncrementing(t *testing.T) {
	refetched := post("42", "Best dining hall on campus")
	refetched.EvaluationStats = &shared.EvaluationStats{Total: 10, Likes: 7, Neutrals: 2, Dislikes: 1, LikeRatio: 0.7, DislikeRatio: 0.1}

	var evaluated, fetched bool
	stub := &stubClient{
		evaluatePostFn: func(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError) {
			evaluated = true
			assert.Equal(t, "42", postId)
			assert.Equal(t, shared.EvaluationLike, evalType)
			return &shared.OkResponse{Ok: true}, nil
		},
		getPostFn: func(postId string) (*shared.Post, *shared.ApiError) {
			fetched = true
			return refetched, nil
		},
	}
	setupLibTest(t, stub)
	signInForTest(t, stub)

	result, err := Evaluate("42", shared.EvaluationLike)

	require.NoError(t, err)
	require.True(t, evaluated)
	require.True(t, fetched, "counts must come from a refetch, not a local increment")
	require.NotNil(t, result)
	assert.Equal(t, 7, result.EvaluationStats.Likes, "displayed likes match the server value exactly")
}

func TestEvaluateFailureLeavesNothingToRollBack(t *testing.T) {
	stub := &stubClient{
		evaluatePostFn: func(postId string, evalType shared.EvaluationType) (*shared.OkResponse, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 500, Msg: "server exploded"}
		},
		getPostFn: func(postId string) (*shared.Post, *shared.ApiError) {
			t.Fatal("no refetch after a failed evaluation")
			return nil, nil
		},
	}
	setupLibTest(t, stub)
	signInForTest(t, stub)

	result, err := Evaluate("42", shared.EvaluationDislike)

	require.Error(t, err)
	assert.Nil(t, result)
}
