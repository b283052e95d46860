package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"xiaoyuan-cli/fs"
	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient satisfies types.ApiClient through embedding; only the methods a
// test exercises are overridden, anything else panics loudly.
type stubClient struct {
	types.ApiClient

	signInFn         func(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)
	registerFn       func(req shared.RegisterRequest) (*shared.SessionResponse, *shared.ApiError)
	getCurrentUserFn func() (*shared.User, *shared.ApiError)
	refreshTokenFn   func() (*shared.RefreshTokenResponse, *shared.ApiError)

	calls int
}

func (s *stubClient) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	s.calls++
	return s.signInFn(req)
}

func (s *stubClient) Register(req shared.RegisterRequest) (*shared.SessionResponse, *shared.ApiError) {
	s.calls++
	return s.registerFn(req)
}

func (s *stubClient) GetCurrentUser() (*shared.User, *shared.ApiError) {
	s.calls++
	return s.getCurrentUserFn()
}

func (s *stubClient) RefreshToken() (*shared.RefreshTokenResponse, *shared.ApiError) {
	s.calls++
	return s.refreshTokenFn()
}

func setupAuthTest(t *testing.T, stub *stubClient) {
	t.Helper()

	dir := t.TempDir()
	origPath := fs.HomeSessionPath
	fs.HomeSessionPath = filepath.Join(dir, "session.json")

	origClient := apiClient
	apiClient = stub

	Current = nil
	state = StateBootstrapping

	t.Cleanup(func() {
		fs.HomeSessionPath = origPath
		apiClient = origClient
		Current = nil
		state = StateBootstrapping
	})
}

func writeSessionFile(t *testing.T, session types.ClientSession) {
	t.Helper()
	bytes, err := json.Marshal(session)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fs.HomeSessionPath, bytes, 0600))
}

func sessionFileExists(t *testing.T) bool {
	t.Helper()
	_, err := os.Stat(fs.HomeSessionPath)
	if err == nil {
		return true
	}
	require.True(t, os.IsNotExist(err))
	return false
}

func testUser() *shared.User {
	return &shared.User{
		Id:         "u1",
		Username:   "alice01",
		Email:      "alice@example.edu",
		Reputation: 10,
	}
}

func TestBootstrapNoToken(t *testing.T) {
	stub := &stubClient{}
	setupAuthTest(t, stub)

	Bootstrap()

	assert.Equal(t, StateAnonymous, GetState())
	assert.Nil(t, Current)
	assert.Zero(t, stub.calls, "bootstrap without a token must issue no network calls")
}

func TestBootstrapStaleToken(t *testing.T) {
	stub := &stubClient{
		getCurrentUserFn: func() (*shared.User, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeInvalidToken, Status: 401, Msg: "token expired"}
		},
	}
	setupAuthTest(t, stub)
	writeSessionFile(t, types.ClientSession{Token: "stale-token", User: testUser()})

	Bootstrap()

	assert.Equal(t, StateAnonymous, GetState())
	assert.Nil(t, Current)
	assert.False(t, sessionFileExists(t), "token and user must be cleared together")
}

func TestBootstrapValidToken(t *testing.T) {
	stub := &stubClient{
		getCurrentUserFn: func() (*shared.User, *shared.ApiError) {
			return testUser(), nil
		},
	}
	setupAuthTest(t, stub)
	writeSessionFile(t, types.ClientSession{Token: "good-token"})

	Bootstrap()

	require.Equal(t, StateAuthenticated, GetState())
	require.NotNil(t, Current)
	assert.Equal(t, "good-token", Current.Token)
	assert.Equal(t, "alice01", Current.User.Username)
}

func TestSignInThenSignOut(t *testing.T) {
	stub := &stubClient{
		signInFn: func(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{Token: "fresh-token", User: testUser()}, nil
		},
		getCurrentUserFn: func() (*shared.User, *shared.ApiError) {
			return testUser(), nil
		},
	}
	setupAuthTest(t, stub)
	state = StateAnonymous

	apiErr := SignIn("alice01", "Password1")
	require.Nil(t, apiErr)
	require.Equal(t, StateAuthenticated, GetState())
	assert.True(t, sessionFileExists(t))

	SignOut()

	assert.Equal(t, StateAnonymous, GetState())
	assert.Nil(t, Current)
	assert.False(t, sessionFileExists(t))

	// idempotent
	SignOut()
	assert.Equal(t, StateAnonymous, GetState())
}

func TestSignInFailureLeavesStateUnchanged(t *testing.T) {
	stub := &stubClient{
		signInFn: func(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: 400, Msg: "wrong password"}
		},
	}
	setupAuthTest(t, stub)
	state = StateAnonymous

	apiErr := SignIn("alice01", "nope")

	require.NotNil(t, apiErr)
	assert.Equal(t, "wrong password", apiErr.Msg)
	assert.Equal(t, StateAnonymous, GetState())
	assert.Nil(t, Current)
	assert.False(t, sessionFileExists(t))
}

func TestRefreshUserReplacesProfileWholesale(t *testing.T) {
	updated := testUser()
	updated.Reputation = 42
	updated.IsVerified = true

	stub := &stubClient{
		getCurrentUserFn: func() (*shared.User, *shared.ApiError) {
			return updated, nil
		},
	}
	setupAuthTest(t, stub)

	Current = &types.ClientSession{Token: "good-token", User: testUser()}
	state = StateAuthenticated

	RefreshUser()

	require.Equal(t, StateAuthenticated, GetState())
	assert.Equal(t, "good-token", Current.Token, "repeated refresh must preserve the token")
	assert.Equal(t, 42, Current.User.Reputation)
	assert.True(t, Current.User.IsVerified)

	RefreshUser()
	assert.Equal(t, "good-token", Current.Token)
}

func TestRefreshUserFailureSelfHeals(t *testing.T) {
	stub := &stubClient{
		getCurrentUserFn: func() (*shared.User, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeNetwork, Msg: "connection refused"}
		},
	}
	setupAuthTest(t, stub)
	writeSessionFile(t, types.ClientSession{Token: "good-token", User: testUser()})

	Current = &types.ClientSession{Token: "good-token", User: testUser()}
	state = StateAuthenticated

	RefreshUser()

	assert.Equal(t, StateAnonymous, GetState())
	assert.Nil(t, Current)
	assert.False(t, sessionFileExists(t))
}

func TestRegisterStartsUnverified(t *testing.T) {
	newUser := testUser()
	newUser.IsVerified = false

	stub := &stubClient{
		registerFn: func(req shared.RegisterRequest) (*shared.SessionResponse, *shared.ApiError) {
			return &shared.SessionResponse{Token: "new-token", User: newUser}, nil
		},
		getCurrentUserFn: func() (*shared.User, *shared.ApiError) {
			return newUser, nil
		},
	}
	setupAuthTest(t, stub)
	state = StateAnonymous

	apiErr := Register(shared.RegisterRequest{
		Username:           "alice01",
		Password:           "Password1",
		ConfirmPassword:    "Password1",
		Email:              "alice@example.edu",
		VerificationCode:   "123456",
		VerificationAnswer: "yes",
		AgreeTerms:         true,
	})

	require.Nil(t, apiErr)
	require.Equal(t, StateAuthenticated, GetState())
	assert.False(t, GetUser().IsVerified)
}

func TestRefreshInvalidTokenSwapsToken(t *testing.T) {
	stub := &stubClient{
		refreshTokenFn: func() (*shared.RefreshTokenResponse, *shared.ApiError) {
			return &shared.RefreshTokenResponse{Token: "rotated-token"}, nil
		},
	}
	setupAuthTest(t, stub)

	Current = &types.ClientSession{Token: "old-token", User: testUser()}
	state = StateAuthenticated

	require.NoError(t, RefreshInvalidToken())
	assert.Equal(t, "rotated-token", Current.Token)
	assert.Equal(t, StateAuthenticated, GetState())
}

func TestRefreshInvalidTokenFailureClearsSession(t *testing.T) {
	stub := &stubClient{
		refreshTokenFn: func() (*shared.RefreshTokenResponse, *shared.ApiError) {
			return nil, &shared.ApiError{Type: shared.ApiErrorTypeInvalidToken, Status: 401, Msg: "refresh rejected"}
		},
	}
	setupAuthTest(t, stub)
	writeSessionFile(t, types.ClientSession{Token: "old-token"})

	Current = &types.ClientSession{Token: "old-token"}
	state = StateAuthenticated

	require.Error(t, RefreshInvalidToken())
	assert.Equal(t, StateAnonymous, GetState())
	assert.Nil(t, Current)
	assert.False(t, sessionFileExists(t))
}
