package auth

import (
	"fmt"
	"log"

	shared "xiaoyuan-cli/shared"
	"xiaoyuan-cli/types"
)

// Bootstrap hydrates the session from disk at startup. With no persisted
// token it settles on Anonymous without issuing any network call. With a
// token it fetches the authoritative profile; any failure there degrades to
// Anonymous. Bootstrap never returns an error.
func Bootstrap() {
	state = StateBootstrapping

	session, err := loadSession()
	if err != nil {
		log.Printf("error loading session, starting anonymous: %v\n", err)
		clearSession()
		state = StateAnonymous
		return
	}

	if session == nil || session.Token == "" {
		Current = nil
		state = StateAnonymous
		return
	}

	Current = session
	RefreshUser()
}

// SignIn authenticates against the server. On success the returned token
// (and any embedded user snapshot) is persisted, then the profile is
// refreshed wholesale. On failure the error propagates and session state is
// left untouched.
func SignIn(username, password string) *shared.ApiError {
	if apiClient == nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "api client not set"}
	}

	res, apiErr := apiClient.SignIn(shared.SignInRequest{
		Username: username,
		Password: password,
	})
	if apiErr != nil {
		return apiErr
	}

	if res.Token == "" {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "sign in response contained no token"}
	}

	if err := setSession(&types.ClientSession{Token: res.Token, User: res.User}); err != nil {
		log.Printf("error persisting session: %v\n", err)
	}
	state = StateAuthenticated

	RefreshUser()
	return nil
}

// Register creates an account. When the server issues a session token right
// away the same persistence path as SignIn applies.
func Register(req shared.RegisterRequest) *shared.ApiError {
	if apiClient == nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "api client not set"}
	}

	res, apiErr := apiClient.Register(req)
	if apiErr != nil {
		return apiErr
	}

	if res.Token == "" {
		// account created, session deferred (e.g. email confirmation first)
		return nil
	}

	if err := setSession(&types.ClientSession{Token: res.Token, User: res.User}); err != nil {
		log.Printf("error persisting session: %v\n", err)
	}
	state = StateAuthenticated

	RefreshUser()
	return nil
}

// RefreshUser replaces the cached user profile wholesale. On any failure --
// network error or rejected token -- it clears token and user together, so
// a stale token self-heals to a logged-out state. It never propagates an
// error; callers observe the resulting state.
func RefreshUser() {
	if Current == nil || Current.Token == "" {
		clearSession()
		state = StateAnonymous
		return
	}

	if apiClient == nil {
		log.Println("error refreshing user: api client not set")
		clearSession()
		state = StateAnonymous
		return
	}

	user, apiErr := apiClient.GetCurrentUser()
	if apiErr != nil {
		log.Printf("error refreshing user, clearing session: %v\n", apiErr.Msg)
		clearSession()
		state = StateAnonymous
		return
	}

	// same token unless the server issued a new one via RefreshInvalidToken
	Current.User = user
	if err := writeCurrentSession(); err != nil {
		log.Printf("error persisting session: %v\n", err)
	}
	state = StateAuthenticated
}

// SignOut clears the session synchronously. No network call. Idempotent.
func SignOut() {
	if Current == nil && state == StateAnonymous {
		return
	}

	clearSession()
	state = StateAnonymous
}

// RefreshInvalidToken exchanges a rejected token for a fresh one. When the
// exchange itself fails the session is cleared so the next call lands in a
// clean Anonymous state.
func RefreshInvalidToken() error {
	if Current == nil || Current.Token == "" {
		return fmt.Errorf("error refreshing token: no session")
	}

	res, apiErr := apiClient.RefreshToken()
	if apiErr != nil {
		clearSession()
		state = StateAnonymous
		return fmt.Errorf("error refreshing token: %v", apiErr.Msg)
	}

	Current.Token = res.Token
	if err := writeCurrentSession(); err != nil {
		return fmt.Errorf("error persisting refreshed session: %v", err)
	}

	return nil
}

func GetUser() *shared.User {
	if Current == nil {
		return nil
	}
	return Current.User
}
