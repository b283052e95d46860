package auth

import (
	"net/http"

	"xiaoyuan-cli/types"
)

var apiClient types.ApiClient

// SetApiClient is called from main to break the auth <-> api import cycle.
func SetApiClient(client types.ApiClient) {
	apiClient = client
}

func SetAuthHeader(req *http.Request) {
	if Current == nil || Current.Token == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+Current.Token)
}
