package api

import (
	"net"
	"net/http"
	"os"
	"time"

	"xiaoyuan-cli/auth"
	"xiaoyuan-cli/types"

	"github.com/google/uuid"
)

const dialTimeout = 10 * time.Second
const fastReqTimeout = 30 * time.Second
const uploadReqTimeout = 2 * time.Minute

type Api struct{}

var apiHost string

var Client types.ApiClient = (*Api)(nil)

func init() {
	if host := os.Getenv("XIAOYUAN_API_HOST"); host != "" {
		apiHost = host
	} else if os.Getenv("XIAOYUAN_ENV") == "development" {
		apiHost = "http://localhost:3000"
	} else {
		apiHost = "https://api.xiaoyuan.life"
	}
}

func GetApiHost() string {
	return apiHost
}

func getApiUrl(path string) string {
	return apiHost + "/api" + path
}

// authenticatedTransport executes a single HTTP transaction with the session
// token header and a request id for server-side log correlation
type authenticatedTransport struct {
	underlyingTransport http.RoundTripper
}

func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	auth.SetAuthHeader(req)
	req.Header.Set("X-Request-Id", uuid.NewString())
	return t.underlyingTransport.RoundTrip(req)
}

type requestIdTransport struct {
	underlyingTransport http.RoundTripper
}

func (t *requestIdTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Request-Id", uuid.NewString())
	return t.underlyingTransport.RoundTrip(req)
}

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

var unauthenticatedClient = &http.Client{
	Transport: &requestIdTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

var authenticatedFastClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: fastReqTimeout,
}

// longer timeout for multipart image uploads
var authenticatedUploadClient = &http.Client{
	Transport: &authenticatedTransport{
		underlyingTransport: &http.Transport{
			Dial: netDialer.Dial,
		},
	},
	Timeout: uploadReqTimeout,
}
