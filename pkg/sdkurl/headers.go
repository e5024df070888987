package sdkurl

import (
	"fmt"
	"net/http"
	"net/url"
)

// Header names sent with every SDK backend request
const (
	HeaderAPIKey     = "X-API-KEY"
	HeaderAPIDomain  = "X-API-DOMAIN"
	HeaderSDKType    = "X-SDK-TYPE"
	HeaderSDKVersion = "X-SDK-VERSION"
)

// RequestHeaders describes the identity an SDK instance presents to the backend.
type RequestHeaders struct {
	AppKey      string
	Domain      string
	SDKType     string
	Version     string
	AccessToken string
}

// Header builds the default header set. Authorization is only set when an
// access token is present.
func (h RequestHeaders) Header() http.Header {
	hdr := make(http.Header, 6)
	hdr.Set("Content-Type", "application/json")
	hdr.Set(HeaderAPIKey, h.AppKey)
	hdr.Set(HeaderAPIDomain, h.Domain)
	hdr.Set(HeaderSDKType, h.SDKType)
	hdr.Set(HeaderSDKVersion, h.Version)
	if h.AccessToken != "" {
		hdr.Set("Authorization", "Bearer "+h.AccessToken)
	}
	return hdr
}

// Apply sets the default headers on req, replacing existing values.
func (h RequestHeaders) Apply(req *http.Request) {
	for k, v := range h.Header() {
		req.Header[k] = v
	}
}

// Endpoint joins an sdkBackend base URL with an endpoint path.
func Endpoint(base, path string) (string, error) {
	if err := checkBaseURL(base); err != nil {
		return "", err
	}
	joined, err := url.JoinPath(base, path)
	if err != nil {
		return "", fmt.Errorf("join %q with %q: %w", base, path, err)
	}
	return joined, nil
}
