package logstream

import (
	"net/http"
)

// username of the primary test key
const testKeyUser = "primary"

// Transport authenticates log stream requests with the primary test key of a service
type Transport struct {
	Key  string
	Base http.RoundTripper
}

func (t Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(testKeyUser, t.Key)

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
