package http

import "net/http"

// bearerTransport sets a bearer token unless the request already carries an
// Authorization header
type bearerTransport struct {
	token     string
	transport http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Authorization") != "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Set("Authorization", "Bearer "+t.token)

	return t.transport.RoundTrip(reqCopy)
}

// WithAuthToken authenticates every request with token. An empty token leaves
// requests untouched.
func WithAuthToken(token string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		if token == "" {
			return rt
		}
		return &bearerTransport{
			token:     token,
			transport: rt,
		}
	})
}
