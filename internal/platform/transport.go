package platform

import (
	"context"
	"net/http"

	"github.com/crcs-platform/campusctl/internal/errors"
)

// retryMarkerKey marks a request that has already been through the one-shot
// recovery path. It lives on the request's context, so concurrent requests
// cannot interfere with each other's retry bookkeeping.
type retryMarkerKey struct{}

// send dispatches a request through the authenticated pipeline:
//
//  1. attach the current access token, if any
//  2. dispatch
//  3. anything but a 401 passes straight through to the caller
//  4. first 401: refresh the token pair once, rewrite the header, and
//     resubmit; if no refresh token is held or the refresh fails, destroy
//     the session and surface a session-expired error
//  5. 401 with the retry marker set: propagate as-is, never loop
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if token := c.creds.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		req.Header.Del("Authorization")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	if req.Context().Value(retryMarkerKey{}) != nil {
		// Recovery already ran for this logical request. The refreshed
		// token was rejected too; hand the 401 back untouched.
		c.logger.Debug("refreshed token rejected, giving up", "path", req.URL.Path)
		return resp, nil
	}

	refreshToken := c.creds.RefreshToken()
	if refreshToken == "" {
		apiErr := newAPIError(resp)
		c.discardSession("received 401 with no refresh token")
		return nil, errors.NewSessionExpiredError(apiErr)
	}

	c.logger.Debug("access token rejected, attempting refresh", "path", req.URL.Path)

	newToken, refreshErr := c.refreshSession(req.Context(), refreshToken)
	if refreshErr != nil {
		resp.Body.Close()
		c.discardSession("token refresh failed")
		return nil, errors.NewSessionExpiredError(refreshErr)
	}
	resp.Body.Close()

	retry := req.Clone(context.WithValue(req.Context(), retryMarkerKey{}, true))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+newToken)

	// The resubmission's outcome is what the original caller receives.
	return c.send(retry)
}

// refreshSession exchanges the refresh token for a new pair and commits it
// to the session store. Concurrent callers holding the same refresh token
// share one network call; each logical request still makes at most one
// refresh attempt of its own.
func (c *Client) refreshSession(ctx context.Context, refreshToken string) (string, error) {
	token, err, _ := c.refreshGroup.Do(refreshToken, func() (any, error) {
		res, err := c.Refresh(ctx, refreshToken)
		if err != nil {
			return nil, err
		}
		if err := c.creds.UpdateTokens(res.Token, res.RefreshToken); err != nil {
			c.logger.WithError(err).Warn("rotated tokens were not persisted")
		}
		c.logger.Debug("token refresh succeeded")
		return res.Token, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// discardSession is the CLI's equivalent of the hard redirect to the login
// page: all durable and in-memory session state is destroyed so the next
// run starts from a clean slate.
func (c *Client) discardSession(reason string) {
	c.logger.Warn("discarding session", "reason", reason)
	c.creds.ClearSession()
}
