package api

import (
	"context"
	"encoding/json"
	"net/http"

	pkgerrors "github.com/storemate/storemate-cli/pkg/errors"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	User User `json:"user"`
}

// SignIn authenticates against the remote service and returns the user
// plus the session cookie the server issued. The cookie is also installed
// on the client for subsequent requests.
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/signin", nil, signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	var parsed signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeRemote, err, "decode sign-in response")
	}

	cookie := sessionCookieFrom(resp)
	if cookie == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeRemote, "sign-in response carried no session cookie")
	}
	c.sessionCookie = cookie

	return &parsed.User, cookie, nil
}

// Logout notifies the server that the session ended. The local session is
// authoritative for the client, so callers treat failures as best-effort.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/logout", nil, nil, nil); err != nil {
		return err
	}
	c.sessionCookie = ""
	return nil
}

// sessionCookieFrom serializes the first cookie the server set into the
// name=value form replayed on later requests.
func sessionCookieFrom(resp *http.Response) string {
	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return ""
	}
	return cookies[0].Name + "=" + cookies[0].Value
}
