package gateway

import (
	"context"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// authAPI implements ports.AuthAPI over the shared transport.
type authAPI struct {
	c *Client
}

var _ ports.AuthAPI = (*authAPI)(nil)

func (a *authAPI) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error) {
	var out domainauth.LoginResult
	resp, err := a.c.http.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&out).
		Post("/auth/login")
	if nerr := a.c.normalize(resp, err, "Login failed"); nerr != nil {
		return domainauth.LoginResult{}, nerr
	}
	return out, nil
}

func (a *authAPI) Register(ctx context.Context, req domainauth.RegisterRequest) (string, error) {
	var out messageEnvelope
	resp, err := a.c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/auth/register")
	if nerr := a.c.normalize(resp, err, "Registration failed"); nerr != nil {
		return "", nerr
	}
	return out.Message, nil
}

func (a *authAPI) Me(ctx context.Context) (domainauth.Identity, error) {
	var out struct {
		User domainauth.Identity `json:"user"`
	}
	resp, err := a.c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/auth/me")
	if nerr := a.c.normalize(resp, err, "Session check failed"); nerr != nil {
		return domainauth.Identity{}, nerr
	}
	return out.User, nil
}

func (a *authAPI) Logout(ctx context.Context) error {
	// Response body is ignored; the caller clears local state regardless.
	resp, err := a.c.http.R().
		SetContext(ctx).
		SetBody(struct{}{}).
		Post("/auth/logout")
	return a.c.normalize(resp, err, "Logout failed")
}
