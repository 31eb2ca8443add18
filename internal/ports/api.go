package ports

// Package ports defines interfaces (hexagonal ports) for the remote blog
// store. The gateway package implements them; controllers and the session
// store depend on the interfaces only.

import (
	"context"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
)

// AuthAPI covers the remote identity service surface. The credential
// artifact travels transport-level (cookie), never as a parameter.
type AuthAPI interface {
	// Login exchanges credentials for an Identity; the response also sets
	// the credential cookie on the transport.
	Login(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error)

	// Register creates an account and returns the server's message.
	Register(ctx context.Context, req domainauth.RegisterRequest) (string, error)

	// Me resolves the Identity behind the current credential artifact.
	Me(ctx context.Context) (domainauth.Identity, error)

	// Logout invalidates the remote session. Callers treat failure as
	// best-effort; local state is cleared regardless.
	Logout(ctx context.Context) error
}

// BlogAPI covers the post collection.
type BlogAPI interface {
	ListAll(ctx context.Context) ([]model.Post, error)
	ListMine(ctx context.Context) ([]model.Post, error)
	Create(ctx context.Context, req model.CreatePostRequest) (model.Post, error)
	Update(ctx context.Context, id string, req model.UpdatePostRequest) (model.Post, error)
	Delete(ctx context.Context, id string) error
}

// UserAPI covers the admin-only account collection.
type UserAPI interface {
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id string) error
}
