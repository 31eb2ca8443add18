package api

// Package api contains simple hand-written test doubles for the remote
// store ports. These are lightweight and suitable for unit tests that need
// fine control (blocking calls, call counting) without codegen.

import (
	"context"
	"sync/atomic"

	domainauth "github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI = (*FakeAuthAPI)(nil)
	_ ports.BlogAPI = (*FakeBlogAPI)(nil)
	_ ports.UserAPI = (*FakeUserAPI)(nil)
)

// FakeAuthAPI simulates the identity service with per-method func hooks and
// call counters. Unset hooks return zero values.
type FakeAuthAPI struct {
	LoginFunc    func(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error)
	RegisterFunc func(ctx context.Context, req domainauth.RegisterRequest) (string, error)
	MeFunc       func(ctx context.Context) (domainauth.Identity, error)
	LogoutFunc   func(ctx context.Context) error

	LoginCalls  atomic.Int64
	MeCalls     atomic.Int64
	LogoutCalls atomic.Int64
}

func (f *FakeAuthAPI) Login(ctx context.Context, creds domainauth.Credentials) (domainauth.LoginResult, error) {
	f.LoginCalls.Add(1)
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, creds)
	}
	return domainauth.LoginResult{}, nil
}

func (f *FakeAuthAPI) Register(ctx context.Context, req domainauth.RegisterRequest) (string, error) {
	if f.RegisterFunc != nil {
		return f.RegisterFunc(ctx, req)
	}
	return "", nil
}

func (f *FakeAuthAPI) Me(ctx context.Context) (domainauth.Identity, error) {
	f.MeCalls.Add(1)
	if f.MeFunc != nil {
		return f.MeFunc(ctx)
	}
	return domainauth.Identity{}, apperr.Auth("Session expired", 401)
}

func (f *FakeAuthAPI) Logout(ctx context.Context) error {
	f.LogoutCalls.Add(1)
	if f.LogoutFunc != nil {
		return f.LogoutFunc(ctx)
	}
	return nil
}

// FakeBlogAPI simulates the post collection.
type FakeBlogAPI struct {
	ListAllFunc  func(ctx context.Context) ([]model.Post, error)
	ListMineFunc func(ctx context.Context) ([]model.Post, error)
	CreateFunc   func(ctx context.Context, req model.CreatePostRequest) (model.Post, error)
	UpdateFunc   func(ctx context.Context, id string, req model.UpdatePostRequest) (model.Post, error)
	DeleteFunc   func(ctx context.Context, id string) error
}

func (f *FakeBlogAPI) ListAll(ctx context.Context) ([]model.Post, error) {
	if f.ListAllFunc != nil {
		return f.ListAllFunc(ctx)
	}
	return nil, nil
}

func (f *FakeBlogAPI) ListMine(ctx context.Context) ([]model.Post, error) {
	if f.ListMineFunc != nil {
		return f.ListMineFunc(ctx)
	}
	return nil, nil
}

func (f *FakeBlogAPI) Create(ctx context.Context, req model.CreatePostRequest) (model.Post, error) {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, req)
	}
	return model.Post{}, nil
}

func (f *FakeBlogAPI) Update(ctx context.Context, id string, req model.UpdatePostRequest) (model.Post, error) {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, id, req)
	}
	return model.Post{}, nil
}

func (f *FakeBlogAPI) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}

// FakeUserAPI simulates the admin account collection.
type FakeUserAPI struct {
	ListFunc   func(ctx context.Context) ([]model.User, error)
	DeleteFunc func(ctx context.Context, id string) error
}

func (f *FakeUserAPI) List(ctx context.Context) ([]model.User, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

func (f *FakeUserAPI) Delete(ctx context.Context, id string) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return nil
}
