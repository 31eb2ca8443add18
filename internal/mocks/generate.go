// Package mocks provides mock implementations for testing against the remote store ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the port interfaces.
// The mocks provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	blog := mocks.NewMockBlogAPI(ctrl)
//	blog.EXPECT().Delete(gomock.Any(), "7").Return(nil)
package mocks

// Generate mocks for the remote store port interfaces from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=api_mock.go github.com/doTryCatch/blog-content-management-demo/internal/ports AuthAPI,BlogAPI,UserAPI
