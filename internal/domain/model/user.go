//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
)

// User represents an account row in the admin users view.
type User struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  auth.Role `json:"role"`
}

// ListUsersResponse is the remote store's envelope for the users collection.
type ListUsersResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Users   []User `json:"users"`
}
