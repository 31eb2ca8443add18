package gateway

import (
	"context"

	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// userAPI implements ports.UserAPI over the shared transport.
type userAPI struct {
	c *Client
}

var _ ports.UserAPI = (*userAPI)(nil)

func (u *userAPI) List(ctx context.Context) ([]model.User, error) {
	var out model.ListUsersResponse
	resp, err := u.c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/user/getAllUsers")
	if nerr := u.c.normalize(resp, err, "Failed to fetch users"); nerr != nil {
		return nil, nerr
	}
	return out.Users, nil
}

func (u *userAPI) Delete(ctx context.Context, id string) error {
	resp, err := u.c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/user/delete/{id}")
	return u.c.normalize(resp, err, "Failed to delete user")
}
