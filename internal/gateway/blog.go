package gateway

import (
	"context"

	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// blogAPI implements ports.BlogAPI over the shared transport.
type blogAPI struct {
	c *Client
}

var _ ports.BlogAPI = (*blogAPI)(nil)

func (b *blogAPI) ListAll(ctx context.Context) ([]model.Post, error) {
	return b.list(ctx, "/blog/allBlogs")
}

func (b *blogAPI) ListMine(ctx context.Context) ([]model.Post, error) {
	return b.list(ctx, "/blog/getMyBlogs")
}

func (b *blogAPI) list(ctx context.Context, path string) ([]model.Post, error) {
	var out []model.Post
	resp, err := b.c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(path)
	if nerr := b.c.normalize(resp, err, "Failed to fetch posts"); nerr != nil {
		return nil, nerr
	}
	return out, nil
}

func (b *blogAPI) Create(ctx context.Context, req model.CreatePostRequest) (model.Post, error) {
	var out model.Post
	resp, err := b.c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/blog/create")
	if nerr := b.c.normalize(resp, err, "Failed to create blog"); nerr != nil {
		return model.Post{}, nerr
	}
	return out, nil
}

func (b *blogAPI) Update(ctx context.Context, id string, req model.UpdatePostRequest) (model.Post, error) {
	var out model.UpdatePostResponse
	resp, err := b.c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetPathParam("id", id).
		Put("/blog/update/{id}")
	if nerr := b.c.normalize(resp, err, "Failed to update post"); nerr != nil {
		return model.Post{}, nerr
	}
	return out.Post, nil
}

func (b *blogAPI) Delete(ctx context.Context, id string) error {
	resp, err := b.c.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Delete("/blog/delete/{id}")
	return b.c.normalize(resp, err, "Failed to delete post")
}
