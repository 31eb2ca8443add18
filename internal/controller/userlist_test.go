package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/doTryCatch/blog-content-management-demo/internal/controller"
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/mocks"
)

func usersFixture() []model.User {
	return []model.User{
		{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: auth.RoleAdmin},
		{ID: "u2", Name: "Ben", Email: "ben@example.com", Role: auth.RoleUser},
	}
}

func TestNewUserList_RequiresAPI(t *testing.T) {
	require.Panics(t, func() {
		controller.NewUserList(controller.UserListOptions{})
	})
}

func TestUserList_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUserAPI(ctrl)
	api.EXPECT().List(gomock.Any()).Return(usersFixture(), nil)

	c := controller.NewUserList(controller.UserListOptions{API: api})
	require.Equal(t, controller.PhaseLoading, c.Phase())
	require.NoError(t, c.Load(context.Background()))
	require.Equal(t, controller.PhaseReady, c.Phase())

	users := c.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
}

func TestUserList_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUserAPI(ctrl)
	api.EXPECT().List(gomock.Any()).Return(nil, apperr.Network("Failed to fetch users", nil))

	c := controller.NewUserList(controller.UserListOptions{API: api})
	require.Error(t, c.Load(context.Background()))
	assert.Equal(t, controller.PhaseErrored, c.Phase())
	assert.Equal(t, "Failed to fetch users", c.ErrorMessage())
}

func TestUserList_DeleteRemovesOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUserAPI(ctrl)
	api.EXPECT().List(gomock.Any()).Return(usersFixture(), nil)
	api.EXPECT().Delete(gomock.Any(), "u1").Return(nil)

	c := controller.NewUserList(controller.UserListOptions{API: api})
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Delete(context.Background(), "u1"))
	users := c.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "u2", users[0].ID)
}

func TestUserList_DeleteFailureKeepsAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockUserAPI(ctrl)
	api.EXPECT().List(gomock.Any()).Return(usersFixture(), nil)
	api.EXPECT().Delete(gomock.Any(), "u1").Return(apperr.Unknown("Failed to delete user", 500))

	c := controller.NewUserList(controller.UserListOptions{API: api})
	require.NoError(t, c.Load(context.Background()))

	require.Error(t, c.Delete(context.Background(), "u1"))
	assert.Len(t, c.Users(), 2)
}
