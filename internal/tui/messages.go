package tui

import (
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/auth"
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	"github.com/doTryCatch/blog-content-management-demo/internal/session"
)

// Messages delivered back to the update loop by background commands. Each
// message that resolves a navigation carries the sequence number of the
// navigation that issued it, so results arriving after another transition
// can be discarded.

type sessionResolvedMsg struct {
	seq     uint64
	outcome session.Outcome
}

type loginDoneMsg struct {
	identity auth.Identity
	message  string
	err      error
}

type registerDoneMsg struct {
	message string
	err     error
}

// logoutDoneMsg carries no payload: the session store already logged any
// remote failure and cleared local state regardless.
type logoutDoneMsg struct{}

type postsLoadedMsg struct {
	seq uint64
	err error
}

type postCreatedMsg struct {
	post model.Post
	err  error
}

type postSavedMsg struct {
	id  string
	err error
}

type postDeletedMsg struct {
	id  string
	err error
}

type usersLoadedMsg struct {
	seq uint64
	err error
}

type userDeletedMsg struct {
	id  string
	err error
}
