package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/doTryCatch/blog-content-management-demo/internal/controller"
	"github.com/doTryCatch/blog-content-management-demo/internal/domain/model"
	"github.com/doTryCatch/blog-content-management-demo/internal/gateway"
	"github.com/doTryCatch/blog-content-management-demo/internal/session"
	"github.com/doTryCatch/blog-content-management-demo/internal/util"
)

// maxTitleWidth bounds one list row to a single terminal line.
const maxTitleWidth = 60

// Dashboard tab indices. The users tab is only reachable for admins.
const (
	tabAllPosts = iota
	tabMyPosts
	tabCompose
	tabUsers
)

var tabNames = []string{"All Posts", "My Posts", "Create", "Users"}

// confirmAction is a pending destructive action awaiting a yes/no keypress.
// Nothing is sent to the remote store until the user confirms.
type confirmAction struct {
	kind  string // "post" or "user"
	id    string
	label string
}

// dashboardPage hosts the authenticated views: the two post lists, the
// composer and the admin user list.
type dashboardPage struct {
	gw     *gateway.Client
	logger *slog.Logger

	posts  *controller.PostList
	users  *controller.UserList
	create *controller.CreatePost

	tab    int
	cursor int

	editing     bool
	editID      string
	editTitle   textinput.Model
	editContent textinput.Model
	editFocus   int

	composeTitle   textinput.Model
	composeContent textarea.Model
	composeFocus   int

	confirm *confirmAction
}

func newDashboardPage(gw *gateway.Client, logger *slog.Logger) *dashboardPage {
	editTitle := textinput.New()
	editTitle.Placeholder = "title"
	editContent := textinput.New()
	editContent.Placeholder = "content"

	composeTitle := textinput.New()
	composeTitle.Placeholder = "title"
	composeTitle.CharLimit = 200
	composeContent := textarea.New()
	composeContent.Placeholder = "Write your post..."

	return &dashboardPage{
		gw:             gw,
		logger:         logger,
		posts:          controller.NewPostList(controller.PostListOptions{API: gw.Blog(), Logger: logger}),
		users:          controller.NewUserList(controller.UserListOptions{API: gw.Users(), Logger: logger}),
		create:         controller.NewCreatePost(controller.CreatePostOptions{API: gw.Blog(), Logger: logger}),
		editTitle:      editTitle,
		editContent:    editContent,
		composeTitle:   composeTitle,
		composeContent: composeContent,
	}
}

// mount resets the page to the all-posts tab and starts the initial fetch.
func (p *dashboardPage) mount(seq uint64) tea.Cmd {
	p.tab = tabAllPosts
	p.cursor = 0
	p.editing = false
	p.confirm = nil
	p.posts.SetMineOnly(false)
	return p.loadPostsCmd(seq)
}

func (p *dashboardPage) loadPostsCmd(seq uint64) tea.Cmd {
	return func() tea.Msg {
		err := p.posts.Load(context.Background())
		return postsLoadedMsg{seq: seq, err: err}
	}
}

func (p *dashboardPage) loadUsersCmd(seq uint64) tea.Cmd {
	return func() tea.Msg {
		err := p.users.Load(context.Background())
		return usersLoadedMsg{seq: seq, err: err}
	}
}

func (p *dashboardPage) handleKey(a *App, msg tea.KeyMsg) tea.Cmd {
	if p.confirm != nil {
		return p.handleConfirmKey(msg)
	}
	if p.editing {
		return p.handleEditKey(msg)
	}
	if p.tab == tabCompose {
		return p.handleComposeKey(a, msg)
	}
	return p.handleListKey(a, msg)
}

func (p *dashboardPage) handleListKey(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "shift+tab":
		return p.switchTab(a, p.prevTab(a))
	case "right", "tab":
		return p.switchTab(a, p.nextTab(a))
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx == tabUsers && !a.adminVisible() {
			return nil
		}
		return p.switchTab(a, idx)
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
		return nil
	case "down", "j":
		if p.cursor < p.rowCount()-1 {
			p.cursor++
		}
		return nil
	case "r":
		if p.tab == tabUsers {
			return p.loadUsersCmd(a.navSeq)
		}
		return p.loadPostsCmd(a.navSeq)
	case "e":
		return p.beginEdit()
	case "d":
		p.requestDelete()
		return nil
	case "o":
		return p.logoutCmd(a)
	case "q":
		a.quitting = true
		return tea.Quit
	}
	return nil
}

func (p *dashboardPage) prevTab(a *App) int {
	t := p.tab - 1
	if t < 0 {
		t = tabUsers
	}
	if t == tabUsers && !a.adminVisible() {
		t = tabCompose
	}
	return t
}

func (p *dashboardPage) nextTab(a *App) int {
	t := p.tab + 1
	if t == tabUsers && !a.adminVisible() {
		t = 0
	}
	if t > tabUsers {
		t = 0
	}
	return t
}

func (p *dashboardPage) switchTab(a *App, tab int) tea.Cmd {
	p.tab = tab
	p.cursor = 0
	p.editing = false
	p.posts.CancelEdit()
	switch tab {
	case tabAllPosts:
		p.posts.SetMineOnly(false)
		return p.loadPostsCmd(a.navSeq)
	case tabMyPosts:
		p.posts.SetMineOnly(true)
		return p.loadPostsCmd(a.navSeq)
	case tabUsers:
		return p.loadUsersCmd(a.navSeq)
	}
	return nil
}

func (p *dashboardPage) rowCount() int {
	if p.tab == tabUsers {
		return len(p.users.Users())
	}
	return len(p.posts.Entries())
}

// clampCursor keeps the selection inside the current list after the cache
// shrank or was replaced.
func (p *dashboardPage) clampCursor() {
	if n := p.rowCount(); p.cursor >= n {
		p.cursor = n - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *dashboardPage) selectedPost() (model.Post, bool) {
	entries := p.posts.Entries()
	if p.cursor < 0 || p.cursor >= len(entries) {
		return model.Post{}, false
	}
	return entries[p.cursor].Post, true
}

func (p *dashboardPage) selectedUser() (model.User, bool) {
	users := p.users.Users()
	if p.cursor < 0 || p.cursor >= len(users) {
		return model.User{}, false
	}
	return users[p.cursor], true
}

func (p *dashboardPage) beginEdit() tea.Cmd {
	if p.tab == tabUsers {
		return nil
	}
	post, ok := p.selectedPost()
	if !ok || !p.posts.BeginEdit(post.ID) {
		return nil
	}
	p.editing = true
	p.editID = post.ID
	p.editTitle.SetValue(post.Title)
	p.editContent.SetValue(post.Content)
	p.editFocus = 0
	p.editTitle.Focus()
	p.editContent.Blur()
	return nil
}

func (p *dashboardPage) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.editing = false
		p.posts.CancelEdit()
		return nil
	case "tab", "shift+tab":
		p.editFocus = (p.editFocus + 1) % 2
		if p.editFocus == 0 {
			p.editContent.Blur()
			p.editTitle.Focus()
		} else {
			p.editTitle.Blur()
			p.editContent.Focus()
		}
		return nil
	case "enter":
		id := p.editID
		return func() tea.Msg {
			err := p.posts.SaveEdit(context.Background(), id)
			return postSavedMsg{id: id, err: err}
		}
	}

	var cmd tea.Cmd
	if p.editFocus == 0 {
		p.editTitle, cmd = p.editTitle.Update(msg)
	} else {
		p.editContent, cmd = p.editContent.Update(msg)
	}
	p.posts.SetDraft(p.editID, p.editTitle.Value(), p.editContent.Value())
	return cmd
}

func (p *dashboardPage) requestDelete() {
	if p.tab == tabUsers {
		if u, ok := p.selectedUser(); ok {
			p.confirm = &confirmAction{kind: "user", id: u.ID, label: u.Name}
		}
		return
	}
	if post, ok := p.selectedPost(); ok {
		p.confirm = &confirmAction{kind: "post", id: post.ID, label: post.Title}
	}
}

func (p *dashboardPage) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		action := *p.confirm
		p.confirm = nil
		if action.kind == "user" {
			return func() tea.Msg {
				err := p.users.Delete(context.Background(), action.id)
				return userDeletedMsg{id: action.id, err: err}
			}
		}
		return func() tea.Msg {
			err := p.posts.Delete(context.Background(), action.id)
			return postDeletedMsg{id: action.id, err: err}
		}
	case "n", "N", "esc":
		p.confirm = nil
	}
	return nil
}

func (p *dashboardPage) handleComposeKey(a *App, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return p.switchTab(a, tabAllPosts)
	case "tab":
		p.composeFocus = (p.composeFocus + 1) % 2
		if p.composeFocus == 0 {
			p.composeContent.Blur()
			p.composeTitle.Focus()
		} else {
			p.composeTitle.Blur()
			cmd := p.composeContent.Focus()
			return cmd
		}
		return nil
	case "ctrl+p":
		p.create.SetPublish(!p.create.Publish())
		return nil
	case "ctrl+s":
		if p.create.Submitting() {
			return nil
		}
		return func() tea.Msg {
			post, err := p.create.Submit(context.Background())
			return postCreatedMsg{post: post, err: err}
		}
	}

	var cmd tea.Cmd
	if p.composeFocus == 0 {
		p.composeTitle, cmd = p.composeTitle.Update(msg)
	} else {
		p.composeContent, cmd = p.composeContent.Update(msg)
	}
	p.create.SetTitle(p.composeTitle.Value())
	p.create.SetContent(p.composeContent.Value())
	return cmd
}

// syncComposeInputs pulls the controller's field values back into the
// widgets, used after a successful submit reset the form.
func (p *dashboardPage) syncComposeInputs() {
	p.composeTitle.SetValue(p.create.Title())
	p.composeContent.SetValue(p.create.Content())
}

func (p *dashboardPage) logoutCmd(a *App) tea.Cmd {
	return func() tea.Msg {
		a.sess.Logout(context.Background())
		return logoutDoneMsg{}
	}
}

func (p *dashboardPage) view(a *App) string {
	snap := a.sess.Snapshot()
	if snap.Loading {
		return a.sessionLoadingView()
	}

	var b strings.Builder
	b.WriteString(p.headerView(a, snap))
	b.WriteString("\n")
	b.WriteString(p.tabBarView(a))
	b.WriteString("\n\n")

	if p.confirm != nil {
		b.WriteString(p.confirmView())
		return b.String()
	}

	switch {
	case p.editing:
		b.WriteString(p.editView())
	case p.tab == tabCompose:
		b.WriteString(p.composeView(a))
	case p.tab == tabUsers:
		b.WriteString(p.usersView(a))
	default:
		b.WriteString(p.postsView(a))
	}

	b.WriteString("\n")
	b.WriteString(p.helpView())
	return b.String()
}

func (p *dashboardPage) headerView(a *App, snap session.Snapshot) string {
	who := ""
	if snap.Identity != nil {
		who = fmt.Sprintf("%s <%s> · %s", snap.Identity.Name, snap.Identity.Email, snap.Identity.Role)
	}
	return titleStyle.Render("Dashboard") + "  " + dimStyle.Render(who)
}

func (p *dashboardPage) tabBarView(a *App) string {
	var tabs []string
	for i, name := range tabNames {
		if i == tabUsers && !a.adminVisible() {
			continue
		}
		if i == p.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

func (p *dashboardPage) postsView(a *App) string {
	if line, done := phaseLine(a.spinner, p.posts.Phase(), p.posts.ErrorMessage()); done {
		return line
	}
	entries := p.posts.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("No posts yet.")
	}
	var b strings.Builder
	for i, e := range entries {
		line := fmt.Sprintf("%s  %s",
			util.Truncate(e.Post.Title, maxTitleWidth),
			dimStyle.Render(util.FormatDate(e.Post.CreatedAt.Time)))
		if i == p.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(listItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *dashboardPage) usersView(a *App) string {
	if line, done := phaseLine(a.spinner, p.users.Phase(), p.users.ErrorMessage()); done {
		return line
	}
	users := p.users.Users()
	if len(users) == 0 {
		return dimStyle.Render("No users.")
	}
	var b strings.Builder
	for i, u := range users {
		line := fmt.Sprintf("%s  %s  %s", u.Name, dimStyle.Render(u.Email), labelStyle.Render(string(u.Role)))
		if i == p.cursor {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(listItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *dashboardPage) editView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(p.editTitle.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(p.editContent.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter save · tab switch field · esc cancel"))
	return b.String()
}

func (p *dashboardPage) composeView(a *App) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(p.composeTitle.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(p.composeContent.View())
	b.WriteString("\n")
	publish := "draft"
	if p.create.Publish() {
		publish = "publish"
	}
	b.WriteString(labelStyle.Render("Mode: ") + publish)
	b.WriteString("\n")
	if p.create.Submitting() {
		b.WriteString(a.spinner.View() + " Creating...")
		b.WriteString("\n")
	} else if !p.create.CanSubmit() {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Title must be at least %d characters.", model.MinTitleLen)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+s submit · ctrl+p toggle publish · tab switch field · esc back"))
	return b.String()
}

func (p *dashboardPage) confirmView() string {
	noun := "post"
	if p.confirm.kind == "user" {
		noun = "user"
	}
	prompt := fmt.Sprintf("Delete %s %q? This cannot be undone.\n\ny confirm · n cancel", noun, p.confirm.label)
	return modalStyle.Render(prompt)
}

func (p *dashboardPage) helpView() string {
	return helpStyle.Render("↑/↓ select · tab switch view · e edit · d delete · r refresh · o sign out · q quit")
}
