package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seatflow/seatgate/internal/domain"
	"github.com/seatflow/seatgate/internal/guard"
	"github.com/seatflow/seatgate/internal/session"
	"github.com/seatflow/seatgate/internal/upstream"
)

type AdminUserHandler struct {
	sessions *session.Manager
	users    *upstream.UserService
	rules    guard.Rules
}

func NewAdminUserHandler(sessions *session.Manager, users *upstream.UserService, rules guard.Rules) *AdminUserHandler {
	return &AdminUserHandler{sessions: sessions, users: users, rules: rules}
}

type userRoleForm struct {
	Role string `form:"role" validate:"required,oneof=user admin"`
}

type userStatusForm struct {
	Status string `form:"status" validate:"required,oneof=active inactive banned"`
}

// List shows users, optionally filtered by free-text query and role.
func (h *AdminUserHandler) List(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	filter := upstream.UserFilter{
		Query: c.QueryParam("q"),
		Role:  c.QueryParam("role"),
	}

	page := newPage(c, "Users", sess)
	users, err := h.users.List(authContext(c, h.sessions.Store()), filter)
	if err != nil {
		page.Flash = &session.Flash{Kind: session.FlashError, Message: "could not load users"}
	}

	return c.Render(http.StatusOK, "admin_users.html", struct {
		Page
		Users  []domain.User
		Filter upstream.UserFilter
	}{Page: page, Users: users, Filter: filter})
}

// Detail shows one user.
func (h *AdminUserHandler) Detail(c echo.Context) error {
	sess := h.sessions.Resolve(c.Request().Context(), c.Response(), c.Request())
	if !sess.IsAuthenticated() {
		return c.Redirect(http.StatusFound, h.rules.LoginPath)
	}

	user, err := h.users.Get(authContext(c, h.sessions.Store()), c.Param("id"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "admin_user_detail.html", struct {
		Page
		User *domain.User
	}{Page: newPage(c, "User detail", sess), User: user})
}

// UpdateRole changes one user's role.
func (h *AdminUserHandler) UpdateRole(c echo.Context) error {
	var form userRoleForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid role")
		return c.Redirect(http.StatusFound, "/admin/users/"+c.Param("id"))
	}

	if _, err := h.users.UpdateRole(authContext(c, h.sessions.Store()), c.Param("id"), form.Role); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not update the role"))
	} else {
		session.SetFlash(c.Response(), session.FlashSuccess, "role updated")
	}
	return c.Redirect(http.StatusFound, "/admin/users/"+c.Param("id"))
}

// UpdateStatus changes one user's status.
func (h *AdminUserHandler) UpdateStatus(c echo.Context) error {
	var form userStatusForm
	if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
		session.SetFlash(c.Response(), session.FlashError, "invalid status")
		return c.Redirect(http.StatusFound, "/admin/users/"+c.Param("id"))
	}

	if _, err := h.users.UpdateStatus(authContext(c, h.sessions.Store()), c.Param("id"), form.Status); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not update the status"))
	} else {
		session.SetFlash(c.Response(), session.FlashSuccess, "status updated")
	}
	return c.Redirect(http.StatusFound, "/admin/users/"+c.Param("id"))
}

// Delete removes one user.
func (h *AdminUserHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(authContext(c, h.sessions.Store()), c.Param("id")); err != nil {
		session.SetFlash(c.Response(), session.FlashError, upstreamMessage(err, "could not delete the user"))
		return c.Redirect(http.StatusFound, "/admin/users/"+c.Param("id"))
	}
	session.SetFlash(c.Response(), session.FlashInfo, "user deleted")
	return c.Redirect(http.StatusFound, "/admin/users")
}
