// internal/handlers/auth.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/ports"
)

// AuthHandler serves the login page and the session actions. Credentials
// only exist inside the posted form; the upstream session lives in the
// client's cookie jar.
type AuthHandler struct {
	auth     ports.AuthAPI
	cache    ports.QueryCache
	renderer *Renderer
	logger   *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth ports.AuthAPI, cache ports.QueryCache, renderer *Renderer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		cache:    cache,
		renderer: renderer,
		logger:   logger.With(slog.String("handler", "auth")),
	}
}

type loginPageData struct {
	Flash string
}

// LoginPage handles GET /. An operator with a live session skips straight
// to the home view.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.CheckSession(r.Context()); err == nil {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	h.renderer.Render(w, http.StatusOK, "login", loginPageData{
		Flash: popFlash(w, r),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		setFlash(w, "Invalid login form")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	creds := domain.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := creds.Validate(); err != nil {
		setFlash(w, "Email and password are required")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := h.auth.Login(ctx, creds); err != nil {
		h.logger.WarnContext(ctx, "login rejected",
			slog.String("email", creds.Email),
			slog.String("error", err.Error()))
		setFlash(w, "Login failed, check your credentials")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.logger.InfoContext(ctx, "operator logged in",
		slog.String("email", creds.Email))

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// Logout handles POST /logout. The memoized queries belong to the session,
// so they are dropped with it.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, h.auth.Logout, "logout")
}

// LogoutAll handles POST /logout-all, revoking every session of the user.
func (h *AuthHandler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r, h.auth.LogoutAll, "logout_all")
}

func (h *AuthHandler) endSession(w http.ResponseWriter, r *http.Request,
	action func(ctx context.Context) error, name string) {
	ctx := r.Context()

	if err := action(ctx); err != nil {
		h.logger.WarnContext(ctx, "session teardown failed upstream",
			slog.String("action", name),
			slog.String("error", err.Error()))
	}

	if err := h.cache.Flush(ctx); err != nil {
		h.logger.WarnContext(ctx, "failed to flush query cache",
			slog.String("error", err.Error()))
	}

	h.logger.InfoContext(ctx, "session ended", slog.String("action", name))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
