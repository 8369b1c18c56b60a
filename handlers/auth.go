package handlers

import (
	"context"
	"html/template"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"ponto/config"
	"ponto/logger"
	"ponto/middleware"
	"ponto/models"
)

type UserStore interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}

type AuthHandler struct {
	config    *config.Config
	templates pages
	users     UserStore
}

func NewAuthHandler(cfg *config.Config, templates map[string]*template.Template, users UserStore) *AuthHandler {
	return &AuthHandler{
		config:    cfg,
		templates: templates,
		users:     users,
	}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Error": r.URL.Query().Get("error"),
	}
	h.templates.render(w, "login", data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/login", "error", "Formulário inválido")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.users.UserByUsername(r.Context(), username)
	if err != nil {
		logger.Warn("Login rejected", "username", username)
		redirectWith(w, r, "/login", "error", "Credenciais inválidas")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Login rejected", "username", username)
		redirectWith(w, r, "/login", "error", "Credenciais inválidas")
		return
	}

	if err := middleware.SetTokenCookie(w, user, h.config.JWTExpiration); err != nil {
		redirectWith(w, r, "/login", "error", "Falha ao gerar a sessão")
		return
	}

	logger.Info("Login", "username", user.Username)
	if user.MustChangePassword {
		http.Redirect(w, r, "/change-password", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearTokenCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) ChangePasswordPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	data := map[string]interface{}{
		"User":  user,
		"Error": r.URL.Query().Get("error"),
	}
	h.templates.render(w, "change-password", data)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/change-password", "error", "Formulário inválido")
		return
	}

	currentPassword := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	confirmPassword := r.FormValue("confirm_password")

	// Verify current password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		redirectWith(w, r, "/change-password", "error", "Senha atual incorreta")
		return
	}

	if newPassword != confirmPassword {
		redirectWith(w, r, "/change-password", "error", "As senhas não conferem")
		return
	}

	if len(newPassword) < 5 {
		redirectWith(w, r, "/change-password", "error", "A senha deve ter pelo menos 5 caracteres")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		redirectWith(w, r, "/change-password", "error", "Falha ao gerar o hash da senha")
		return
	}

	user.PasswordHash = string(hashedPassword)
	user.MustChangePassword = false
	if err := h.users.SaveUser(r.Context(), user); err != nil {
		logger.Error("Failed to save password", "username", user.Username, "err", err)
		redirectWith(w, r, "/change-password", "error", "Falha ao salvar a senha")
		return
	}

	// Regenerate token with updated user info
	if err := middleware.SetTokenCookie(w, user, h.config.JWTExpiration); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	logger.Info("Password changed", "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
