package handlers

import (
	"net/http"

	"quizarena/internal/application/usecases"
)

// AuthHandler expõe cadastro, login e o perfil do jogador.
type AuthHandler struct {
	authUC *usecases.AuthUseCases
}

func NewAuthHandler(authUC *usecases.AuthUseCases) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Login    string `json:"login" validate:"required"` // email ou nome de usuário
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// Register godoc
// @Summary Cadastra um jogador
// @Description Email e nome de usuário não podem repetir (sem diferenciar maiúsculas).
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "Dados de cadastro"
// @Success 201 {object} user.User
// @Failure 400 {object} ErrorResponse "Erro de validação"
// @Failure 409 {object} ErrorResponse "Email ou nome já cadastrado"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	u, err := h.authUC.Register(r.Context(), usecases.RegisterInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// Login godoc
// @Summary Troca credenciais por um token JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credenciais"
// @Success 200 {object} loginResponse
// @Failure 401 {object} ErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tok, err := h.authUC.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: tok.Token, ExpiresIn: tok.ExpiresIn})
}

// GetMe godoc
// @Summary Perfil do jogador logado
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 401 {object} ErrorResponse "Não autenticado"
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.authUC.Me(r.Context(), userIDFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
