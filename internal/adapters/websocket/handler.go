package websocket

import (
	"net/http"

	"quizarena/internal/domain/game"
	"quizarena/internal/infra/logger"
	"quizarena/internal/ports"
)

// WebSocketHandler faz o upgrade e inscreve o cliente no grupo da sessão.
type WebSocketHandler struct {
	hub    *Hub
	store  ports.SessionStore
	tokens ports.TokenService
}

func NewWebSocketHandler(hub *Hub, store ports.SessionStore, tokens ports.TokenService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		store:  store,
		tokens: tokens,
	}
}

// HandleWS atende GET /ws?session=CODE&token=JWT.
func (h *WebSocketHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("session")
	if code == "" {
		http.Error(w, "Código da sessão obrigatório (session)", http.StatusBadRequest)
		return
	}

	userID, err := h.tokens.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Token inválido ou expirado", http.StatusUnauthorized)
		return
	}

	snap, err := h.store.LoadSnapshot(r.Context(), code)
	if err != nil {
		logger.Error("Falha ao carregar sessão para WebSocket", "sessao", code, "erro", err)
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}
	if snap == nil {
		http.Error(w, game.ErrSessionNotFound.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("Falha no upgrade WebSocket", "erro", err)
		return
	}

	client := NewClient(h.hub, conn, code, userID)
	if err := h.hub.Register(client); err != nil {
		conn.Close()
		return
	}
	logger.Debug("Cliente inscrito na sessão", "sessao", code, "usuario", userID)

	go client.writePump()
	go client.readPump()
}
