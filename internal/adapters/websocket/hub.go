package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"quizarena/internal/infra/logger"
)

var errHubEncerrado = errors.New("hub encerrado")

// Envelope é o formato de toda mensagem enviada aos clientes.
type Envelope struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Hub implementa ports.RealTimeHub para os clientes conectados a esta instância.
type Hub struct {
	clients  map[*Client]bool
	sessions map[string]map[*Client]bool
	closed   bool

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		sessions: make(map[string]map[*Client]bool),
	}
}

// Encode serializa um evento no formato Envelope.
func Encode(event string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(Envelope{Type: event, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("serializar evento %s: %w", event, err)
	}
	return data, nil
}

// BroadcastToSession publica o evento para os clientes locais da sessão.
func (h *Hub) BroadcastToSession(ctx context.Context, sessionCode, event string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		return errHubEncerrado
	}
	data, err := Encode(event, payload)
	if err != nil {
		return err
	}
	h.Deliver(sessionCode, data)
	return nil
}

// Deliver entrega bytes já serializados. Clientes com buffer cheio são desconectados.
// Retorna quantos clientes receberam a mensagem.
func (h *Hub) Deliver(sessionCode string, data []byte) int {
	var slow []*Client
	delivered := 0

	h.mu.RLock()
	for client := range h.sessions[sessionCode] {
		select {
		case client.Send <- data:
			delivered++
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		logger.Warn("Cliente lento desconectado", "sessao", sessionCode, "usuario", client.UserID)
		h.remove(client)
	}
	return delivered
}

// Subscribers conta os clientes locais inscritos na sessão.
func (h *Hub) Subscribers(sessionCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions[sessionCode])
}

// Register inscreve o cliente na sessão. Falha depois que o Hub foi encerrado.
func (h *Hub) Register(client *Client) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return errHubEncerrado
	}
	h.clients[client] = true
	if _, ok := h.sessions[client.SessionCode]; !ok {
		h.sessions[client.SessionCode] = make(map[*Client]bool)
	}
	h.sessions[client.SessionCode][client] = true
	return nil
}

// Unregister remove o cliente e fecha seu canal de envio. Pode ser chamado mais de uma vez.
func (h *Hub) Unregister(client *Client) {
	h.remove(client)
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	if clients, ok := h.sessions[client.SessionCode]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.sessions, client.SessionCode)
		}
	}
	close(client.Send)
}

// Run mantém o Hub ativo até ctx terminar; então desconecta todos os clientes.
func (h *Hub) Run(ctx context.Context) {
	<-ctx.Done()

	h.mu.Lock()
	h.closed = true
	all := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		all = append(all, c)
	}
	h.mu.Unlock()

	for _, c := range all {
		h.remove(c)
	}
}
