package websocket

import (
	"net/http"
	"time"

	"quizarena/internal/infra/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A origem já é filtrada pelo CORS do router e o acesso exige token.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client é uma conexão WebSocket inscrita em uma sessão. Só recebe eventos.
type Client struct {
	Hub         *Hub
	Conn        *websocket.Conn
	Send        chan []byte
	SessionCode string
	UserID      string
}

func NewClient(hub *Hub, conn *websocket.Conn, sessionCode, userID string) *Client {
	return &Client{
		Hub:         hub,
		Conn:        conn,
		Send:        make(chan []byte, sendBuffer),
		SessionCode: sessionCode,
		UserID:      userID,
	}
}

// readPump descarta mensagens recebidas e mantém o deadline via pong.
// Ao sair, remove o cliente do Hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Conexão WebSocket encerrada inesperadamente", "sessao", c.SessionCode, "erro", err)
			}
			return
		}
	}
}

// writePump envia as mensagens do canal Send e os pings periódicos.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub fechou o canal
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
