package pubsub

import (
	"context"
	"fmt"
	"strings"

	"quizarena/internal/adapters/websocket"
	"quizarena/internal/infra/logger"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// NewRedisClient abre o cliente a partir da URL e testa a conexão.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("URL do Redis inválida: %w", err)
	}

	// Redis 7 não conhece o comando de maint notifications; desliga para evitar o aviso.
	opts.MaintNotificationsConfig = &maintnotifications.Config{
		Mode: maintnotifications.ModeDisabled,
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("falha ao conectar no Redis: %w", err)
	}
	return client, nil
}

// RedisBroadcaster implementa ports.RealTimeHub publicando em um canal Redis por sessão.
// Cada instância roda um Relay que entrega as mensagens aos seus clientes WebSocket.
type RedisBroadcaster struct {
	client *redis.Client
	prefix string
}

func NewRedisBroadcaster(client *redis.Client, prefix string) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, prefix: prefix}
}

// Channel devolve o canal Redis da sessão.
func (b *RedisBroadcaster) Channel(sessionCode string) string {
	return b.prefix + sessionCode
}

func (b *RedisBroadcaster) BroadcastToSession(ctx context.Context, sessionCode, event string, payload interface{}) error {
	data, err := websocket.Encode(event, payload)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.Channel(sessionCode), data).Err(); err != nil {
		return fmt.Errorf("publicar no Redis: %w", err)
	}
	return nil
}

// Deliverer recebe mensagens já serializadas para uma sessão.
type Deliverer interface {
	Deliver(sessionCode string, data []byte) int
}

// Relay assina todos os canais de sessão e repassa as mensagens ao hub local.
type Relay struct {
	client *redis.Client
	prefix string
	target Deliverer
}

func NewRelay(client *redis.Client, prefix string, target Deliverer) *Relay {
	return &Relay{client: client, prefix: prefix, target: target}
}

// Run bloqueia até ctx terminar ou a assinatura falhar.
func (r *Relay) Run(ctx context.Context) error {
	sub := r.client.PSubscribe(ctx, r.prefix+"*")
	defer sub.Close()

	// Garante que a assinatura está ativa antes de consumir.
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("assinar canais de sessão: %w", err)
	}
	logger.Info("Relay Redis ativo", "padrao", r.prefix+"*")

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			code := strings.TrimPrefix(msg.Channel, r.prefix)
			n := r.target.Deliver(code, []byte(msg.Payload))
			logger.Debug("Mensagem repassada", "sessao", code, "clientes", n)
		}
	}
}
