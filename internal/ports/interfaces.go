package ports

import (
	"context"

	"quizarena/internal/domain/game"
	"quizarena/internal/domain/history"
	"quizarena/internal/domain/quiz"
	"quizarena/internal/domain/user"
)

// UserRepository define as operações de persistência para a entidade User.
type UserRepository interface {
	// Create salva um novo usuário no banco de dados.
	Create(ctx context.Context, u *user.User) error

	// FindByEmail busca um usuário pelo email. Retorna nil, nil se não encontrar.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByUsername compara sem diferenciar maiúsculas. Retorna nil, nil se não encontrar.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	// FindByID busca um usuário pelo ID. Retorna nil, nil se não encontrar.
	FindByID(ctx context.Context, id string) (*user.User, error)
}

// PasswordHasher define o contrato para hash e verificação de senhas.
type PasswordHasher interface {
	// HashPassword gera um hash seguro da senha.
	HashPassword(password string) (string, error)

	// ComparePassword compara uma senha em texto plano com um hash.
	// Retorna nil se forem iguais, ou erro se forem diferentes.
	ComparePassword(hash, password string) error
}

// TokenService define o contrato para geração e validação de tokens JWT.
type TokenService interface {
	// GenerateToken gera um token de acesso para o ID do usuário fornecido.
	GenerateToken(userID string) (string, int64, error)

	// ValidateToken valida o token e retorna o ID do usuário se válido.
	ValidateToken(tokenString string) (string, error)
}

// QuizRepository define persistência para Quizzes.
type QuizRepository interface {
	Save(ctx context.Context, q *quiz.Quiz) error
	FindByID(ctx context.Context, id string) (*quiz.Quiz, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]*quiz.Quiz, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, q *quiz.Quiz) error
}

// QuestionRepository define persistência para Perguntas.
type QuestionRepository interface {
	Save(ctx context.Context, q *quiz.Question) error
	Update(ctx context.Context, q *quiz.Question) error
	Delete(ctx context.Context, id string) error
	// Reorder grava o SortOrder de todas as perguntas do quiz numa única transação.
	Reorder(ctx context.Context, quizID string, questions []quiz.Question) error
}

// SessionStore é a fonte única de verdade das sessões ao vivo.
// Cada método é uma operação atômica; LoadSnapshot sempre lê o estado mais recente.
type SessionStore interface {
	// CreateSession cria a sessão, o mestre do jogo e todos os estados de pergunta juntos.
	CreateSession(ctx context.Context, s *game.Session, master game.Participant, questions []game.QuestionState) error

	// CodeExists indica se já existe sessão ao vivo com o código.
	CodeExists(ctx context.Context, code string) (bool, error)

	// LoadSnapshot carrega a sessão pelo código. Retorna nil, nil se não existir.
	LoadSnapshot(ctx context.Context, code string) (*game.Snapshot, error)

	// AddParticipant inclui o participante no fim da ordem de entrada.
	AddParticipant(ctx context.Context, sessionID string, p game.Participant) error

	// RemoveParticipant remove o participante da sessão.
	RemoveParticipant(ctx context.Context, sessionID, userID string) error

	SetStarted(ctx context.Context, sessionID string) error
	SetCompleted(ctx context.Context, sessionID string) error

	// SetCurrentTurn marca userID como jogador da vez e limpa a marca de todos os outros, atomicamente.
	SetCurrentTurn(ctx context.Context, sessionID, userID string) error

	// SelectQuestion marca a pergunta como atual e desmarca qualquer outra.
	SelectQuestion(ctx context.Context, sessionID, questionID string) error

	SetRobbingAllowed(ctx context.Context, sessionID, questionID string, allowed bool) error

	// RecordCorrectAnswer marca a pergunta como respondida por userID (não atual, roubo desligado)
	// e soma points ao participante, atomicamente.
	RecordCorrectAnswer(ctx context.Context, sessionID, questionID, userID string, points int) error

	// DeleteSession remove a sessão com participantes e estados de pergunta.
	DeleteSession(ctx context.Context, sessionID string) error
}

// RealTimeHub publica um evento nomeado para todos os assinantes de uma sessão.
// Falhas de entrega são retornadas, nunca engolidas.
type RealTimeHub interface {
	BroadcastToSession(ctx context.Context, sessionCode, event string, payload interface{}) error
}

// HistoryRepository define persistência de partidas arquivadas.
type HistoryRepository interface {
	SaveHistory(ctx context.Context, pg *history.PreviousGame) error
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*history.PreviousGame, error)
	GetByID(ctx context.Context, id string) (*history.PreviousGame, error)
	GetQuizStats(ctx context.Context, quizID string) (*history.QuizStats, error)
}

// Archiver registra o resultado final de uma sessão concluída e descarta a sessão ao vivo.
type Archiver interface {
	ArchiveSession(ctx context.Context, snap *game.Snapshot, ranking []game.RankedParticipant) (*history.PreviousGame, error)
}

// SessionLocker serializa operações sobre a mesma sessão.
type SessionLocker interface {
	// Lock bloqueia até obter a exclusão mútua da chave ou ctx terminar.
	// A função retornada libera o lock e deve ser chamada exatamente uma vez.
	Lock(ctx context.Context, key string) (func(), error)
}
