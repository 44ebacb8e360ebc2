package usecases

import (
	"context"
	"errors"
	"time"

	"quizarena/internal/domain/game"
	"quizarena/internal/infra/logger"
	"quizarena/internal/ports"
)

var (
	ErrQuizNaoPublicado   = errors.New("apenas quizzes publicados podem ser jogados")
	ErrCodigoIndisponivel = errors.New("não foi possível gerar um código de sessão único")
)

// maxCodeAttempts limita as tentativas de gerar um código sem colisão.
const maxCodeAttempts = 5

type GameUseCases struct {
	store    ports.SessionStore
	quizRepo ports.QuizRepository
	userRepo ports.UserRepository
}

func NewGameUseCases(store ports.SessionStore, quizRepo ports.QuizRepository, userRepo ports.UserRepository) *GameUseCases {
	return &GameUseCases{
		store:    store,
		quizRepo: quizRepo,
		userRepo: userRepo,
	}
}

// CreateGame cria uma sessão a partir de um quiz PUBLISHED do próprio usuário.
// O criador entra como mestre do jogo e cada pergunta ganha seu estado inicial.
func (uc *GameUseCases) CreateGame(ctx context.Context, userID, quizID string) (*game.Snapshot, error) {
	q, err := ownedQuiz(ctx, uc.quizRepo, quizID, userID)
	if err != nil {
		return nil, err
	}
	if !q.Playable() {
		return nil, ErrQuizNaoPublicado
	}

	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}

	code, err := uc.uniqueCode(ctx)
	if err != nil {
		return nil, err
	}

	session := game.NewSession(code, q.ID, q.Title, userID)
	master := game.Participant{
		UserID:       u.ID,
		Username:     u.Username,
		IsGameMaster: true,
		JoinOrder:    1,
		JoinedAt:     time.Now(),
	}

	ordered := q.Ordered()
	states := make([]game.QuestionState, 0, len(ordered))
	for _, question := range ordered {
		states = append(states, game.QuestionState{
			QuestionID:    question.ID,
			Prompt:        question.Prompt,
			CorrectAnswer: question.Answer,
			Points:        question.Points,
			SortOrder:     question.SortOrder,
		})
	}

	if err := uc.store.CreateSession(ctx, session, master, states); err != nil {
		return nil, err
	}

	logger.Info("Sessão criada", "sessao", code, "quiz", q.ID, "mestre", userID, "perguntas", len(states), "pontos", q.TotalPoints())

	return &game.Snapshot{
		Session:      *session,
		Participants: []game.Participant{master},
		Questions:    states,
	}, nil
}

func (uc *GameUseCases) uniqueCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := game.NewCode()
		exists, err := uc.store.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodigoIndisponivel
}

// GetGame retorna o estado atual da sessão (para HTTP).
func (uc *GameUseCases) GetGame(ctx context.Context, code string) (*game.Snapshot, error) {
	snap, err := uc.store.LoadSnapshot(ctx, code)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, game.ErrSessionNotFound
	}
	return snap, nil
}
