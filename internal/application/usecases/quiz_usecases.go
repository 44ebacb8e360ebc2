package usecases

import (
	"context"
	"errors"

	"quizarena/internal/domain/quiz"
	"quizarena/internal/infra/logger"
	"quizarena/internal/ports"
)

var (
	ErrNaoAutorizado     = errors.New("você não tem permissão para acessar este recurso")
	ErrQuizNaoEncontrado = errors.New("quiz não encontrado")
	ErrFiltroInvalido    = errors.New("status deve ser DRAFT ou PUBLISHED")
)

// ownedQuiz carrega o quiz com as perguntas e confirma que pertence a userID.
// Usado por todos os casos de uso que partem de um quiz.
func ownedQuiz(ctx context.Context, repo ports.QuizRepository, quizID, userID string) (*quiz.Quiz, error) {
	q, err := repo.FindByID(ctx, quizID)
	switch {
	case err != nil:
		return nil, err
	case q == nil:
		return nil, ErrQuizNaoEncontrado
	case !q.OwnedBy(userID):
		return nil, ErrNaoAutorizado
	}
	return q, nil
}

// QuizDraft são os campos editáveis de um quiz.
type QuizDraft struct {
	Title       string
	Description string
}

// QuizUseCases gerencia o ciclo rascunho -> publicado dos quizzes de um autor.
type QuizUseCases struct {
	quizzes ports.QuizRepository
}

func NewQuizUseCases(quizzes ports.QuizRepository) *QuizUseCases {
	return &QuizUseCases{quizzes: quizzes}
}

func (uc *QuizUseCases) CreateQuiz(ctx context.Context, ownerID string, d QuizDraft) (*quiz.Quiz, error) {
	q, err := quiz.NewQuiz(ownerID, d.Title, d.Description)
	if err != nil {
		return nil, err
	}
	if err := uc.quizzes.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuizzes lista os quizzes do autor. status vazio devolve todos.
func (uc *QuizUseCases) ListQuizzes(ctx context.Context, ownerID, status string) ([]*quiz.Quiz, error) {
	if status != "" && status != quiz.Draft && status != quiz.Published {
		return nil, ErrFiltroInvalido
	}

	all, err := uc.quizzes.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]*quiz.Quiz, 0, len(all))
	for _, q := range all {
		if status == "" || q.Status == status {
			out = append(out, q)
		}
	}
	return out, nil
}

func (uc *QuizUseCases) GetQuiz(ctx context.Context, quizID, ownerID string) (*quiz.Quiz, error) {
	return ownedQuiz(ctx, uc.quizzes, quizID, ownerID)
}

func (uc *QuizUseCases) UpdateQuiz(ctx context.Context, quizID, ownerID string, d QuizDraft) (*quiz.Quiz, error) {
	q, err := ownedQuiz(ctx, uc.quizzes, quizID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := q.Rename(d.Title, d.Description); err != nil {
		return nil, err
	}
	if err := uc.quizzes.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteQuiz remove um rascunho. Quizzes publicados permanecem porque o histórico os referencia.
func (uc *QuizUseCases) DeleteQuiz(ctx context.Context, quizID, ownerID string) error {
	q, err := ownedQuiz(ctx, uc.quizzes, quizID, ownerID)
	if err != nil {
		return err
	}
	if err := q.Editable(); err != nil {
		return err
	}
	return uc.quizzes.Delete(ctx, q.ID)
}

func (uc *QuizUseCases) PublishQuiz(ctx context.Context, quizID, ownerID string) (*quiz.Quiz, error) {
	q, err := ownedQuiz(ctx, uc.quizzes, quizID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := q.Publish(); err != nil {
		return nil, err
	}
	if err := uc.quizzes.Update(ctx, q); err != nil {
		return nil, err
	}

	logger.Info("Quiz publicado", "quiz", q.ID, "perguntas", len(q.Questions), "pontos", q.TotalPoints())
	return q, nil
}
