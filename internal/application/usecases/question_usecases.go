package usecases

import (
	"context"
	"errors"

	"quizarena/internal/domain/quiz"
	"quizarena/internal/ports"
)

var ErrPerguntaNaoEncontrada = errors.New("pergunta não encontrada neste quiz")

// QuestionDraft são os campos de uma pergunta enviados pelo autor.
type QuestionDraft struct {
	Prompt string
	Answer string
	Points int
}

// QuestionUseCases edita as perguntas de um quiz em rascunho.
type QuestionUseCases struct {
	quizzes   ports.QuizRepository
	questions ports.QuestionRepository
}

func NewQuestionUseCases(quizzes ports.QuizRepository, questions ports.QuestionRepository) *QuestionUseCases {
	return &QuestionUseCases{quizzes: quizzes, questions: questions}
}

func (uc *QuestionUseCases) draft(ctx context.Context, quizID, ownerID string) (*quiz.Quiz, error) {
	q, err := ownedQuiz(ctx, uc.quizzes, quizID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := q.Editable(); err != nil {
		return nil, err
	}
	return q, nil
}

// AddQuestion anexa a pergunta ao fim do quiz.
func (uc *QuestionUseCases) AddQuestion(ctx context.Context, quizID, ownerID string, d QuestionDraft) (*quiz.Question, error) {
	q, err := uc.draft(ctx, quizID, ownerID)
	if err != nil {
		return nil, err
	}

	last := 0
	for _, existing := range q.Questions {
		last = max(last, existing.SortOrder)
	}

	created, err := quiz.NewQuestion(q.ID, d.Prompt, d.Answer, d.Points, last+1)
	if err != nil {
		return nil, err
	}
	if err := uc.questions.Save(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *QuestionUseCases) UpdateQuestion(ctx context.Context, quizID, questionID, ownerID string, d QuestionDraft) (*quiz.Question, error) {
	q, err := uc.draft(ctx, quizID, ownerID)
	if err != nil {
		return nil, err
	}

	target := q.Question(questionID)
	if target == nil {
		return nil, ErrPerguntaNaoEncontrada
	}
	if err := target.Update(d.Prompt, d.Answer, d.Points); err != nil {
		return nil, err
	}
	if err := uc.questions.Update(ctx, target); err != nil {
		return nil, err
	}
	return target, nil
}

// RemoveQuestion apaga a pergunta e compacta SortOrder das que vinham depois.
func (uc *QuestionUseCases) RemoveQuestion(ctx context.Context, quizID, questionID, ownerID string) error {
	q, err := uc.draft(ctx, quizID, ownerID)
	if err != nil {
		return err
	}
	if q.Question(questionID) == nil {
		return ErrPerguntaNaoEncontrada
	}
	if err := uc.questions.Delete(ctx, questionID); err != nil {
		return err
	}

	order := 0
	for _, rest := range q.Ordered() {
		if rest.ID == questionID {
			continue
		}
		order++
		if rest.SortOrder == order {
			continue
		}
		rest.SortOrder = order
		if err := uc.questions.Update(ctx, &rest); err != nil {
			return err
		}
	}
	return nil
}

// ReorderQuestions grava a nova ordem das perguntas. ids deve conter todas, sem repetição.
func (uc *QuestionUseCases) ReorderQuestions(ctx context.Context, quizID, ownerID string, ids []string) ([]quiz.Question, error) {
	q, err := uc.draft(ctx, quizID, ownerID)
	if err != nil {
		return nil, err
	}
	ordered, err := q.Reorder(ids)
	if err != nil {
		return nil, err
	}
	if err := uc.questions.Reorder(ctx, q.ID, ordered); err != nil {
		return nil, err
	}
	return ordered, nil
}
