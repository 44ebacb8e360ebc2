package quiz

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEnunciadoObrigatorio = errors.New("o enunciado (prompt) é obrigatório")
	ErrRespostaObrigatoria  = errors.New("a resposta correta é obrigatória")
	ErrPontosInvalidos      = errors.New("a pergunta deve valer pelo menos 1 ponto")
)

// Question representa uma pergunta de resposta aberta com valor em pontos.
type Question struct {
	ID        string    `json:"id"`
	QuizID    string    `json:"quizId"`
	Prompt    string    `json:"prompt"` // Enunciado
	Answer    string    `json:"answer,omitempty"`
	Points    int       `json:"points"`
	SortOrder int       `json:"sortOrder"` // Ordem na lista
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewQuestion cria uma nova pergunta.
func NewQuestion(quizID, prompt, answer string, points, order int) (*Question, error) {
	q := &Question{
		ID:        uuid.NewString(),
		QuizID:    quizID,
		Prompt:    strings.TrimSpace(prompt),
		Answer:    strings.TrimSpace(answer),
		Points:    points,
		SortOrder: order,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate verifica se a pergunta é válida.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return ErrEnunciadoObrigatorio
	}
	if q.Answer == "" {
		return ErrRespostaObrigatoria
	}
	if q.Points < 1 {
		return ErrPontosInvalidos
	}
	return nil
}

// Update substitui enunciado, resposta e pontos, revalidando a pergunta.
func (q *Question) Update(prompt, answer string, points int) error {
	updated := *q
	updated.Prompt = strings.TrimSpace(prompt)
	updated.Answer = strings.TrimSpace(answer)
	updated.Points = points
	if err := updated.Validate(); err != nil {
		return err
	}
	updated.UpdatedAt = time.Now()
	*q = updated
	return nil
}
