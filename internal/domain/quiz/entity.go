package quiz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status de um quiz. Apenas Published pode originar sessões ao vivo.
const (
	Draft     = "DRAFT"
	Published = "PUBLISHED"
)

// MaxTitleLen limita o título exibido no lobby e nos relatórios.
const MaxTitleLen = 120

var (
	ErrSemTitulo        = errors.New("o título é obrigatório")
	ErrTituloLongo      = fmt.Errorf("o título deve ter no máximo %d caracteres", MaxTitleLen)
	ErrSomenteRascunho  = errors.New("apenas quizzes em rascunho podem ser alterados")
	ErrQuizVazio        = errors.New("o quiz precisa de ao menos uma pergunta para ser publicado")
	ErrPerguntaInvalida = errors.New("pergunta inválida")
	ErrOrdemInvalida    = errors.New("a nova ordem deve listar cada pergunta do quiz exatamente uma vez")
)

// Quiz é o banco de perguntas que o mestre do jogo usa para abrir sessões.
type Quiz struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Questions   []Question `json:"questions,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func NewQuiz(ownerID, title, description string) (*Quiz, error) {
	title, err := cleanTitle(title)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Quiz{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       title,
		Description: strings.TrimSpace(description),
		Status:      Draft,
		Questions:   []Question{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return "", ErrSemTitulo
	case len([]rune(title)) > MaxTitleLen:
		return "", ErrTituloLongo
	}
	return title, nil
}

func (q *Quiz) OwnedBy(userID string) bool { return q.OwnerID == userID }

// Editable falha se o quiz já foi publicado: sessões em andamento copiam as perguntas.
func (q *Quiz) Editable() error {
	if q.Status != Draft {
		return ErrSomenteRascunho
	}
	return nil
}

func (q *Quiz) Rename(title, description string) error {
	if err := q.Editable(); err != nil {
		return err
	}
	title, err := cleanTitle(title)
	if err != nil {
		return err
	}
	q.Title = title
	q.Description = strings.TrimSpace(description)
	q.UpdatedAt = time.Now()
	return nil
}

// Publish congela o quiz. O erro indica qual pergunta (1-based) está inválida.
func (q *Quiz) Publish() error {
	if err := q.Editable(); err != nil {
		return err
	}
	if len(q.Questions) == 0 {
		return ErrQuizVazio
	}
	for i := range q.Questions {
		if err := q.Questions[i].Validate(); err != nil {
			return fmt.Errorf("%w: pergunta %d: %v", ErrPerguntaInvalida, i+1, err)
		}
	}
	q.Status = Published
	q.UpdatedAt = time.Now()
	return nil
}

// Playable indica se o quiz pode abrir uma sessão.
func (q *Quiz) Playable() bool {
	return q.Status == Published && len(q.Questions) > 0
}

// TotalPoints é a pontuação máxima que uma sessão deste quiz distribui.
func (q *Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// Ordered devolve uma cópia das perguntas por SortOrder, sem alterar q.
func (q *Quiz) Ordered() []Question {
	out := slices.Clone(q.Questions)
	slices.SortStableFunc(out, func(a, b Question) int { return a.SortOrder - b.SortOrder })
	return out
}

// Question devolve a pergunta do quiz com o ID dado, ou nil.
func (q *Quiz) Question(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}

// Reorder aplica a ordem dada por ids (SortOrder 1..n) e devolve as perguntas nessa ordem.
// ids precisa ser uma permutação exata das perguntas atuais.
func (q *Quiz) Reorder(ids []string) ([]Question, error) {
	if err := q.Editable(); err != nil {
		return nil, err
	}
	if len(ids) != len(q.Questions) {
		return nil, ErrOrdemInvalida
	}

	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if q.Question(id) == nil || seen[id] {
			return nil, ErrOrdemInvalida
		}
		seen[id] = true
	}

	out := make([]Question, 0, len(ids))
	now := time.Now()
	for i, id := range ids {
		target := q.Question(id)
		target.SortOrder = i + 1
		target.UpdatedAt = now
		out = append(out, *target)
	}
	q.UpdatedAt = now
	return out, nil
}
