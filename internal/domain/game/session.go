package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CodeLength é o tamanho fixo do código compartilhável da sessão.
const CodeLength = 6

// Session representa uma partida ao vivo identificada por um código curto.
type Session struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	QuizID    string    `json:"quizId"`
	QuizTitle string    `json:"quizTitle"`
	Started   bool      `json:"started"`
	Completed bool      `json:"completed"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Participant é um jogador (ou o mestre do jogo) dentro de uma sessão.
type Participant struct {
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
	IsGameMaster  bool      `json:"isGameMaster"`
	Points        int       `json:"points"`
	JoinOrder     int       `json:"joinOrder"`
	JoinedAt      time.Time `json:"joinedAt"`
}

// QuestionState guarda o progresso de uma pergunta do quiz dentro da sessão.
// Os campos de conteúdo (Prompt, CorrectAnswer, Points) são cópias da pergunta original.
type QuestionState struct {
	QuestionID        string `json:"questionId"`
	Prompt            string `json:"prompt"`
	CorrectAnswer     string `json:"-"` // Nunca enviado aos clientes
	Points            int    `json:"points"`
	SortOrder         int    `json:"sortOrder"`
	IsAnswered        bool   `json:"isAnswered"`
	IsCurrentQuestion bool   `json:"isCurrentQuestion"`
	IsRobbingAllowed  bool   `json:"isRobbingAllowed"`
	AnsweredByUserID  string `json:"answeredByUserId,omitempty"`
}

// Snapshot é a visão consistente de uma sessão carregada do store para um único evento.
// Participants vem em ordem de entrada; Questions em ordem do quiz.
type Snapshot struct {
	Session      Session         `json:"session"`
	Participants []Participant   `json:"participants"`
	Questions    []QuestionState `json:"questions"`
}

// NewSession cria uma sessão ainda não iniciada para o quiz informado.
func NewSession(code, quizID, quizTitle, createdBy string) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Code:      code,
		QuizID:    quizID,
		QuizTitle: quizTitle,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCode gera um código de sessão com CodeLength caracteres maiúsculos.
func NewCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:CodeLength])
}

// Participant busca um participante pelo ID do usuário.
func (s *Snapshot) Participant(userID string) (*Participant, bool) {
	for i := range s.Participants {
		if s.Participants[i].UserID == userID {
			return &s.Participants[i], true
		}
	}
	return nil, false
}

// GameMaster retorna o participante que criou a sessão.
func (s *Snapshot) GameMaster() (*Participant, bool) {
	for i := range s.Participants {
		if s.Participants[i].IsGameMaster {
			return &s.Participants[i], true
		}
	}
	return nil, false
}

// CurrentPlayer retorna o participante com a vez, se houver.
func (s *Snapshot) CurrentPlayer() (*Participant, bool) {
	for i := range s.Participants {
		if s.Participants[i].IsCurrentTurn {
			return &s.Participants[i], true
		}
	}
	return nil, false
}

// Question busca o estado de uma pergunta da sessão.
func (s *Snapshot) Question(questionID string) (*QuestionState, bool) {
	for i := range s.Questions {
		if s.Questions[i].QuestionID == questionID {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// CurrentQuestion retorna a pergunta selecionada no momento, se houver.
func (s *Snapshot) CurrentQuestion() (*QuestionState, bool) {
	for i := range s.Questions {
		if s.Questions[i].IsCurrentQuestion {
			return &s.Questions[i], true
		}
	}
	return nil, false
}

// UnansweredCount conta as perguntas ainda não respondidas.
func (s *Snapshot) UnansweredCount() int {
	n := 0
	for _, q := range s.Questions {
		if !q.IsAnswered {
			n++
		}
	}
	return n
}

// IsGameMaster indica se o usuário é o mestre do jogo da sessão.
func (s *Snapshot) IsGameMaster(userID string) bool {
	gm, ok := s.GameMaster()
	return ok && gm.UserID == userID
}
