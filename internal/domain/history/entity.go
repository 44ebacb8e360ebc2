package history

import (
	"time"

	"quizarena/internal/domain/game"

	"github.com/google/uuid"
)

// PreviousGame é o registro imutável de uma sessão concluída.
type PreviousGame struct {
	ID          string    `json:"id"`
	SessionCode string    `json:"sessionCode"`
	QuizID      string    `json:"quizId"`
	QuizTitle   string    `json:"quizTitle"`
	CompletedAt time.Time `json:"completedAt"`

	Participants []RankedParticipant `json:"participants,omitempty"`
}

// RankedParticipant é a linha congelada do ranking final.
type RankedParticipant struct {
	ID             string `json:"id"`
	PreviousGameID string `json:"previousGameId"`
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	Points         int    `json:"points"`
	Rank           int    `json:"rank"`
	IsGameMaster   bool   `json:"isGameMaster"`
}

// NewPreviousGame monta o registro de arquivo a partir da sessão e do ranking já calculado.
func NewPreviousGame(s game.Session, ranking []game.RankedParticipant, completedAt time.Time) *PreviousGame {
	pg := &PreviousGame{
		ID:          uuid.NewString(),
		SessionCode: s.Code,
		QuizID:      s.QuizID,
		QuizTitle:   s.QuizTitle,
		CompletedAt: completedAt,
	}
	for _, r := range ranking {
		pg.Participants = append(pg.Participants, RankedParticipant{
			ID:             uuid.NewString(),
			PreviousGameID: pg.ID,
			UserID:         r.UserID,
			Username:       r.Username,
			Points:         r.Points,
			Rank:           r.Rank,
			IsGameMaster:   r.IsGameMaster,
		})
	}
	return pg
}

// HasParticipant indica se o usuário jogou (ou mestrou) a partida.
func (pg *PreviousGame) HasParticipant(userID string) bool {
	for _, p := range pg.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
