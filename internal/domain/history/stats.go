package history

import "time"

// QuizStats agrega as partidas arquivadas de um quiz. O mestre do jogo não entra nas médias.
type QuizStats struct {
	QuizID        string     `json:"quizId"`
	GamesPlayed   int        `json:"gamesPlayed"`
	Players       int        `json:"players"`
	AveragePoints float64    `json:"averagePoints"`
	TopPoints     int        `json:"topPoints"`
	LastPlayedAt  *time.Time `json:"lastPlayedAt,omitempty"`
}

// Summarize calcula as estatísticas a partir das partidas já carregadas.
// Partidas de outros quizzes são ignoradas.
func Summarize(quizID string, games []*PreviousGame) QuizStats {
	stats := QuizStats{QuizID: quizID}
	total := 0
	for _, pg := range games {
		if pg.QuizID != quizID {
			continue
		}
		stats.GamesPlayed++
		if stats.LastPlayedAt == nil || pg.CompletedAt.After(*stats.LastPlayedAt) {
			at := pg.CompletedAt
			stats.LastPlayedAt = &at
		}
		for _, p := range pg.Participants {
			if p.IsGameMaster {
				continue
			}
			stats.Players++
			total += p.Points
			stats.TopPoints = max(stats.TopPoints, p.Points)
		}
	}
	if stats.Players > 0 {
		stats.AveragePoints = float64(total) / float64(stats.Players)
	}
	return stats
}
