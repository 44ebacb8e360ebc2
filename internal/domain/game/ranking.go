package game

import (
	"sort"
	"strings"
)

// Rank ordena os participantes para o resultado final e atribui posições 1..N.
//
// Regra única de desempate, usada tanto no fim natural do jogo quanto no arquivamento:
// pontos (desc), depois username sem diferenciar caixa (asc), depois ID do usuário (asc).
func Rank(participants []Participant) []RankedParticipant {
	sorted := make([]Participant, len(participants))
	copy(sorted, participants)

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		an, bn := strings.ToLower(a.Username), strings.ToLower(b.Username)
		if an != bn {
			return an < bn
		}
		return a.UserID < b.UserID
	})

	out := make([]RankedParticipant, 0, len(sorted))
	for i, p := range sorted {
		out = append(out, RankedParticipant{
			UserID:       p.UserID,
			Username:     p.Username,
			Points:       p.Points,
			Rank:         i + 1,
			IsGameMaster: p.IsGameMaster,
		})
	}
	return out
}
