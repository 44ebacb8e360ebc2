package game

// SelectNext calcula o próximo jogador da vez, em ordem de entrada tratada como anel.
//
// Sem ninguém marcado como atual, escolhe o primeiro participante que não é mestre do jogo.
// Caso contrário percorre a lista a partir do participante seguinte a `after`, pulando o
// mestre do jogo e voltando ao início; o próprio `after` é o último candidato considerado.
// Retorna ErrNoNextPlayer quando não há candidatos.
func SelectNext(participants []Participant, after string) (Participant, error) {
	n := len(participants)
	start := -1
	if after != "" {
		for i, p := range participants {
			if p.UserID == after {
				start = i
				break
			}
		}
	}

	if start < 0 {
		for _, p := range participants {
			if !p.IsGameMaster {
				return p, nil
			}
		}
		return Participant{}, ErrNoNextPlayer
	}

	for step := 1; step <= n; step++ {
		p := participants[(start+step)%n]
		if !p.IsGameMaster {
			return p, nil
		}
	}
	return Participant{}, ErrNoNextPlayer
}

// SelectAfterDeparture escolhe quem assume a vez depois que o jogador da vez saiu.
// Continua o anel a partir da posição de entrada de quem saiu (departedOrder), já que
// ele não está mais na lista recarregada.
func SelectAfterDeparture(participants []Participant, departedOrder int) (Participant, error) {
	for _, p := range participants {
		if !p.IsGameMaster && p.JoinOrder > departedOrder {
			return p, nil
		}
	}
	return SelectNext(participants, "")
}

// CountPlayers conta os participantes elegíveis para a vez.
func CountPlayers(participants []Participant) int {
	n := 0
	for _, p := range participants {
		if !p.IsGameMaster {
			n++
		}
	}
	return n
}
