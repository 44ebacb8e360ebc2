package game

// snapshot de três participantes: gm (mestre), a e b. A vez é de a e a pergunta q1 está selecionada.
func newTestSnapshot() *Snapshot {
	return &Snapshot{
		Session: Session{ID: "s1", Code: "ABC123", Started: true},
		Participants: []Participant{
			{UserID: "gm", Username: "Mestre", IsGameMaster: true, JoinOrder: 0},
			{UserID: "a", Username: "Ana", IsCurrentTurn: true, JoinOrder: 1},
			{UserID: "b", Username: "Bruno", JoinOrder: 2},
		},
		Questions: []QuestionState{
			{QuestionID: "q1", Prompt: "Capital da França?", CorrectAnswer: "Paris", Points: 10, SortOrder: 0, IsCurrentQuestion: true},
			{QuestionID: "q2", Prompt: "2+2?", CorrectAnswer: "4", Points: 5, SortOrder: 1},
		},
	}
}
