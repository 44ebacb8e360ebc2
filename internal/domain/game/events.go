package game

// EventKind identifica um dos nove eventos do fluxo de jogo.
type EventKind string

const (
	EventPlayerJoined             EventKind = "PlayerJoined"
	EventGameStarted              EventKind = "GameStarted"
	EventQuestionSelected         EventKind = "QuestionSelected"
	EventAnswerSubmitted          EventKind = "AnswerSubmitted"
	EventQuestionRobbed           EventKind = "QuestionRobbed"
	EventPlayerLeft               EventKind = "PlayerLeft"
	EventGameCancelled            EventKind = "GameCancelled"
	EventNextPlayerSelected       EventKind = "NextPlayerSelected"
	EventQuestionRobbingIsAllowed EventKind = "QuestionRobbingIsAllowed"
)

// Nomes de mensagens que não correspondem a um evento de entrada.
const (
	MessageQuestionAnswered      = "QuestionAnswered"
	MessageQuestionAnsweredWrong = "QuestionAnsweredWrong"
	MessageGameEnded             = "GameEnded"
)

// AllEventKinds lista os eventos na ordem em que são documentados.
var AllEventKinds = []EventKind{
	EventPlayerJoined,
	EventGameStarted,
	EventQuestionSelected,
	EventAnswerSubmitted,
	EventQuestionRobbed,
	EventPlayerLeft,
	EventGameCancelled,
	EventNextPlayerSelected,
	EventQuestionRobbingIsAllowed,
}

// Event é um comando de entrada aplicado a uma sessão.
type Event struct {
	Kind         EventKind
	SessionCode  string
	ActingUserID string
	UserID       string // Usado por PlayerJoined e PlayerLeft (checagem de identidade)
	QuestionID   string
	Answer       string
}

// RankedParticipant é uma linha do resultado final.
type RankedParticipant struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	Points       int    `json:"points"`
	Rank         int    `json:"rank"`
	IsGameMaster bool   `json:"isGameMaster"`
}

// Payload é o corpo enviado aos assinantes da sessão.
type Payload struct {
	SessionCode   string              `json:"sessionCode"`
	UserID        string              `json:"userId,omitempty"`
	Username      string              `json:"username,omitempty"`
	QuestionID    string              `json:"questionId,omitempty"`
	Answer        string              `json:"answer,omitempty"`
	Points        int                 `json:"points,omitempty"`
	CurrentPlayer string              `json:"currentPlayer,omitempty"`
	Results       []RankedParticipant `json:"results,omitempty"`
	Completed     bool                `json:"completed,omitempty"`
}
