package game

import (
	"errors"
	"fmt"
)

// ErrorCode é o código estável de uma falha de validação.
type ErrorCode string

const (
	CodeSessionNotFound   ErrorCode = "session_not_found"
	CodeQuestionNotFound  ErrorCode = "question_not_found"
	CodeNotYourTurn       ErrorCode = "not_your_turn"
	CodeAlreadyAnswered   ErrorCode = "question_already_answered"
	CodeNotGameMaster     ErrorCode = "not_game_master"
	CodeNotParticipant    ErrorCode = "not_a_participant"
	CodeNoNextPlayer      ErrorCode = "no_next_player"
	CodeRobbingNotAllowed ErrorCode = "robbing_not_allowed"
	CodeAlreadyStarted    ErrorCode = "game_already_started"
	CodeIdentityMismatch  ErrorCode = "identity_mismatch"
	CodeQuestionOpen      ErrorCode = "question_not_answered"
	CodeNoQuestion        ErrorCode = "no_question_selected"
	CodeQuestionNotActive ErrorCode = "question_not_current"
	CodeBroadcastFailed   ErrorCode = "broadcast_failed"
	CodeMasterCannotLeave ErrorCode = "game_master_cannot_leave"
	CodeNotStarted        ErrorCode = "game_not_started"
	CodeMasterCannotPlay  ErrorCode = "game_master_cannot_answer"
)

// ValidationError é uma rejeição pelas regras do jogo. Pode ser exibida ao cliente.
type ValidationError struct {
	Code    ErrorCode
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RequiredFieldError indica que um identificador obrigatório não veio no payload.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("o campo %s é obrigatório", e.Field)
}

func newValidation(code ErrorCode, msg string) *ValidationError {
	return &ValidationError{Code: code, Message: msg}
}

var (
	ErrSessionNotFound   = newValidation(CodeSessionNotFound, "sessão não encontrada")
	ErrQuestionNotFound  = newValidation(CodeQuestionNotFound, "a pergunta não pertence a esta sessão")
	ErrNotYourTurn       = newValidation(CodeNotYourTurn, "não é a sua vez")
	ErrAlreadyAnswered   = newValidation(CodeAlreadyAnswered, "a pergunta já foi respondida")
	ErrNotGameMaster     = newValidation(CodeNotGameMaster, "apenas o mestre do jogo pode realizar esta ação")
	ErrNotParticipant    = newValidation(CodeNotParticipant, "o usuário não participa desta sessão")
	ErrNoNextPlayer      = newValidation(CodeNoNextPlayer, "não há próximo jogador disponível")
	ErrRobbingNotAllowed = newValidation(CodeRobbingNotAllowed, "o roubo não está liberado para esta pergunta")
	ErrAlreadyStarted    = newValidation(CodeAlreadyStarted, "o jogo já foi iniciado")
	ErrIdentityMismatch  = newValidation(CodeIdentityMismatch, "o usuário informado não corresponde ao usuário autenticado")
	ErrQuestionOpen      = newValidation(CodeQuestionOpen, "a pergunta atual ainda não foi respondida")
	ErrNoQuestion        = newValidation(CodeNoQuestion, "nenhuma pergunta selecionada")
	ErrQuestionNotActive = newValidation(CodeQuestionNotActive, "a pergunta não é a pergunta selecionada")
	ErrBroadcastFailed   = newValidation(CodeBroadcastFailed, "não foi possível entregar o evento aos participantes")
	ErrMasterCannotLeave = newValidation(CodeMasterCannotLeave, "o mestre do jogo não pode sair; cancele a partida")
	ErrNotStarted        = newValidation(CodeNotStarted, "o jogo ainda não foi iniciado")
	ErrMasterCannotPlay  = newValidation(CodeMasterCannotPlay, "o mestre do jogo conhece as respostas e não pode responder")
)

// IsValidationError informa se err (ou algo que ele embrulha) é uma falha de validação.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsRequiredFieldError informa se err é uma falha de campo obrigatório.
func IsRequiredFieldError(err error) bool {
	var r *RequiredFieldError
	return errors.As(err, &r)
}

// CodeOf retorna o código da falha de validação, ou "" se err não for uma.
func CodeOf(err error) ErrorCode {
	var v *ValidationError
	if errors.As(err, &v) {
		return v.Code
	}
	return ""
}
