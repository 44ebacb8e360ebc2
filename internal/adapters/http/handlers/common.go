package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"quizarena/internal/adapters/http/middlewares"
	"quizarena/internal/application/usecases"
	"quizarena/internal/domain/game"
	"quizarena/internal/domain/quiz"
	"quizarena/internal/domain/user"
	"quizarena/internal/infra/logger"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse é o corpo padrão de erro da API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var validate = newValidator()

// newValidator reporta os campos pelo nome usado no JSON.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate lê o JSON do corpo e aplica as tags `validate`.
// Um campo obrigatório ausente vira game.RequiredFieldError com o nome JSON do campo.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errJSONInvalido
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &game.RequiredFieldError{Field: verrs[0].Field()}
		}
		return err
	}
	return nil
}

var errJSONInvalido = errors.New("JSON inválido")

func userIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(middlewares.UserIDKey).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Falha ao escrever resposta", "erro", err)
	}
}

// writeError traduz erros de domínio e de casos de uso para status HTTP.
func writeError(w http.ResponseWriter, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Erro interno", "erro", err)
		msg = "Erro interno do servidor"
	}
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

func classify(err error) (int, string) {
	var required *game.RequiredFieldError
	if errors.As(err, &required) {
		return http.StatusBadRequest, "required_field"
	}

	var verr *game.ValidationError
	if errors.As(err, &verr) {
		switch verr.Code {
		case game.CodeSessionNotFound, game.CodeQuestionNotFound:
			return http.StatusNotFound, string(verr.Code)
		case game.CodeBroadcastFailed:
			return http.StatusBadGateway, string(verr.Code)
		default:
			return http.StatusConflict, string(verr.Code)
		}
	}

	switch {
	case errors.Is(err, errJSONInvalido),
		errors.Is(err, user.ErrUsernameObrigatorio),
		errors.Is(err, user.ErrEmailInvalido),
		errors.Is(err, user.ErrSenhaCurta),
		errors.Is(err, usecases.ErrFiltroInvalido),
		errors.Is(err, quiz.ErrSemTitulo),
		errors.Is(err, quiz.ErrTituloLongo),
		errors.Is(err, quiz.ErrEnunciadoObrigatorio),
		errors.Is(err, quiz.ErrRespostaObrigatoria),
		errors.Is(err, quiz.ErrPontosInvalidos),
		errors.Is(err, quiz.ErrOrdemInvalida):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, usecases.ErrCredenciaisInvalidas):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, usecases.ErrNaoAutorizado):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, usecases.ErrQuizNaoEncontrado),
		errors.Is(err, usecases.ErrPerguntaNaoEncontrada),
		errors.Is(err, usecases.ErrUsuarioNaoEncontrado),
		errors.Is(err, usecases.ErrHistoricoNaoEncontrado):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, usecases.ErrEmailDuplicado),
		errors.Is(err, usecases.ErrUsernameDuplicado),
		errors.Is(err, usecases.ErrQuizNaoPublicado),
		errors.Is(err, quiz.ErrSomenteRascunho),
		errors.Is(err, quiz.ErrQuizVazio),
		errors.Is(err, quiz.ErrPerguntaInvalida):
		return http.StatusConflict, "conflict"
	}
	return http.StatusInternalServerError, "internal_error"
}
