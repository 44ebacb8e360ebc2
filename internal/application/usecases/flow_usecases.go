package usecases

import (
	"context"
	"fmt"
	"time"

	"quizarena/internal/domain/game"
	"quizarena/internal/infra/logger"
	"quizarena/internal/infra/metrics"
	"quizarena/internal/ports"
)

// FlowOutcome descreve o que um evento produziu.
type FlowOutcome struct {
	// Message é o nome enviado aos assinantes; vazio quando nada foi publicado.
	Message string
	Payload game.Payload
	// Correct só é preenchido para AnswerSubmitted e QuestionRobbed.
	Correct *bool
}

// Broadcasted indica se o evento gerou uma mensagem para a sessão.
func (o *FlowOutcome) Broadcasted() bool {
	return o.Message != ""
}

// FlowUseCases aplica os eventos de jogo sobre as sessões ao vivo.
type FlowUseCases struct {
	store    ports.SessionStore
	userRepo ports.UserRepository
	hub      ports.RealTimeHub
	archiver ports.Archiver
	locker   ports.SessionLocker
	metrics  *metrics.Metrics
	gated    map[game.EventKind]bool
}

type FlowDeps struct {
	Store    ports.SessionStore
	UserRepo ports.UserRepository
	Hub      ports.RealTimeHub
	Archiver ports.Archiver
	Locker   ports.SessionLocker
	Metrics  *metrics.Metrics
	// SerializeAll trava todos os eventos por sessão; false trava só resposta e roubo.
	SerializeAll bool
}

func NewFlowUseCases(d FlowDeps) *FlowUseCases {
	gated := map[game.EventKind]bool{
		game.EventAnswerSubmitted: true,
		game.EventQuestionRobbed:  true,
	}
	if d.SerializeAll {
		for _, k := range game.AllEventKinds {
			gated[k] = true
		}
	}
	return &FlowUseCases{
		store:    d.Store,
		userRepo: d.UserRepo,
		hub:      d.Hub,
		archiver: d.Archiver,
		locker:   d.Locker,
		metrics:  d.Metrics,
		gated:    gated,
	}
}

// Handle processa um evento do início ao fim: lock (se aplicável), snapshot, validação,
// mutação, persistência e notificação.
func (uc *FlowUseCases) Handle(ctx context.Context, ev game.Event) (*FlowOutcome, error) {
	started := time.Now()

	if uc.gated[ev.Kind] {
		unlock, err := uc.locker.Lock(ctx, ev.SessionCode)
		if err != nil {
			return nil, fmt.Errorf("aguardar lock da sessão: %w", err)
		}
		defer unlock()
		uc.metrics.ObserveLockWait(string(ev.Kind), time.Since(started))
	}

	out, err := uc.dispatch(ctx, ev)
	uc.metrics.ObserveEvent(string(ev.Kind), outcomeLabel(err), started)

	if err != nil {
		if game.IsValidationError(err) || game.IsRequiredFieldError(err) {
			logger.Debug("Evento rejeitado", "evento", ev.Kind, "sessao", ev.SessionCode, "usuario", ev.ActingUserID, "erro", err)
		} else {
			logger.Error("Falha ao processar evento", "evento", ev.Kind, "sessao", ev.SessionCode, "usuario", ev.ActingUserID, "erro", err)
		}
		return nil, err
	}

	logger.Info("Evento processado",
		"evento", ev.Kind,
		"sessao", ev.SessionCode,
		"usuario", ev.ActingUserID,
		"mensagem", out.Message,
		"duracao", time.Since(started),
	)
	return out, nil
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case game.IsRequiredFieldError(err):
		return "required_field"
	case game.IsValidationError(err):
		return string(game.CodeOf(err))
	default:
		return "error"
	}
}

func (uc *FlowUseCases) dispatch(ctx context.Context, ev game.Event) (*FlowOutcome, error) {
	snap, err := uc.store.LoadSnapshot(ctx, ev.SessionCode)
	if err != nil {
		return nil, fmt.Errorf("carregar sessão: %w", err)
	}
	if err := game.Validate(snap, ev); err != nil {
		return nil, err
	}

	switch ev.Kind {
	case game.EventPlayerJoined:
		return uc.playerJoined(ctx, snap, ev)
	case game.EventGameStarted:
		return uc.gameStarted(ctx, snap, ev)
	case game.EventQuestionSelected:
		return uc.questionSelected(ctx, snap, ev)
	case game.EventAnswerSubmitted:
		return uc.answer(ctx, snap, ev, false)
	case game.EventQuestionRobbed:
		return uc.answer(ctx, snap, ev, true)
	case game.EventPlayerLeft:
		return uc.playerLeft(ctx, snap, ev)
	case game.EventGameCancelled:
		return uc.gameCancelled(ctx, snap, ev)
	case game.EventNextPlayerSelected:
		return uc.nextPlayerSelected(ctx, snap, ev)
	case game.EventQuestionRobbingIsAllowed:
		return uc.allowRobbing(ctx, snap, ev)
	}
	return nil, fmt.Errorf("evento desconhecido: %q", ev.Kind)
}

func (uc *FlowUseCases) playerJoined(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	payload := game.Payload{SessionCode: snap.Session.Code, UserID: ev.UserID}

	// Entrar de novo não duplica o participante, apenas renotifica.
	if p, ok := snap.Participant(ev.UserID); ok {
		payload.Username = p.Username
		return uc.publish(ctx, string(game.EventPlayerJoined), payload, nil)
	}

	u, err := uc.userRepo.FindByID(ctx, ev.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}

	p := game.Participant{UserID: u.ID, Username: u.Username, JoinedAt: time.Now()}
	if err := uc.store.AddParticipant(ctx, snap.Session.ID, p); err != nil {
		return nil, fmt.Errorf("adicionar participante: %w", err)
	}

	payload.Username = u.Username
	return uc.publish(ctx, string(game.EventPlayerJoined), payload, nil)
}

func (uc *FlowUseCases) gameStarted(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	// Sem jogador elegível a sessão fica como estava.
	first, err := game.SelectNext(snap.Participants, "")
	if err != nil {
		return nil, err
	}
	if err := uc.store.SetCurrentTurn(ctx, snap.Session.ID, first.UserID); err != nil {
		return nil, err
	}
	if err := uc.store.SetStarted(ctx, snap.Session.ID); err != nil {
		return nil, err
	}

	return uc.publish(ctx, string(game.EventGameStarted), game.Payload{
		SessionCode:   snap.Session.Code,
		UserID:        first.UserID,
		CurrentPlayer: first.Username,
	}, nil)
}

func (uc *FlowUseCases) questionSelected(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	if err := uc.store.SelectQuestion(ctx, snap.Session.ID, ev.QuestionID); err != nil {
		return nil, err
	}

	payload := game.Payload{
		SessionCode: snap.Session.Code,
		UserID:      ev.ActingUserID,
		QuestionID:  ev.QuestionID,
	}
	if cur, ok := snap.CurrentPlayer(); ok {
		payload.CurrentPlayer = cur.Username
	}
	return uc.publish(ctx, string(game.EventQuestionSelected), payload, nil)
}

// answer trata AnswerSubmitted e QuestionRobbed; a única diferença é a escalada para roubo
// numa primeira resposta errada, que só existe para AnswerSubmitted.
func (uc *FlowUseCases) answer(ctx context.Context, snap *game.Snapshot, ev game.Event, robbing bool) (*FlowOutcome, error) {
	q, _ := snap.Question(ev.QuestionID)
	actor, _ := snap.Participant(ev.ActingUserID)
	correct := game.AnswerMatches(ev.Answer, q.CorrectAnswer)

	payload := game.Payload{
		SessionCode: snap.Session.Code,
		UserID:      actor.UserID,
		Username:    actor.Username,
		QuestionID:  q.QuestionID,
	}

	if !correct {
		payload.Answer = ev.Answer
		if !robbing && !q.IsRobbingAllowed {
			if err := uc.store.SetRobbingAllowed(ctx, snap.Session.ID, q.QuestionID, true); err != nil {
				return nil, err
			}
			return uc.publish(ctx, string(game.EventQuestionRobbingIsAllowed), payload, &correct)
		}
		return uc.publish(ctx, game.MessageQuestionAnsweredWrong, payload, &correct)
	}

	if err := uc.store.RecordCorrectAnswer(ctx, snap.Session.ID, q.QuestionID, actor.UserID, q.Points); err != nil {
		return nil, err
	}
	payload.Points = q.Points

	// A vez segue a partir de quem acertou.
	next, err := game.SelectNext(snap.Participants, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := uc.store.SetCurrentTurn(ctx, snap.Session.ID, next.UserID); err != nil {
		return nil, err
	}
	payload.CurrentPlayer = next.Username

	if snap.UnansweredCount() == 1 {
		return uc.complete(ctx, snap.Session.Code, payload, &correct)
	}

	message := game.MessageQuestionAnswered
	if robbing {
		message = string(game.EventQuestionRobbed)
	}
	return uc.publish(ctx, message, payload, &correct)
}

// complete encerra a sessão: marca concluída, ranqueia a partir do estado recarregado,
// arquiva e notifica GameEnded.
func (uc *FlowUseCases) complete(ctx context.Context, code string, payload game.Payload, correct *bool) (*FlowOutcome, error) {
	fresh, err := uc.store.LoadSnapshot(ctx, code)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, game.ErrSessionNotFound
	}

	if err := uc.store.SetCompleted(ctx, fresh.Session.ID); err != nil {
		return nil, err
	}
	fresh.Session.Completed = true

	ranking := game.Rank(fresh.Participants)
	if _, err := uc.archiver.ArchiveSession(ctx, fresh, ranking); err != nil {
		return nil, err
	}

	payload.CurrentPlayer = ""
	payload.Results = ranking
	payload.Completed = true
	return uc.publish(ctx, game.MessageGameEnded, payload, correct)
}

func (uc *FlowUseCases) playerLeft(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	leaving, _ := snap.Participant(ev.UserID)
	departed := *leaving

	if err := uc.store.RemoveParticipant(ctx, snap.Session.ID, departed.UserID); err != nil {
		return nil, err
	}

	payload := game.Payload{
		SessionCode: snap.Session.Code,
		UserID:      departed.UserID,
		Username:    departed.Username,
	}

	if departed.IsCurrentTurn {
		// Recarrega: a lista antiga ainda contém quem saiu.
		fresh, err := uc.store.LoadSnapshot(ctx, snap.Session.Code)
		if err != nil {
			return nil, err
		}
		if fresh != nil && game.CountPlayers(fresh.Participants) > 0 {
			next, err := game.SelectAfterDeparture(fresh.Participants, departed.JoinOrder)
			if err != nil {
				return nil, err
			}
			if err := uc.store.SetCurrentTurn(ctx, fresh.Session.ID, next.UserID); err != nil {
				return nil, err
			}
			payload.CurrentPlayer = next.Username
		}
	}

	return uc.publish(ctx, string(game.EventPlayerLeft), payload, nil)
}

func (uc *FlowUseCases) gameCancelled(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	if err := uc.store.DeleteSession(ctx, snap.Session.ID); err != nil {
		return nil, err
	}
	return uc.publish(ctx, string(game.EventGameCancelled), game.Payload{
		SessionCode: snap.Session.Code,
		UserID:      ev.ActingUserID,
	}, nil)
}

func (uc *FlowUseCases) nextPlayerSelected(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	if len(snap.Participants) <= 1 {
		return &FlowOutcome{}, nil
	}

	after := ""
	if cur, ok := snap.CurrentPlayer(); ok {
		after = cur.UserID
	}
	next, err := game.SelectNext(snap.Participants, after)
	if err != nil {
		return nil, err
	}
	if err := uc.store.SetCurrentTurn(ctx, snap.Session.ID, next.UserID); err != nil {
		return nil, err
	}

	return uc.publish(ctx, string(game.EventNextPlayerSelected), game.Payload{
		SessionCode:   snap.Session.Code,
		UserID:        next.UserID,
		CurrentPlayer: next.Username,
	}, nil)
}

func (uc *FlowUseCases) allowRobbing(ctx context.Context, snap *game.Snapshot, ev game.Event) (*FlowOutcome, error) {
	cur, _ := snap.CurrentQuestion()
	if err := uc.store.SetRobbingAllowed(ctx, snap.Session.ID, cur.QuestionID, true); err != nil {
		return nil, err
	}
	return uc.publish(ctx, string(game.EventQuestionRobbingIsAllowed), game.Payload{
		SessionCode: snap.Session.Code,
		QuestionID:  cur.QuestionID,
	}, nil)
}

// publish envia a mensagem à sessão. A mutação já persistida não é desfeita se a entrega falhar.
func (uc *FlowUseCases) publish(ctx context.Context, message string, payload game.Payload, correct *bool) (*FlowOutcome, error) {
	if err := uc.hub.BroadcastToSession(ctx, payload.SessionCode, message, payload); err != nil {
		logger.Error("Falha ao notificar sessão", "sessao", payload.SessionCode, "mensagem", message, "erro", err)
		return nil, game.ErrBroadcastFailed
	}
	return &FlowOutcome{Message: message, Payload: payload, Correct: correct}, nil
}
