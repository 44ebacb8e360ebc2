package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"

	"quizarena/internal/domain/history"
	"quizarena/internal/domain/quiz"
	"quizarena/internal/domain/user"
)

var errFalhaInjetada = errors.New("falha injetada")

type sentMessage struct {
	Session string
	Event   string
	Payload interface{}
}

// fakeHub grava cada mensagem; com fail ligado toda entrega falha.
type fakeHub struct {
	mu   sync.Mutex
	sent []sentMessage
	fail bool
}

func (h *fakeHub) BroadcastToSession(_ context.Context, sessionCode, event string, payload interface{}) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fail {
		return errFalhaInjetada
	}
	h.sent = append(h.sent, sentMessage{Session: sessionCode, Event: event, Payload: payload})
	return nil
}

func (h *fakeHub) events() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.sent))
	for i, m := range h.sent {
		out[i] = m.Event
	}
	return out
}

func (h *fakeHub) setFail(v bool) {
	h.mu.Lock()
	h.fail = v
	h.mu.Unlock()
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*user.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id], nil
}

type fakeHistoryRepo struct {
	mu    sync.Mutex
	saved []*history.PreviousGame
	err   error
}

func (r *fakeHistoryRepo) SaveHistory(_ context.Context, pg *history.PreviousGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, pg)
	return nil
}

func (r *fakeHistoryRepo) ListByUserID(_ context.Context, userID string, limit, offset int) ([]*history.PreviousGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*history.PreviousGame
	for _, pg := range r.saved {
		if pg.HasParticipant(userID) {
			out = append(out, pg)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeHistoryRepo) GetByID(_ context.Context, id string) (*history.PreviousGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, pg := range r.saved {
		if pg.ID == id {
			return pg, nil
		}
	}
	return nil, nil
}

func (r *fakeHistoryRepo) GetQuizStats(_ context.Context, quizID string) (*history.QuizStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := history.Summarize(quizID, r.saved)
	return &stats, nil
}

type fakeQuizRepo struct {
	quizzes map[string]*quiz.Quiz
}

func newFakeQuizRepo(qs ...*quiz.Quiz) *fakeQuizRepo {
	r := &fakeQuizRepo{quizzes: make(map[string]*quiz.Quiz)}
	for _, q := range qs {
		r.quizzes[q.ID] = q
	}
	return r
}

func (r *fakeQuizRepo) Save(_ context.Context, q *quiz.Quiz) error {
	r.quizzes[q.ID] = q
	return nil
}

func (r *fakeQuizRepo) FindByID(_ context.Context, id string) (*quiz.Quiz, error) {
	return r.quizzes[id], nil
}

func (r *fakeQuizRepo) FindByOwnerID(_ context.Context, ownerID string) ([]*quiz.Quiz, error) {
	var out []*quiz.Quiz
	for _, q := range r.quizzes {
		if q.OwnerID == ownerID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) Delete(_ context.Context, id string) error {
	delete(r.quizzes, id)
	return nil
}

func (r *fakeQuizRepo) Update(_ context.Context, q *quiz.Quiz) error {
	r.quizzes[q.ID] = q
	return nil
}

// fakeQuestionRepo grava as perguntas direto no quiz guardado em fakeQuizRepo.
type fakeQuestionRepo struct {
	quizzes  *fakeQuizRepo
	reorders int
}

func (r *fakeQuestionRepo) Save(_ context.Context, q *quiz.Question) error {
	owner := r.quizzes.quizzes[q.QuizID]
	owner.Questions = append(owner.Questions, *q)
	return nil
}

func (r *fakeQuestionRepo) Update(_ context.Context, q *quiz.Question) error {
	owner := r.quizzes.quizzes[q.QuizID]
	for i := range owner.Questions {
		if owner.Questions[i].ID == q.ID {
			owner.Questions[i] = *q
		}
	}
	return nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id string) error {
	for _, q := range r.quizzes.quizzes {
		kept := q.Questions[:0]
		for _, question := range q.Questions {
			if question.ID != id {
				kept = append(kept, question)
			}
		}
		q.Questions = kept
	}
	return nil
}

func (r *fakeQuestionRepo) Reorder(_ context.Context, quizID string, questions []quiz.Question) error {
	r.reorders++
	owner := r.quizzes.quizzes[quizID]
	for _, q := range questions {
		for i := range owner.Questions {
			if owner.Questions[i].ID == q.ID {
				owner.Questions[i].SortOrder = q.SortOrder
			}
		}
	}
	return nil
}

// countingLocker conta quantas vezes o lock foi pedido.
type countingLocker struct {
	mu    sync.Mutex
	calls int
}

func (l *countingLocker) Lock(_ context.Context, _ string) (func(), error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return func() {}, nil
}

func (l *countingLocker) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}
