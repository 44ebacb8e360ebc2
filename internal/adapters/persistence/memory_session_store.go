package persistence

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"quizarena/internal/domain/game"
	"quizarena/internal/ports"
)

var errSessaoInexistente = errors.New("sessão inexistente no store em memória")

// InMemorySessionStore implementa SessionStore usando memória RAM.
// Usado em testes e quando SESSION_STORE=memory (instância única, sem persistência).
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*game.Snapshot // por ID
	codes    map[string]string         // código -> ID
}

func NewInMemorySessionStore() ports.SessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*game.Snapshot),
		codes:    make(map[string]string),
	}
}

func (r *InMemorySessionStore) CreateSession(_ context.Context, s *game.Session, master game.Participant, questions []game.QuestionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codes[s.Code]; exists {
		return errors.New("código de sessão já em uso")
	}

	master.IsGameMaster = true
	master.IsCurrentTurn = false
	master.Points = 0
	master.JoinOrder = 1

	snap := &game.Snapshot{
		Session:      *s,
		Participants: []game.Participant{master},
		Questions:    make([]game.QuestionState, len(questions)),
	}
	for i, q := range questions {
		snap.Questions[i] = game.QuestionState{
			QuestionID:    q.QuestionID,
			Prompt:        q.Prompt,
			CorrectAnswer: q.CorrectAnswer,
			Points:        q.Points,
			SortOrder:     q.SortOrder,
		}
	}
	// Mesma ordem do SQLite: sort_order, depois question_id.
	sort.SliceStable(snap.Questions, func(i, j int) bool {
		a, b := snap.Questions[i], snap.Questions[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.QuestionID < b.QuestionID
	})
	r.sessions[s.ID] = snap
	r.codes[s.Code] = s.ID
	return nil
}

func (r *InMemorySessionStore) CodeExists(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.codes[code]
	return ok, nil
}

// LoadSnapshot devolve uma cópia profunda; alterações do chamador não vazam para o store.
func (r *InMemorySessionStore) LoadSnapshot(_ context.Context, code string) (*game.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codes[code]
	if !ok {
		return nil, nil // Não encontrado (sem erro)
	}
	src := r.sessions[id]
	out := &game.Snapshot{
		Session:      src.Session,
		Participants: append([]game.Participant(nil), src.Participants...),
		Questions:    append([]game.QuestionState(nil), src.Questions...),
	}
	return out, nil
}

func (r *InMemorySessionStore) AddParticipant(_ context.Context, sessionID string, p game.Participant) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		for _, existing := range s.Participants {
			if existing.UserID == p.UserID {
				return errors.New("participante já está na sessão")
			}
		}
		next := 0
		for _, existing := range s.Participants {
			if existing.JoinOrder > next {
				next = existing.JoinOrder
			}
		}
		p.JoinOrder = next + 1
		p.IsCurrentTurn = false
		p.Points = 0
		s.Participants = append(s.Participants, p)
		return nil
	})
}

func (r *InMemorySessionStore) RemoveParticipant(_ context.Context, sessionID, userID string) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		kept := s.Participants[:0]
		for _, p := range s.Participants {
			if p.UserID != userID {
				kept = append(kept, p)
			}
		}
		s.Participants = kept
		return nil
	})
}

func (r *InMemorySessionStore) SetStarted(_ context.Context, sessionID string) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		s.Session.Started = true
		return nil
	})
}

func (r *InMemorySessionStore) SetCompleted(_ context.Context, sessionID string) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		s.Session.Completed = true
		return nil
	})
}

func (r *InMemorySessionStore) SetCurrentTurn(_ context.Context, sessionID, userID string) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		for i := range s.Participants {
			s.Participants[i].IsCurrentTurn = s.Participants[i].UserID == userID
		}
		return nil
	})
}

func (r *InMemorySessionStore) SelectQuestion(_ context.Context, sessionID, questionID string) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		for i := range s.Questions {
			s.Questions[i].IsCurrentQuestion = s.Questions[i].QuestionID == questionID
		}
		return nil
	})
}

func (r *InMemorySessionStore) SetRobbingAllowed(_ context.Context, sessionID, questionID string, allowed bool) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		if q, ok := s.Question(questionID); ok {
			q.IsRobbingAllowed = allowed
		}
		return nil
	})
}

func (r *InMemorySessionStore) RecordCorrectAnswer(_ context.Context, sessionID, questionID, userID string, points int) error {
	return r.mutate(sessionID, func(s *game.Snapshot) error {
		q, ok := s.Question(questionID)
		if !ok {
			return game.ErrQuestionNotFound
		}
		if q.IsAnswered {
			return game.ErrAlreadyAnswered
		}
		q.IsAnswered = true
		q.IsCurrentQuestion = false
		q.IsRobbingAllowed = false
		q.AnsweredByUserID = userID

		if p, ok := s.Participant(userID); ok {
			p.Points += points
		}
		return nil
	})
}

func (r *InMemorySessionStore) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		delete(r.codes, s.Session.Code)
		delete(r.sessions, sessionID)
	}
	return nil
}

// mutate aplica fn sob o lock de escrita e atualiza UpdatedAt quando fn não falha.
func (r *InMemorySessionStore) mutate(sessionID string, fn func(s *game.Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return errSessaoInexistente
	}
	if err := fn(s); err != nil {
		return err
	}
	s.Session.UpdatedAt = time.Now()
	return nil
}
