package usecases

import (
	"context"
	"sync"
	"testing"

	"quizarena/internal/adapters/persistence"
	"quizarena/internal/domain/game"
	"quizarena/internal/domain/user"
	"quizarena/internal/infra/lock"
	"quizarena/internal/infra/metrics"
	"quizarena/internal/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCode = "ABC123"

type flowFixture struct {
	uc      *FlowUseCases
	store   ports.SessionStore
	hub     *fakeHub
	history *fakeHistoryRepo
	metrics *metrics.Metrics
	ctx     context.Context
}

func newFlowFixture(t *testing.T, locker ports.SessionLocker, serializeAll bool) *flowFixture {
	t.Helper()

	store := persistence.NewInMemorySessionStore()
	users := newFakeUserRepo(
		&user.User{ID: "gm", Username: "Mestre"},
		&user.User{ID: "a", Username: "Ana"},
		&user.User{ID: "b", Username: "Bruno"},
		&user.User{ID: "c", Username: "Carla"},
	)
	hub := &fakeHub{}
	hist := &fakeHistoryRepo{}
	m := metrics.New(prometheus.NewRegistry())

	session := game.NewSession(testCode, "quiz-1", "Geografia", "gm")
	err := store.CreateSession(context.Background(), session,
		game.Participant{UserID: "gm", Username: "Mestre", IsGameMaster: true},
		[]game.QuestionState{
			{QuestionID: "q1", Prompt: "Capital da França?", CorrectAnswer: "Paris", Points: 10, SortOrder: 0},
			{QuestionID: "q2", Prompt: "2+2?", CorrectAnswer: "4", Points: 5, SortOrder: 1},
		})
	require.NoError(t, err)

	if locker == nil {
		locker = lock.NewManager(4)
	}

	uc := NewFlowUseCases(FlowDeps{
		Store:        store,
		UserRepo:     users,
		Hub:          hub,
		Archiver:     NewHistoryUseCases(hist, newFakeQuizRepo(), store, m),
		Locker:       locker,
		Metrics:      m,
		SerializeAll: serializeAll,
	})

	return &flowFixture{uc: uc, store: store, hub: hub, history: hist, metrics: m, ctx: context.Background()}
}

func (f *flowFixture) handle(t *testing.T, ev game.Event) (*FlowOutcome, error) {
	t.Helper()
	ev.SessionCode = testCode
	return f.uc.Handle(f.ctx, ev)
}

func (f *flowFixture) mustHandle(t *testing.T, ev game.Event) *FlowOutcome {
	t.Helper()
	out, err := f.handle(t, ev)
	require.NoError(t, err, "evento %s", ev.Kind)
	return out
}

func (f *flowFixture) snapshot(t *testing.T) *game.Snapshot {
	t.Helper()
	snap, err := f.store.LoadSnapshot(f.ctx, testCode)
	require.NoError(t, err)
	return snap
}

func join(userID string) game.Event {
	return game.Event{Kind: game.EventPlayerJoined, ActingUserID: userID, UserID: userID}
}

// startWithPlayers coloca a e b na sessão e inicia o jogo (vez de a).
func (f *flowFixture) startWithPlayers(t *testing.T) {
	t.Helper()
	f.mustHandle(t, join("a"))
	f.mustHandle(t, join("b"))
	f.mustHandle(t, game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})
}

func points(snap *game.Snapshot, userID string) int {
	p, _ := snap.Participant(userID)
	return p.Points
}

func currentTurn(snap *game.Snapshot) string {
	p, ok := snap.CurrentPlayer()
	if !ok {
		return ""
	}
	return p.UserID
}

// assertSingleTurn confere que, com o jogo iniciado, no máximo um participante tem a vez.
func (f *flowFixture) assertSingleTurn(t *testing.T) {
	t.Helper()
	snap := f.snapshot(t)
	if snap == nil || !snap.Session.Started {
		return
	}
	turns := 0
	for _, p := range snap.Participants {
		if p.IsCurrentTurn {
			turns++
		}
	}
	assert.LessOrEqual(t, turns, 1, "participantes com a vez")
}

func TestFlow_FullGame(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	handle := func(ev game.Event) *FlowOutcome {
		t.Helper()
		out := f.mustHandle(t, ev)
		f.assertSingleTurn(t)
		return out
	}

	handle(join("a"))
	handle(join("b"))
	handle(game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})

	snap := f.snapshot(t)
	assert.True(t, snap.Session.Started)
	assert.Equal(t, "a", currentTurn(snap))

	handle(game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})

	// A erra: o roubo é liberado
	out := handle(game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q1", Answer: "Londres"})
	require.NotNil(t, out.Correct)
	assert.False(t, *out.Correct)
	assert.Equal(t, string(game.EventQuestionRobbingIsAllowed), out.Message)
	q1, _ := f.snapshot(t).Question("q1")
	assert.True(t, q1.IsRobbingAllowed)
	assert.False(t, q1.IsAnswered)

	// B rouba e acerta: a vez volta para A
	out = handle(game.Event{Kind: game.EventQuestionRobbed, ActingUserID: "b", QuestionID: "q1", Answer: " paris "})
	assert.True(t, *out.Correct)
	assert.Equal(t, string(game.EventQuestionRobbed), out.Message)
	assert.Equal(t, 10, out.Payload.Points)
	assert.Equal(t, "Ana", out.Payload.CurrentPlayer)

	snap = f.snapshot(t)
	assert.Equal(t, 10, points(snap, "b"))
	assert.Equal(t, 0, points(snap, "a"))
	assert.Equal(t, "a", currentTurn(snap))
	q1, _ = snap.Question("q1")
	assert.True(t, q1.IsAnswered)
	assert.False(t, q1.IsCurrentQuestion)
	assert.False(t, q1.IsRobbingAllowed)
	assert.Equal(t, "b", q1.AnsweredByUserID)

	// Última pergunta: acerto encerra e arquiva
	handle(game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q2"})
	out = handle(game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q2", Answer: "4"})

	assert.Equal(t, game.MessageGameEnded, out.Message)
	assert.True(t, out.Payload.Completed)
	require.Len(t, out.Payload.Results, 3)
	assert.Equal(t, "b", out.Payload.Results[0].UserID)
	assert.Equal(t, "a", out.Payload.Results[1].UserID)
	assert.Equal(t, "gm", out.Payload.Results[2].UserID)
	for i, r := range out.Payload.Results {
		assert.Equal(t, i+1, r.Rank)
	}

	assert.Nil(t, f.snapshot(t), "sessão arquivada deve sair do store")
	require.Len(t, f.history.saved, 1)
	pg := f.history.saved[0]
	assert.Equal(t, testCode, pg.SessionCode)
	assert.Equal(t, "Geografia", pg.QuizTitle)
	require.Len(t, pg.Participants, 3)
	assert.Equal(t, 10, pg.Participants[0].Points)

	assert.Equal(t, []string{
		"PlayerJoined", "PlayerJoined", "GameStarted",
		"QuestionSelected", "QuestionRobbingIsAllowed", "QuestionRobbed",
		"QuestionSelected", "GameEnded",
	}, f.hub.events())

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.GamesArchived))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.EventsTotal.WithLabelValues("GameStarted", "ok")))
}

func TestFlow_AnswerWrongAfterRobbingAllowed(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.startWithPlayers(t)
	f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})
	f.mustHandle(t, game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q1", Answer: "Roma"})

	out := f.mustHandle(t, game.Event{Kind: game.EventQuestionRobbed, ActingUserID: "b", QuestionID: "q1", Answer: "Berlim"})
	assert.False(t, *out.Correct)
	assert.Equal(t, game.MessageQuestionAnsweredWrong, out.Message)
	assert.Equal(t, "Berlim", out.Payload.Answer)

	q1, _ := f.snapshot(t).Question("q1")
	assert.True(t, q1.IsCurrentQuestion)
	assert.True(t, q1.IsRobbingAllowed)
}

func TestFlow_CorrectAnswerKeepsRing(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.startWithPlayers(t)
	f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})

	out := f.mustHandle(t, game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q1", Answer: "PARIS"})
	assert.Equal(t, game.MessageQuestionAnswered, out.Message)
	assert.Equal(t, "Bruno", out.Payload.CurrentPlayer)

	snap := f.snapshot(t)
	assert.Equal(t, 10, points(snap, "a"))
	assert.Equal(t, "b", currentTurn(snap))
	assert.False(t, snap.Session.Completed)
}

func TestFlow_ConcurrentRobbing(t *testing.T) {
	for _, serializeAll := range []bool{true, false} {
		f := newFlowFixture(t, nil, serializeAll)
		f.mustHandle(t, join("a"))
		f.mustHandle(t, join("b"))
		f.mustHandle(t, join("c"))
		f.mustHandle(t, game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})
		f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})
		f.mustHandle(t, game.Event{Kind: game.EventQuestionRobbingIsAllowed, ActingUserID: "gm"})

		robbers := []string{"a", "b", "c"}
		errs := make([]error, len(robbers))
		var wg sync.WaitGroup
		for i, id := range robbers {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				_, errs[i] = f.handle(t, game.Event{Kind: game.EventQuestionRobbed, ActingUserID: id, QuestionID: "q1", Answer: "Paris"})
			}(i, id)
		}
		wg.Wait()

		winners := 0
		for _, err := range errs {
			if err == nil {
				winners++
				continue
			}
			assert.ErrorIs(t, err, game.ErrAlreadyAnswered)
		}
		assert.Equal(t, 1, winners, "serializeAll=%v", serializeAll)

		snap := f.snapshot(t)
		total := 0
		for _, p := range snap.Participants {
			total += p.Points
		}
		assert.Equal(t, 10, total)
	}
}

func TestFlow_BroadcastFailureKeepsState(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.hub.setFail(true)

	_, err := f.handle(t, join("a"))
	assert.ErrorIs(t, err, game.ErrBroadcastFailed)

	_, ok := f.snapshot(t).Participant("a")
	assert.True(t, ok, "a mutação persiste mesmo sem entrega")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.EventsTotal.WithLabelValues("PlayerJoined", "broadcast_failed")))
}

func TestFlow_GateModes(t *testing.T) {
	t.Run("Todos os eventos serializados", func(t *testing.T) {
		locker := &countingLocker{}
		f := newFlowFixture(t, locker, true)
		f.startWithPlayers(t)
		assert.Equal(t, 3, locker.count())
	})

	t.Run("Apenas resposta e roubo", func(t *testing.T) {
		locker := &countingLocker{}
		f := newFlowFixture(t, locker, false)
		f.startWithPlayers(t)
		assert.Equal(t, 0, locker.count())

		f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})
		f.mustHandle(t, game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q1", Answer: "x"})
		f.mustHandle(t, game.Event{Kind: game.EventQuestionRobbed, ActingUserID: "b", QuestionID: "q1", Answer: "y"})
		assert.Equal(t, 2, locker.count())
	})
}

func TestFlow_LockContextCancelled(t *testing.T) {
	locker := lock.NewManager(1)
	f := newFlowFixture(t, locker, true)

	unlock, err := locker.Lock(context.Background(), testCode)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.uc.Handle(ctx, game.Event{Kind: game.EventPlayerJoined, SessionCode: testCode, ActingUserID: "a", UserID: "a"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.hub.events())
}

func TestFlow_PlayerJoined(t *testing.T) {
	f := newFlowFixture(t, nil, true)

	t.Run("Entrada repetida não duplica", func(t *testing.T) {
		f.mustHandle(t, join("a"))
		out := f.mustHandle(t, join("a"))
		assert.Equal(t, "Ana", out.Payload.Username)
		assert.Len(t, f.snapshot(t).Participants, 2)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		_, err := f.handle(t, join("zz"))
		assert.ErrorIs(t, err, ErrUsuarioNaoEncontrado)
	})

	t.Run("Sessão inexistente", func(t *testing.T) {
		_, err := f.uc.Handle(f.ctx, game.Event{Kind: game.EventPlayerJoined, SessionCode: "NOPE00", ActingUserID: "a", UserID: "a"})
		assert.ErrorIs(t, err, game.ErrSessionNotFound)
	})

	t.Run("Depois do início", func(t *testing.T) {
		f.mustHandle(t, game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})
		_, err := f.handle(t, join("b"))
		assert.ErrorIs(t, err, game.ErrAlreadyStarted)
	})
}

func TestFlow_GameStartedWithoutPlayers(t *testing.T) {
	f := newFlowFixture(t, nil, true)

	_, err := f.handle(t, game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})
	assert.ErrorIs(t, err, game.ErrNoNextPlayer)
	assert.False(t, f.snapshot(t).Session.Started)
	assert.Empty(t, f.hub.events())
}

func TestFlow_PlayerLeft(t *testing.T) {
	t.Run("Jogador da vez sai e a vez segue o anel", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.startWithPlayers(t)

		out := f.mustHandle(t, game.Event{Kind: game.EventPlayerLeft, ActingUserID: "a", UserID: "a"})
		assert.Equal(t, "Bruno", out.Payload.CurrentPlayer)

		snap := f.snapshot(t)
		_, still := snap.Participant("a")
		assert.False(t, still)
		assert.Equal(t, "b", currentTurn(snap))
	})

	t.Run("Último da ordem sai e a vez volta ao primeiro", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.startWithPlayers(t)
		f.mustHandle(t, game.Event{Kind: game.EventNextPlayerSelected, ActingUserID: "gm"})
		require.Equal(t, "b", currentTurn(f.snapshot(t)))

		f.mustHandle(t, game.Event{Kind: game.EventPlayerLeft, ActingUserID: "b", UserID: "b"})
		assert.Equal(t, "a", currentTurn(f.snapshot(t)))
	})

	t.Run("Jogador sem a vez sai", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.startWithPlayers(t)

		out := f.mustHandle(t, game.Event{Kind: game.EventPlayerLeft, ActingUserID: "b", UserID: "b"})
		assert.Empty(t, out.Payload.CurrentPlayer)
		assert.Equal(t, "a", currentTurn(f.snapshot(t)))
	})

	t.Run("Último jogador sai", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.mustHandle(t, join("a"))
		f.mustHandle(t, game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})

		f.mustHandle(t, game.Event{Kind: game.EventPlayerLeft, ActingUserID: "a", UserID: "a"})
		snap := f.snapshot(t)
		assert.Len(t, snap.Participants, 1)
		assert.Empty(t, currentTurn(snap))
	})

	t.Run("Mestre não pode sair", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		_, err := f.handle(t, game.Event{Kind: game.EventPlayerLeft, ActingUserID: "gm", UserID: "gm"})
		assert.ErrorIs(t, err, game.ErrMasterCannotLeave)
	})
}

func TestFlow_NextPlayerSelected(t *testing.T) {
	t.Run("Sem jogadores não faz nada", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.mustHandle(t, join("a"))
		f.mustHandle(t, game.Event{Kind: game.EventGameStarted, ActingUserID: "gm"})
		f.mustHandle(t, game.Event{Kind: game.EventPlayerLeft, ActingUserID: "a", UserID: "a"})
		before := len(f.hub.events())

		out := f.mustHandle(t, game.Event{Kind: game.EventNextPlayerSelected, ActingUserID: "gm"})
		assert.False(t, out.Broadcasted())
		assert.Len(t, f.hub.events(), before)
	})

	t.Run("Avança e dá a volta", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.startWithPlayers(t)

		out := f.mustHandle(t, game.Event{Kind: game.EventNextPlayerSelected, ActingUserID: "gm"})
		assert.Equal(t, "Bruno", out.Payload.CurrentPlayer)
		f.mustHandle(t, game.Event{Kind: game.EventNextPlayerSelected, ActingUserID: "gm"})
		assert.Equal(t, "a", currentTurn(f.snapshot(t)))
	})

	t.Run("Apenas o mestre", func(t *testing.T) {
		f := newFlowFixture(t, nil, true)
		f.startWithPlayers(t)
		_, err := f.handle(t, game.Event{Kind: game.EventNextPlayerSelected, ActingUserID: "a"})
		assert.ErrorIs(t, err, game.ErrNotGameMaster)
	})
}

func TestFlow_PlayBeforeStart(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.mustHandle(t, join("a"))
	f.mustHandle(t, join("b"))
	before := len(f.hub.events())

	for _, ev := range []game.Event{
		{Kind: game.EventNextPlayerSelected, ActingUserID: "gm"},
		{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"},
		{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q1", Answer: "Paris"},
		{Kind: game.EventQuestionRobbingIsAllowed, ActingUserID: "gm"},
		{Kind: game.EventQuestionRobbed, ActingUserID: "b", QuestionID: "q1", Answer: "Paris"},
	} {
		_, err := f.handle(t, ev)
		assert.ErrorIs(t, err, game.ErrNotStarted, ev.Kind)
	}

	snap := f.snapshot(t)
	assert.False(t, snap.Session.Started)
	assert.Empty(t, currentTurn(snap))
	assert.Equal(t, 0, points(snap, "a"))
	assert.Equal(t, 0, points(snap, "b"))
	_, hasCurrent := snap.CurrentQuestion()
	assert.False(t, hasCurrent)
	assert.Len(t, f.hub.events(), before)
}

func TestFlow_GameMasterCannotRob(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.startWithPlayers(t)
	f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})
	f.mustHandle(t, game.Event{Kind: game.EventQuestionRobbingIsAllowed, ActingUserID: "gm"})

	_, err := f.handle(t, game.Event{Kind: game.EventQuestionRobbed, ActingUserID: "gm", QuestionID: "q1", Answer: "Paris"})
	assert.ErrorIs(t, err, game.ErrMasterCannotPlay)

	snap := f.snapshot(t)
	assert.Equal(t, 0, points(snap, "gm"))
	q1, _ := snap.Question("q1")
	assert.False(t, q1.IsAnswered)
}

func TestFlow_GameCancelled(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.startWithPlayers(t)

	out := f.mustHandle(t, game.Event{Kind: game.EventGameCancelled, ActingUserID: "gm"})
	assert.Equal(t, string(game.EventGameCancelled), out.Message)
	assert.Nil(t, f.snapshot(t))
	assert.Empty(t, f.history.saved)

	_, err := f.handle(t, game.Event{Kind: game.EventNextPlayerSelected, ActingUserID: "gm"})
	assert.ErrorIs(t, err, game.ErrSessionNotFound)
}

func TestFlow_ArchiveFailureKeepsCompletedSession(t *testing.T) {
	f := newFlowFixture(t, nil, true)
	f.startWithPlayers(t)
	f.history.err = errFalhaInjetada

	f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "a", QuestionID: "q1"})
	f.mustHandle(t, game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "a", QuestionID: "q1", Answer: "Paris"})
	f.mustHandle(t, game.Event{Kind: game.EventQuestionSelected, ActingUserID: "b", QuestionID: "q2"})

	_, err := f.handle(t, game.Event{Kind: game.EventAnswerSubmitted, ActingUserID: "b", QuestionID: "q2", Answer: "4"})
	assert.ErrorIs(t, err, errFalhaInjetada)

	snap := f.snapshot(t)
	require.NotNil(t, snap)
	assert.True(t, snap.Session.Completed)
	assert.Equal(t, 0, snap.UnansweredCount())
}
