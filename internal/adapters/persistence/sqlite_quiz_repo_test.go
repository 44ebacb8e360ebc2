package persistence

import (
	"context"
	"errors"
	"testing"

	"quizarena/internal/domain/quiz"
	"quizarena/internal/domain/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteQuizRepository(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	owner, err := user.NewUser("ana", "ana@quiz.dev", "segredo1")
	require.NoError(t, err)
	owner.SetPassword("hash")
	require.NoError(t, NewSQLiteUserRepository(db).Create(ctx, owner))

	quizzes := NewSQLiteQuizRepository(db)
	questions := NewSQLiteQuestionRepository(db)

	q, err := quiz.NewQuiz(owner.ID, "Geografia", "capitais")
	require.NoError(t, err)
	require.NoError(t, quizzes.Save(ctx, q))

	t.Run("sem perguntas", func(t *testing.T) {
		got, err := quizzes.FindByID(ctx, q.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "capitais", got.Description)
		assert.Empty(t, got.Questions)
	})

	second, err := quiz.NewQuestion(q.ID, "Capital da Itália?", "Roma", 5, 2)
	require.NoError(t, err)
	first, err := quiz.NewQuestion(q.ID, "Capital da França?", "Paris", 10, 1)
	require.NoError(t, err)
	require.NoError(t, questions.Save(ctx, second))
	require.NoError(t, questions.Save(ctx, first))

	t.Run("carrega perguntas ordenadas", func(t *testing.T) {
		got, err := quizzes.FindByID(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, got.Questions, 2)
		assert.Equal(t, first.ID, got.Questions[0].ID)
		assert.Equal(t, q.ID, got.Questions[1].QuizID)
		assert.Equal(t, 15, got.TotalPoints())
	})

	t.Run("update de pergunta e quiz", func(t *testing.T) {
		require.NoError(t, first.Update("Capital da França?", "Paris", 20))
		require.NoError(t, questions.Update(ctx, first))

		q.Questions = []quiz.Question{*first, *second}
		require.NoError(t, q.Publish())
		require.NoError(t, quizzes.Update(ctx, q))

		got, err := quizzes.FindByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, quiz.Published, got.Status)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, 20, got.Questions[0].Points)
		assert.True(t, got.Playable())
	})

	t.Run("listagem do autor", func(t *testing.T) {
		list, err := quizzes.FindByOwnerID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Empty(t, list[0].Questions)

		none, err := quizzes.FindByOwnerID(ctx, "outro")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("delete remove perguntas", func(t *testing.T) {
		require.NoError(t, quizzes.Delete(ctx, q.ID))

		got, err := quizzes.FindByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		var n int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions WHERE quiz_id = ?`, q.ID).Scan(&n))
		assert.Zero(t, n)
	})
}

func TestSQLiteQuestionRepository_Reorder(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	owner, err := user.NewUser("bia", "bia@quiz.dev", "segredo1")
	require.NoError(t, err)
	owner.SetPassword("hash")
	require.NoError(t, NewSQLiteUserRepository(db).Create(ctx, owner))

	quizzes := NewSQLiteQuizRepository(db)
	questions := NewSQLiteQuestionRepository(db)
	q, err := quiz.NewQuiz(owner.ID, "Rios", "")
	require.NoError(t, err)
	require.NoError(t, quizzes.Save(ctx, q))

	for i, prompt := range []string{"Nilo?", "Amazonas?", "Danúbio?"} {
		question, err := quiz.NewQuestion(q.ID, prompt, "x", 1, i+1)
		require.NoError(t, err)
		require.NoError(t, questions.Save(ctx, question))
	}

	loaded, err := quizzes.FindByID(ctx, q.ID)
	require.NoError(t, err)
	ids := []string{loaded.Questions[2].ID, loaded.Questions[0].ID, loaded.Questions[1].ID}
	ordered, err := loaded.Reorder(ids)
	require.NoError(t, err)
	require.NoError(t, questions.Reorder(ctx, q.ID, ordered))

	got, err := quizzes.FindByID(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, ids, []string{got.Questions[0].ID, got.Questions[1].ID, got.Questions[2].ID})
	assert.Equal(t, 3, got.Questions[2].SortOrder)
}

func TestSQLiteQuestionRepository_ReorderRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ordered := []quiz.Question{{ID: "q2", SortOrder: 1}, {ID: "q1", SortOrder: 2}}

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("UPDATE questions SET sort_order")
	prep.ExpectExec().WithArgs(1, sqlmock.AnyArg(), "q2", "quiz-1").WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(2, sqlmock.AnyArg(), "q1", "quiz-1").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err = NewSQLiteQuestionRepository(db).Reorder(context.Background(), "quiz-1", ordered)
	assert.ErrorContains(t, err, "database is locked")
	require.NoError(t, mock.ExpectationsWereMet())
}
