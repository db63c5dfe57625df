package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVoteRepository_Upsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	vote := &models.Vote{PostID: 1, UserID: 2, Value: models.VoteLike}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT ("post_id","user_id") DO UPDATE`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Upsert(ctx, vote)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVoteRepository_GetByPostAndUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	t.Run("existing vote", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "votes" WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(1, 2, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "value"}).
				AddRow(7, 1, 2, "dislike"))

		vote, err := repo.GetByPostAndUser(ctx, 1, 2)
		assert.NoError(t, err)
		assert.NotNil(t, vote)
		assert.Equal(t, models.VoteDislike, vote.Value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no vote yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "votes" WHERE post_id = $1 AND user_id = $2`)).
			WithArgs(1, 3, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		vote, err := repo.GetByPostAndUser(ctx, 1, 3)
		assert.NoError(t, err)
		assert.Nil(t, vote)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoteRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "votes" WHERE post_id = $1 AND user_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 1, 2)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
