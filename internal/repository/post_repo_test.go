package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/HDS-02/MonSuivi-Vert-sub000/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Title: "Mon monstera jaunit", Content: "Les feuilles du bas deviennent jaunes depuis deux semaines.", Category: models.CategoryMaladies, UserID: 1}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, post)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		postID        uint
		currentUserID uint
		mockBehavior  func()
		expectedTitle string
		expectedError bool
	}{
		{
			name:          "Success with aggregates and user vote",
			postID:        1,
			currentUserID: 2,
			mockBehavior: func() {
				// main query with aggregate subqueries
				mock.ExpectQuery(regexp.QuoteMeta(`as likes_count`)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id", "status", "likes_count", "dislikes_count", "comments_count", "user_vote"}).
						AddRow(1, "Post 1", 10, "approved", 7, 2, 5, "like"))

				// preload user
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 AND "users"."deleted_at" IS NULL`)).
					WithArgs(10).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "user10"))
			},
			expectedTitle: "Post 1",
		},
		{
			name:          "Not found",
			postID:        99,
			currentUserID: 0,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`as likes_count`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			post, err := repo.GetByID(ctx, tt.postID, tt.currentUserID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTitle, post.Title)
				assert.Equal(t, 7, post.LikesCount)
				assert.Equal(t, 2, post.DislikesCount)
				assert.Equal(t, 5, post.CommentsCount)
				assert.Equal(t, "like", post.UserVote)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_ListApproved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`status = $`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id", "status", "likes_count", "dislikes_count", "comments_count", "user_vote"}).
			AddRow(1, "Premier", 10, "approved", 3, 0, 1, "").
			AddRow(2, "Second", 11, "approved", 1, 1, 0, ""))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "alice").AddRow(11, "bruno"))

	posts, err := repo.ListApproved(ctx, ListApprovedOptions{Sort: "top", Limit: 20, Offset: 0, Category: models.CategoryConseils})
	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, 3, posts[0].LikesCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListApproved_TopSortScore(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// The popularity score must repeat the vote subqueries: Postgres refuses a
	// SELECT alias inside an ORDER BY expression.
	mock.ExpectQuery(regexp.QuoteMeta(
		`ORDER BY ((SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.value = 'like') - ` +
			`(SELECT COUNT(*) FROM votes WHERE votes.post_id = posts.id AND votes.value = 'dislike')) DESC, created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id", "status"}).
			AddRow(1, "Premier", 10, "approved"))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "alice"))

	_, err := repo.ListApproved(ctx, ListApprovedOptions{Sort: "top", Limit: 20, Category: models.CategoryConseils})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetDetail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()

	mock.ExpectQuery(regexp.QuoteMeta(`as likes_count`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id", "status", "likes_count", "dislikes_count", "comments_count", "user_vote"}).
			AddRow(1, "Post 1", 10, "approved", 2, 1, 1, "dislike"))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(10, "alice"))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "votes" WHERE post_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "value"}).
			AddRow(1, 1, 2, "like").
			AddRow(2, 1, 3, "like").
			AddRow(3, 1, 4, "dislike"))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content"}).
			AddRow(1, 1, 2, "Essaie de l'arroser moins souvent."))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "bruno"))

	mock.ExpectCommit()

	detail, err := repo.GetDetail(ctx, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, "Post 1", detail.Post.Title)
	assert.Len(t, detail.Votes, 3)
	assert.Len(t, detail.Comments, 1)
	assert.Equal(t, "dislike", detail.Post.UserVote)
	assert.NoError(t, mock.ExpectationsWereMet())
}
