package store

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommentRepo(t *testing.T) (CommentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewCommentRepository(db, logger.Nop()), mock
}

func TestCreateComment(t *testing.T) {
	now := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	comment := models.Comment{
		ID:      "6a1f0c2e9b3d4e5f6a7b8ca0",
		Text:    "Nice place, would stay again",
		Rating:  5,
		OfferID: testOfferID,
		UserID:  testUser.ID,
	}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "saved",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO comments").
					WithArgs(comment.ID, comment.Text, comment.Rating, comment.OfferID, comment.UserID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "offer_id", "user_id", "created_at"}).
						AddRow(comment.ID, comment.Text, comment.Rating, comment.OfferID, comment.UserID, now))
			},
		},
		{
			name: "offer deleted concurrently",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO comments").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrOfferNotFound,
		},
		{
			name: "nothing returned",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO comments").
					WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "offer_id", "user_id", "created_at"}))
			},
			wantErr: ErrCommentNotSaved,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO comments").WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCommentRepo(t)
			tt.setup(mock)

			saved, err := repo.CreateComment(testContext(), comment)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, comment.ID, saved.ID)
			assert.Equal(t, now, saved.CreatedAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindCommentsByOfferID(t *testing.T) {
	repo, mock := newTestCommentRepo(t)
	newer := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-24 * time.Hour)

	mock.ExpectQuery("SELECT c.id, c.text").
		WithArgs(testOfferID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "text", "rating", "offer_id", "user_id", "created_at",
			"name", "email", "avatar", "type", "created_at"}).
			AddRow("c2", "Second comment text", 4, testOfferID, testUser.ID, newer,
				testUser.Name, testUser.Email, testUser.Avatar, string(testUser.Type), testUser.CreatedAt).
			AddRow("c1", "First comment text", 2, testOfferID, testUser.ID, older,
				testUser.Name, testUser.Email, testUser.Avatar, string(testUser.Type), testUser.CreatedAt))

	comments, err := repo.FindCommentsByOfferID(testContext(), testOfferID, 50)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "c2", comments[0].ID)
	assert.Equal(t, testUser.ID, comments[0].User.ID)
	assert.Equal(t, testUser.Name, comments[0].User.Name)
	assert.Equal(t, 2, comments[1].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCommentsByOfferID_QueryError(t *testing.T) {
	repo, mock := newTestCommentRepo(t)

	mock.ExpectQuery("SELECT c.id").WillReturnError(errors.New("boom"))

	_, err := repo.FindCommentsByOfferID(testContext(), testOfferID, 50)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
