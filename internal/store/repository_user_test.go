package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func userRow(u models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(u.ID, u.Name, u.Email, u.Avatar, u.PasswordHash, string(u.Type), u.CreatedAt)
}

var testUser = models.User{
	ID:           "5f8d0d55b54764421b7156c9",
	Name:         "Keks",
	Email:        "keks@htmlacademy.ru",
	Avatar:       "keks.jpg",
	PasswordHash: "$2a$10$hash",
	Type:         models.UserTypePro,
	CreatedAt:    time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(testUser.ID, testUser.Name, testUser.Email, testUser.Avatar, testUser.PasswordHash, string(testUser.Type)).
		WillReturnRows(userRow(testUser))

	created, err := repo.CreateUser(testContext(), testUser)

	require.NoError(t, err)
	assert.Equal(t, testUser, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), testUser)

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), testUser)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"), err.Error())
}

func TestFindUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    models.User
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, email").
					WithArgs(testUser.Email).
					WillReturnRows(userRow(testUser))
			},
			want: testUser,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, name, email").
					WithArgs(testUser.Email).
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			got, err := repo.FindUserByEmail(testContext(), testUser.Email)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs(testUser.ID).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByID(testContext(), testUser.ID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateAvatar(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		updated := testUser
		updated.Avatar = "new.png"

		mock.ExpectQuery("UPDATE users SET avatar").
			WithArgs("new.png", testUser.ID).
			WillReturnRows(userRow(updated))

		got, err := repo.UpdateAvatar(testContext(), testUser.ID, "new.png")

		require.NoError(t, err)
		assert.Equal(t, "new.png", got.Avatar)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)

		mock.ExpectQuery("UPDATE users SET avatar").
			WillReturnRows(sqlmock.NewRows(userColumns))

		_, err := repo.UpdateAvatar(testContext(), testUser.ID, "new.png")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserExists(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(testUser.ID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("missing").
		WillReturnError(errors.New("timeout"))

	exists, err := repo.UserExists(testContext(), testUser.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.UserExists(testContext(), "missing")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
