package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/MKhiriev/six-cities/internal/mock"
	"github.com/MKhiriev/six-cities/internal/store"
	"github.com/MKhiriev/six-cities/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type commentMocks struct {
	comments *mock.MockCommentRepository
	offers   *mock.MockOfferRepository
	users    *mock.MockUserRepository
}

func newTestCommentSvc(t *testing.T, ctrl *gomock.Controller) (CommentService, commentMocks) {
	t.Helper()
	m := commentMocks{
		comments: mock.NewMockCommentRepository(ctrl),
		offers:   mock.NewMockOfferRepository(ctrl),
		users:    mock.NewMockUserRepository(ctrl),
	}
	storages := &store.Storages{
		UserRepository:    m.users,
		OfferRepository:   m.offers,
		CommentRepository: m.comments,
	}
	return NewCommentService(storages, fixedID(ctrl), logger.Nop()), m
}

func TestCommentService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCommentSvc(t, ctrl)

	dto := models.CreateCommentDTO{Text: "Great place!", Rating: 5, OfferID: testOfferID}
	author := models.User{ID: testUserID, Name: "Keks"}
	createdAt := time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC)

	gomock.InOrder(
		m.offers.EXPECT().OfferExists(gomock.Any(), testOfferID).Return(true, nil),
		m.users.EXPECT().FindUserByID(gomock.Any(), testUserID).Return(author, nil),
		m.comments.EXPECT().CreateComment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.Comment) (models.Comment, error) {
				assert.Equal(t, testNewID, c.ID)
				assert.Equal(t, testUserID, c.UserID)
				assert.Equal(t, testOfferID, c.OfferID)
				c.CreatedAt = createdAt
				return c, nil
			},
		),
	)

	comment, err := svc.Create(testContext(), testUserID, dto)
	require.NoError(t, err)
	assert.Equal(t, "Great place!", comment.Text)
	assert.Equal(t, author, comment.User)
	assert.Equal(t, createdAt, comment.CreatedAt)
}

func TestCommentService_Create_MissingOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCommentSvc(t, ctrl)

	m.offers.EXPECT().OfferExists(gomock.Any(), testOfferID).Return(false, nil)

	_, err := svc.Create(testContext(), testUserID, models.CreateCommentDTO{OfferID: testOfferID})
	assert.True(t, errors.Is(err, store.ErrOfferNotFound))
}

func TestCommentService_Create_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCommentSvc(t, ctrl)

	dbErr := errors.New("db down")
	m.offers.EXPECT().OfferExists(gomock.Any(), testOfferID).Return(false, dbErr)

	_, err := svc.Create(testContext(), testUserID, models.CreateCommentDTO{OfferID: testOfferID})
	assert.True(t, errors.Is(err, dbErr))
}

func TestCommentService_FindByOfferID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestCommentSvc(t, ctrl)

	m.comments.EXPECT().FindCommentsByOfferID(gomock.Any(), testOfferID, uint64(DefaultCommentCount)).
		Return([]models.Comment{{ID: "c1"}, {ID: "c2"}}, nil)

	comments, err := svc.FindByOfferID(testContext(), testOfferID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}
