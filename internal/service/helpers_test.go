package service

import (
	"context"

	"github.com/MKhiriev/six-cities/internal/mock"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

const (
	testUserID  = "65f1c0de0000000000000001"
	otherUserID = "65f1c0de0000000000000002"
	testOfferID = "65f1c0de00000000000000a1"
	testNewID   = "65f1c0de00000000000000ff"
)

func testContext() context.Context {
	nop := zerolog.Nop()
	return nop.WithContext(context.Background())
}

// fixedID returns an IDGenerator mock that always yields testNewID.
func fixedID(ctrl *gomock.Controller) *mock.MockIDGenerator {
	ids := mock.NewMockIDGenerator(ctrl)
	ids.EXPECT().Generate().Return(testNewID).AnyTimes()
	return ids
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

