package service

import (
	"context"

	"actapi/internal/config"
	"actapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Build(general model.GeneralInfo, participants []model.Participant, agreements []model.Agreement) ([]byte, error) {
	args := m.Called(general, participants, agreements)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, document []byte, subject string, recipients []string, transport config.MailConfig) error {
	args := m.Called(ctx, document, subject, recipients, transport)
	return args.Error(0)
}
