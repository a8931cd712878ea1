package mocks

import (
	"context"

	"actapi/internal/model"
	"actapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockActaService struct {
	mock.Mock
}

var _ service.ActaService = (*MockActaService)(nil)

func (m *MockActaService) Generate(ctx context.Context, f model.Form) (*service.GenerateResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GenerateResult), args.Error(1)
}

func (m *MockActaService) Send(ctx context.Context, f model.Form) (*service.SendResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SendResult), args.Error(1)
}

func (m *MockActaService) Resend(ctx context.Context, id string) (*service.SendResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SendResult), args.Error(1)
}

func (m *MockActaService) List(ctx context.Context, limit, offset int) (*service.ActaListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ActaListResult), args.Error(1)
}

func (m *MockActaService) Get(ctx context.Context, id string) (*model.Acta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Acta), args.Error(1)
}

func (m *MockActaService) DownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockActaService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
