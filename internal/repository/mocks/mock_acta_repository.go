package mocks

import (
	"context"

	"actapi/internal/model"
	"actapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockActaRepository struct {
	mock.Mock
}

func (m *MockActaRepository) Create(ctx context.Context, acta *model.Acta) (*model.Acta, error) {
	args := m.Called(ctx, acta)
	if f, ok := args.Get(0).(func(context.Context, *model.Acta) *model.Acta); ok {
		return f(ctx, acta), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Acta), args.Error(1)
}

func (m *MockActaRepository) FindByID(ctx context.Context, id string) (*model.Acta, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Acta), args.Error(1)
}

func (m *MockActaRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Acta], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Acta]), args.Error(1)
}

func (m *MockActaRepository) UpdateNotification(ctx context.Context, id string, n repository.Notification) error {
	args := m.Called(ctx, id, n)
	return args.Error(0)
}

func (m *MockActaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
