package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	sharedDomain "github.com/davicafu/humanidadunida/internal/shared/domain"
)

// MockRecordStore simula el store de documentos con testify/mock.
type MockRecordStore struct {
	mock.Mock
}

var _ sharedDomain.RecordStore = (*MockRecordStore)(nil)

func (m *MockRecordStore) Insert(ctx context.Context, collection string, doc sharedDomain.Document) error {
	args := m.Called(ctx, collection, doc)
	return args.Error(0)
}

func (m *MockRecordStore) Find(ctx context.Context, collection string, limit int) ([]sharedDomain.Document, error) {
	args := m.Called(ctx, collection, limit)
	docs, _ := args.Get(0).([]sharedDomain.Document)
	return docs, args.Error(1)
}

func (m *MockRecordStore) Update(ctx context.Context, collection, id string, patch sharedDomain.Document) (int64, error) {
	args := m.Called(ctx, collection, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecordStore) Count(ctx context.Context, collection string) (int64, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(int64), args.Error(1)
}
