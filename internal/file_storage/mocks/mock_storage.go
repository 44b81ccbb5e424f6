package mocks

import (
	"context"
	"time"

	filestorage "github.com/SeakMengs/ClubCert/internal/file_storage"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Bucket() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockStorage) UploadFile(ctx context.Context, key, path, contentType string) (filestorage.UploadInfo, error) {
	args := m.Called(ctx, key, path, contentType)
	if f, ok := args.Get(0).(func(context.Context, string, string, string) filestorage.UploadInfo); ok {
		return f(ctx, key, path, contentType), args.Error(1)
	}
	return args.Get(0).(filestorage.UploadInfo), args.Error(1)
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
