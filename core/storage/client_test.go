package storage_test

import (
	"context"
	"errors"
	"testing"

	"inventory-manager/core/storage"
	"inventory-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "inventory").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "inventory", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "inventory").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "inventory", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "inventory", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "inventory").Return(false, errors.New("offline"))

		err := storage.EnsureBucket(ctx, m, "inventory", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "offline")
	})

	t.Run("CreateFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "inventory").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "inventory", mock.Anything).Return(errors.New("denied"))

		err := storage.EnsureBucket(ctx, m, "inventory", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "denied")
	})
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "backups/backup.csv", storage.ObjectName("backups", "backup.csv"))
	assert.Equal(t, "backups/backup.csv", storage.ObjectName("/backups/", "backup.csv"))
	assert.Equal(t, "backup.csv", storage.ObjectName("", "backup.csv"))
}
