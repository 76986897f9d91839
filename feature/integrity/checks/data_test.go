package checks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"factory-planner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const dataObject = "data/recipes.json"

func TestCheckCatalogData_Valid(t *testing.T) {
	raw, err := os.ReadFile("../../catalog/testdata/recipes.json")
	require.NoError(t, err)

	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "factory", dataObject, mock.Anything).
		Return(minio.ObjectInfo{Key: dataObject, Size: int64(len(raw))}, nil)
	m.On("GetObject", mock.Anything, "factory", dataObject, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(raw)), nil)

	report, err := CheckCatalogData(context.Background(), m, "factory", dataObject)
	require.NoError(t, err)
	assert.True(t, report.Present)
	assert.True(t, report.Valid)
	assert.Equal(t, int64(len(raw)), report.Size)
	assert.Equal(t, 9, report.Items)
	assert.Equal(t, 3, report.Buildings)
	assert.Equal(t, 6, report.Recipes)
	assert.Empty(t, report.Error)
}

func TestCheckCatalogData_Missing(t *testing.T) {
	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "factory", dataObject, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	report, err := CheckCatalogData(context.Background(), m, "factory", dataObject)
	require.NoError(t, err)
	assert.False(t, report.Present)
	assert.False(t, report.Valid)
	m.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckCatalogData_Invalid(t *testing.T) {
	body := []byte(`{"items": [{"key": "a"}, {"key": "a"}]}`)
	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "factory", dataObject, mock.Anything).
		Return(minio.ObjectInfo{Size: int64(len(body))}, nil)
	m.On("GetObject", mock.Anything, "factory", dataObject, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(body)), nil)

	report, err := CheckCatalogData(context.Background(), m, "factory", dataObject)
	require.NoError(t, err)
	assert.True(t, report.Present)
	assert.False(t, report.Valid)
	assert.Contains(t, report.Error, "duplicate")
}

func TestCheckCatalogData_StatFails(t *testing.T) {
	m := new(mocks.Client)
	m.On("StatObject", mock.Anything, "factory", dataObject, mock.Anything).
		Return(minio.ObjectInfo{}, errors.New("connection refused"))

	_, err := CheckCatalogData(context.Background(), m, "factory", dataObject)
	assert.ErrorContains(t, err, "connection refused")
}
