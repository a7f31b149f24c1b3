package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"
	"go.uber.org/mock/gomock"

	"github.com/awidjaja/stokgate/internal/core/domain"
	"github.com/awidjaja/stokgate/internal/core/services"
	"github.com/awidjaja/stokgate/test/helpers"
	"github.com/awidjaja/stokgate/test/mocks"
)

func TestExportService_FetchAllWalksEveryPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockInventoryAPI(ctrl)

	all := helpers.CreateTestItems(250)
	backend.EXPECT().
		Items(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.PageRequest) ([]domain.Item, int, error) {
			start := req.Offset()
			end := start + req.Limit()
			if end > len(all) {
				end = len(all)
			}
			return all[start:end], len(all), nil
		}).
		Times(3)

	svc := services.NewExportService(backend, helpers.TestLogger())

	items, err := svc.FetchAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, 250)
	assert.Equal(t, "SN-0001", items[0].SerialNumber)
	assert.Equal(t, "SN-0250", items[249].SerialNumber)
}

func TestExportService_FetchAllPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockInventoryAPI(ctrl)
	backend.EXPECT().
		Items(gomock.Any(), gomock.Any()).
		Return(nil, 0, assert.AnError)

	svc := services.NewExportService(backend, helpers.TestLogger())

	_, err := svc.FetchAll(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestExportService_BuildXLSX(t *testing.T) {
	svc := services.NewExportService(nil, helpers.TestLogger())
	items := helpers.CreateTestItems(5)

	data, err := svc.BuildXLSX(items)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := xlsx.OpenBinary(data)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	assert.Equal(t, "Items", file.Sheets[0].Name)
	// Header row plus one row per item
	assert.Equal(t, 6, file.Sheets[0].MaxRow)
}

func TestExportService_BuildJSON(t *testing.T) {
	svc := services.NewExportService(nil, helpers.TestLogger())
	items := helpers.CreateTestItems(3)

	data, err := svc.BuildJSON(items, "router")
	require.NoError(t, err)

	var payload services.JSONExport
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Len(t, payload.Items, 3)
	assert.Equal(t, 3, payload.Metadata.TotalItems)
	assert.Equal(t, "router", payload.Metadata.Search)
	assert.False(t, payload.Metadata.ExportDate.IsZero())
}
