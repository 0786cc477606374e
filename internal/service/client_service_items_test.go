// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/salestrak-pa/internal/adapter"
	"github.com/MKhiriev/salestrak-pa/internal/logger"
	"github.com/MKhiriev/salestrak-pa/internal/mock"
	"github.com/MKhiriev/salestrak-pa/internal/utils"
	"github.com/MKhiriev/salestrak-pa/internal/validators"
	"github.com/MKhiriev/salestrak-pa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestItemSvc(t *testing.T) (ClientItemService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientItemService(mockAdapter, validators.NewFormValidator(), logger.Nop()), mockAdapter
}

func TestClientItemService_AddHeader_BlankIgnored(t *testing.T) {
	svc, _ := newTestItemSvc(t)

	h, err := svc.AddHeader(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, models.Header{}, h)
}

func TestClientItemService_AddHeader(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	mockAdapter.EXPECT().AddHeader(gomock.Any(), "Leads").Return(models.Header{ID: 4}, nil)

	h, err := svc.AddHeader(context.Background(), "  Leads ")
	require.NoError(t, err)
	assert.Equal(t, models.Header{ID: 4, HeaderName: "Leads"}, h)
}

func TestClientItemService_AddHeader_Conflict(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	mockAdapter.EXPECT().AddHeader(gomock.Any(), "Leads").
		Return(models.Header{}, adapter.NewHTTPError(http.StatusConflict, "Header already exists"))

	_, err := svc.AddHeader(context.Background(), "Leads")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, "Header already exists", UserMessage(err, "fallback"))
}

func TestClientItemService_Get_DecodesLink(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	details := models.ItemDetails{Item: models.Item{ID: 7, HeaderID: 12, Title: "T"}}
	mockAdapter.EXPECT().GetItem(gomock.Any(), int64(12), int64(7)).Return(details, nil)

	got, err := svc.Get(context.Background(), utils.EncodeID(12), utils.EncodeID(7))
	require.NoError(t, err)
	assert.Equal(t, details, got)
}

func TestClientItemService_Get_InvalidLink(t *testing.T) {
	svc, _ := newTestItemSvc(t)

	_, err := svc.Get(context.Background(), "!!!", utils.EncodeID(7))
	require.Error(t, err)
	assert.True(t, IsInvalidItemLink(err))
}

func TestClientItemService_Get_NotFound(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	mockAdapter.EXPECT().GetItem(gomock.Any(), int64(1), int64(2)).
		Return(models.ItemDetails{}, adapter.NewHTTPError(http.StatusNotFound, "Item not found"))

	_, err := svc.Get(context.Background(), utils.EncodeID(1), utils.EncodeID(2))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientItemService_Save_NewItemReturnsLink(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	form := models.ItemForm{HeaderID: 12, HeaderName: "Leads", Title: "Acme"}
	mockAdapter.EXPECT().UpsertItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ItemUpsertRequest) (models.ItemSaved, error) {
			assert.Nil(t, req.UpdatedItemID)
			assert.Nil(t, req.UpdatedHeaderID)
			assert.Equal(t, "Acme", req.Title)
			return models.ItemSaved{HeaderID: 12, ItemID: 7}, nil
		},
	)

	saved, path, err := svc.Save(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, models.ItemSaved{HeaderID: 12, ItemID: 7}, saved)
	assert.Equal(t, "/newitem/MTI=/Nw==", path)
}

func TestClientItemService_Save_UpdateSendsIDs(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	form := models.ItemForm{HeaderID: 12, ItemID: 7, Title: "Acme"}
	mockAdapter.EXPECT().UpsertItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ItemUpsertRequest) (models.ItemSaved, error) {
			require.NotNil(t, req.UpdatedItemID)
			require.NotNil(t, req.UpdatedHeaderID)
			assert.Equal(t, int64(7), *req.UpdatedItemID)
			assert.Equal(t, int64(12), *req.UpdatedHeaderID)
			return models.ItemSaved{}, nil
		},
	)

	saved, path, err := svc.Save(context.Background(), form)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, models.ItemSaved{HeaderID: 12, ItemID: 7}, saved)
}

func TestClientItemService_Save_MissingTitleNeverCallsAdapter(t *testing.T) {
	svc, _ := newTestItemSvc(t)

	_, _, err := svc.Save(context.Background(), models.ItemForm{HeaderID: 1, Title: "  "})
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrRequiredFields)
	assert.Equal(t, validators.MsgItemRequired, UserMessage(err, "fallback"))
}

func TestClientItemService_DeleteAndLeadTimes(t *testing.T) {
	svc, mockAdapter := newTestItemSvc(t)

	mockAdapter.EXPECT().DeleteItem(gomock.Any(), int64(7)).Return(nil)
	mockAdapter.EXPECT().GetLeadTimes(gomock.Any()).Return([]models.LeadTime{{ID: 1, Name: "1 day"}}, nil)
	mockAdapter.EXPECT().GetHeaders(gomock.Any()).Return([]models.Header{{ID: 1, HeaderName: "H"}}, nil)

	require.NoError(t, svc.Delete(context.Background(), 7))

	lt, err := svc.LeadTimes(context.Background())
	require.NoError(t, err)
	assert.Len(t, lt, 1)

	headers, err := svc.Headers(context.Background())
	require.NoError(t, err)
	assert.Len(t, headers, 1)
}
