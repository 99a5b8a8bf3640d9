package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-intelligence-api/internal/domain"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising"
	"github.com/vfg2006/inventory-intelligence-api/internal/usecases/advising/mocks"
	"github.com/vfg2006/inventory-intelligence-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
	"github.com/vfg2006/inventory-intelligence-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func newIntelligenceRouter(t *testing.T) (http.Handler, *mocks.MockAdvisor) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	advisor := mocks.NewMockAdvisor(ctrl)

	return router.New(router.WithRoutes(Intelligence(advisor)...)), advisor
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func sampleResponse() *domain.StoreIntelligenceResponse {
	return &domain.StoreIntelligenceResponse{
		StoreID:     "store-1",
		Fingerprint: "abc",
		WindowDays:  30,
		Report: &domain.IntelligenceReport{
			Summary: domain.ReportSummary{ProductsAnalyzed: 3, CriticalCount: 1},
		},
	}
}

func TestGetStoreIntelligence(t *testing.T) {
	t.Run("Relatório da loja", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-1", time.Time{}).Return(sampleResponse(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/intelligence", nil)
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

		var body domain.StoreIntelligenceResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "store-1", body.StoreID)
		assert.Equal(t, 1, body.Report.Summary.CriticalCount)
	})

	t.Run("Data de referência informada", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		expected := time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)
		advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-1", expected).Return(sampleResponse(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/intelligence?as_of=2024-03-31", nil)
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Data de referência inválida", func(t *testing.T) {
		rt, _ := newIntelligenceRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/intelligence?as_of=ontem", nil)
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Loja não encontrada",
			err:        advising.NewAdvisingError(advising.ErrStoreNotFound, apiErrors.ErrStoreNotFound, "store-1", ""),
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrStoreNotFound,
		},
		{
			name:       "Erro de banco não expõe detalhes",
			err:        advising.NewAdvisingError(advising.ErrFetchCatalog, apiErrors.ErrDatabaseOperation, "store-1", "pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:       "Erro desconhecido",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, advisor := newIntelligenceRouter(t)
			advisor.EXPECT().GetStoreIntelligence(gomock.Any(), "store-1", gomock.Any()).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/v1/stores/store-1/intelligence", nil)
			recorder := httptest.NewRecorder()
			rt.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			body := decodeAPIError(t, recorder)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotContains(t, body.Message, "pq:")
		})
	}
}

func TestComputeIntelligence(t *testing.T) {
	t.Run("Snapshot válido", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().
			ComputeSnapshot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, snapshot *domain.IntelligenceSnapshot) (*domain.StoreIntelligenceResponse, error) {
				require.Len(t, snapshot.Products, 1)
				assert.Equal(t, "Jollof Rice Mix", snapshot.Products[0].Name)
				require.Len(t, snapshot.Orders, 1)
				assert.Equal(t, int64(3), snapshot.Orders[0].Items[0].Quantity)
				require.NotNil(t, snapshot.AsOf)
				return sampleResponse(), nil
			})

		body := `{
			"products": [{"id": "p1", "name": "Jollof Rice Mix", "price": 450, "category": "Spices", "stock_quantity": 12, "is_active": true}],
			"orders": [{"id": "o1", "items": [{"productId": "p1", "name": "Jollof Rice Mix", "quantity": 3, "price": 450}], "total_amount": 1350, "created_at": "2024-03-30T10:00:00Z", "status": "delivered"}],
			"as_of": "2024-03-31T12:00:00Z"
		}`
		req := httptest.NewRequest(http.MethodPost, "/v1/intelligence/compute", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		rt, _ := newIntelligenceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/intelligence/compute", strings.NewReader(`{"products": "x"`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, recorder).Code)
	})

	t.Run("Corpo acima do limite", func(t *testing.T) {
		rt, _ := newIntelligenceRouter(t)

		body := `{"products": [], "padding": "` + strings.Repeat("x", middleware.MaxBodyBytes) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/intelligence/compute", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
		assert.Equal(t, apiErrors.ErrPayloadTooLarge, decodeAPIError(t, recorder).Code)
	})

	t.Run("Preço acima do limite de corpo", func(t *testing.T) {
		rt, _ := newIntelligenceRouter(t)

		body := `{"price": 100` + strings.Repeat(" ", middleware.MaxBodyBytes) + `}`
		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/products/p1/price", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
	})

	t.Run("Snapshot sem produtos", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().
			ComputeSnapshot(gomock.Any(), gomock.Any()).
			Return(nil, advising.NewAdvisingError(advising.ErrSnapshotRequired, apiErrors.ErrMissingRequiredData, "", ""))

		req := httptest.NewRequest(http.MethodPost, "/v1/intelligence/compute", strings.NewReader(`{"products": []}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		body := decodeAPIError(t, recorder)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, body.Code)
		assert.Equal(t, advising.ErrSnapshotRequired.Error(), body.Message)
	})
}

func TestApplySuggestions(t *testing.T) {
	t.Run("Preço aplicado", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().ApplyPriceChange(gomock.Any(), "store-1", "p1", int64(5400)).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/products/p1/price", strings.NewReader(`{"price": 5400}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"price":5400`)
	})

	t.Run("Preço inválido", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().
			ApplyPriceChange(gomock.Any(), "store-1", "p1", int64(0)).
			Return(advising.NewAdvisingError(errors.New("price must be greater than zero"), apiErrors.ErrInvalidPrice, "store-1", ""))

		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/products/p1/price", strings.NewReader(`{"price": 0}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidPrice, decodeAPIError(t, recorder).Code)
	})

	t.Run("Preço sem Content-Type JSON", func(t *testing.T) {
		rt, _ := newIntelligenceRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/products/p1/price", strings.NewReader(`price=10`))
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Categoria aplicada", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().ApplyCategoryChange(gomock.Any(), "store-1", "p2", "Grains").Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/products/p2/category", strings.NewReader(`{"category": "Grains"}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Categoria de produto inexistente", func(t *testing.T) {
		rt, advisor := newIntelligenceRouter(t)
		advisor.EXPECT().
			ApplyCategoryChange(gomock.Any(), "store-1", "p9", "Grains").
			Return(advising.NewAdvisingError(advising.ErrProductNotFound, apiErrors.ErrProductNotFound, "store-1", "p9"))

		req := httptest.NewRequest(http.MethodPut, "/v1/stores/store-1/products/p9/category", strings.NewReader(`{"category": "Grains"}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		rt.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, apiErrors.ErrProductNotFound, decodeAPIError(t, recorder).Code)
	})
}

func TestRouter_RotaInexistente(t *testing.T) {
	rt, _ := newIntelligenceRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, recorder).Code)

	req = httptest.NewRequest(http.MethodDelete, "/v1/stores/store-1/intelligence", nil)
	recorder = httptest.NewRecorder()
	rt.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
