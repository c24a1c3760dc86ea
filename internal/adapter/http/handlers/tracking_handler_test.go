package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rpa_chamados/internal/adapter/http/handlers/mocks"
	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const trackingBody = `{
	"demand_id": "d-1",
	"hours": 3.5,
	"nature": "DESENVOLVIMENTO",
	"submitted_at": "2025-06-02T00:00:00Z",
	"submitter_id": "s-1"
}`

func TestTrackingHandler_CreateTracking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/trackings", h.CreateTracking)

		req := httptest.NewRequest(http.MethodPost, "/v1/trackings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success embeds the demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/trackings", h.CreateTracking)

		uc.EXPECT().CreateTracking(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TrackingWithDemand{
			Tracking:  entities.Tracking{ID: "t-1", DemandID: "d-1", Hours: 3.5},
			Demand:    entities.Demand{ID: "d-1", Name: "invoice-bot"},
			Submitter: entities.Submitter{ID: "s-1", Name: "Ana"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/trackings", bytes.NewBufferString(trackingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		demand, ok := body["demand"].(map[string]any)
		if !ok || demand["name"] != "invoice-bot" {
			t.Fatalf("expected embedded demand, got %v", body)
		}
	})

	t.Run("blocked demand maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/trackings", h.CreateTracking)

		uc.EXPECT().CreateTracking(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TrackingWithDemand{}, usecase.ErrDemandBlocked)

		req := httptest.NewRequest(http.MethodPost, "/v1/trackings", bytes.NewBufferString(trackingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "DEMAND_BLOCKED" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})

	t.Run("bad reference maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.POST("/v1/trackings", h.CreateTracking)

		uc.EXPECT().CreateTracking(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.TrackingWithDemand{}, usecase.ErrInvalidTrackingRef)

		req := httptest.NewRequest(http.MethodPost, "/v1/trackings", bytes.NewBufferString(trackingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestTrackingHandler_TotalHours(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown demand totals zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/trackings/demand/:demandId/total-hours", h.GetTotalHoursByDemandID)

		uc.EXPECT().TotalHoursByDemandID(gomock.Any(), "no-such-demand").Return(0.0, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/trackings/demand/no-such-demand/total-hours", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["total"] != 0.0 {
			t.Fatalf("expected zero total, got %v", body)
		}
	})

	t.Run("total by nature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/trackings/demand/:demandId/total-hours/:nature", h.GetTotalHoursByDemandIDAndNature)

		uc.EXPECT().TotalHoursByDemandIDAndNature(gomock.Any(), "d-1", entities.NatureDocumentacao).Return(12.5, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/trackings/demand/d-1/total-hours/DOCUMENTACAO", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != 12.5 || body["nature"] != "DOCUMENTACAO" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid nature maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc)

		r := gin.New()
		r.GET("/v1/trackings/demand/:demandId/total-hours/:nature", h.GetTotalHoursByDemandIDAndNature)

		uc.EXPECT().TotalHoursByDemandIDAndNature(gomock.Any(), "d-1", entities.Nature("GARDENING")).Return(0.0, usecase.ErrInvalidTrackingData)

		req := httptest.NewRequest(http.MethodGet, "/v1/trackings/demand/d-1/total-hours/GARDENING", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
