package handlers

import (
	"bytes"
	"context"
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

const demandBody = `{
	"name": "invoice-bot",
	"doc_hours": 8,
	"dev_hours": 40,
	"type": "NOVO_PROJETO",
	"focal_point_id": "fp-1",
	"analyst_id": "an-1",
	"project_id": "pr-1",
	"robot_id": "rb-1",
	"status": "BACKLOG"
}`

func TestDemandHandler_CreateDemand(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), gomock.Any(), gomock.AssignableToTypeOf(usecase.CreateDemandInput{})).DoAndReturn(
			func(_ context.Context, _ entities.Identity, in usecase.CreateDemandInput) (entities.Demand, error) {
				if in.Name != "invoice-bot" || in.Type != entities.ServiceTypeNovoProjeto {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Demand{ID: "d-1", Name: in.Name, Status: in.Status}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(demandBody))
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
		if body["id"] != "d-1" || body["name"] != "invoice-bot" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("duplicate name maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Demand{}, usecase.ErrDemandAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(demandBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "DEMAND_ALREADY_EXISTS" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})

	t.Run("missing reference maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Demand{}, usecase.ErrInvalidDemandRef)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(demandBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.POST("/v1/demands", h.CreateDemand)

		uc.EXPECT().CreateDemand(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Demand{}, usecase.ErrCallerNotAuthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/demands", bytes.NewBufferString(demandBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestDemandHandler_GetDemandByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands/:id", h.GetDemandByID)

		uc.EXPECT().GetByID(gomock.Any(), "d-404").Return(entities.Demand{}, usecase.ErrDemandNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands/d-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDemandHandler_GetDemands(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands", h.GetDemands)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.DemandStatusBlocked).Return([]entities.Demand{{ID: "d-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands?status=BLOCKED", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("status path segment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands/status/:status", h.GetDemandsByStatus)

		uc.EXPECT().ListByStatus(gomock.Any(), entities.DemandStatusDeveloping).Return([]entities.Demand{{ID: "d-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands/status/DEVELOPING", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("no filter lists all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.GET("/v1/demands", h.GetDemands)

		uc.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDemandHandler_DeleteDemand(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDemandUseCase(ctrl)
		h := NewDemandHandler(uc)

		r := gin.New()
		r.DELETE("/v1/demands/:id", h.DeleteDemand)

		uc.EXPECT().DeleteDemandByID(gomock.Any(), gomock.Any(), "d-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/demands/d-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
