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

const requestBody = `{
	"kind": "MELHORIA",
	"title": "Selector breaks on the new portal layout",
	"department": "Fiscal",
	"melhoria": {
		"robot_name": "invoice-bot",
		"expected_behavior": "survive the portal redesign"
	}
}`

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(`{"kind":`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		body := `{"kind": "CATERING", "title": "lunch"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("details mismatch maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Request{}, usecase.ErrInvalidRequestInput)

		body := `{"kind": "SUSTENTACAO", "title": "wrong details group"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var errBody map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &errBody); err != nil {
			t.Fatalf("invalid error body: %v", err)
		}
		if errBody["code"] != "INVALID_REQUEST_INPUT" {
			t.Fatalf("expected INVALID_REQUEST_INPUT, got %v", errBody["code"])
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.POST("/v1/requests", h.CreateRequest)

		uc.EXPECT().
			CreateRequest(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Identity, in usecase.CreateRequestInput) (entities.Request, error) {
				if in.Kind != entities.RequestKindMelhoria {
					t.Fatalf("expected MELHORIA kind, got %s", in.Kind)
				}
				if in.Melhoria == nil || in.Melhoria.RobotName != "invoice-bot" {
					t.Fatalf("expected melhoria details, got %+v", in.Melhoria)
				}
				return entities.Request{ID: "r-1", Kind: in.Kind, Title: in.Title}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(requestBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "r-1" {
			t.Fatalf("expected created request in body, got %v", body)
		}
	})
}

func TestServiceRequestHandler_GetRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submitter filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests", h.GetRequests)

		uc.EXPECT().ListBySubmitterID(gomock.Any(), "s-1").Return([]entities.Request{{ID: "r-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests?submitter_id=s-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		h := NewServiceRequestHandler(uc)

		r := gin.New()
		r.GET("/v1/requests/:id", h.GetRequestByID)

		uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Request{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
