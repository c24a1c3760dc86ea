package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"
	mock_interfaces "rpa_chamados/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(verifier interfaces.IIdentityVerifier) *gin.Engine {
		r := gin.New()
		r.GET("/v1/demands", AuthRequired(verifier), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"email": callerIdentity(c).Email})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockIIdentityVerifier(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands", nil)
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockIIdentityVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), "bad-token").Return(entities.Identity{}, errors.New("expired"))

		req := httptest.NewRequest(http.MethodGet, "/v1/demands", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("verified identity reaches the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockIIdentityVerifier(ctrl)
		verifier.EXPECT().Verify(gomock.Any(), "good-token").Return(entities.Identity{Email: "dev@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/demands", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		newRouter(verifier).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"email":"dev@example.com"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
