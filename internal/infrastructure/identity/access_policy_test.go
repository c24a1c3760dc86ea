package identity

import (
	"context"
	"errors"
	"testing"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"
	mock_interfaces "rpa_chamados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubmitterAccessPolicy_Authorize(t *testing.T) {
	caller := entities.Identity{SubjectID: "sub-1", Email: "ana@example.com"}

	t.Run("empty role set allows any authenticated caller", func(t *testing.T) {
		p := NewSubmitterAccessPolicy(nil)
		if err := p.Authorize(context.Background(), caller); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		p := NewSubmitterAccessPolicy(nil)
		err := p.Authorize(context.Background(), entities.Identity{})
		if !errors.Is(err, interfaces.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("stored admin role satisfies the requirement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmitterRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Submitter{ID: "s-1", UserRole: entities.UserRoleAdmin}, nil)

		p := NewSubmitterAccessPolicy(repo)
		if err := p.Authorize(context.Background(), caller, entities.UserRoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("default role fails an admin requirement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmitterRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Submitter{ID: "s-1", UserRole: entities.UserRoleDefault}, nil)

		p := NewSubmitterAccessPolicy(repo)
		err := p.Authorize(context.Background(), caller, entities.UserRoleAdmin)
		if !errors.Is(err, interfaces.ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})

	t.Run("unknown caller defaults to the default role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmitterRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Submitter{}, nil)

		p := NewSubmitterAccessPolicy(repo)
		if err := p.Authorize(context.Background(), caller, entities.UserRoleDefault); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin emails env promotes without a lookup", func(t *testing.T) {
		t.Setenv("ADMIN_EMAILS", "ops@example.com, Ana@Example.com")

		p := NewSubmitterAccessPolicy(nil)
		if err := p.Authorize(context.Background(), caller, entities.UserRoleAdmin); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
