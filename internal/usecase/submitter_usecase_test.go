package usecase

import (
	"context"
	"errors"
	"testing"

	"rpa_chamados/internal/domain/entities"
	mock_interfaces "rpa_chamados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSubmitterUseCase_FindOrCreate(t *testing.T) {
	identity := entities.Identity{SubjectID: "sub-1", Email: "Ana.Silva@Example.com", DisplayName: "Ana Silva"}

	t.Run("first contact creates a default-role submitter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmitterRepository(ctrl)
		uc := NewSubmitterUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana.silva@example.com").Return(entities.Submitter{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Submitter{})).DoAndReturn(
			func(_ context.Context, s entities.Submitter) (entities.Submitter, error) {
				if s.ID == "" || s.Email != "ana.silva@example.com" || s.Name != "Ana Silva" {
					t.Fatalf("unexpected submitter: %+v", s)
				}
				if s.UserRole != entities.UserRoleDefault || !s.IsActive || s.RequestsSubmitted != 1 {
					t.Fatalf("unexpected defaults: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.FindOrCreate(context.Background(), identity, "Fiscal", "ACME"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repeat contact bumps the counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmitterRepository(ctrl)
		uc := NewSubmitterUseCase(repo, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana.silva@example.com").Return(entities.Submitter{ID: "s-1", RequestsSubmitted: 4}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Submitter{})).DoAndReturn(
			func(_ context.Context, s entities.Submitter) (entities.Submitter, error) {
				if s.RequestsSubmitted != 5 || s.LastActivity == nil {
					t.Fatalf("unexpected update: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := uc.FindOrCreate(context.Background(), identity, "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank email", func(t *testing.T) {
		uc := NewSubmitterUseCase(nil, nil)
		_, err := uc.FindOrCreate(context.Background(), entities.Identity{}, "", "")
		if !errors.Is(err, ErrInvalidSubmitterInput) {
			t.Fatalf("expected ErrInvalidSubmitterInput, got %v", err)
		}
	})
}

func TestSubmitterUseCase_UpdateActiveStatus(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		uc := NewSubmitterUseCase(nil, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(errors.New("nope"))

		_, err := uc.UpdateActiveStatus(context.Background(), testCaller, "s-1", false)
		if !errors.Is(err, ErrCallerNotAuthorized) {
			t.Fatalf("expected ErrCallerNotAuthorized, got %v", err)
		}
	})

	t.Run("deactivate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmitterRepository(ctrl)
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		uc := NewSubmitterUseCase(repo, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1", IsActive: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Submitter{})).DoAndReturn(
			func(_ context.Context, s entities.Submitter) (entities.Submitter, error) {
				if s.IsActive {
					t.Fatalf("expected deactivated submitter")
				}
				return s, nil
			},
		)

		if _, err := uc.UpdateActiveStatus(context.Background(), testCaller, "s-1", false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
