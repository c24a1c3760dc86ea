package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rpa_chamados/internal/domain/entities"
	"rpa_chamados/internal/usecase/interfaces"
	mock_interfaces "rpa_chamados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testCaller = entities.Identity{SubjectID: "sub-1", Email: "dev@example.com", DisplayName: "Dev"}

type demandMocks struct {
	repo       *mock_interfaces.MockIDemandRepository
	projects   *mock_interfaces.MockIProjectRepository
	submitters *mock_interfaces.MockISubmitterRepository
	robots     *mock_interfaces.MockIRobotRepository
	policy     *mock_interfaces.MockIAccessPolicy
}

func newDemandUseCaseWithMocks(ctrl *gomock.Controller) (*DemandUseCase, demandMocks) {
	m := demandMocks{
		repo:       mock_interfaces.NewMockIDemandRepository(ctrl),
		projects:   mock_interfaces.NewMockIProjectRepository(ctrl),
		submitters: mock_interfaces.NewMockISubmitterRepository(ctrl),
		robots:     mock_interfaces.NewMockIRobotRepository(ctrl),
		policy:     mock_interfaces.NewMockIAccessPolicy(ctrl),
	}
	return NewDemandUseCase(m.repo, m.projects, m.submitters, m.robots, m.policy), m
}

func validCreateInput() CreateDemandInput {
	return CreateDemandInput{
		Name:         "invoice-bot",
		DocHours:     8,
		DevHours:     40,
		Type:         entities.ServiceTypeNovoProjeto,
		FocalPointID: "fp-1",
		AnalystID:    "an-1",
		ProjectID:    "pr-1",
		RobotID:      "rb-1",
		Status:       entities.DemandStatusBacklog,
	}
}

func expectReferencesResolve(m demandMocks) {
	m.projects.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Project{ID: "pr-1"}, nil)
	m.submitters.EXPECT().GetByID(gomock.Any(), "fp-1").Return(entities.Submitter{ID: "fp-1"}, nil)
	m.submitters.EXPECT().GetByID(gomock.Any(), "an-1").Return(entities.Submitter{ID: "an-1"}, nil)
	m.robots.EXPECT().GetByID(gomock.Any(), "rb-1").Return(entities.Robot{ID: "rb-1"}, nil)
}

func TestDemandUseCase_CreateDemand(t *testing.T) {
	t.Run("caller not authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(interfaces.ErrInvalidToken)

		_, err := uc.CreateDemand(context.Background(), testCaller, validCreateInput())
		if !errors.Is(err, ErrCallerNotAuthorized) {
			t.Fatalf("expected ErrCallerNotAuthorized, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)

		in := validCreateInput()
		in.Name = "   "
		_, err := uc.CreateDemand(context.Background(), testCaller, in)
		if !errors.Is(err, ErrInvalidDemandInput) {
			t.Fatalf("expected ErrInvalidDemandInput, got %v", err)
		}
	})

	t.Run("name already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "invoice-bot").Return("other-id", nil)

		_, err := uc.CreateDemand(context.Background(), testCaller, validCreateInput())
		if !errors.Is(err, ErrDemandAlreadyExists) {
			t.Fatalf("expected ErrDemandAlreadyExists, got %v", err)
		}
	})

	t.Run("project checked before other references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "invoice-bot").Return("", nil)
		// Only the project lookup may run; a miss there stops the chain even
		// though the remaining references are also bad.
		m.projects.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Project{}, nil)

		_, err := uc.CreateDemand(context.Background(), testCaller, validCreateInput())
		if !errors.Is(err, ErrInvalidDemandRef) {
			t.Fatalf("expected ErrInvalidDemandRef, got %v", err)
		}
	})

	t.Run("focal point checked before analyst", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "invoice-bot").Return("", nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "pr-1").Return(entities.Project{ID: "pr-1"}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "fp-1").Return(entities.Submitter{}, nil)

		_, err := uc.CreateDemand(context.Background(), testCaller, validCreateInput())
		if !errors.Is(err, ErrInvalidDemandRef) {
			t.Fatalf("expected ErrInvalidDemandRef, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "invoice-bot").Return("", nil)
		expectReferencesResolve(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Demand{})).DoAndReturn(
			func(_ context.Context, d entities.Demand) (entities.Demand, error) {
				if d.ID == "" || d.Name != "invoice-bot" || d.Status != entities.DemandStatusBacklog {
					t.Fatalf("unexpected demand: %+v", d)
				}
				if d.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return d, nil
			},
		)

		in := validCreateInput()
		in.Name = " invoice-bot "
		res, err := uc.CreateDemand(context.Background(), testCaller, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "invoice-bot" {
			t.Fatalf("expected trimmed name, got %q", res.Name)
		}
	})

	t.Run("concurrent create loses name race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "invoice-bot").Return("", nil)
		expectReferencesResolve(m)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Demand{}, interfaces.ErrDuplicateName)

		_, err := uc.CreateDemand(context.Background(), testCaller, validCreateInput())
		if !errors.Is(err, ErrDemandAlreadyExists) {
			t.Fatalf("expected ErrDemandAlreadyExists, got %v", err)
		}
	})
}

func TestDemandUseCase_UpdateDemand(t *testing.T) {
	existing := entities.Demand{
		ID:        "d-1",
		Name:      "old-name",
		CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	updateInput := func() UpdateDemandInput {
		return UpdateDemandInput{
			ID:           "d-1",
			Name:         "new-name",
			DocHours:     2,
			DevHours:     10,
			Type:         entities.ServiceTypeMelhoria,
			FocalPointID: "fp-1",
			AnalystID:    "an-1",
			ProjectID:    "pr-1",
			RobotID:      "rb-1",
			Status:       entities.DemandStatusDeveloping,
		}
	}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{}, nil)

		_, err := uc.UpdateDemand(context.Background(), testCaller, updateInput())
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})

	t.Run("name taken by another demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(existing, nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "new-name").Return("d-2", nil)

		_, err := uc.UpdateDemand(context.Background(), testCaller, updateInput())
		if !errors.Is(err, ErrDemandAlreadyExists) {
			t.Fatalf("expected ErrDemandAlreadyExists, got %v", err)
		}
	})

	t.Run("own name does not conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(existing, nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "new-name").Return("d-1", nil)
		expectReferencesResolve(m)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Demand{}), "old-name").DoAndReturn(
			func(_ context.Context, d entities.Demand, _ string) (entities.Demand, error) {
				if d.ID != "d-1" {
					t.Fatalf("expected id to survive the replace, got %q", d.ID)
				}
				if !d.CreatedAt.Equal(existing.CreatedAt) {
					t.Fatalf("expected created_at to survive the replace, got %v", d.CreatedAt)
				}
				return d, nil
			},
		)

		res, err := uc.UpdateDemand(context.Background(), testCaller, updateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "new-name" || res.Status != entities.DemandStatusDeveloping {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(existing, nil)
		m.repo.EXPECT().GetNameOwner(gomock.Any(), "new-name").Return("", nil)
		expectReferencesResolve(m)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), "old-name").Return(entities.Demand{}, interfaces.ErrItemGone)

		_, err := uc.UpdateDemand(context.Background(), testCaller, updateInput())
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})
}

func TestDemandUseCase_DeleteDemandByID(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(interfaces.ErrInsufficientRole)

		err := uc.DeleteDemandByID(context.Background(), testCaller, "d-1")
		if !errors.Is(err, ErrCallerNotAuthorized) {
			t.Fatalf("expected ErrCallerNotAuthorized, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{}, nil)

		err := uc.DeleteDemandByID(context.Background(), testCaller, "d-1")
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})

	t.Run("delete success passes stored name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Name: "invoice-bot"}, nil)
		m.repo.EXPECT().DeleteByID(gomock.Any(), "d-1", "invoice-bot").Return(nil)

		if err := uc.DeleteDemandByID(context.Background(), testCaller, "d-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDemandUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc, _ := newDemandUseCaseWithMocks(gomock.NewController(t))
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newDemandUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Demand{}, nil)

		_, err := uc.GetByID(context.Background(), "nope")
		if !errors.Is(err, ErrDemandNotFound) {
			t.Fatalf("expected ErrDemandNotFound, got %v", err)
		}
	})
}

func TestDemandUseCase_ListValidation(t *testing.T) {
	uc, _ := newDemandUseCaseWithMocks(gomock.NewController(t))

	if _, err := uc.ListByStatus(context.Background(), "NOT_A_STATUS"); !errors.Is(err, ErrInvalidDemandInput) {
		t.Fatalf("expected ErrInvalidDemandInput, got %v", err)
	}
	if _, err := uc.ListByType(context.Background(), "NOT_A_TYPE"); !errors.Is(err, ErrInvalidDemandInput) {
		t.Fatalf("expected ErrInvalidDemandInput, got %v", err)
	}
}
