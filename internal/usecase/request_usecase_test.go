package usecase

import (
	"context"
	"errors"
	"testing"

	"rpa_chamados/internal/domain/entities"
	mock_interfaces "rpa_chamados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubSubmitterUseCase is a hand-rolled ISubmitterUseCase: the real mock
// lives in the handlers tier and importing it here would cycle.
type stubSubmitterUseCase struct {
	findOrCreate func(ctx context.Context, identity entities.Identity, department, company string) (entities.Submitter, error)
}

func (s *stubSubmitterUseCase) GetByID(context.Context, string) (entities.Submitter, error) {
	return entities.Submitter{}, nil
}

func (s *stubSubmitterUseCase) GetByEmail(context.Context, string) (entities.Submitter, error) {
	return entities.Submitter{}, nil
}

func (s *stubSubmitterUseCase) GetAll(context.Context) ([]entities.Submitter, error) {
	return nil, nil
}

func (s *stubSubmitterUseCase) UpdateActiveStatus(context.Context, entities.Identity, string, bool) (entities.Submitter, error) {
	return entities.Submitter{}, nil
}

func (s *stubSubmitterUseCase) FindOrCreate(ctx context.Context, identity entities.Identity, department, company string) (entities.Submitter, error) {
	return s.findOrCreate(ctx, identity, department, company)
}

func TestRequestUseCase_CreateRequest(t *testing.T) {
	melhoriaInput := func() CreateRequestInput {
		return CreateRequestInput{
			Kind:       entities.RequestKindMelhoria,
			Title:      "selector keeps breaking",
			Department: "Fiscal",
			Melhoria: &entities.MelhoriaDetails{
				RobotName:        "invoice-bot",
				ExpectedBehavior: "survive layout changes",
			},
		}
	}

	t.Run("details must match kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		uc := NewRequestUseCase(nil, nil, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)

		in := melhoriaInput()
		in.Kind = entities.RequestKindSustentacao
		_, err := uc.CreateRequest(context.Background(), testCaller, in)
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("exactly one details group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		uc := NewRequestUseCase(nil, nil, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)

		in := melhoriaInput()
		in.Sustentacao = &entities.SustentacaoDetails{RobotName: "invoice-bot", Incident: "stopped"}
		_, err := uc.CreateRequest(context.Background(), testCaller, in)
		if !errors.Is(err, ErrInvalidRequestInput) {
			t.Fatalf("expected ErrInvalidRequestInput, got %v", err)
		}
	})

	t.Run("submitter comes from the caller identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		submitters := &stubSubmitterUseCase{
			findOrCreate: func(_ context.Context, identity entities.Identity, department, _ string) (entities.Submitter, error) {
				if identity.Email != testCaller.Email {
					t.Fatalf("expected caller identity, got %+v", identity)
				}
				if department != "Fiscal" {
					t.Fatalf("expected department from payload, got %q", department)
				}
				return entities.Submitter{ID: "s-1"}, nil
			},
		}
		uc := NewRequestUseCase(repo, submitters, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Request{})).DoAndReturn(
			func(_ context.Context, r entities.Request) (entities.Request, error) {
				if r.ID == "" || r.SubmitterID != "s-1" || r.Kind != entities.RequestKindMelhoria {
					t.Fatalf("unexpected request: %+v", r)
				}
				return r, nil
			},
		)

		res, err := uc.CreateRequest(context.Background(), testCaller, melhoriaInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Melhoria == nil || res.Melhoria.RobotName != "invoice-bot" {
			t.Fatalf("expected melhoria details, got %+v", res)
		}
	})
}

func TestRequestUseCase_DeleteRequestByID(t *testing.T) {
	t.Run("requires admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		uc := NewRequestUseCase(nil, nil, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(errors.New("nope"))

		err := uc.DeleteRequestByID(context.Background(), testCaller, "r-1")
		if !errors.Is(err, ErrCallerNotAuthorized) {
			t.Fatalf("expected ErrCallerNotAuthorized, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		policy := mock_interfaces.NewMockIAccessPolicy(ctrl)
		uc := NewRequestUseCase(repo, nil, policy)

		policy.EXPECT().Authorize(gomock.Any(), testCaller, entities.UserRoleAdmin).Return(nil)
		repo.EXPECT().GetByID(gomock.Any(), "r-404").Return(entities.Request{}, nil)

		err := uc.DeleteRequestByID(context.Background(), testCaller, "r-404")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}
