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

type trackingMocks struct {
	repo       *mock_interfaces.MockITrackingRepository
	demandRepo *mock_interfaces.MockIDemandRepository
	submitters *mock_interfaces.MockISubmitterRepository
	policy     *mock_interfaces.MockIAccessPolicy
}

func newTrackingUseCaseWithMocks(ctrl *gomock.Controller, demands IDemandUseCase) (*TrackingUseCase, trackingMocks) {
	m := trackingMocks{
		repo:       mock_interfaces.NewMockITrackingRepository(ctrl),
		demandRepo: mock_interfaces.NewMockIDemandRepository(ctrl),
		submitters: mock_interfaces.NewMockISubmitterRepository(ctrl),
		policy:     mock_interfaces.NewMockIAccessPolicy(ctrl),
	}
	return NewTrackingUseCase(m.repo, m.demandRepo, m.submitters, demands, m.policy), m
}

func validTrackingInput() CreateTrackingInput {
	return CreateTrackingInput{
		DemandID:    "d-1",
		Hours:       3.5,
		Nature:      entities.NatureDesenvolvimento,
		Description: "fixed the selector",
		SubmittedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		SubmitterID: "s-1",
	}
}

func TestTrackingUseCase_CreateTracking(t *testing.T) {
	t.Run("invalid nature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)

		in := validTrackingInput()
		in.Nature = "GARDENING"
		_, err := uc.CreateTracking(context.Background(), testCaller, in)
		if !errors.Is(err, ErrInvalidTrackingData) {
			t.Fatalf("expected ErrInvalidTrackingData, got %v", err)
		}
	})

	t.Run("unknown demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{}, nil)

		_, err := uc.CreateTracking(context.Background(), testCaller, validTrackingInput())
		if !errors.Is(err, ErrInvalidTrackingRef) {
			t.Fatalf("expected ErrInvalidTrackingRef, got %v", err)
		}
	})

	t.Run("blocked demand wins over bad submitter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Status: entities.DemandStatusBlocked}, nil)
		// No submitter expectation: the gate must fire before the lookup even
		// when the submitter id would not resolve either.

		in := validTrackingInput()
		in.SubmitterID = "no-such-submitter"
		_, err := uc.CreateTracking(context.Background(), testCaller, in)
		if !errors.Is(err, ErrDemandBlocked) {
			t.Fatalf("expected ErrDemandBlocked, got %v", err)
		}
	})

	t.Run("unknown submitter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Status: entities.DemandStatusDeveloping}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{}, nil)

		_, err := uc.CreateTracking(context.Background(), testCaller, validTrackingInput())
		if !errors.Is(err, ErrInvalidTrackingRef) {
			t.Fatalf("expected ErrInvalidTrackingRef, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Name: "invoice-bot", Status: entities.DemandStatusDeveloping}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1", Name: "Ana"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Tracking{})).DoAndReturn(
			func(_ context.Context, tr entities.Tracking) (entities.Tracking, error) {
				if tr.ID == "" || tr.DemandID != "d-1" || tr.SubmitterID != "s-1" || tr.Hours != 3.5 {
					t.Fatalf("unexpected tracking: %+v", tr)
				}
				if tr.CreatedAt.IsZero() {
					t.Fatalf("expected created_at")
				}
				return tr, nil
			},
		)

		res, err := uc.CreateTracking(context.Background(), testCaller, validTrackingInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Demand.Name != "invoice-bot" || res.Submitter.Name != "Ana" {
			t.Fatalf("expected embedded demand and submitter, got %+v", res)
		}
	})

	t.Run("demand blocked between read and commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Status: entities.DemandStatusDeveloping}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Tracking{}, interfaces.ErrDemandUnavailable)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Status: entities.DemandStatusBlocked}, nil)

		_, err := uc.CreateTracking(context.Background(), testCaller, validTrackingInput())
		if !errors.Is(err, ErrDemandBlocked) {
			t.Fatalf("expected ErrDemandBlocked, got %v", err)
		}
	})

	t.Run("demand deleted between read and commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Status: entities.DemandStatusDeveloping}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Tracking{}, interfaces.ErrDemandUnavailable)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{}, nil)

		_, err := uc.CreateTracking(context.Background(), testCaller, validTrackingInput())
		if !errors.Is(err, ErrInvalidTrackingRef) {
			t.Fatalf("expected ErrInvalidTrackingRef, got %v", err)
		}
	})
}

func TestTrackingUseCase_UpdateTracking(t *testing.T) {
	existing := entities.Tracking{
		ID:        "t-1",
		DemandID:  "d-1",
		CreatedAt: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
	}

	t.Run("update is allowed on a blocked demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(existing, nil)
		m.demandRepo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Status: entities.DemandStatusBlocked}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1"}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Tracking{})).DoAndReturn(
			func(_ context.Context, tr entities.Tracking) (entities.Tracking, error) {
				if tr.ID != "t-1" {
					t.Fatalf("expected id to survive the replace, got %q", tr.ID)
				}
				if !tr.CreatedAt.Equal(existing.CreatedAt) {
					t.Fatalf("expected created_at to survive the replace, got %v", tr.CreatedAt)
				}
				return tr, nil
			},
		)

		in := UpdateTrackingInput{
			ID:          "t-1",
			DemandID:    "d-1",
			Hours:       1,
			Nature:      entities.NatureDocumentacao,
			SubmittedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			SubmitterID: "s-1",
		}
		if _, err := uc.UpdateTracking(context.Background(), testCaller, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.policy.EXPECT().Authorize(gomock.Any(), testCaller).Return(nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "t-404").Return(entities.Tracking{}, nil)

		in := UpdateTrackingInput{ID: "t-404", DemandID: "d-1", Hours: 1, Nature: entities.NatureDocumentacao, SubmitterID: "s-1"}
		_, err := uc.UpdateTracking(context.Background(), testCaller, in)
		if !errors.Is(err, ErrTrackingNotFound) {
			t.Fatalf("expected ErrTrackingNotFound, got %v", err)
		}
	})
}

func TestTrackingUseCase_TotalHours(t *testing.T) {
	t.Run("empty set sums to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.repo.EXPECT().SumHoursByDemandID(gomock.Any(), "no-such-demand").Return(0.0, nil)

		total, err := uc.TotalHoursByDemandID(context.Background(), "no-such-demand")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 0 {
			t.Fatalf("expected 0.0, got %v", total)
		}
	})

	t.Run("by nature validates the nature", func(t *testing.T) {
		uc, _ := newTrackingUseCaseWithMocks(gomock.NewController(t), nil)

		_, err := uc.TotalHoursByDemandIDAndNature(context.Background(), "d-1", "GARDENING")
		if !errors.Is(err, ErrInvalidTrackingData) {
			t.Fatalf("expected ErrInvalidTrackingData, got %v", err)
		}
	})

	t.Run("by nature delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.repo.EXPECT().SumHoursByDemandIDAndNature(gomock.Any(), "d-1", entities.NatureDocumentacao).Return(12.5, nil)

		total, err := uc.TotalHoursByDemandIDAndNature(context.Background(), "d-1", entities.NatureDocumentacao)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 12.5 {
			t.Fatalf("expected 12.5, got %v", total)
		}
	})
}

func TestTrackingUseCase_GetByID(t *testing.T) {
	t.Run("composes the full demand projection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		demandUC, dm := newDemandUseCaseWithMocks(ctrl)
		uc, m := newTrackingUseCaseWithMocks(ctrl, demandUC)

		m.repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tracking{ID: "t-1", DemandID: "d-1", SubmitterID: "s-1"}, nil)
		dm.repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Demand{ID: "d-1", Name: "invoice-bot"}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1", Name: "Ana"}, nil)

		res, err := uc.GetByID(context.Background(), "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Demand.Name != "invoice-bot" || res.Submitter.Name != "Ana" {
			t.Fatalf("expected composed projection, got %+v", res)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newTrackingUseCaseWithMocks(ctrl, nil)

		m.repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Tracking{}, nil)

		_, err := uc.GetByID(context.Background(), "nope")
		if !errors.Is(err, ErrTrackingNotFound) {
			t.Fatalf("expected ErrTrackingNotFound, got %v", err)
		}
	})

	t.Run("tracking outlives a deleted demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		demandUC, dm := newDemandUseCaseWithMocks(ctrl)
		uc, m := newTrackingUseCaseWithMocks(ctrl, demandUC)

		m.repo.EXPECT().GetByID(gomock.Any(), "t-1").Return(entities.Tracking{ID: "t-1", DemandID: "d-gone", SubmitterID: "s-1"}, nil)
		dm.repo.EXPECT().GetByID(gomock.Any(), "d-gone").Return(entities.Demand{}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1", Name: "Ana"}, nil)

		res, err := uc.GetByID(context.Background(), "t-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Tracking.ID != "t-1" || res.Demand.ID != "" {
			t.Fatalf("expected tracking with a zero demand projection, got %+v", res)
		}
	})
}

func TestTrackingUseCase_ListBySubmitterID(t *testing.T) {
	t.Run("lists survive an orphaned tracking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		demandUC, dm := newDemandUseCaseWithMocks(ctrl)
		uc, m := newTrackingUseCaseWithMocks(ctrl, demandUC)

		m.repo.EXPECT().ListBySubmitterID(gomock.Any(), "s-1").Return([]entities.Tracking{
			{ID: "t-1", DemandID: "d-gone", SubmitterID: "s-1"},
			{ID: "t-2", DemandID: "d-2", SubmitterID: "s-1"},
		}, nil)
		dm.repo.EXPECT().GetByID(gomock.Any(), "d-gone").Return(entities.Demand{}, nil)
		dm.repo.EXPECT().GetByID(gomock.Any(), "d-2").Return(entities.Demand{ID: "d-2", Name: "invoice-bot"}, nil)
		m.submitters.EXPECT().GetByID(gomock.Any(), "s-1").Return(entities.Submitter{ID: "s-1", Name: "Ana"}, nil).Times(2)

		res, err := uc.ListBySubmitterID(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected both trackings, got %d", len(res))
		}
		if res[0].Demand.ID != "" || res[1].Demand.Name != "invoice-bot" {
			t.Fatalf("expected zero projection for the orphan only, got %+v", res)
		}
	})
}
