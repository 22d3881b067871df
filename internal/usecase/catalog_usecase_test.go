package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"booze/internal/domain/entities"
	mock_interfaces "booze/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_ResolveProductName(t *testing.T) {
	t.Run("miss starts one lookup and reports pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo, time.Second)

		release := make(chan struct{})
		repo.EXPECT().GetByID(gomock.Any(), "p1").DoAndReturn(func(context.Context, string) (entities.Product, error) {
			<-release
			return entities.Product{ID: "p1", Name: "Skol 269ml", PriceCents: 350}, nil
		}).Times(1)

		for i := 0; i < 3; i++ {
			name, pending := uc.ResolveProductName(context.Background(), "p1")
			if !pending || name != "" {
				t.Fatalf("expected pending, got %q pending=%v", name, pending)
			}
		}
		done := uc.lookup("p1")
		close(release)
		if res := <-done; res.Err != nil {
			t.Fatalf("unexpected lookup error: %v", res.Err)
		}

		name, pending := uc.ResolveProductName(context.Background(), "p1")
		if pending || name != "Skol 269ml" {
			t.Fatalf("expected resolved name, got %q pending=%v", name, pending)
		}
	})

	t.Run("failed lookup is retried later", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo, time.Second)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{}, errors.New("timeout")),
			repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Brahma"}, nil),
		)

		if res := <-uc.lookup("p1"); res.Err == nil {
			t.Fatalf("expected first lookup to fail")
		}
		if _, pending := uc.ResolveProductName(context.Background(), "p1"); !pending {
			t.Fatalf("expected a second lookup to start")
		}
		<-uc.lookup("p1")
		if name, _ := uc.ResolveProductName(context.Background(), "p1"); name != "Brahma" {
			t.Fatalf("expected Brahma, got %q", name)
		}
	})

	t.Run("unknown product stops being pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo, time.Second)

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Product{}, nil)

		if _, pending := uc.ResolveProductName(context.Background(), "ghost"); !pending {
			t.Fatalf("expected pending on first resolve")
		}
		<-uc.lookup("ghost")
		if name, pending := uc.ResolveProductName(context.Background(), "ghost"); pending || name != "" {
			t.Fatalf("expected settled empty name, got %q pending=%v", name, pending)
		}
	})
}

func TestCatalogUseCase_ListProductsRefreshesNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProductRepository(ctrl)
	uc := NewCatalogUseCase(repo, time.Second)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Amstel"}, nil),
		repo.EXPECT().List(gomock.Any()).Return([]entities.Product{{ID: "p1", Name: "Amstel Lager 350ml"}}, nil),
	)

	if _, err := uc.GetProduct(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name, _ := uc.ResolveProductName(context.Background(), "p1"); name != "Amstel" {
		t.Fatalf("expected Amstel, got %q", name)
	}

	if _, err := uc.ListProducts(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name, pending := uc.ResolveProductName(context.Background(), "p1"); pending || name != "Amstel Lager 350ml" {
		t.Fatalf("expected renamed product, got %q pending=%v", name, pending)
	}
}

func TestCatalogUseCase_GetProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, 0)
		if _, err := uc.GetProduct(context.Background(), " "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo, 0)

		repo.EXPECT().GetByID(gomock.Any(), "p9").Return(entities.Product{}, nil)

		if _, err := uc.GetProduct(context.Background(), "p9"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("found product warms the name cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(repo, 0)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Original 600ml", PriceCents: 1200}, nil)

		p, err := uc.GetProduct(context.Background(), "p1")
		if err != nil || p.PriceCents != 1200 {
			t.Fatalf("unexpected result %+v err=%v", p, err)
		}
		if name, pending := uc.ResolveProductName(context.Background(), "p1"); pending || name != "Original 600ml" {
			t.Fatalf("expected cached name, got %q pending=%v", name, pending)
		}
	})
}
