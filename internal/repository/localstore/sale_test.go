package localstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/stockeye/internal/domain"
	"github.com/msomdec/stockeye/internal/repository/localstore"
	"github.com/msomdec/stockeye/internal/repository/memory"
)

// Compile-time interface checks for the localstore implementations.
var (
	_ domain.ProductRepository = (*localstore.ProductRepository)(nil)
	_ domain.SaleRepository    = (*localstore.SaleRepository)(nil)
	_ domain.UserStore         = (*localstore.UserStore)(nil)
)

func TestSaleRepository_Add(t *testing.T) {
	repo := localstore.NewSaleRepository(memory.NewStore())

	sale, err := repo.Add(context.Background(), "user_1", domain.SaleDraft{
		ProductID:    "p1",
		ProductName:  "Milk",
		QuantitySold: 3,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if sale.ID == "" {
		t.Fatal("expected ID to be stamped")
	}
	if sale.SaleDate.IsZero() {
		t.Fatal("expected SaleDate to be stamped")
	}
	if sale.UserID != "user_1" {
		t.Fatalf("expected user_1, got %q", sale.UserID)
	}
	if sale.ProductName != "Milk" {
		t.Fatalf("expected snapshotted name, got %q", sale.ProductName)
	}
}

func TestSaleRepository_Add_RejectsNonPositiveQuantity(t *testing.T) {
	repo := localstore.NewSaleRepository(memory.NewStore())
	ctx := context.Background()

	for _, quantity := range []int{0, -1} {
		_, err := repo.Add(ctx, "u", domain.SaleDraft{ProductID: "p1", ProductName: "Milk", QuantitySold: quantity})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("quantity %d: expected ErrInvalidInput, got %v", quantity, err)
		}
	}

	sales, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sales) != 0 {
		t.Fatalf("expected empty log after rejected adds, got %d", len(sales))
	}
}

func TestSaleRepository_Add_AnonymousOwner(t *testing.T) {
	repo := localstore.NewSaleRepository(memory.NewStore())

	sale, err := repo.Add(context.Background(), "", domain.SaleDraft{ProductID: "p1", ProductName: "Milk", QuantitySold: 1})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if sale.UserID != domain.AnonymousUserID {
		t.Fatalf("expected anonymous owner, got %q", sale.UserID)
	}
}

func TestSaleRepository_List_InsertionOrder(t *testing.T) {
	repo := localstore.NewSaleRepository(memory.NewStore())
	ctx := context.Background()

	names := []string{"Milk", "Bread", "Milk"}
	for _, name := range names {
		if _, err := repo.Add(ctx, "u", domain.SaleDraft{ProductID: "p", ProductName: name, QuantitySold: 1}); err != nil {
			t.Fatalf("Add %s: %v", name, err)
		}
	}

	sales, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sales) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(sales))
	}
	for i, name := range names {
		if sales[i].ProductName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, sales[i].ProductName)
		}
	}
}

func TestSaleRepository_Clear(t *testing.T) {
	repo := localstore.NewSaleRepository(memory.NewStore())
	ctx := context.Background()

	if _, err := repo.Add(ctx, "u", domain.SaleDraft{ProductID: "p", ProductName: "Milk", QuantitySold: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	sales, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sales) != 0 {
		t.Fatalf("expected empty log, got %d", len(sales))
	}
}
