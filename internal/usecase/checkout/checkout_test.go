package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/eclipse7-9/enlistment-layout/internal/httperr"
	"github.com/eclipse7-9/enlistment-layout/internal/models"
)

// ------------------------------
// Mocks
// ------------------------------

// fakeRepo confirma las escrituras solo cuando fn termina sin error,
// igual que la transacción real.
type fakeRepo struct {
	methods   map[uint]*models.PaymentMethod
	addresses map[uint]*models.Address

	orders    []*models.Order
	items     []*models.OrderItem
	receipts  []*models.Receipt
	newAddrs  []*models.Address

	receiptErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		methods:   make(map[uint]*models.PaymentMethod),
		addresses: make(map[uint]*models.Address),
	}
}

func (r *fakeRepo) GetPaymentMethod(_ context.Context, id uint) (*models.PaymentMethod, error) {
	if m, ok := r.methods[id]; ok {
		return m, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) GetAddress(_ context.Context, id uint) (*models.Address, error) {
	if a, ok := r.addresses[id]; ok {
		return a, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) CreateAddress(_ context.Context, addr *models.Address) error {
	addr.ID = uint(len(r.newAddrs) + 100)
	r.newAddrs = append(r.newAddrs, addr)
	return nil
}

func (r *fakeRepo) CreateOrder(_ context.Context, order *models.Order) error {
	order.ID = uint(len(r.orders) + 1)
	r.orders = append(r.orders, order)
	return nil
}

func (r *fakeRepo) CreateOrderItem(_ context.Context, item *models.OrderItem) error {
	r.items = append(r.items, item)
	return nil
}

func (r *fakeRepo) CreateReceipt(_ context.Context, receipt *models.Receipt) error {
	if r.receiptErr != nil {
		return r.receiptErr
	}
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *fakeRepo) InTx(_ context.Context, fn func(Repository) error) error {
	staging := &fakeRepo{
		methods:   r.methods,
		addresses: r.addresses,
		receiptErr: r.receiptErr,
	}

	if err := fn(staging); err != nil {
		return err
	}

	r.orders = append(r.orders, staging.orders...)
	r.items = append(r.items, staging.items...)
	r.receipts = append(r.receipts, staging.receipts...)
	r.newAddrs = append(r.newAddrs, staging.newAddrs...)
	return nil
}

var _ Repository = (*fakeRepo)(nil)

// ------------------------------
// Fixtures
// ------------------------------

func buyer() *models.User {
	return &models.User{ID: 10, Role: models.RoleClient}
}

func seededRepo() *fakeRepo {
	repo := newFakeRepo()
	repo.methods[3] = &models.PaymentMethod{ID: 3, Type: "daviplata", OwnerID: 10}
	repo.addresses[7] = &models.Address{ID: 7, FullAddress: "Cra 7 # 12-34", OwnerID: 10}
	return repo
}

func cartInput(u *models.User) Input {
	return Input{
		Requester:       u,
		PaymentMethodID: 3,
		Total:           70,
		Items: []ItemInput{
			{ProductID: 1, Quantity: 2, Subtotal: 30},
			{ProductID: 2, Quantity: 1, Subtotal: 25},
			{ProductID: 3, Quantity: 3, Subtotal: 15},
		},
	}
}

// ------------------------------
// Tests
// ------------------------------

func TestCheckout(t *testing.T) {
	t.Run("creates paid order, line items and paid receipt atomically", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCheckout(repo)

		out, err := uc.Execute(context.Background(), cartInput(buyer()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Order.Status != models.OrderPaid {
			t.Fatalf("expected paid order, got %s", out.Order.Status)
		}
		if out.Order.Total != 70 {
			t.Fatalf("expected total 70, got %v", out.Order.Total)
		}
		if len(repo.items) != 3 {
			t.Fatalf("expected 3 line items, got %d", len(repo.items))
		}

		var sum float64
		for _, item := range repo.items {
			if item.OrderID != out.Order.ID {
				t.Fatal("line item not linked to the order")
			}
			sum += item.Subtotal
		}
		if sum != out.Order.Total {
			t.Fatalf("line items sum %v should equal order total %v", sum, out.Order.Total)
		}

		if out.Receipt.Status != models.ReceiptPaid || out.Receipt.AmountPaid != 70 {
			t.Fatalf("expected paid receipt for 70, got %+v", out.Receipt)
		}
		if out.Receipt.OrderID != out.Order.ID {
			t.Fatal("receipt not linked to the order")
		}
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		uc := NewCheckout(seededRepo())

		in := cartInput(buyer())
		in.Items = nil
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "empty_cart") {
			t.Fatalf("expected empty_cart, got %v", err)
		}
	})

	t.Run("accepts decimal subtotals whose binary sum is inexact", func(t *testing.T) {
		uc := NewCheckout(seededRepo())

		in := cartInput(buyer())
		in.Total = 0.3
		in.Items = []ItemInput{
			{ProductID: 1, Quantity: 1, Subtotal: 0.1},
			{ProductID: 2, Quantity: 1, Subtotal: 0.2},
		}

		out, err := uc.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("valid cart rejected: %v", err)
		}
		if out.Order.Status != models.OrderPaid {
			t.Fatalf("expected paid order, got %s", out.Order.Status)
		}
	})

	t.Run("rejects total that does not match the items", func(t *testing.T) {
		uc := NewCheckout(seededRepo())

		in := cartInput(buyer())
		in.Total = 99
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "total_mismatch") {
			t.Fatalf("expected total_mismatch, got %v", err)
		}
	})

	t.Run("rejects payment method of another user", func(t *testing.T) {
		repo := seededRepo()
		repo.methods[3].OwnerID = 99
		uc := NewCheckout(repo)

		if _, err := uc.Execute(context.Background(), cartInput(buyer())); !httperr.IsBusiness(err, "payment_method_forbidden") {
			t.Fatalf("expected payment_method_forbidden, got %v", err)
		}
	})

	t.Run("mid transaction failure leaves nothing written", func(t *testing.T) {
		repo := seededRepo()
		repo.receiptErr = errors.New("receipts table unavailable")
		uc := NewCheckout(repo)

		if _, err := uc.Execute(context.Background(), cartInput(buyer())); err == nil {
			t.Fatal("expected the checkout to fail")
		}

		if len(repo.orders) != 0 || len(repo.items) != 0 || len(repo.receipts) != 0 {
			t.Fatalf("partial writes leaked: %d orders, %d items, %d receipts",
				len(repo.orders), len(repo.items), len(repo.receipts))
		}
	})

	t.Run("referenced address must belong to the requester", func(t *testing.T) {
		repo := seededRepo()
		repo.addresses[7].OwnerID = 99
		uc := NewCheckout(repo)

		addrID := uint(7)
		in := cartInput(buyer())
		in.Address = &AddressInput{ID: &addrID}
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "address_forbidden") {
			t.Fatalf("expected address_forbidden, got %v", err)
		}
	})

	t.Run("inline address requires the full location", func(t *testing.T) {
		uc := NewCheckout(seededRepo())

		in := cartInput(buyer())
		in.Address = &AddressInput{FullAddress: "Calle 1"}
		if _, err := uc.Execute(context.Background(), in); !httperr.IsBusiness(err, "incomplete_address") {
			t.Fatalf("expected incomplete_address, got %v", err)
		}
	})

	t.Run("inline address is created inside the transaction", func(t *testing.T) {
		repo := seededRepo()
		uc := NewCheckout(repo)

		in := cartInput(buyer())
		in.Address = &AddressInput{FullAddress: "Calle 1 # 2-3", RegionID: 1, CityID: 2}

		out, err := uc.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.newAddrs) != 1 {
			t.Fatalf("expected 1 created address, got %d", len(repo.newAddrs))
		}
		if out.Order.AddressID == nil || *out.Order.AddressID != repo.newAddrs[0].ID {
			t.Fatal("order should reference the created address")
		}
	})
}
