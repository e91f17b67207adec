package models

import "testing"

func TestCanTransitionOrderStatus(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusDraft, OrderStatusCompleted, true},
		{OrderStatusDraft, OrderStatusCancelled, true},
		{OrderStatusDraft, OrderStatusPending, false},
		{OrderStatusQRPending, OrderStatusPending, true},
		{OrderStatusQRPending, OrderStatusCancelled, true},
		{OrderStatusQRPending, OrderStatusCompleted, false},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusConfirmed, OrderStatusCompleted, true},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		// aynı duruma geçiş no-op
		{OrderStatusCompleted, OrderStatusCompleted, true},
		{OrderStatusDraft, OrderStatusDraft, true},
	}

	for _, tc := range cases {
		if got := CanTransitionOrderStatus(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransitionOrderStatus(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestComputeTotalsAmountDiscount(t *testing.T) {
	items := []OrderItem{
		{Price: 10.50, Quantity: 2},
		{Price: 4.50, Quantity: 1},
	}

	subtotal, total := ComputeTotals(items, 5.00, DiscountTypeAmount)
	if subtotal != 25.50 {
		t.Errorf("subtotal = %v, want 25.50", subtotal)
	}
	if total != 20.50 {
		t.Errorf("total = %v, want 20.50", total)
	}
}

func TestComputeTotalsPercentageDiscount(t *testing.T) {
	items := []OrderItem{{Price: 6.00, Quantity: 1}}

	subtotal, total := ComputeTotals(items, 50, DiscountTypePercentage)
	if subtotal != 6.00 {
		t.Errorf("subtotal = %v, want 6.00", subtotal)
	}
	if total != 3.00 {
		t.Errorf("total = %v, want 3.00", total)
	}
}

func TestComputeTotalsClampsDiscount(t *testing.T) {
	items := []OrderItem{{Price: 10.00, Quantity: 1}}

	// İndirim subtotal'i aşamaz
	if _, total := ComputeTotals(items, 50.00, DiscountTypeAmount); total != 0 {
		t.Errorf("aşırı indirimde total = %v, want 0", total)
	}

	// Negatif indirim yok sayılır
	if _, total := ComputeTotals(items, -5.00, DiscountTypeAmount); total != 10.00 {
		t.Errorf("negatif indirimde total = %v, want 10.00", total)
	}

	// Yüzde 100'den fazlası da subtotal'e sıkışır
	if _, total := ComputeTotals(items, 150, DiscountTypePercentage); total != 0 {
		t.Errorf("aşırı yüzde indiriminde total = %v, want 0", total)
	}
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	subtotal, total := ComputeTotals(nil, 10, DiscountTypeAmount)
	if subtotal != 0 || total != 0 {
		t.Errorf("boş kalemlerde subtotal=%v total=%v, want 0/0", subtotal, total)
	}
}
