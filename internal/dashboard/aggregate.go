package dashboard

import (
	"sort"
	"time"

	"bondpos-backend/internal/models"
	"bondpos-backend/internal/store"
)

type Stats struct {
	TodaySales    float64 `json:"todaySales"`
	TodayOrders   int     `json:"todayOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	TotalExpenses float64 `json:"totalExpenses"`
	ProfitLoss    float64 `json:"profitLoss"`
	TotalPurchase float64 `json:"totalPurchase"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type PaymentMethodSales struct {
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
}

type PopularProduct struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// completedInRange: createdAt'i aralıkta olan tamamlanmış siparişler.
func completedInRange(st store.Repository, start, end time.Time) ([]models.Order, error) {
	orders, err := st.GetCompletedOrders()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if inRange(o.CreatedAt, start, end) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// ComputeStats: dashboard özet kartları.
// totalRevenue = satış - (alım maliyeti + indirim); profitLoss = totalRevenue - giderler.
// totalOrders tarih filtresinden bağımsız, tüm zamanların tamamlanmış sipariş sayısıdır.
func ComputeStats(st store.Repository, start, end time.Time) (Stats, error) {
	completed, err := st.GetCompletedOrders()
	if err != nil {
		return Stats{}, err
	}

	var todaySales, totalDiscount float64
	var todayOrders int
	for _, o := range completed {
		if !inRange(o.CreatedAt, start, end) {
			continue
		}
		todaySales += o.Total
		totalDiscount += o.Discount
		todayOrders++
	}

	purchases, err := st.GetPurchases()
	if err != nil {
		return Stats{}, err
	}
	var totalPurchase float64
	for _, p := range purchases {
		if inRange(p.PurchaseDate, start, end) {
			totalPurchase += p.Price * p.Quantity
		}
	}

	expenses, err := st.GetExpenses()
	if err != nil {
		return Stats{}, err
	}
	var totalExpenses float64
	for _, e := range expenses {
		if inRange(e.ExpenseDate, start, end) {
			totalExpenses += e.Total
		}
	}

	totalRevenue := todaySales - (totalPurchase + totalDiscount)

	return Stats{
		TodaySales:    todaySales,
		TodayOrders:   todayOrders,
		TotalRevenue:  totalRevenue,
		TotalOrders:   len(completed),
		TotalExpenses: totalExpenses,
		ProfitLoss:    totalRevenue - totalExpenses,
		TotalPurchase: totalPurchase,
	}, nil
}

// ComputeSalesByCategory: kalem ciroları kategori adına göre toplanır.
// Kategorisi ya da ürünü silinmiş kalemler atlanır. Ciroya göre azalan sıralı döner.
func ComputeSalesByCategory(st store.Repository, start, end time.Time) ([]CategorySales, error) {
	orders, err := completedInRange(st, start, end)
	if err != nil {
		return nil, err
	}

	products, err := st.GetProducts()
	if err != nil {
		return nil, err
	}
	productByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	categories, err := st.GetCategories()
	if err != nil {
		return nil, err
	}
	categoryByID := make(map[string]models.Category, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = c
	}

	revenue := make(map[string]float64)
	var names []string // ilk görülme sırası, eşitlikte belirleyici

	for _, o := range orders {
		items, err := st.GetOrderItems(o.ID)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			product, ok := productByID[it.ProductID]
			if !ok {
				continue
			}
			category, ok := categoryByID[product.CategoryID]
			if !ok {
				continue
			}
			if _, seen := revenue[category.Name]; !seen {
				names = append(names, category.Name)
			}
			revenue[category.Name] += it.Total
		}
	}

	out := make([]CategorySales, 0, len(names))
	for _, name := range names {
		out = append(out, CategorySales{Category: name, Revenue: revenue[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out, nil
}

// ComputeSalesByPaymentMethod: sipariş toplamları ödeme yöntemine göre gruplanır.
// Yöntemi boş siparişler "Not specified" altında toplanır.
func ComputeSalesByPaymentMethod(st store.Repository, start, end time.Time) ([]PaymentMethodSales, error) {
	orders, err := completedInRange(st, start, end)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	var methods []string

	for _, o := range orders {
		method := "Not specified"
		if o.PaymentMethod != nil && *o.PaymentMethod != "" {
			method = *o.PaymentMethod
		}
		if _, seen := totals[method]; !seen {
			methods = append(methods, method)
		}
		totals[method] += o.Total
	}

	out := make([]PaymentMethodSales, 0, len(methods))
	for _, m := range methods {
		out = append(out, PaymentMethodSales{PaymentMethod: m, Amount: totals[m]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out, nil
}

// ComputePopularProducts: adede göre en çok satan 5 ürün.
func ComputePopularProducts(st store.Repository, start, end time.Time) ([]PopularProduct, error) {
	orders, err := completedInRange(st, start, end)
	if err != nil {
		return nil, err
	}

	products, err := st.GetProducts()
	if err != nil {
		return nil, err
	}
	productByID := make(map[string]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	type stat struct {
		name     string
		quantity int
		revenue  float64
	}
	stats := make(map[string]*stat)
	var ids []string

	for _, o := range orders {
		items, err := st.GetOrderItems(o.ID)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			product, ok := productByID[it.ProductID]
			if !ok {
				continue
			}
			s, seen := stats[product.ID]
			if !seen {
				s = &stat{name: product.Name}
				stats[product.ID] = s
				ids = append(ids, product.ID)
			}
			s.quantity += it.Quantity
			s.revenue += it.Total
		}
	}

	out := make([]PopularProduct, 0, len(ids))
	for _, id := range ids {
		s := stats[id]
		out = append(out, PopularProduct{Product: s.name, Quantity: s.quantity, Revenue: s.revenue})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

// ComputeRecentOrders: aralıktaki tamamlanmış siparişlerden en yeni 10 tanesi.
func ComputeRecentOrders(st store.Repository, start, end time.Time) ([]models.Order, error) {
	orders, err := completedInRange(st, start, end)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > 10 {
		orders = orders[:10]
	}
	return orders, nil
}
