package services

import (
	"context"
	"sort"

	"lumiere_back_end/internal/models"
)

// Variations période sur période affichées sur le tableau de bord.
// Le jeu de démo n'a pas d'historique : valeurs figées comme la maquette.
const (
	revenueChange   = 12.5
	ordersChange    = 8.2
	productsChange  = 4.0
	customersChange = 15.3
)

// GetDashboardStats calcule l'instantané agrégé du tableau de bord en
// parcourant l'ensemble des commandes, produits et clients
func (a *API) GetDashboardStats(ctx context.Context) models.DashboardStats {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	totalRevenue := 0.0
	for _, o := range a.data.Orders {
		if o.Status != models.OrderCancelled && o.Status != models.OrderRefunded {
			totalRevenue += o.Total
		}
	}

	recent := a.data.Orders
	if len(recent) > 5 {
		recent = recent[:5]
	}
	recentOrders := make([]models.Order, len(recent))
	copy(recentOrders, recent)

	// Meilleures ventes, triées par note
	var top []models.Product
	for _, p := range a.data.Products {
		if p.IsBestseller {
			top = append(top, p)
		}
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Rating > top[j].Rating })
	if len(top) > 5 {
		top = top[:5]
	}

	return models.DashboardStats{
		TotalRevenue:    totalRevenue,
		TotalOrders:     len(a.data.Orders),
		TotalProducts:   len(a.data.Products),
		TotalCustomers:  len(a.data.Users),
		RevenueChange:   revenueChange,
		OrdersChange:    ordersChange,
		ProductsChange:  productsChange,
		CustomersChange: customersChange,
		RecentOrders:    recentOrders,
		TopProducts:     top,
		SalesChart:      a.salesChartLocked(),
	}
}

// GetSalesChart retourne la série temporelle des ventes
func (a *API) GetSalesChart(ctx context.Context, period string) []models.ChartData {
	a.sleep(ctx, 4)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.salesChartLocked()
}

// salesChartLocked agrège le chiffre d'affaires par mois
func (a *API) salesChartLocked() []models.ChartData {
	byMonth := make(map[string]float64)
	var keys []string

	for i := len(a.data.Orders) - 1; i >= 0; i-- {
		o := a.data.Orders[i]
		if o.Status == models.OrderCancelled || o.Status == models.OrderRefunded {
			continue
		}
		key := o.CreatedAt.Format("2006-01")
		if _, seen := byMonth[key]; !seen {
			keys = append(keys, key)
		}
		byMonth[key] += o.Total
	}

	chart := make([]models.ChartData, 0, len(keys))
	for _, key := range keys {
		chart = append(chart, models.ChartData{
			Label: key,
			Value: byMonth[key],
			Date:  key + "-01",
		})
	}
	return chart
}
