package models

type ChartData struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Date  string  `json:"date,omitempty"`
}

// DashboardStats est l'instantané agrégé affiché sur le tableau de bord admin
type DashboardStats struct {
	TotalRevenue    float64     `json:"totalRevenue"`
	TotalOrders     int         `json:"totalOrders"`
	TotalProducts   int         `json:"totalProducts"`
	TotalCustomers  int         `json:"totalCustomers"`
	RevenueChange   float64     `json:"revenueChange"`
	OrdersChange    float64     `json:"ordersChange"`
	ProductsChange  float64     `json:"productsChange"`
	CustomersChange float64     `json:"customersChange"`
	RecentOrders    []Order     `json:"recentOrders"`
	TopProducts     []Product   `json:"topProducts"`
	SalesChart      []ChartData `json:"salesChart"`
}
