// Package http exposes the application over a JSON API. Handlers parse
// and validate transport concerns, build commands and queries, and map
// domain errors onto HTTP status codes.
package http

import (
	"time"

	"suqia/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
}

// RegisterRequest carries a new customer or driver registration.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
	RegionID string `json:"regionId"`
}

// CreatedResponse carries the id of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrderRequest carries a new order placement.
type CreateOrderRequest struct {
	TankID   string `json:"tankId"`
	Quantity int    `json:"quantity"`
}

// RateOrderRequest carries a delivery rating.
type RateOrderRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RegionRequest carries a region create or rename.
type RegionRequest struct {
	Name string `json:"name"`
}

// TankRequest carries a tank create or edit.
type TankRequest struct {
	Name           string   `json:"name"`
	Capacity       int      `json:"capacity"`
	WaterType      string   `json:"waterType"`
	PricePerBarrel float64  `json:"pricePerBarrel"`
	Location       string   `json:"location"`
	RegionIDs      []string `json:"regionIds"`
}

// EditCustomerRequest carries an admin edit of a customer account.
type EditCustomerRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	RegionID string `json:"regionId"`
}

// EditDriverRequest carries an admin edit of a driver account.
type EditDriverRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	RegionID string `json:"regionId"`
}

// RegionResponse is one region in the catalog.
type RegionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TankResponse is one orderable tank.
type TankResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Capacity       int     `json:"capacity"`
	WaterType      string  `json:"waterType"`
	PricePerBarrel float64 `json:"pricePerBarrel"`
	Location       string  `json:"location"`
}

// OrderSummaryResponse is one order in a listing. Fields not relevant to
// the caller's role stay empty.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName,omitempty"`
	Address      string    `json:"address,omitempty"`
	TankName     string    `json:"tankName"`
	DriverName   string    `json:"driverName,omitempty"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	OrderTime    time.Time `json:"orderTime"`
	Status       string    `json:"status,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	Comment      string    `json:"comment,omitempty"`
}

// OrderDetailsResponse is the full view of one order.
type OrderDetailsResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Address      string    `json:"address,omitempty"`
	RegionName   string    `json:"regionName"`
	TankName     string    `json:"tankName"`
	DriverName   string    `json:"driverName,omitempty"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	OrderTime    time.Time `json:"orderTime"`
	Status       string    `json:"status"`
	Rating       *int      `json:"rating,omitempty"`
	Comment      string    `json:"comment,omitempty"`
}

// CustomerAccountResponse is one customer in the admin roster.
type CustomerAccountResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	RegionName string `json:"regionName"`
	OrderCount int    `json:"orderCount"`
	Locked     bool   `json:"locked"`
}

// DriverAccountResponse is one driver in the admin roster.
type DriverAccountResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	RegionName      string `json:"regionName"`
	ActiveOrders    int    `json:"activeOrders"`
	DeliveredOrders int    `json:"deliveredOrders"`
	Locked          bool   `json:"locked"`
}

// DashboardResponse is the admin landing page payload.
type DashboardResponse struct {
	TotalOrders     int                    `json:"totalOrders"`
	PendingOrders   int                    `json:"pendingOrders"`
	DeliveredOrders int                    `json:"deliveredOrders"`
	TotalCustomers  int                    `json:"totalCustomers"`
	TotalDrivers    int                    `json:"totalDrivers"`
	RecentOrders    []OrderSummaryResponse `json:"recentOrders"`
}

// StatusCount is an order count per status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// RegionCount is an order count per customer region.
type RegionCount struct {
	RegionName string `json:"regionName"`
	Count      int    `json:"count"`
}

// MonthlyStats is order volume and delivered revenue for one month.
type MonthlyStats struct {
	Month   string  `json:"month"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// StatisticsResponse is the admin reporting payload.
type StatisticsResponse struct {
	OrdersByStatus []StatusCount  `json:"ordersByStatus"`
	OrdersByRegion []RegionCount  `json:"ordersByRegion"`
	Monthly        []MonthlyStats `json:"monthly"`
}

func toOrderDetailsResponse(details queries.OrderDetailsResponse) OrderDetailsResponse {
	return OrderDetailsResponse{
		ID:           details.ID.String(),
		CustomerName: details.CustomerName,
		Address:      details.Address,
		RegionName:   details.RegionName,
		TankName:     details.TankName,
		DriverName:   details.DriverName,
		Quantity:     details.Quantity,
		Price:        details.Price,
		OrderTime:    details.OrderTime,
		Status:       details.Status,
		Rating:       details.Rating,
		Comment:      details.Comment,
	}
}
