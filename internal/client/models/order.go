package models

// DeliveryDays lists the values accepted in OrderForm.DeliveryDays.
var DeliveryDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MinOrderQuantity is the smallest accepted order, in bottles.
const MinOrderQuantity = 1000

// DefaultCountry is used when the order form leaves Country empty.
const DefaultCountry = "Pakistan"

// OrderForm is what the user fills in on the order screen.
type OrderForm struct {
	ProductID       string   `validate:"required"`
	Quantity        int      `validate:"gte=1000"`
	BusinessName    string   `validate:"required"`
	Phone           string   `validate:"required"`
	DeliveryAddress string   `validate:"required"`
	City            string   `validate:"required"`
	Country         string   `validate:"required"`
	BottlesPerWeek  string
	DeliveryDays    []string `validate:"dive,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Notes           string
}

// Order is the body of POST /api/orders.
type Order struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	UserID   ID     `json:"user_id"`

	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	PricePerBottle int    `json:"price_per_bottle"`
	Quantity       int    `json:"quantity"`
	TotalAmount    int    `json:"total_amount"`

	BusinessName    string   `json:"business_name"`
	Phone           string   `json:"phone"`
	DeliveryAddress string   `json:"delivery_address"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	BottlesPerWeek  string   `json:"bottles_per_week"`
	DeliveryDays    []string `json:"delivery_days"`

	Notes string `json:"notes"`
}

// OrderReceipt summarizes an accepted order.
type OrderReceipt struct {
	ID          string
	ProductName string
	Quantity    int
	TotalAmount int
}

// ContactMessage is the body of POST /send-email.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}
