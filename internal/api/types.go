package api

import "time"

// User identifies the signed-in account returned by the sign-in endpoint.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Item is a catalog item as the remote service returns it.
type Item struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Customer is a customer record as the remote service returns it.
type Customer struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobileNumber"`
}

// ItemRef is the embedded item reference inside a sale line.
type ItemRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// CustomerRef is the embedded customer reference inside a sale.
type CustomerRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// SaleLineItem is one line of a persisted sale, price as charged at sale time.
type SaleLineItem struct {
	Item     ItemRef `json:"item"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Sale is a server-owned sale record. Customer is nil for walk-in sales.
type Sale struct {
	ID          string         `json:"_id"`
	Customer    *CustomerRef   `json:"customer"`
	Items       []SaleLineItem `json:"items"`
	Total       float64        `json:"total"`
	PaymentType string         `json:"paymentType"`
	Date        time.Time      `json:"date"`
}

// ItemInput is the payload for creating or updating a catalog item.
type ItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// CustomerInput is the payload for creating a customer record.
type CustomerInput struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	MobileNumber string `json:"mobileNumber" validate:"required,mobile"`
}

// SaleLineInput is one cart line in a sale submission.
type SaleLineInput struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CreateSaleInput is the sale submission payload. A nil CustomerID denotes
// a walk-in sale.
type CreateSaleInput struct {
	CustomerID  *string         `json:"customerId"`
	Items       []SaleLineInput `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	PaymentType string          `json:"paymentType"`
}
