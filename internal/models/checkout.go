package models

import "time"

type BillingDetails struct {
	Email     string `json:"email" validate:"required,loose_email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country" validate:"omitempty,len=2"`
}

type CheckoutSummary struct {
	Subtotal float64 `json:"subtotal"`
	TaxRate  float64 `json:"tax_rate"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type CheckoutQuote struct {
	Cart    CartSummary     `json:"cart"`
	Summary CheckoutSummary `json:"summary"`
}

type PurchaseStatus string

const PurchaseStatusCompleted PurchaseStatus = "completed"

type Purchase struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	ProductID   int64          `json:"product_id"`
	Quantity    int            `json:"quantity"`
	UnitPrice   float64        `json:"unit_price"`
	PaymentRef  string         `json:"payment_ref"`
	Status      PurchaseStatus `json:"status"`
	DownloadURL string         `json:"download_url"`
	PurchasedAt time.Time      `json:"purchased_at"`
}

// PurchasedProduct joins a purchase with its catalog entry; Product is nil
// when the catalog no longer carries the id.
type PurchasedProduct struct {
	Purchase
	Product *Product `json:"product"`
}

type CheckoutResult struct {
	Summary    CheckoutSummary `json:"summary"`
	PaymentRef string          `json:"payment_ref"`
	Purchases  []Purchase      `json:"purchases"`
	Message    string          `json:"message"`
}

// Profile is the dashboard view of the signed-in user.
type Profile struct {
	User          *User   `json:"user"`
	PurchaseCount int     `json:"purchase_count"`
	TotalSpent    float64 `json:"total_spent"`
	ProductsOwned int     `json:"products_owned"`
}
