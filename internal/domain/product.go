package domain

// ProductCategory groups catalog entries in the product browser.
type ProductCategory string

const (
	ProductAccounts ProductCategory = "ACCOUNTS"
	ProductCards    ProductCategory = "CARDS"
	ProductLoans    ProductCategory = "LOANS"
	ProductSavings  ProductCategory = "SAVINGS"
)

// ProductFee is a single line of the fee table.
type ProductFee struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Period   string  `json:"period,omitempty"`
}

// Promotion is an optional limited-time offer attached to a product.
type Promotion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ValidUntil  string `json:"validUntil"`
}

// BankProduct is a static catalog entry shown to advisors.
type BankProduct struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     ProductCategory `json:"category"`
	Description  string          `json:"description"`
	Features     []string        `json:"features"`
	Requirements []string        `json:"requirements"`
	Fees         []ProductFee    `json:"fees"`
	Promotion    *Promotion      `json:"promotion,omitempty"`
}
