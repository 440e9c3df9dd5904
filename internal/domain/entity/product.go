package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product artículo del catálogo. Sin propietario: cualquier sesión lo lee, solo admin lo escribe.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
