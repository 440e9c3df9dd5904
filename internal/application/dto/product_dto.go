package dto

import (
	"errors"
	"math"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

// Límites de la columna price NUMERIC(14,2) y stock INTEGER.
const (
	priceScale = 2
	maxStock   = math.MaxInt32
)

var (
	maxPrice = decimal.New(1, 12) // exclusivo

	errNegativePrice = errors.New("must be no less than 0")
	errPriceScale    = errors.New("must have at most 2 decimal places")
	errPriceTooLarge = errors.New("must be less than 1000000000000")
)

func validPrice(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return nil
	}
	switch {
	case d.IsNegative():
		return errNegativePrice
	case !d.Equal(d.Round(priceScale)):
		return errPriceScale
	case d.GreaterThanOrEqual(maxPrice):
		return errPriceTooLarge
	}
	return nil
}

// CreateProductRequest entrada para crear un producto. Stock omitido = 0.
type CreateProductRequest struct {
	Name        string           `json:"nombre"`
	Description string           `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	Stock       int              `json:"stock"`
	Category    string           `json:"categoria"`
}

// Validate nombre, descripción, precio y categoría son obligatorios.
func (r CreateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Price, validation.NotNil, validation.By(validPrice)),
		validation.Field(&r.Stock, validation.Min(0), validation.Max(maxStock)),
		validation.Field(&r.Category, validation.Required),
	)
}

// UpdateProductRequest actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
	Category    *string          `json:"categoria"`
}

// Validate reglas para los campos presentes.
func (r UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Description, validation.NilOrNotEmpty),
		validation.Field(&r.Price, validation.By(validPrice)),
		validation.Field(&r.Stock, validation.Min(0), validation.Max(maxStock)),
		validation.Field(&r.Category, validation.NilOrNotEmpty),
	)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"_id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Category    string          `json:"categoria"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
