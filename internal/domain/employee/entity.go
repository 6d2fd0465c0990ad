package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Name       string
	Email      string
	Role       string
	HourlyRate decimal.Decimal
	HireDate   time.Time
}
