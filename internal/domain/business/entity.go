package business

import (
	"time"

	"github.com/shopspring/decimal"
)

type Business struct {
	ID       string
	Name     string
	OwnerID  *string
	Timezone string

	// CharityRate is the mandatory allocation applied to every income.
	CharityRate decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleStaff),
}
