package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type StockCondition string

const (
	StockConditionNew           StockCondition = "NEW"
	StockConditionServiceable   StockCondition = "SERVICEABLE"
	StockConditionUnserviceable StockCondition = "UNSERVICEABLE"
	StockConditionOverhauled    StockCondition = "OVERHAULED"
)

var StockConditions = []string{
	string(StockConditionNew),
	string(StockConditionServiceable),
	string(StockConditionUnserviceable),
	string(StockConditionOverhauled),
}

type StockItem struct {
	ID           uuid.UUID       `json:"id"`
	CompanyID    uuid.UUID       `json:"companyId"`
	PartNumber   string          `json:"partNumber"`
	SerialNumber string          `json:"serialNumber"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	MinQuantity  int             `json:"minQuantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Location     string          `json:"location"`
	Condition    StockCondition  `json:"condition"`
	ExpiryDate   *time.Time      `json:"expiryDate"`
	CreatedBy    uuid.UUID       `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func (s StockItem) TotalValue() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

func (s StockItem) IsLowStock() bool {
	return s.Quantity <= s.MinQuantity
}

type CreateStockItemInput struct {
	PartNumber   string          `json:"partNumber" validate:"required,max=64"`
	SerialNumber string          `json:"serialNumber" validate:"max=64"`
	Description  string          `json:"description" validate:"max=4000"`
	Quantity     int             `json:"quantity" validate:"gte=0"`
	MinQuantity  int             `json:"minQuantity" validate:"gte=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Location     string          `json:"location" validate:"max=128"`
	Condition    StockCondition  `json:"condition" validate:"required,oneof=NEW SERVICEABLE UNSERVICEABLE OVERHAULED"`
	ExpiryDate   *Date           `json:"expiryDate"`
}

type UpdateStockItemInput struct {
	PartNumber   *string          `json:"partNumber" validate:"omitnil,min=1,max=64"`
	SerialNumber *string          `json:"serialNumber" validate:"omitnil,max=64"`
	Description  *string          `json:"description" validate:"omitnil,max=4000"`
	Quantity     *int             `json:"quantity" validate:"omitnil,gte=0"`
	MinQuantity  *int             `json:"minQuantity" validate:"omitnil,gte=0"`
	UnitPrice    *decimal.Decimal `json:"unitPrice"`
	Location     *string          `json:"location" validate:"omitnil,max=128"`
	Condition    *StockCondition  `json:"condition" validate:"omitnil,oneof=NEW SERVICEABLE UNSERVICEABLE OVERHAULED"`
	ExpiryDate   *Date            `json:"expiryDate"`
}

func (in UpdateStockItemInput) Apply(s StockItem) StockItem {
	if in.PartNumber != nil {
		s.PartNumber = *in.PartNumber
	}

	if in.SerialNumber != nil {
		s.SerialNumber = *in.SerialNumber
	}

	if in.Description != nil {
		s.Description = *in.Description
	}

	if in.Quantity != nil {
		s.Quantity = *in.Quantity
	}

	if in.MinQuantity != nil {
		s.MinQuantity = *in.MinQuantity
	}

	if in.UnitPrice != nil {
		s.UnitPrice = *in.UnitPrice
	}

	if in.Location != nil {
		s.Location = *in.Location
	}

	if in.Condition != nil {
		s.Condition = *in.Condition
	}

	if in.ExpiryDate != nil {
		s.ExpiryDate = in.ExpiryDate.TimePtr()
	}

	return s
}
