// Package orderheadrepo provides data transfer objects and mapping functions
// for manufacturing order header persistence. Handles the conversion between
// the header aggregate and its relational representation.
package orderheadrepo

import (
	"mfgorder/internal/core/domain/model/kernel"
	"mfgorder/internal/core/domain/model/orderhead"
)

// OrderHeaderDTO represents the database structure for persisting order header
// aggregates. The four business-key columns form the composite primary key, so
// a unique-key read selects at most one row and FOR UPDATE locks exactly it.
type OrderHeaderDTO struct {
	Company     int    `gorm:"primaryKey;autoIncrement:false"`
	Facility    string `gorm:"primaryKey;size:3"`
	ProductCode string `gorm:"primaryKey;size:15"`
	OrderNumber string `gorm:"primaryKey;size:10"`

	OrderStatus          int
	OrderedQuantity      float64
	DocumentsPrinted     int
	LastModifiedDate     int
	ChangeSequenceNumber int
	ChangedByUser        string
}

// TableName specifies the database table name for order header entities.
// Overrides GORM's default naming convention to use "order_headers".
func (OrderHeaderDTO) TableName() string {
	return "order_headers"
}

// fromDomain converts a header aggregate to its database representation.
func fromDomain(header *orderhead.Header) OrderHeaderDTO {
	key := header.Key()

	return OrderHeaderDTO{
		Company:              key.Company(),
		Facility:             key.Facility(),
		ProductCode:          key.ProductCode(),
		OrderNumber:          key.OrderNumber(),
		OrderStatus:          int(header.Status()),
		OrderedQuantity:      header.OrderedQuantity(),
		DocumentsPrinted:     header.DocumentsPrinted().Int(),
		LastModifiedDate:     header.LastModifiedDate().Int(),
		ChangeSequenceNumber: header.ChangeSequence(),
		ChangedByUser:        header.ChangedBy(),
	}
}

// toDomain converts a database DTO to a header aggregate.
// Reconstructs the complete aggregate using RestoreHeader, so a corrupted row
// fails loudly instead of producing an invalid aggregate.
func toDomain(dto OrderHeaderDTO) (*orderhead.Header, error) {
	key, err := kernel.NewOrderKey(dto.Company, dto.Facility, dto.ProductCode, dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	lastModified, err := kernel.NewCalendarDate(dto.LastModifiedDate)
	if err != nil {
		return nil, err
	}

	return orderhead.RestoreHeader(
		key,
		orderhead.Status(dto.OrderStatus),
		dto.OrderedQuantity,
		orderhead.PrintedFlag(dto.DocumentsPrinted),
		lastModified,
		dto.ChangeSequenceNumber,
		dto.ChangedByUser,
	)
}
