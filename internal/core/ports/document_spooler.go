package ports

import (
	"context"
)

// PrintJob identifies one manufacturing order whose documents should be produced.
type PrintJob struct {
	Company     int     `json:"company"`
	Facility    string  `json:"facility"`
	ProductCode string  `json:"productCode"`
	OrderNumber string  `json:"orderNumber"`
	Quantity    float64 `json:"quantity"`
	RequestedBy string  `json:"requestedBy"`
}

// DocumentSpooler hands order documents to the print spooling service.
type DocumentSpooler interface {
	SpoolOrderDocuments(ctx context.Context, job PrintJob) error
}
