package orderhead

// DocumentsPrintedEvent is an immutable snapshot of a header taken after a
// successful documents-printed update, in the flat form downstream consumers
// receive. Produced by Header.DocumentsPrintedEvent.
type DocumentsPrintedEvent struct {
	Company          int    `json:"company"`
	Facility         string `json:"facility"`
	ProductCode      string `json:"productCode"`
	OrderNumber      string `json:"orderNumber"`
	DocumentsPrinted int    `json:"documentsPrinted"`
	LastModifiedDate int    `json:"lastModifiedDate"`
	ChangeSequence   int    `json:"changeSequenceNumber"`
	ChangedBy        string `json:"changedByUser"`
}
