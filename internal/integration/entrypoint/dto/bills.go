package dto

// ListBillsResponse represents all stored bill numbers.
type ListBillsResponse struct {
	BillNumbers []string `json:"bill_numbers"`
}

// BillTextResponse represents one loaded receipt.
type BillTextResponse struct {
	BillNumber  string `json:"bill_number"`
	ReceiptText string `json:"receipt_text"`
}

// SearchBillsResponse represents a search result. Warnings list units
// that could not be read; the search still covers the rest.
type SearchBillsResponse struct {
	BillNumbers []string `json:"bill_numbers"`
	Warnings    []string `json:"warnings,omitempty"`
}
