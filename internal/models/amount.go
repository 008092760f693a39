package models

type AmountType string

const (
	AmountTypeTotalBill AmountType = "total_bill"
	AmountTypePaid      AmountType = "paid"
	AmountTypeDue       AmountType = "due"
	AmountTypeUnknown   AmountType = "unknown"
)

// Amount is a classified monetary value extracted from text. An Amount
// that reaches a response always has a non-unknown type and a parsed
// value; ambiguous matches are dropped during analysis.
type Amount struct {
	Type       AmountType `json:"type"`
	Value      float64    `json:"value"`
	SourceText string     `json:"source_text"`
}
