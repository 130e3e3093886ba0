package entities

// AIResponse is the assistant's reply plus the catalog products it appears
// to reference. RecommendedProducts is an order-preserving subsequence of the
// caller-supplied product list, capped at three entries.
type AIResponse struct {
	Text                string    `json:"text"`
	RecommendedProducts []Product `json:"recommendedProducts"`
}
