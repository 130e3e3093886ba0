package entities

// Product is the normalized catalog record served to the storefront widget.
// Fields are a direct projection of the external store's record shape; the
// hyphenated store fields "bag-size" and "use-case" map to the underscored
// names here.
type Product struct {
	ID               string   `json:"id"`
	ProductID        string   `json:"product_id"`
	Title            string   `json:"title"`
	Brand            string   `json:"brand"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	ShortDescription string   `json:"short_description"`
	Price            float64  `json:"price"`
	BagSize          string   `json:"bag_size"`
	InStock          bool     `json:"in_stock"`
	ImageURL         string   `json:"image_url"`
	UseCase          string   `json:"use_case"`
	VoiceScript      string   `json:"voice_script"`
}

// ProductQuery is a structured catalog search request. Query is accepted for
// interface compatibility but is not applied to filtering.
type ProductQuery struct {
	Query    string   `json:"query"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
