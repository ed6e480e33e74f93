package domain

// Product represents a single skincare product from the catalog
type Product struct {
	Brand             string   `json:"brand"`
	ProductName       string   `json:"product_name"`
	Summary           string   `json:"summary"`
	FullIngredients   string   `json:"full_ingredients"`
	ActiveIngredients []string `json:"active_ingredients"`
	SkinTypes         []string `json:"skin_types"`
	Concerns          []string `json:"concerns"`
	RecommendedUse    string   `json:"recommended_use"`
}

// Filters is the structured decomposition of a customer query
type Filters struct {
	Ingredients  []string `json:"ingredients"`
	SkinTypes    []string `json:"skin_types"`
	Concerns     []string `json:"concerns"`
	ProductTypes []string `json:"product_types"`
}

// IsEmpty reports whether no filter group carries a term
func (f Filters) IsEmpty() bool {
	return len(f.Ingredients) == 0 && len(f.SkinTypes) == 0 &&
		len(f.Concerns) == 0 && len(f.ProductTypes) == 0
}

// ScoredProduct is a catalog product with its relevance score for one query
type ScoredProduct struct {
	Product Product `json:"product"`
	Score   int     `json:"score"`
}

// Recommendation is the public shape of a recommended product
type Recommendation struct {
	Brand            string   `json:"brand"`
	ProductName      string   `json:"product_name"`
	ShortDescription string   `json:"short_description"`
	KeyIngredients   []string `json:"key_ingredients"`
	WhenToUse        string   `json:"when_to_use"`
}
