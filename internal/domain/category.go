package domain

// Category is a top-level catalog category. Subcategories are stored
// as a serialized list on the category record and decoded by the
// mapper.
type Category struct {
	ID            int           `json:"Id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a nested name/slug pair inside a category.
type Subcategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryPatch carries a partial category update.
type CategoryPatch struct {
	Name          *string
	Slug          *string
	Description   *string
	Image         *string
	Subcategories *[]Subcategory
}
