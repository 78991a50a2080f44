package domain

// Collection is a curated product grouping. ProductIDs is a membership
// reference (product ids as strings, matching the storage encoding),
// not ownership — deleting a collection leaves its products untouched.
type Collection struct {
	ID          int      `json:"Id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	ProductIDs  []string `json:"productIds"`
}

// CollectionPatch carries a partial collection update.
type CollectionPatch struct {
	Name        *string
	Slug        *string
	Description *string
	Image       *string
	Featured    *bool
	ProductIDs  *[]string
}
