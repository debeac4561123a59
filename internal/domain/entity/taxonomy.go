package entity

// Category is a top-level skill grouping.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Subcategory belongs to exactly one category; skills reference it.
type Subcategory struct {
	ID         int64  `json:"id"`
	CategoryID int64  `json:"categoryId"`
	Name       string `json:"name"`
}

// City is referenced by user profiles.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
