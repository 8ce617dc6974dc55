// Package taxonomy routes free-text product names into catalog categories
// by ordered keyword matching.
package taxonomy

import "strings"

// General is assigned when no category keyword matches.
const General = "General"

// Category pairs a bucket name with the keyword phrases that route a
// product into it.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultTaxonomy returns the marketplace taxonomy. Order matters:
// classification is first-match-wins, so earlier categories shadow later
// ones (e.g. "running shoes" lands in Fashion via "shoes" before Sports is
// ever consulted).
func DefaultTaxonomy() []Category {
	return []Category{
		{Name: "Electronics", Keywords: []string{"laptop", "smartphone", "headphones", "tablet", "camera"}},
		{Name: "Fashion", Keywords: []string{"shirt", "dress", "shoes", "jacket", "jeans"}},
		{Name: "Sports", Keywords: []string{"running shoes", "fitness tracker", "sports equipment", "gym"}},
		{Name: "Home & Garden", Keywords: []string{"furniture", "home decor", "kitchen appliances"}},
		{Name: "Books", Keywords: []string{"books", "educational", "novel"}},
		{Name: "Automotive", Keywords: []string{"car accessories", "automotive parts"}},
	}
}

type Classifier struct {
	categories []Category
}

// NewClassifier builds a classifier over the given ordered categories,
// defaulting to DefaultTaxonomy when none are supplied.
func NewClassifier(categories []Category) *Classifier {
	if len(categories) == 0 {
		categories = DefaultTaxonomy()
	}
	return &Classifier{categories: categories}
}

// Classify returns the first category with a keyword contained in name,
// matching case-insensitively, or General when nothing matches.
func (c *Classifier) Classify(name string) string {
	lower := strings.ToLower(name)
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				return category.Name
			}
		}
	}
	return General
}
