package taxonomy

import "testing"

func TestClassifyDefaults(t *testing.T) {
	c := NewClassifier(nil)

	cases := []struct {
		name string
		want string
	}{
		{"Gaming Laptop 15 inch", "Electronics"},
		{"WIRELESS HEADPHONES Pro", "Electronics"},
		{"Cotton Summer Dress", "Fashion"},
		{"Home Gym Equipment Set", "Sports"},
		{"Modern Home Decor Vase", "Home & Garden"},
		{"Mystery Novel Collection", "Books"},
		{"Premium Car Accessories Kit", "Automotive"},
		{"Stainless Steel Water Bottle", General},
		{"", General},
	}

	for _, c2 := range cases {
		if got := c.Classify(c2.name); got != c2.want {
			t.Errorf("Classify(%q) = %q, want %q", c2.name, got, c2.want)
		}
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier(nil)

	// "Running Shoes" contains both Fashion's "shoes" and Sports' "running
	// shoes"; Fashion is earlier in the taxonomy, so it wins.
	if got := c.Classify("Blue Running Shoes"); got != "Fashion" {
		t.Errorf("expected earlier category to shadow later ones, got %q", got)
	}

	// Reversing the order flips the result.
	reversed := NewClassifier([]Category{
		{Name: "Sports", Keywords: []string{"running shoes"}},
		{Name: "Fashion", Keywords: []string{"shoes"}},
	})
	if got := reversed.Classify("Blue Running Shoes"); got != "Sports" {
		t.Errorf("expected reordered taxonomy to win, got %q", got)
	}
}
