package similarity

import "testing"

var testNames = []string{
	"Blue Running Shoes",
	"Red Running Shoes for Men",
	"Wireless Bluetooth Headphones",
	"Gaming Laptop with RGB Keyboard",
}

func TestRankSimilarOrdering(t *testing.T) {
	idx := New(testNames, 0)

	neighbors := idx.RankSimilar(0, 3)
	if len(neighbors) != 3 {
		t.Fatalf("expected 3 neighbors, got %d", len(neighbors))
	}

	// the other running shoes share "running" and "shoes" with the target
	if neighbors[0].Index != 1 {
		t.Errorf("expected index 1 as closest neighbor, got %d", neighbors[0].Index)
	}
	if neighbors[0].Score <= 0 {
		t.Errorf("expected positive similarity for shared terms, got %f", neighbors[0].Score)
	}

	// scores are descending
	for i := 1; i < len(neighbors); i++ {
		if neighbors[i].Score > neighbors[i-1].Score {
			t.Errorf("neighbors not sorted: %f > %f at %d", neighbors[i].Score, neighbors[i-1].Score, i)
		}
	}
}

func TestRankSimilarExcludesTarget(t *testing.T) {
	idx := New(testNames, 0)

	for target := 0; target < len(testNames); target++ {
		neighbors := idx.RankSimilar(target, len(testNames))
		if len(neighbors) != len(testNames)-1 {
			t.Errorf("target %d: expected %d neighbors, got %d", target, len(testNames)-1, len(neighbors))
		}
		for _, n := range neighbors {
			if n.Index == target {
				t.Errorf("target %d appeared in its own neighbors", target)
			}
		}
	}
}

func TestRankSimilarOutOfRange(t *testing.T) {
	idx := New(testNames, 0)

	for _, target := range []int{-1, len(testNames), 100} {
		if got := idx.RankSimilar(target, 5); len(got) != 0 {
			t.Errorf("RankSimilar(%d) should be empty, got %d results", target, len(got))
		}
	}
}

func TestRankSimilarTieBreak(t *testing.T) {
	// identical names produce identical (here zero-norm) vectors, so every
	// similarity ties and order falls back to ascending catalog index
	idx := New([]string{"alpha widget", "alpha widget", "alpha widget"}, 0)

	neighbors := idx.RankSimilar(0, 2)
	if len(neighbors) != 2 {
		t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
	}
	if neighbors[0].Index != 1 || neighbors[1].Index != 2 {
		t.Errorf("expected tie broken by index: got %d, %d", neighbors[0].Index, neighbors[1].Index)
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := New(nil, 0)
	if idx.Size() != 0 {
		t.Errorf("expected empty index, got size %d", idx.Size())
	}
	if got := idx.RankSimilar(0, 5); len(got) != 0 {
		t.Errorf("expected no neighbors from empty index, got %d", len(got))
	}
}

func TestVocabularyCap(t *testing.T) {
	// with the vocabulary capped at one term, only the most frequent term
	// survives; documents without it get zero vectors
	idx := New([]string{
		"widget widget widget",
		"widget gadget",
		"gadget trinket",
	}, 1)

	neighbors := idx.RankSimilar(0, 2)
	if len(neighbors) != 2 {
		t.Fatalf("expected 2 neighbors, got %d", len(neighbors))
	}
	// doc 2 has no in-vocabulary terms so it can never outrank doc 1
	if neighbors[len(neighbors)-1].Index != 2 {
		t.Errorf("expected out-of-vocabulary document ranked last, got %d", neighbors[len(neighbors)-1].Index)
	}
}

func TestTokenizeStemsVariants(t *testing.T) {
	a := tokenize("Running Shoes")
	b := tokenize("running shoe")
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("unexpected token counts: %v %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("expected stemmed variants to match: %v vs %v", a, b)
		}
	}
}
