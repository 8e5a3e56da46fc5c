package rules

import "sync"

// Default returns the builtin rule table. The table is built once and
// shared; it is immutable, so sharing is safe.
func Default() *Table {
	return defaultTable()
}

var defaultTable = sync.OnceValue(func() *Table {
	table, err := New(defaultRules())
	if err != nil {
		panic(err)
	}
	return table
})

func defaultRules() []Rule {
	return []Rule{
		// Commercial investigation.
		{ID: "commercial_comparison_strong", Requires: []string{"comparison", "brand"}, Target: "commercial_comparison", Delta: 0.5},
		{ID: "commercial_comparison_simple", Requires: []string{"comparison"}, Excludes: []string{"action"}, Target: "commercial_comparison", Delta: 0.3},
		{ID: "commercial_best_generic", Requires: []string{"comparison"}, Excludes: []string{"numeric"}, Target: "commercial_best", Delta: 0.4},
		{ID: "commercial_review_signal", Requires: []string{"brand"}, Excludes: []string{"action"}, Target: "commercial_review", Delta: 0.2},

		// Transactional.
		{ID: "transactional_purchase_explicit", Requires: []string{"action"}, Excludes: []string{"question"}, Target: "transactional_purchase", Delta: 0.6},
		{ID: "transactional_price_numeric", Requires: []string{"numeric", "brand"}, Excludes: []string{"question"}, Target: "transactional_price", Delta: 0.4},

		// Navigational.
		{ID: "navigational_login_action", Requires: []string{"action", "brand"}, Target: "navigational_login", Delta: 0.7},

		// Local.
		{ID: "local_near_me_implicit", Requires: []string{"locality"}, Target: "local_near_me", Delta: 0.8},

		// Informational.
		{ID: "informational_question_generic", Requires: []string{"question"}, Excludes: []string{"action", "numeric", "locality"}, Target: "informational", Delta: 0.5},
	}
}
