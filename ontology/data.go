package ontology

import "sync"

// Default returns the builtin taxonomy: five top-level intent families and
// their concrete child intents. The tree is built once and shared; it is
// immutable, so sharing is safe.
func Default() *Tree {
	return defaultTree()
}

var defaultTree = sync.OnceValue(func() *Tree {
	tree, err := New(defaultNodes())
	if err != nil {
		// The builtin data is fixed at compile time; failing validation
		// is a programming error, not a runtime condition.
		panic(err)
	}
	return tree
})

func node(id, parent string, weight float64) Node {
	return Node{ID: id, ParentID: parent, DefaultWeight: weight}
}

func defaultNodes() []Node {
	nodes := []Node{
		// Root intent families.
		node("informational", "", 0.5),
		node("navigational", "", 0.5),
		node("commercial", "", 0.6),
		node("transactional", "", 0.7),
		node("local", "", 0.6),
	}

	info := "informational"
	nodes = append(nodes,
		node("informational_definition", info, 0.8),
		node("informational_explanation", info, 0.7),
		node("informational_examples", info, 0.6),
		node("informational_history", info, 0.4),
		node("informational_facts", info, 0.5),
		node("informational_howto", info, 0.9),
		node("informational_tutorial", info, 0.9),
		node("informational_guide", info, 0.8),
		node("informational_step_by_step", info, 0.9),
		node("informational_beginner", info, 0.7),
		node("informational_troubleshooting", info, 0.9),
		node("informational_error_fix", info, 0.9),
		node("informational_problem_solution", info, 0.9),
		node("informational_debugging", info, 0.8),
		node("informational_research", info, 0.6),
		node("informational_deep_dive", info, 0.6),
		node("informational_case_study", info, 0.7),
		node("informational_analysis", info, 0.6),
		node("informational_benefits", info, 0.7),
		node("informational_disadvantages", info, 0.7),
		node("informational_risks", info, 0.7),
		node("informational_limitations", info, 0.6),
		node("informational_latest", info, 0.8),
		node("informational_updates", info, 0.8),
		node("informational_news", info, 0.8),
		node("informational_trends", info, 0.7),
		node("informational_difference", info, 0.8),
		node("informational_vs", info, 0.8),
		node("informational_alternatives", info, 0.8),
		node("informational_faq", info, 0.7),
	)

	nav := "navigational"
	nodes = append(nodes,
		node("navigational_brand", nav, 0.9),
		node("navigational_website", nav, 0.9),
		node("navigational_login", nav, 1.0),
		node("navigational_dashboard", nav, 0.9),
		node("navigational_download_page", nav, 0.9),
		node("navigational_pricing_page", nav, 0.9),
		node("navigational_contact", nav, 0.9),
		node("navigational_support", nav, 0.8),
		node("navigational_docs", nav, 0.8),
		node("navigational_blog", nav, 0.7),
		node("navigational_careers", nav, 0.7),
		node("navigational_social_profile", nav, 0.8),
		node("navigational_app", nav, 0.9),
		node("navigational_portal", nav, 0.9),
		node("navigational_account", nav, 0.9),
	)

	comm := "commercial"
	nodes = append(nodes,
		node("commercial_comparison", comm, 0.9),
		node("commercial_best", comm, 0.9),
		node("commercial_top", comm, 0.9),
		node("commercial_vs", comm, 0.9),
		node("commercial_review", comm, 0.8),
		node("commercial_price_check", comm, 0.8),
		node("commercial_budget", comm, 0.8),
		node("commercial_under_price", comm, 0.8),
		node("commercial_value_for_money", comm, 0.7),
		node("commercial_features", comm, 0.7),
		node("commercial_specifications", comm, 0.7),
		node("commercial_performance", comm, 0.7),
		node("commercial_quality", comm, 0.7),
		node("commercial_for_students", comm, 0.8),
		node("commercial_for_business", comm, 0.8),
		node("commercial_for_beginners", comm, 0.8),
		node("commercial_for_professionals", comm, 0.8),
		node("commercial_alternatives", comm, 0.9),
		node("commercial_similar_products", comm, 0.8),
		node("commercial_competitors", comm, 0.7),
		node("commercial_latest_model", comm, 0.9),
		node("commercial_upcoming", comm, 0.7),
		node("commercial_new_release", comm, 0.9),
		node("commercial_ratings", comm, 0.8),
		node("commercial_testimonials", comm, 0.6),
		node("commercial_expert_opinion", comm, 0.7),
		node("commercial_buying_guide", comm, 0.9),
		node("commercial_recommendation", comm, 0.9),
		node("commercial_long_term_review", comm, 0.6),
		node("commercial_shortlist", comm, 0.7),
	)

	trans := "transactional"
	nodes = append(nodes,
		node("transactional_purchase", trans, 1.0),
		node("transactional_buy_now", trans, 1.0),
		node("transactional_order", trans, 1.0),
		node("transactional_checkout", trans, 1.0),
		node("transactional_price", trans, 0.9),
		node("transactional_discount", trans, 0.9),
		node("transactional_coupon", trans, 0.9),
		node("transactional_offer", trans, 0.9),
		node("transactional_sale", trans, 0.9),
		node("transactional_subscribe", trans, 1.0),
		node("transactional_trial", trans, 1.0),
		node("transactional_upgrade", trans, 0.9),
		node("transactional_renew", trans, 0.9),
		node("transactional_download", trans, 1.0),
		node("transactional_install", trans, 1.0),
		node("transactional_activation", trans, 0.9),
		node("transactional_refund", trans, 0.6),
		node("transactional_return", trans, 0.6),
		node("transactional_cancellation", trans, 0.6),
		node("transactional_warranty", trans, 0.5),
		node("transactional_signup", trans, 1.0),
		node("transactional_login_action", trans, 1.0),
		node("transactional_payment", trans, 1.0),
		node("transactional_billing", trans, 0.8),
		node("transactional_account_action", trans, 0.8),
	)

	loc := "local"
	nodes = append(nodes,
		node("local_near_me", loc, 1.0),
		node("local_nearby", loc, 1.0),
		node("local_store_visit", loc, 0.9),
		node("local_service_booking", loc, 1.0),
		node("local_open_now", loc, 0.9),
		node("local_business_hours", loc, 0.8),
		node("local_contact", loc, 0.8),
		node("local_directions", loc, 1.0),
		node("local_reviews", loc, 0.8),
		node("local_best", loc, 0.9),
		node("local_price", loc, 0.8),
		node("local_availability", loc, 0.9),
		node("local_delivery", loc, 1.0),
		node("local_pickup", loc, 1.0),
		node("local_emergency", loc, 1.0),
		node("local_repair", loc, 0.9),
		node("local_installation", loc, 0.9),
		node("local_consultation", loc, 0.8),
		node("local_event", loc, 0.7),
		node("local_offer", loc, 0.8),
	)

	return nodes
}
