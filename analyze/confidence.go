package analyze

import "github.com/poiesic/intentify/core"

// EstimateConfidence maps the primary intent's normalized score, its gap to
// the best secondary, and the active signal count to a confidence label.
// First match wins:
//
//  1. dominant primary with a clear gap       -> high
//  2. corroborated by three or more signals   -> high
//  3. moderately scored primary               -> medium
//  4. otherwise                               -> low
func EstimateConfidence(primaryScore, gap float64, signalCount int) core.ConfidenceLevel {
	if primaryScore > 0.7 && gap > 0.3 {
		return core.ConfidenceHigh
	}
	if signalCount >= 3 && primaryScore > 0.5 {
		return core.ConfidenceHigh
	}
	if primaryScore > 0.4 {
		return core.ConfidenceMedium
	}
	return core.ConfidenceLow
}
