package scoring

import (
	"math"
	"sort"
	"strings"
)

// TotalScore combines factors into a single 0-100 weighted average.
// An empty factor list or all-zero weights score 0.
func TotalScore(factors []Factor) int {
	weightSum := 0
	weighted := 0
	for _, f := range factors {
		weightSum += f.Weight
		weighted += f.Value * f.Weight
	}
	if weightSum == 0 {
		return 0
	}
	score := int(math.Round(float64(weighted) / float64(weightSum)))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Reasoning builds a short human-readable explanation: the top two
// strong factors by weighted contribution, plus one caveat from the
// weakest factor when something scored poorly.
func Reasoning(factors []Factor) string {
	sorted := make([]Factor, len(factors))
	copy(sorted, factors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value*sorted[i].Weight > sorted[j].Value*sorted[j].Weight
	})

	var parts []string
	for _, f := range sorted {
		if len(parts) >= 2 {
			break
		}
		if f.Value >= 70 && f.Description != "" {
			parts = append(parts, f.Description)
		}
	}

	// Worst factor under 50 becomes a caveat.
	var worst *Factor
	for i := range sorted {
		f := &sorted[i]
		if f.Value < 50 && (worst == nil || f.Value < worst.Value) {
			worst = f
		}
	}
	if worst != nil && worst.Description != "" {
		parts = append(parts, "Note: "+worst.Description)
	}

	if len(parts) == 0 {
		return "Standard slot selection"
	}
	return strings.Join(parts, ". ")
}
