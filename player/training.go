package player

import (
	"math"
	"sort"

	"colonisation/gamemaster"
	"colonisation/utils"

	"golang.org/x/exp/rand"
)

type candidate struct {
	action gamemaster.Action
	score  float64
}

// order sorts candidates by score, or samples an order from their
// temperature-adjusted scores when temperature is positive.
func order(cs []candidate, temperature float64, r *rand.Rand) []gamemaster.Action {
	if temperature <= 0 || r == nil {
		sort.SliceStable(cs, func(i, j int) bool { return cs[i].score > cs[j].score })
		out := make([]gamemaster.Action, len(cs))
		for i, c := range cs {
			out[i] = c.action
		}
		return out
	}

	rest := append([]candidate(nil), cs...)
	out := make([]gamemaster.Action, 0, len(cs))
	for len(rest) > 0 {
		scores := make([]float64, len(rest))
		for i, c := range rest {
			scores[i] = c.score
		}
		i := sample(adjustTemperature(scores, temperature), r)
		out = append(out, rest[i].action)
		rest = utils.Remove(rest, i)
	}
	return out
}

// adjustTemperature turns scores into a probability distribution. Lower
// temperatures concentrate on the best score.
func adjustTemperature(scores []float64, temperature float64) []float64 {
	best := math.Inf(-1)
	for _, s := range scores {
		best = math.Max(best, s)
	}
	sum := 0.0
	policy := make([]float64, len(scores))
	for i, s := range scores {
		policy[i] = math.Exp((s - best) / temperature)
		sum += policy[i]
	}
	for i := range policy {
		policy[i] /= sum
	}
	return policy
}

func sample(policy []float64, r *rand.Rand) int {
	sampled := r.Float64()
	cumulative := 0.0
	for i, p := range policy {
		cumulative += p
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // rounding
}
