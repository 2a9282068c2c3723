package batch

import (
	"fmt"

	floater "Floatex/internal/calc/floater"
)

type FloaterBatchInput struct {
	Items []floater.Config `json:"items"`
}

type FloaterBatchResult struct {
	Results []floater.Result `json:"results"`
}

// CalculateFloater evaluates a list of independent study configurations.
// The first failing configuration aborts the batch with its position.
func CalculateFloater(in FloaterBatchInput) (FloaterBatchResult, error) {
	if len(in.Items) == 0 {
		return FloaterBatchResult{}, fmt.Errorf("no items")
	}
	out := FloaterBatchResult{Results: make([]floater.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := floater.Evaluate(item)
		if err != nil {
			return FloaterBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
