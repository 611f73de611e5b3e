// Package batch runs many wind loading requests in one call.
package batch

import (
	"errors"
	"fmt"

	"Windsign/internal/calc/loads"
)

const MaxItems = 100

var (
	ErrEmpty   = errors.New("no items")
	ErrTooMany = fmt.Errorf("more than %d items", MaxItems)
)

type LoadsBatchInput struct {
	Items []loads.Request `json:"items"`
}

// Item carries either a response or the reason the request was rejected.
type Item struct {
	Index    int             `json:"index"`
	Response *loads.Response `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

type LoadsBatchResult struct {
	Results   []Item `json:"results"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// CalculateLoads evaluates every item in order. A bad item does not stop the
// batch; its error is reported in place.
func CalculateLoads(in LoadsBatchInput) (LoadsBatchResult, error) {
	switch {
	case len(in.Items) == 0:
		return LoadsBatchResult{}, ErrEmpty
	case len(in.Items) > MaxItems:
		return LoadsBatchResult{}, ErrTooMany
	}
	out := LoadsBatchResult{Results: make([]Item, 0, len(in.Items))}
	for i, req := range in.Items {
		item := Item{Index: i}
		res, err := run(req)
		if err != nil {
			item.Error = err.Error()
			out.Failed++
		} else {
			item.Response = &res
			out.Succeeded++
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func run(req loads.Request) (loads.Response, error) {
	if err := req.Validate(); err != nil {
		return loads.Response{}, err
	}
	return loads.Calculate(req)
}
