package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type SearchResult struct {
	Title          string  `json:"title"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	URL            string  `json:"url"`
	ImageURL       string  `json:"image_url"`
	Source         string  `json:"source"`
	Rating         float64 `json:"rating,omitempty"`
	ReviewCount    int     `json:"review_count,omitempty"`
	InStock        *bool   `json:"in_stock,omitempty"`
	IsBestPrice    bool    `json:"is_best_price,omitempty"`
	Recommendation string  `json:"recommendation,omitempty"`
	Similarity     float64 `json:"similarity,omitempty"`
}

type SearchResponse struct {
	Results         []SearchResult `json:"results"`
	Recommendations []string       `json:"recommendations"`
}

func (c *Client) Search(ctx context.Context, query string, maxResults int, groupSimilar bool) (SearchResponse, error) {
	type request struct {
		Query        string `json:"query"`
		MaxResults   int    `json:"max_results"`
		GroupSimilar bool   `json:"group_similar"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/search", request{
		Query:        query,
		MaxResults:   maxResults,
		GroupSimilar: groupSimilar,
	})
	if err != nil {
		return SearchResponse{}, err
	}
	var resp SearchResponse
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return SearchResponse{}, errors.Wrapf(err, "error searching for: %s", query)
	}
	return resp, nil
}
