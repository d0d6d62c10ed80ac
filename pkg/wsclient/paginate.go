package wsclient

import (
	"context"
	"encoding/json"
	"fmt"
)

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type edge[T any] struct {
	Node T `json:"node"`
}

type connection[T any] struct {
	Edges    []edge[T] `json:"edges"`
	PageInfo pageInfo  `json:"pageInfo"`
}

func (c connection[T]) nodes() []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

// fetchAll follows cursor pagination until the server reports no next page.
// vars must not contain a cursor on entry; the endCursor of each response is
// injected as the cursor of the next request. page extracts the connection
// from one response's data payload.
func fetchAll[T any](ctx context.Context, c *Client, operationName, query string, vars map[string]any, page func(data json.RawMessage) (connection[T], error)) ([]T, error) {
	var nodes []T
	for {
		data, err := c.do(ctx, operationName, query, vars)
		if err != nil {
			return nil, err
		}

		conn, err := page(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s page: %w", operationName, err)
		}

		nodes = append(nodes, conn.nodes()...)

		if !conn.PageInfo.HasNextPage {
			return nodes, nil
		}
		vars["cursor"] = conn.PageInfo.EndCursor
	}
}
