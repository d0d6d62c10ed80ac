package wsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ofx-tools/wsexport/pkg/types"
)

// ActivityList fetches completed transactions for specific accounts through
// the account-details activity API. A nil fromDate means no lower bound.
func (c *Client) ActivityList(ctx context.Context, accountIDs []string, fromDate *time.Time) ([]types.Activity, error) {
	vars := map[string]any{
		"first":      c.pageSize,
		"accountIds": accountIDs,
		"startDate":  fromDate,
		"endDate":    time.Now().UTC().Format(time.RFC3339),
	}

	return fetchAll(ctx, c, "FetchActivityList", activityListQuery, vars, func(data json.RawMessage) (connection[types.Activity], error) {
		var payload struct {
			Activities connection[types.Activity] `json:"activities"`
		}
		err := json.Unmarshal(data, &payload)
		return payload.Activities, err
	})
}

// ActivityFeedItems fetches completed transactions through the activity-feed
// API, optionally scoped to accountIDs.
func (c *Client) ActivityFeedItems(ctx context.Context, accountIDs []string, fromDate *time.Time) ([]types.Activity, error) {
	vars := map[string]any{
		"first": c.pageSize,
		"condition": map[string]any{
			"startDate":       fromDate,
			"accountIds":      accountIDs,
			"unifiedStatuses": []string{"COMPLETED"},
		},
	}

	return fetchAll(ctx, c, "FetchActivityFeedItems", activityFeedItemsQuery, vars, func(data json.RawMessage) (connection[types.Activity], error) {
		var payload struct {
			ActivityFeedItems connection[types.Activity] `json:"activityFeedItems"`
		}
		err := json.Unmarshal(data, &payload)
		return payload.ActivityFeedItems, err
	})
}

// AccountFinancials fetches every account belonging to the configured
// identity.
func (c *Client) AccountFinancials(ctx context.Context) ([]types.Account, error) {
	vars := map[string]any{
		"identityId": c.identityID,
		"pageSize":   c.accountPageSize,
	}

	return fetchAll(ctx, c, "FetchAllAccountFinancials", accountFinancialsQuery, vars, func(data json.RawMessage) (connection[types.Account], error) {
		var payload struct {
			Identity struct {
				ID       string                    `json:"id"`
				Accounts connection[types.Account] `json:"accounts"`
			} `json:"identity"`
		}
		err := json.Unmarshal(data, &payload)
		return payload.Identity.Accounts, err
	})
}

// FundsTransfer looks up one external funds transfer by id. A transfer with
// no bank account details on the relevant side is returned as-is; the caller
// decides whether that is acceptable.
func (c *Client) FundsTransfer(ctx context.Context, id string) (types.FundsTransfer, error) {
	data, err := c.do(ctx, "FetchFundsTransfer", fundsTransferQuery, map[string]any{"id": id})
	if err != nil {
		return types.FundsTransfer{}, err
	}

	var payload struct {
		FundsTransfer *types.FundsTransfer `json:"fundsTransfer"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return types.FundsTransfer{}, fmt.Errorf("failed to decode funds transfer: %w", err)
	}
	if payload.FundsTransfer == nil {
		return types.FundsTransfer{}, nil
	}

	return *payload.FundsTransfer, nil
}
