package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ofx-tools/wsexport/pkg/account"
	"github.com/ofx-tools/wsexport/pkg/classify"
	"github.com/ofx-tools/wsexport/pkg/config"
	"github.com/ofx-tools/wsexport/pkg/ofx"
	"github.com/ofx-tools/wsexport/pkg/types"
)

type PageType string

const (
	// PageAccountDetail scopes the export to one account's activity view.
	PageAccountDetail PageType = "accountDetail"
	// PageFeed exports the cross-account activity feed.
	PageFeed PageType = "feed"
)

// Scope is the account-scope request handed in by the integration layer.
type Scope struct {
	PageType   PageType   `json:"pageType"`
	AccountIDs []string   `json:"accountIds"`
	FromDate   *time.Time `json:"fromDate"`
}

// Client is the brokerage API surface the exporter needs. Implemented by
// wsclient.Client.
type Client interface {
	AccountFinancials(ctx context.Context) ([]types.Account, error)
	ActivityList(ctx context.Context, accountIDs []string, fromDate *time.Time) ([]types.Activity, error)
	ActivityFeedItems(ctx context.Context, accountIDs []string, fromDate *time.Time) ([]types.Activity, error)
	FundsTransfer(ctx context.Context, id string) (types.FundsTransfer, error)
}

// Exporter runs one export action: fetch, group, classify, render. It holds
// no state between runs.
type Exporter struct {
	Client      Client
	Institution string
	Currency    string
	// Now overrides the clock in tests.
	Now func() time.Time
}

func New(client Client, cfg config.Config) *Exporter {
	return &Exporter{
		Client:      client,
		Institution: cfg.Institution,
		Currency:    cfg.Currency,
	}
}

// Run produces one OFX document per account with activity in scope. A fetch
// failure aborts the whole action; per-transaction gaps are logged and
// dropped.
func (e *Exporter) Run(ctx context.Context, scope Scope) (map[string][]byte, error) {
	logrus.Debug("fetching account details")
	accounts, err := e.Client.AccountFinancials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account info: %w", err)
	}
	nicknames := account.NicknameMap(accounts)
	kinds := account.TypeMap(accounts)

	logrus.Debug("fetching transactions")
	var activities []types.Activity
	switch scope.PageType {
	case PageAccountDetail:
		activities, err = e.Client.ActivityList(ctx, scope.AccountIDs, scope.FromDate)
	case PageFeed:
		ids := scope.AccountIDs
		if len(ids) == 0 {
			for _, a := range accounts {
				ids = append(ids, a.ID)
			}
		}
		activities, err = e.Client.ActivityFeedItems(ctx, ids, scope.FromDate)
	default:
		return nil, fmt.Errorf("unknown page type %q", scope.PageType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	grouped, order := groupByAccount(activities)

	classifier := &classify.Classifier{
		Institution: e.Institution,
		Nicknames:   nicknames,
		Transfers:   e.Client,
	}

	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	docs := make(map[string][]byte, len(order))
	for _, id := range order {
		acts := grouped[id]

		var entries []classify.Entry
		for _, act := range acts {
			entry, ok, err := classifier.Classify(ctx, act)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			entries = append(entries, entry)
		}

		doc, err := ofx.Render(ofx.Statement{
			AccountID: id,
			AcctType:  ofx.AccountType(kinds[id], acts),
			Org:       e.Institution,
			Currency:  e.Currency,
			Entries:   entries,
			Now:       now,
		})
		if err != nil {
			return nil, err
		}
		docs[id] = doc
	}

	return docs, nil
}

// groupByAccount splits activities per account, preserving fetch order within
// each account and first-seen order across accounts.
func groupByAccount(activities []types.Activity) (map[string][]types.Activity, []string) {
	grouped := map[string][]types.Activity{}
	var order []string
	for _, a := range activities {
		if _, ok := grouped[a.AccountID]; !ok {
			order = append(order, a.AccountID)
		}
		grouped[a.AccountID] = append(grouped[a.AccountID], a)
	}
	return grouped, order
}

// WriteFiles saves each document as <accountId>.ofx under dir and returns the
// written paths, sorted.
func WriteFiles(dir string, docs map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(docs))
	for id, doc := range docs {
		path := filepath.Join(dir, id+".ofx")
		if err := os.WriteFile(path, doc, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}
