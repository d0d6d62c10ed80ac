package ofx

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ofx-tools/wsexport/pkg/classify"
)

// MIMEType tags the produced byte buffers.
const MIMEType = "application/x-ofx"

// Statement is everything needed to render one OFX document for one account.
type Statement struct {
	AccountID string
	// AcctType is the OFX account type from AccountType; it selects the
	// statement family (CREDITCARD, INVESTMENT, or a bank statement).
	AcctType string
	// Org is the financial-institution name.
	Org      string
	Currency string
	Entries  []classify.Entry
	// Now stamps DTSERVER and the empty-statement date range; zero means
	// time.Now().
	Now time.Time
	// TrnUID identifies the statement response; empty synthesizes one from
	// Now.
	TrnUID string
}

type docView struct {
	Org        string
	Currency   string
	AccountID  string
	AcctType   string
	TrnUID     string
	Now        string
	DtStart    string
	DtEnd      string
	CreditCard bool
	Investment bool
	Txns       []txnView
}

type txnView struct {
	Kind   string
	Posted string
	Amount string
	FitID  string
	Name   string
	Memo   string
	Invest bool
}

var docTmpl = template.Must(template.New("document").Parse(documentTemplate))

// Render assembles one complete OFX 1.02 SGML document. Entries are sorted
// ascending by date; DTSTART/DTEND are the first/last entry dates, or Now for
// an empty statement. Ledger and investment balances are always zero: this is
// a transaction history export, not a balance feed.
func Render(st Statement) ([]byte, error) {
	entries := make([]classify.Entry, len(st.Entries))
	copy(entries, st.Entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	now := st.Now
	if now.IsZero() {
		now = time.Now()
	}
	nowStr := Date(now)

	trnUID := st.TrnUID
	if trnUID == "" {
		trnUID = strconv.FormatInt(now.UnixMilli(), 10)
	}

	view := docView{
		Org:        st.Org,
		Currency:   st.Currency,
		AccountID:  Escape(st.AccountID),
		AcctType:   st.AcctType,
		TrnUID:     trnUID,
		Now:        nowStr,
		DtStart:    nowStr,
		DtEnd:      nowStr,
		CreditCard: st.AcctType == TypeCreditCard,
		Investment: st.AcctType == TypeInvestment,
	}
	if len(entries) > 0 {
		view.DtStart = Date(entries[0].Date)
		view.DtEnd = Date(entries[len(entries)-1].Date)
	}

	for _, e := range entries {
		view.Txns = append(view.Txns, txnView{
			Kind:   e.Kind,
			Posted: Date(e.Date),
			Amount: amountString(e.Amount),
			FitID:  Escape(e.FitID),
			Name:   Escape(e.Payee),
			Memo:   Escape(e.Memo),
			Invest: e.Investment,
		})
	}

	var buf bytes.Buffer
	if err := docTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render statement for account %s: %w", st.AccountID, err)
	}

	return buf.Bytes(), nil
}

// amountString renders a TRNAMT at the scale the amount was parsed with.
// Decimal's String trims trailing fractional zeros, turning "250.00" into
// "250".
func amountString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Date renders the fixed 14-character OFX timestamp with the time of day
// zeroed.
func Date(t time.Time) string {
	return t.Format("20060102") + "000000"
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape encodes the five XML metacharacters. Every free-text field passes
// through here before insertion.
func Escape(s string) string {
	return escaper.Replace(s)
}
