package ofx

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ofx-tools/wsexport/pkg/classify"
)

func amt(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("failed to parse amount %q: %v", s, err)
	}
	return d
}

func TestRenderBankStatement(t *testing.T) {
	doc, err := Render(Statement{
		AccountID: "acct-1",
		AcctType:  TypeChecking,
		Org:       "Wealthsimple",
		Currency:  "CAD",
		Now:       time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC),
		TrnUID:    "42",
		Entries: []classify.Entry{
			// Out of order on purpose: Render must sort by date.
			{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Amount: amt(t, "12.34"), FitID: "f1", Payee: "Wealthsimple", Memo: "Interest", Kind: "INT"},
			{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: amt(t, "-5"), FitID: "f2", Payee: "A&W", Kind: "POS"},
		},
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	want := `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:UTF-8
CHARSET:UTF-8
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315000000
<LANGUAGE>ENG
<FI>
<ORG>Wealthsimple
<FID>0
</FI>
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>42
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>CAD
<BANKACCTFROM>
<BANKID>Wealthsimple
<ACCTID>acct-1
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240301000000
<DTEND>20240310000000
<STMTTRN>
<TRNTYPE>POS
<DTPOSTED>20240301000000
<TRNAMT>-5
<FITID>f2
<NAME>A&amp;W
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20240310000000
<TRNAMT>12.34
<FITID>f1
<NAME>Wealthsimple
<MEMO>Interest
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>0
<DTASOF>20240315000000
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`
	if got := string(doc); got != want {
		t.Fatalf("unexpected document:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderEmptyStatement(t *testing.T) {
	doc, err := Render(Statement{
		AccountID: "acct-1",
		AcctType:  TypeChecking,
		Org:       "Wealthsimple",
		Currency:  "CAD",
		Now:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	got := string(doc)
	if !strings.Contains(got, "<DTSTART>20240315000000\n<DTEND>20240315000000\n") {
		t.Fatalf("expected empty statement range to collapse to now:\n%s", got)
	}
	if strings.Contains(got, "<STMTTRN>") {
		t.Fatalf("expected no transactions:\n%s", got)
	}
}

func TestRenderCreditCardStatement(t *testing.T) {
	doc, err := Render(Statement{
		AccountID: "cc-1",
		AcctType:  TypeCreditCard,
		Org:       "Wealthsimple",
		Currency:  "CAD",
		Now:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Entries: []classify.Entry{
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: amt(t, "-19.99"), FitID: "f1", Payee: "Grocer", Kind: "POS"},
		},
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	got := string(doc)
	if !strings.Contains(got, "<CCSTMTTRNRS>") || !strings.Contains(got, "<CCACCTFROM>\n<ACCTID>cc-1\n</CCACCTFROM>") {
		t.Fatalf("expected credit card statement family:\n%s", got)
	}
	if strings.Contains(got, "<ACCTTYPE>") {
		t.Fatalf("credit card statements carry no ACCTTYPE element:\n%s", got)
	}
	if strings.Contains(got, "<BANKMSGSRSV1>") {
		t.Fatalf("unexpected bank wrapper in credit card statement:\n%s", got)
	}
}

func TestRenderInvestmentStatement(t *testing.T) {
	doc, err := Render(Statement{
		AccountID: "inv-1",
		AcctType:  TypeInvestment,
		Org:       "Wealthsimple",
		Currency:  "CAD",
		Now:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Entries: []classify.Entry{
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: amt(t, "-100"), FitID: "f1", Payee: "VEQT", Memo: "Bought 2 VEQT", Kind: "DEBIT", Investment: true},
			{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Amount: amt(t, "250"), FitID: "f2", Payee: "RBC Chequing 1234", Memo: "Direct deposit from RBC Chequing 1234", Kind: "DEP"},
		},
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	got := string(doc)
	if !strings.Contains(got, "<INVSTMTTRNRS>") || !strings.Contains(got, "<BROKERID>Wealthsimple") {
		t.Fatalf("expected investment statement family:\n%s", got)
	}

	// The trade is wrapped in INVBANKTRAN, the cash movement is not.
	if !strings.Contains(got, "<INVBANKTRAN>\n<STMTTRN>\n<TRNTYPE>DEBIT") {
		t.Fatalf("expected trade inside INVBANKTRAN:\n%s", got)
	}
	if strings.Count(got, "<INVBANKTRAN>") != 1 {
		t.Fatalf("expected exactly one INVBANKTRAN wrapper:\n%s", got)
	}
	if !strings.Contains(got, "</INVBANKTRAN>\n<STMTTRN>\n<TRNTYPE>DEP") {
		t.Fatalf("expected cash movement as a plain STMTTRN after the trade:\n%s", got)
	}
}

func TestRenderKeepsAmountScale(t *testing.T) {
	doc, err := Render(Statement{
		AccountID: "acct-1",
		AcctType:  TypeChecking,
		Org:       "Wealthsimple",
		Currency:  "CAD",
		Now:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Entries: []classify.Entry{
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Amount: amt(t, "-250.00"), FitID: "f1", Payee: "RBC Chequing 1234", Kind: "DEBIT"},
			{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Amount: amt(t, "0.10"), FitID: "f2", Payee: "Wealthsimple", Kind: "INT"},
		},
	})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	got := string(doc)
	if !strings.Contains(got, "<TRNAMT>-250.00\n") {
		t.Fatalf("expected trailing zeros preserved in TRNAMT:\n%s", got)
	}
	if !strings.Contains(got, "<TRNAMT>0.10\n") {
		t.Fatalf("expected trailing zero preserved in TRNAMT:\n%s", got)
	}
}

func TestDate(t *testing.T) {
	got := Date(time.Date(2024, 3, 5, 14, 45, 12, 0, time.UTC))
	if got != "20240305000000" {
		t.Fatalf("Date() = %q, want 20240305000000", got)
	}
}

func TestEscape(t *testing.T) {
	got := Escape(`Tom & Jerry's <"Shop">`)
	want := "Tom &amp; Jerry&apos;s &lt;&quot;Shop&quot;&gt;"
	if got != want {
		t.Fatalf("Escape() = %q, want %q", got, want)
	}
}
