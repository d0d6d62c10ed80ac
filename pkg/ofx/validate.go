package ofx

import (
	"fmt"
	"io"

	"github.com/aclindsa/ofxgo"
)

// Summary counts what a re-parsed document contains.
type Summary struct {
	Statements   int
	Transactions int
}

// Validate re-parses a produced document and reports its statement and
// transaction counts. Used by the validate command as a sanity check on
// exported files.
func Validate(r io.Reader) (Summary, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse document: %w", err)
	}

	var s Summary
	for _, msg := range resp.Bank {
		if st, ok := msg.(*ofxgo.StatementResponse); ok {
			s.Statements++
			if st.BankTranList != nil {
				s.Transactions += len(st.BankTranList.Transactions)
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if st, ok := msg.(*ofxgo.CCStatementResponse); ok {
			s.Statements++
			if st.BankTranList != nil {
				s.Transactions += len(st.BankTranList.Transactions)
			}
		}
	}
	for _, msg := range resp.InvStmt {
		if st, ok := msg.(*ofxgo.InvStatementResponse); ok {
			s.Statements++
			if st.InvTranList != nil {
				s.Transactions += len(st.InvTranList.InvTransactions) + len(st.InvTranList.BankTransactions)
			}
		}
	}

	return s, nil
}
