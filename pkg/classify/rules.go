package classify

import (
	"fmt"

	"github.com/ofx-tools/wsexport/pkg/types"
)

// payeeSource selects which raw field (or auxiliary lookup) supplies the
// payee for a rule.
type payeeSource int

const (
	payeeInstitution payeeSource = iota
	payeeP2PHandle
	payeeETransferEmail
	payeeAssetSymbol
	payeeMerchant
	payeeAftOriginator
	payeeOpposingAccount
	payeeBillPayNickname
	// payeeBankTransfer requires resolving the external funds transfer.
	payeeBankTransfer
)

type rule struct {
	kind   string
	invest bool
	payee  payeeSource
	memo   func(a types.Activity, payee string) string
}

func fixed(s string) func(types.Activity, string) string {
	return func(types.Activity, string) string { return s }
}

func tradeMemo(verb string) func(types.Activity, string) string {
	return func(a types.Activity, _ string) string {
		return fmt.Sprintf("%s %s %s", verb, a.AssetQuantity, a.AssetSymbol)
	}
}

// rules is the closed classification table, keyed by type or type/subType.
// Every key deterministically yields one (payee, memo, kind) rule; keys not
// present here are skipped at classification time.
var rules = map[string]rule{
	"INTEREST":              {kind: "INT", payee: payeeInstitution, memo: fixed("Interest")},
	"INTEREST/FPL_INTEREST": {kind: "INT", payee: payeeInstitution, memo: fixed("Interest")},

	"REIMBURSEMENT/ATM":      {kind: "CREDIT", payee: payeeInstitution, memo: fixed("ATM Reimbursement")},
	"REIMBURSEMENT/CASHBACK": {kind: "CREDIT", payee: payeeInstitution, memo: fixed("Cash back")},

	"P2P_PAYMENT/SEND": {kind: "XFER", payee: payeeP2PHandle, memo: fixed("P2P Payment")},

	"DEPOSIT/E_TRANSFER": {kind: "XFER", payee: payeeETransferEmail, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("INTERAC e-Transfer from %s", a.ETransferName)
	}},
	"WITHDRAWAL/E_TRANSFER": {kind: "XFER", payee: payeeETransferEmail, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("INTERAC e-Transfer to %s", a.ETransferName)
	}},

	"DIVIDEND/DIY_DIVIDEND": {kind: "DIV", invest: true, payee: payeeAssetSymbol, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("Received dividend from %s", a.AssetSymbol)
	}},

	"CREDIT_CARD/PURCHASE": {kind: "POS", payee: payeeMerchant, memo: fixed("")},
	"CREDIT_CARD/REFUND":   {kind: "POS", payee: payeeMerchant, memo: fixed("")},
	"CREDIT_CARD/PAYMENT":  {kind: "PAYMENT", payee: payeeInstitution, memo: fixed("")},
	"CREDIT_CARD_PAYMENT":  {kind: "PAYMENT", payee: payeeInstitution, memo: fixed("")},

	"DIY_BUY/DIVIDEND_REINVESTMENT": {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("Reinvested dividend into %s %s", a.AssetQuantity, a.AssetSymbol)
	}},

	"DIY_BUY/MARKET_ORDER":     {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},
	"DIY_BUY/RECURRING_ORDER":  {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},
	"DIY_BUY/LIMIT_ORDER":      {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},
	"DIY_BUY/FRACTIONAL_ORDER": {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},

	"DIY_SELL/MARKET_ORDER":     {kind: "CREDIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Sold")},
	"DIY_SELL/LIMIT_ORDER":      {kind: "CREDIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Sold")},
	"DIY_SELL/FRACTIONAL_ORDER": {kind: "CREDIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Sold")},

	"CRYPTO_BUY/MARKET_ORDER":     {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},
	"CRYPTO_BUY/RECURRING_ORDER":  {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},
	"CRYPTO_BUY/LIMIT_ORDER":      {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},
	"CRYPTO_BUY/FRACTIONAL_ORDER": {kind: "DEBIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Bought")},

	"CRYPTO_SELL/MARKET_ORDER":     {kind: "CREDIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Sold")},
	"CRYPTO_SELL/LIMIT_ORDER":      {kind: "CREDIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Sold")},
	"CRYPTO_SELL/FRACTIONAL_ORDER": {kind: "CREDIT", invest: true, payee: payeeAssetSymbol, memo: tradeMemo("Sold")},

	"DEPOSIT/AFT": {kind: "DEP", payee: payeeAftOriginator, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("Direct deposit from %s", a.AftOriginatorName)
	}},
	"WITHDRAWAL/AFT": {kind: "DEBIT", payee: payeeAftOriginator, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("Direct deposit to %s", a.AftOriginatorName)
	}},

	"DEPOSIT/EFT": {kind: "DEP", payee: payeeBankTransfer, memo: func(_ types.Activity, payee string) string {
		return fmt.Sprintf("Direct deposit from %s", payee)
	}},
	"WITHDRAWAL/EFT": {kind: "DEBIT", payee: payeeBankTransfer, memo: func(_ types.Activity, payee string) string {
		return fmt.Sprintf("Direct deposit to %s", payee)
	}},

	"INTERNAL_TRANSFER/SOURCE": {kind: "XFER", payee: payeeOpposingAccount, memo: func(_ types.Activity, payee string) string {
		return fmt.Sprintf("Internal transfer to %s", payee)
	}},
	"INTERNAL_TRANSFER/DESTINATION": {kind: "XFER", payee: payeeOpposingAccount, memo: func(_ types.Activity, payee string) string {
		return fmt.Sprintf("Internal transfer from %s", payee)
	}},

	"SPEND/PREPAID": {kind: "POS", payee: payeeMerchant, memo: func(_ types.Activity, payee string) string {
		return fmt.Sprintf("Prepaid to %s", payee)
	}},

	"WITHDRAWAL/BILL_PAY": {kind: "PAYMENT", payee: payeeBillPayNickname, memo: func(a types.Activity, _ string) string {
		return fmt.Sprintf("Bill payment to %s", a.BillPayCompanyName)
	}},
}
