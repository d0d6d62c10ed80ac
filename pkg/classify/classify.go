package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/ofx-tools/wsexport/pkg/types"
)

// Entry is one transaction normalized for statement output.
type Entry struct {
	Date   time.Time
	Amount decimal.Decimal
	FitID  string
	Payee  string
	Memo   string
	// Kind is the OFX TRNTYPE value.
	Kind string
	// Investment marks buy/sell/dividend activity that investment statements
	// nest inside an INVBANKTRAN wrapper.
	Investment bool
}

// TransferLookup resolves an external funds transfer to its full record.
// Implemented by wsclient.Client.
type TransferLookup interface {
	FundsTransfer(ctx context.Context, id string) (types.FundsTransfer, error)
}

// Classifier maps raw transactions to entries. Unrecognized transaction
// types and unresolvable transfers are skipped with a diagnostic, never an
// error: one exotic transaction must not sink the whole export.
type Classifier struct {
	// Institution is the payee for house-side entries (interest, cashback,
	// card payments).
	Institution string
	// Nicknames maps account id to display name, for internal transfers.
	Nicknames map[string]string
	// Transfers services the EFT deposit/withdrawal branches.
	Transfers TransferLookup
}

// Classify maps a raw transaction to exactly one of {entry, skipped}. The
// returned error is reserved for failed transfer lookups, which abort the
// export like any other fetch failure.
func (c *Classifier) Classify(ctx context.Context, a types.Activity) (Entry, bool, error) {
	key := a.TypeKey()
	r, ok := rules[key]
	if !ok {
		logrus.Errorf("%s transaction [%s] has unexpected type, skipping it", day(a), key)
		return Entry{}, false, nil
	}

	payee, ok, err := c.resolvePayee(ctx, a, r)
	if err != nil || !ok {
		return Entry{}, false, err
	}

	amount, err := decimal.NewFromString(a.Amount)
	if err != nil {
		logrus.Errorf("%s transaction [%s] has unparseable amount %q, skipping it", day(a), key, a.Amount)
		return Entry{}, false, nil
	}
	if a.AmountSign == "negative" {
		amount = amount.Neg()
	}

	return Entry{
		Date:       a.OccurredAt,
		Amount:     amount,
		FitID:      fitID(a),
		Payee:      payee,
		Memo:       r.memo(a, payee),
		Kind:       r.kind,
		Investment: r.invest,
	}, true, nil
}

func (c *Classifier) resolvePayee(ctx context.Context, a types.Activity, r rule) (string, bool, error) {
	switch r.payee {
	case payeeInstitution:
		return c.Institution, true, nil
	case payeeP2PHandle:
		return a.P2PHandle, true, nil
	case payeeETransferEmail:
		return a.ETransferEmail, true, nil
	case payeeAssetSymbol:
		return a.AssetSymbol, true, nil
	case payeeMerchant:
		return a.SpendMerchant, true, nil
	case payeeAftOriginator:
		return a.AftOriginatorName, true, nil
	case payeeOpposingAccount:
		return c.Nicknames[a.OpposingAccountID], true, nil
	case payeeBillPayNickname:
		return a.BillPayPayeeNickname, true, nil
	case payeeBankTransfer:
		return c.resolveBankTransfer(ctx, a)
	}
	panic(fmt.Sprintf("unhandled payee source %d", r.payee))
}

// resolveBankTransfer enriches an EFT transaction with the counterparty
// bank's identity. A transfer with no bank details is a gap, not an error.
func (c *Classifier) resolveBankTransfer(ctx context.Context, a types.Activity) (string, bool, error) {
	info, err := c.Transfers.FundsTransfer(ctx, a.ExternalCanonicalID)
	if err != nil {
		return "", false, fmt.Errorf("failed to fetch transfer %s: %w", a.ExternalCanonicalID, err)
	}

	var bank *types.BankAccount
	if info.Source != nil {
		bank = info.Source.BankAccount
	}
	if bank == nil {
		logrus.Errorf("%s transaction [%s] has no bank info on transfer %s, skipping it", day(a), a.TypeKey(), a.ExternalCanonicalID)
		return "", false, nil
	}

	name := bank.Nickname
	if name == "" {
		name = bank.AccountName
	}
	return fmt.Sprintf("%s %s %s", bank.InstitutionName, name, bank.AccountNumber), true, nil
}

// fitID prefers the canonical id; settled transactions always carry one. The
// synthesized fallback exists for parity with edge cases only and is not a
// determinism guarantee.
func fitID(a types.Activity) string {
	if a.CanonicalID != "" {
		return a.CanonicalID
	}
	return fmt.Sprintf("%d-%s", a.OccurredAt.UnixMilli(), uuid.NewString()[:8])
}

func day(a types.Activity) string {
	return a.OccurredAt.Format("2006-01-02")
}
