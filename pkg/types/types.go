package types

import "time"

// Activity is the subset of the ActivityFeedItem GraphQL type the exporter
// consumes. Fields that do not apply to a given transaction type come back
// null and stay zero-valued here.
type Activity struct {
	AccountID              string    `json:"accountId"`
	ExternalCanonicalID    string    `json:"externalCanonicalId"`
	CanonicalID            string    `json:"canonicalId"`
	Amount                 string    `json:"amount"`
	AmountSign             string    `json:"amountSign"`
	OccurredAt             time.Time `json:"occurredAt"`
	Type                   string    `json:"type"`
	SubType                string    `json:"subType"`
	ETransferEmail         string    `json:"eTransferEmail"`
	ETransferName          string    `json:"eTransferName"`
	AssetSymbol            string    `json:"assetSymbol"`
	AssetQuantity          string    `json:"assetQuantity"`
	AftOriginatorName      string    `json:"aftOriginatorName"`
	AftTransactionCategory string    `json:"aftTransactionCategory"`
	OpposingAccountID      string    `json:"opposingAccountId"`
	SpendMerchant          string    `json:"spendMerchant"`
	P2PHandle              string    `json:"p2pHandle"`
	P2PMessage             string    `json:"p2pMessage"`
	BillPayCompanyName     string    `json:"billPayCompanyName"`
	BillPayPayeeNickname   string    `json:"billPayPayeeNickname"`
	Status                 string    `json:"status"`
	Currency               string    `json:"currency"`
}

// TypeKey is the classification key: the type alone, or type/subType when a
// subtype is present.
func (a Activity) TypeKey() string {
	if a.SubType != "" {
		return a.Type + "/" + a.SubType
	}
	return a.Type
}

// Account is one account record belonging to the current identity.
type Account struct {
	ID                 string `json:"id"`
	Nickname           string `json:"nickname"`
	UnifiedAccountType string `json:"unifiedAccountType"`
}

// FundsTransfer is the record behind an external (EFT) funds transfer. Either
// side may lack bank account details.
type FundsTransfer struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	Source      *BankAccountOwner `json:"source"`
	Destination *BankAccountOwner `json:"destination"`
}

type BankAccountOwner struct {
	BankAccount *BankAccount `json:"bankAccount"`
}

// BankAccount identifies the counterparty bank side of a funds transfer.
type BankAccount struct {
	ID              string `json:"id"`
	InstitutionName string `json:"institutionName"`
	Nickname        string `json:"nickname"`
	AccountName     string `json:"accountName"`
	AccountNumber   string `json:"accountNumber"`
}
