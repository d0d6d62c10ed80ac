package ofx

import (
	"strings"

	"github.com/ofx-tools/wsexport/pkg/types"
)

// Statement families / OFX account types.
const (
	TypeChecking   = "CHECKING"
	TypeSavings    = "SAVINGS"
	TypeCreditCard = "CREDITCARD"
	TypeInvestment = "INVESTMENT"
)

var acctTypeTable = map[string]string{
	"CASH":                         TypeChecking,
	"CHEQUING":                     TypeChecking,
	"SAVINGS":                      TypeSavings,
	"CREDIT_CARD":                  TypeCreditCard,
	"SELF_DIRECTED_CRYPTO":         TypeInvestment,
	"SELF_DIRECTED_NON_REGISTERED": TypeInvestment,
	"SELF_DIRECTED_TFSA":           TypeInvestment,
	"SELF_DIRECTED_RRSP":           TypeInvestment,
	"SELF_DIRECTED_RESP":           TypeInvestment,
	"SELF_DIRECTED_RRIF":           TypeInvestment,
	"SELF_DIRECTED_FHSA":           TypeInvestment,
	"SELF_DIRECTED_LIRA":           TypeInvestment,
	"MANAGED_TFSA":                 TypeInvestment,
	"MANAGED_RRSP":                 TypeInvestment,
	"MANAGED_RESP":                 TypeInvestment,
	"MANAGED_RRIF":                 TypeInvestment,
	"MANAGED_NON_REGISTERED":       TypeInvestment,
}

// fallbacks are ordered substring rules, reachable only when the exact table
// misses. First match wins.
var fallbacks = []struct {
	substr string
	typ    string
}{
	{"SELF_DIRECTED", TypeInvestment},
	{"MANAGED", TypeInvestment},
	{"CREDIT", TypeCreditCard},
	{"SAVING", TypeSavings},
}

func mapAccountType(unified string) string {
	if typ, ok := acctTypeTable[unified]; ok {
		return typ
	}
	for _, f := range fallbacks {
		if strings.Contains(unified, f.substr) {
			return f.typ
		}
	}
	return TypeChecking
}

// AccountType maps an account's declared kind to its OFX statement family.
// Transaction evidence takes precedence over the declared kind: any credit
// card transaction forces CREDITCARD, because the declared kind is sometimes
// stale or absent.
func AccountType(unified string, activities []types.Activity) string {
	for _, a := range activities {
		if strings.HasPrefix(a.Type, "CREDIT_CARD") {
			return TypeCreditCard
		}
	}
	return mapAccountType(unified)
}
