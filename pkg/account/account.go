package account

import (
	"regexp"

	"github.com/ofx-tools/wsexport/pkg/types"
)

var selfDirectedRe = regexp.MustCompile(`^SELF_DIRECTED_(.*)`)

// Nickname returns the account's display name, synthesizing one from the
// unified account type when no explicit nickname is set. The rules apply in
// order, first match wins.
func Nickname(a types.Account) string {
	if a.Nickname != "" {
		return a.Nickname
	}

	switch {
	case a.UnifiedAccountType == "CASH":
		return "Cash"
	case a.UnifiedAccountType == "CREDIT_CARD":
		return "Credit Card"
	case selfDirectedRe.MatchString(a.UnifiedAccountType):
		name := selfDirectedRe.FindStringSubmatch(a.UnifiedAccountType)[1]
		switch name {
		case "CRYPTO":
			return "Crypto"
		case "NON_REGISTERED":
			return "Non-registered"
		}
		return name
	default:
		return "Unknown"
	}
}

// NicknameMap maps account id to resolved display name.
func NicknameMap(accounts []types.Account) map[string]string {
	m := make(map[string]string, len(accounts))
	for _, a := range accounts {
		m[a.ID] = Nickname(a)
	}
	return m
}

// TypeMap maps account id to its declared unified account type.
func TypeMap(accounts []types.Account) map[string]string {
	m := make(map[string]string, len(accounts))
	for _, a := range accounts {
		m[a.ID] = a.UnifiedAccountType
	}
	return m
}
