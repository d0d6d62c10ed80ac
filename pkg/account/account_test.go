package account

import (
	"testing"

	"github.com/ofx-tools/wsexport/pkg/types"
)

func TestNickname(t *testing.T) {
	cases := []struct {
		name string
		acct types.Account
		want string
	}{
		{"explicit nickname wins", types.Account{Nickname: "Rainy Day", UnifiedAccountType: "CASH"}, "Rainy Day"},
		{"cash", types.Account{UnifiedAccountType: "CASH"}, "Cash"},
		{"credit card", types.Account{UnifiedAccountType: "CREDIT_CARD"}, "Credit Card"},
		{"self-directed tfsa", types.Account{UnifiedAccountType: "SELF_DIRECTED_TFSA"}, "TFSA"},
		{"self-directed rrsp", types.Account{UnifiedAccountType: "SELF_DIRECTED_RRSP"}, "RRSP"},
		{"self-directed crypto", types.Account{UnifiedAccountType: "SELF_DIRECTED_CRYPTO"}, "Crypto"},
		{"self-directed non-registered", types.Account{UnifiedAccountType: "SELF_DIRECTED_NON_REGISTERED"}, "Non-registered"},
		{"unrecognized type", types.Account{UnifiedAccountType: "MANAGED_TFSA"}, "Unknown"},
		{"empty type", types.Account{}, "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Nickname(tc.acct); got != tc.want {
				t.Fatalf("Nickname(%+v) = %q, want %q", tc.acct, got, tc.want)
			}
		})
	}
}

func TestNicknameMap(t *testing.T) {
	accounts := []types.Account{
		{ID: "a1", UnifiedAccountType: "CASH"},
		{ID: "a2", Nickname: "Vacation", UnifiedAccountType: "SELF_DIRECTED_TFSA"},
	}

	m := NicknameMap(accounts)
	if m["a1"] != "Cash" || m["a2"] != "Vacation" {
		t.Fatalf("unexpected nickname map: %v", m)
	}
}
