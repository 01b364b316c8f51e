package accounts

import (
	"strings"

	"github.com/cleared-dev/smstx/internal/model"
)

// FindForCard returns the first account, in the given order, whose name
// contains cardDigits. Several accounts may contain the same digits; the
// earliest wins. Empty digits match nothing.
func FindForCard(cardDigits string, accounts []model.Account) (model.Account, bool) {
	if cardDigits == "" {
		return model.Account{}, false
	}
	for _, acct := range accounts {
		if strings.Contains(acct.Name, cardDigits) {
			return acct, true
		}
	}
	return model.Account{}, false
}
