// Package split computes the balance change produced by splitting one bill
// between the viewer and a friend.
package split

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Payer is whoever paid the whole bill.
type Payer int

const (
	PayerYou Payer = iota
	PayerFriend
)

// Label returns the selector caption for p.
func (p Payer) Label(friendName string) string {
	if p == PayerFriend {
		return friendName
	}
	return "You"
}

// Other flips between the two payers.
func (p Payer) Other() Payer {
	if p == PayerFriend {
		return PayerYou
	}
	return PayerFriend
}

// Form is the state of one split-bill form. The zero value is an empty form
// paid by the viewer.
type Form struct {
	Bill    decimal.Decimal
	Expense decimal.Decimal
	Payer   Payer
}

// FriendExpense is the friend's share of the bill.
func (f Form) FriendExpense() decimal.Decimal {
	return f.Bill.Sub(f.Expense)
}

func (f *Form) SetBill(v decimal.Decimal) {
	f.Bill = v
}

// SetExpense stores v unless it exceeds the bill, in which case the previous
// expense is kept and false is returned.
func (f *Form) SetExpense(v decimal.Decimal) bool {
	if v.GreaterThan(f.Bill) {
		return false
	}
	f.Expense = v
	return true
}

// Delta is the signed change to the friend's balance. ok is false while the
// bill or the viewer's expense is still zero.
func (f Form) Delta() (delta decimal.Decimal, ok bool) {
	if f.Bill.IsZero() || f.Expense.IsZero() {
		return decimal.Zero, false
	}
	if f.Payer == PayerYou {
		return f.FriendExpense(), true
	}
	return f.Expense.Neg(), true
}

// ParseAmount reads a user-typed amount. Blank input, and the half-typed
// prefixes ".", "-" and "-.", are zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", ".", "-", "-.":
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d, nil
}
