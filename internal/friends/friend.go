// Package friends holds the friend records and the in-memory registry that
// backs the sidebar. Records are values: a balance change replaces the
// record instead of mutating it.
package friends

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAvatarURL is the placeholder avatar service used for new friends.
const DefaultAvatarURL = "https://i.pravatar.cc/48"

// Friend is one row of the registry.
type Friend struct {
	ID    string
	Name  string
	Image string
	// Balance > 0 means the friend owes the viewer, < 0 means the viewer owes the friend.
	Balance decimal.Decimal
}

// New builds a friend with a fresh id and a zero balance. The id is appended
// to the image URL so the avatar service does not serve a cached picture.
func New(name, image string) Friend {
	id := uuid.NewString()
	return Friend{
		ID:      id,
		Name:    name,
		Image:   fmt.Sprintf("%s?=%s", image, id),
		Balance: decimal.Zero,
	}
}

// WithBalance returns a copy of f with delta added to its balance.
func (f Friend) WithBalance(delta decimal.Decimal) Friend {
	f.Balance = f.Balance.Add(delta)
	return f
}

// Owes reports whether the friend owes the viewer money.
func (f Friend) Owes() bool { return f.Balance.IsPositive() }

// Owed reports whether the viewer owes the friend money.
func (f Friend) Owed() bool { return f.Balance.IsNegative() }

// Seed returns the sample friends loaded at startup.
func Seed() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: "https://i.pravatar.cc/48?u=118836", Balance: decimal.NewFromInt(-7)},
		{ID: "933372", Name: "Sarah", Image: "https://i.pravatar.cc/48?u=933372", Balance: decimal.NewFromInt(20)},
		{ID: "499476", Name: "Anthony", Image: "https://i.pravatar.cc/48?u=499476", Balance: decimal.Zero},
	}
}
