package friends

import "fmt"

// Status renders the balance line shown under a friend's name.
func Status(f Friend, currency string) string {
	switch {
	case f.Balance.IsZero():
		return fmt.Sprintf("You and %s are even", f.Name)
	case f.Balance.IsNegative():
		return fmt.Sprintf("You owe %s %s%s", f.Name, f.Balance.Abs().String(), currency)
	default:
		return fmt.Sprintf("%s owes you %s%s", f.Name, f.Balance.String(), currency)
	}
}
