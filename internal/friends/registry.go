package friends

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"
)

// maxTypoDistance bounds how far a search query may be from a name and
// still count as a match.
const maxTypoDistance = 2

// Registry is the ordered list of friends. It is owned by a single
// controller and is not safe for concurrent use.
type Registry struct {
	friends []Friend
}

func NewRegistry(seed ...Friend) *Registry {
	return &Registry{friends: slices.Clone(seed)}
}

// All returns a copy of the friends in insertion order.
func (r *Registry) All() []Friend {
	return slices.Clone(r.friends)
}

func (r *Registry) Len() int { return len(r.friends) }

func (r *Registry) Get(id string) (Friend, bool) {
	for _, f := range r.friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}

// Add appends f. Names and images are not required to be unique.
func (r *Registry) Add(f Friend) {
	r.friends = append(r.friends, f)
}

// Apply replaces the friend with the given id by a copy whose balance is
// increased by delta. The backing slice is rebuilt so slices previously
// returned by All keep their old values.
func (r *Registry) Apply(id string, delta decimal.Decimal) (Friend, bool) {
	idx := slices.IndexFunc(r.friends, func(f Friend) bool { return f.ID == id })
	if idx < 0 {
		return Friend{}, false
	}
	next := slices.Clone(r.friends)
	next[idx] = next[idx].WithBalance(delta)
	r.friends = next
	return next[idx], true
}

// Find returns the friend whose name best matches query. Prefix matches win
// over substring matches, which win over near misses by edit distance.
func (r *Registry) Find(query string) (Friend, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Friend{}, false
	}
	for _, f := range r.friends {
		if strings.HasPrefix(strings.ToLower(f.Name), q) {
			return f, true
		}
	}
	for _, f := range r.friends {
		if strings.Contains(strings.ToLower(f.Name), q) {
			return f, true
		}
	}
	best, bestDist := -1, maxTypoDistance+1
	for i, f := range r.friends {
		d := levenshtein.ComputeDistance(q, strings.ToLower(f.Name))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Friend{}, false
	}
	return r.friends[best], true
}

// Totals sums what friends owe the viewer and what the viewer owes friends.
// Both results are non-negative.
func (r *Registry) Totals() (owedToYou, youOwe decimal.Decimal) {
	owedToYou, youOwe = decimal.Zero, decimal.Zero
	for _, f := range r.friends {
		switch {
		case f.Owes():
			owedToYou = owedToYou.Add(f.Balance)
		case f.Owed():
			youOwe = youOwe.Add(f.Balance.Abs())
		}
	}
	return owedToYou, youOwe
}
