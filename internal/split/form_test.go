package split

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDeltaYouPaid(t *testing.T) {
	f := Form{Payer: PayerYou}
	f.SetBill(d("100"))
	require.True(t, f.SetExpense(d("40")))

	delta, ok := f.Delta()
	require.True(t, ok)
	require.Equal(t, "60", delta.String())
	require.Equal(t, "60", f.FriendExpense().String())
}

func TestDeltaFriendPaid(t *testing.T) {
	f := Form{Payer: PayerFriend}
	f.SetBill(d("100"))
	require.True(t, f.SetExpense(d("40")))

	delta, ok := f.Delta()
	require.True(t, ok)
	require.Equal(t, "-40", delta.String())
}

func TestDeltaGuardsZeroFields(t *testing.T) {
	tests := []struct {
		name string
		form Form
	}{
		{"empty", Form{}},
		{"no expense", Form{Bill: d("50")}},
		{"no bill", Form{Expense: d("5"), Payer: PayerFriend}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.form.Delta()
			require.False(t, ok)
		})
	}
}

func TestSetExpenseAboveBillKeepsPrevious(t *testing.T) {
	f := Form{}
	f.SetBill(d("100"))
	require.True(t, f.SetExpense(d("40")))
	require.False(t, f.SetExpense(d("140")))
	require.Equal(t, "40", f.Expense.String())

	require.True(t, f.SetExpense(d("100")), "expense equal to the bill is allowed")
	require.Equal(t, "0", f.FriendExpense().String())
}

func TestLoweringBillKeepsExpense(t *testing.T) {
	f := Form{}
	f.SetBill(d("100"))
	f.SetExpense(d("40"))
	f.SetBill(d("30"))
	require.Equal(t, "40", f.Expense.String())
	require.Equal(t, "-10", f.FriendExpense().String())
}

func TestPayerLabels(t *testing.T) {
	require.Equal(t, "You", PayerYou.Label("Sarah"))
	require.Equal(t, "Sarah", PayerFriend.Label("Sarah"))
	require.Equal(t, PayerFriend, PayerYou.Other())
	require.Equal(t, PayerYou, PayerFriend.Other())
}

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount("")
	require.NoError(t, err)
	require.True(t, v.IsZero())

	v, err = ParseAmount(" 12.50 ")
	require.NoError(t, err)
	require.Equal(t, "12.5", v.String())

	_, err = ParseAmount("12a")
	require.Error(t, err)
}

func TestParseAmountPartialInput(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{".", "0"},
		{"-", "0"},
		{"-.", "0"},
		{".5", "0.5"},
		{"5.", "5"},
		{"-3", "-3"},
		{"-.5", "-0.5"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseAmount(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, v.String())
		})
	}
}
