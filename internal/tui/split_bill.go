package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jask/splitbill/internal/friends"
	"github.com/jask/splitbill/internal/split"
)

const (
	splitFieldBill = iota
	splitFieldExpense
	splitFieldPayer
	splitFieldCount
)

// splitForm is the panel for one active friend. It is rebuilt whenever the
// active friend changes, so its state never leaks between friends.
type splitForm struct {
	friend  friends.Friend
	form    split.Form
	bill    textinput.Model
	expense textinput.Model
	field   int
}

func newSplitForm(f friends.Friend) *splitForm {
	bill := textinput.New()
	bill.Prompt = ""
	bill.Placeholder = "0"
	bill.CharLimit = 16

	expense := textinput.New()
	expense.Prompt = ""
	expense.Placeholder = "0"
	expense.CharLimit = 16

	return &splitForm{friend: f, bill: bill, expense: expense}
}

func (s *splitForm) focus() tea.Cmd {
	s.blur()
	switch s.field {
	case splitFieldBill:
		return s.bill.Focus()
	case splitFieldExpense:
		return s.expense.Focus()
	}
	return nil
}

func (s *splitForm) blur() {
	s.bill.Blur()
	s.expense.Blur()
}

func (s *splitForm) move(step int) tea.Cmd {
	s.field = (s.field + step + splitFieldCount) % splitFieldCount
	return s.focus()
}

func (s *splitForm) togglePayer() {
	s.form.Payer = s.form.Payer.Other()
}

// update feeds a key to the focused amount field. Edits that do not parse,
// and expenses above the bill, are undone so the field keeps its old value.
func (s *splitForm) update(msg tea.Msg) tea.Cmd {
	switch s.field {
	case splitFieldBill:
		prev := s.bill.Value()
		var cmd tea.Cmd
		s.bill, cmd = s.bill.Update(msg)
		v, err := split.ParseAmount(s.bill.Value())
		if err != nil {
			s.bill.SetValue(prev)
			return cmd
		}
		s.form.SetBill(v)
		return cmd
	case splitFieldExpense:
		prev := s.expense.Value()
		var cmd tea.Cmd
		s.expense, cmd = s.expense.Update(msg)
		v, err := split.ParseAmount(s.expense.Value())
		if err != nil || !s.form.SetExpense(v) {
			s.expense.SetValue(prev)
		}
		return cmd
	}
	return nil
}

func (s *splitForm) submit() (decimal.Decimal, bool) {
	return s.form.Delta()
}

func (s *splitForm) view(focused bool, currency string) string {
	name := s.friend.Name
	payer := s.form.Payer.Label(name)
	if focused && s.field == splitFieldPayer {
		payer = cursorStyle.Render("◀ " + payer + " ▶")
	} else {
		payer = "  " + payer
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("Split a bill with %s", name)),
		mutedStyle.Render(s.friend.Image),
		"",
		labelStyle.Render("💰 Bill value"),
		s.bill.View(),
		labelStyle.Render("🧍 Your expenses"),
		s.expense.View(),
		labelStyle.Render(fmt.Sprintf("👫 %s's expenses", name)),
		mutedStyle.Render(s.form.FriendExpense().String()+currency),
		labelStyle.Render("🤑 Who is paying the bill?"),
		payer,
		"",
		buttonStyle.Render("Split the bill"),
	)
	return pane(focused).Render(body)
}
