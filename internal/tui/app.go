package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/jask/splitbill/internal/friends"
)

// App is the application controller. It owns the friend registry, the
// active friend and the add-friend panel flag; the forms report back to it.
type App struct {
	registry      *friends.Registry
	active        *friends.Friend
	showAddFriend bool

	addForm   addFriendForm
	splitForm *splitForm
	search    textinput.Model

	focus    focus
	cursor   int
	keys     keyMap
	status   string
	isErr    bool
	currency string
	avatar   string
	width    int
	height   int
	log      *slog.Logger
}

// focus is the region that receives key presses.
type focus int

const (
	focusList focus = iota
	focusAddFriend
	focusSplit
	focusSearch
)

// Options configures a new App.
type Options struct {
	Friends        []friends.Friend
	CurrencySymbol string
	AvatarBaseURL  string
	Logger         *slog.Logger
}

func New(opts Options) *App {
	if opts.AvatarBaseURL == "" {
		opts.AvatarBaseURL = friends.DefaultAvatarURL
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "friend name"
	search.CharLimit = 64

	return &App{
		registry: friends.NewRegistry(opts.Friends...),
		addForm:  newAddFriendForm(opts.AvatarBaseURL),
		search:   search,
		keys:     newKeyMap(),
		currency: opts.CurrencySymbol,
		avatar:   opts.AvatarBaseURL,
		width:    80,
		log:      opts.Logger,
	}
}

// Friends returns the current registry contents in display order.
func (a *App) Friends() []friends.Friend { return a.registry.All() }

// ActiveFriend returns the friend selected for a split, if any.
func (a *App) ActiveFriend() (friends.Friend, bool) {
	if a.active == nil {
		return friends.Friend{}, false
	}
	return *a.active, true
}

func (a *App) AddFriendPanelOpen() bool { return a.showAddFriend }

// SplitFormOpen reports whether the split-bill panel is shown.
func (a *App) SplitFormOpen() bool { return a.splitForm != nil }

// AddFriend appends f to the registry.
func (a *App) AddFriend(f friends.Friend) {
	a.registry.Add(f)
	a.log.Info("friend added", "id", f.ID, "name", f.Name)
	a.setStatus("Added " + f.Name)
}

// SelectFriend makes f the active friend, or clears the selection when f is
// already active. Either way the add-friend panel closes.
func (a *App) SelectFriend(f friends.Friend) {
	if isActive(f, a.active) {
		a.active = nil
		a.splitForm = nil
		a.log.Debug("friend deselected", "id", f.ID)
	} else {
		cp := f
		a.active = &cp
		a.splitForm = newSplitForm(cp)
		a.log.Debug("friend selected", "id", f.ID, "name", f.Name)
	}
	a.closeAddFriendPanel()
	a.focus = focusList
}

// ApplySplit adds delta to the active friend's balance and clears the
// selection. Without an active friend it does nothing.
func (a *App) ApplySplit(delta decimal.Decimal) {
	if a.active == nil {
		return
	}
	updated, ok := a.registry.Apply(a.active.ID, delta)
	if !ok {
		a.log.Warn("split for unknown friend", "id", a.active.ID)
		a.setError("friend not found")
	} else {
		sign := ""
		if delta.IsPositive() {
			sign = "+"
		}
		a.log.Info("split applied", "id", updated.ID, "name", updated.Name, "delta", delta.String(), "balance", updated.Balance.String())
		a.setStatus(fmt.Sprintf("Split applied: %s %s%s%s", updated.Name, sign, delta.String(), a.currency))
	}
	a.active = nil
	a.splitForm = nil
	a.focus = focusList
}

// ToggleAddFriendPanel shows or hides the add-friend panel. Selection is untouched.
func (a *App) ToggleAddFriendPanel() {
	if a.showAddFriend {
		a.closeAddFriendPanel()
		return
	}
	a.showAddFriend = true
}

func (a *App) closeAddFriendPanel() {
	a.showAddFriend = false
	a.addForm = newAddFriendForm(a.avatar)
	if a.focus == focusAddFriend {
		a.focus = focusList
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.isErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.isErr = true
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		switch a.focus {
		case focusAddFriend:
			return a, a.handleAddFriendKey(m)
		case focusSplit:
			return a, a.handleSplitKey(m)
		case focusSearch:
			return a, a.handleSearchKey(m)
		default:
			return a.handleListKey(m)
		}
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := a.registry.All()
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(list)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Select):
		if len(list) == 0 {
			return a, nil
		}
		a.SelectFriend(list[a.cursor])
		if a.splitForm != nil {
			a.focus = focusSplit
			return a, a.splitForm.focus()
		}
	case key.Matches(m, a.keys.AddFriend):
		a.ToggleAddFriendPanel()
		if a.showAddFriend {
			a.focus = focusAddFriend
			return a, a.addForm.focus()
		}
	case key.Matches(m, a.keys.Search):
		a.focus = focusSearch
		a.search.SetValue("")
		return a, a.search.Focus()
	case m.Type == tea.KeyTab:
		return a, a.cycleFocus()
	}
	return a, nil
}

// cycleFocus moves from the list into whichever panel is open.
func (a *App) cycleFocus() tea.Cmd {
	switch {
	case a.showAddFriend:
		a.focus = focusAddFriend
		return a.addForm.focus()
	case a.splitForm != nil:
		a.focus = focusSplit
		return a.splitForm.focus()
	}
	return nil
}

func (a *App) leaveForm() {
	a.addForm.blur()
	if a.splitForm != nil {
		a.splitForm.blur()
	}
	a.focus = focusList
}

func (a *App) handleAddFriendKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Back):
		a.leaveForm()
	case key.Matches(m, a.keys.Submit):
		f, ok := a.addForm.submit()
		if !ok {
			a.setError("Name and image URL are required")
			return nil
		}
		a.AddFriend(f)
		return a.addForm.focus()
	case m.Type == tea.KeyTab || m.Type == tea.KeyDown:
		return a.addForm.move(1)
	case m.Type == tea.KeyShiftTab || m.Type == tea.KeyUp:
		return a.addForm.move(-1)
	default:
		return a.addForm.update(m)
	}
	return nil
}

func (a *App) handleSplitKey(m tea.KeyMsg) tea.Cmd {
	s := a.splitForm
	if s == nil {
		a.focus = focusList
		return nil
	}
	switch {
	case key.Matches(m, a.keys.Back):
		a.leaveForm()
	case key.Matches(m, a.keys.Submit):
		delta, ok := s.submit()
		if !ok {
			a.setError("Enter the bill value and your expenses")
			return nil
		}
		a.ApplySplit(delta)
	case m.Type == tea.KeyTab || m.Type == tea.KeyDown:
		return s.move(1)
	case m.Type == tea.KeyShiftTab || m.Type == tea.KeyUp:
		return s.move(-1)
	case s.field == splitFieldPayer:
		if key.Matches(m, a.keys.Payer) {
			s.togglePayer()
		}
	default:
		return s.update(m)
	}
	return nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyEsc:
		a.search.Blur()
		a.focus = focusList
		return nil
	case tea.KeyEnter:
		query := a.search.Value()
		a.search.Blur()
		a.focus = focusList
		f, ok := a.registry.Find(query)
		if !ok {
			a.setError(fmt.Sprintf("No friend matches %q", strings.TrimSpace(query)))
			return nil
		}
		for i, cand := range a.registry.All() {
			if cand.ID == f.ID {
				a.cursor = i
				break
			}
		}
		a.setStatus("Found " + f.Name)
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	return cmd
}

func (a *App) View() string {
	sidebar := []string{
		titleStyle.Render("Friends"),
		renderTotals(a.registry, a.currency),
		"",
		renderFriendList(a.registry.All(), a.active, a.cursor, a.currency),
		"",
	}
	if a.showAddFriend {
		sidebar = append(sidebar, a.addForm.view(a.focus == focusAddFriend))
	}
	sidebar = append(sidebar, buttonStyle.Render(panelCaption(a.showAddFriend)))
	if a.focus == focusSearch {
		sidebar = append(sidebar, a.search.View())
	}
	left := pane(a.focus == focusList || a.focus == focusSearch).Render(lipgloss.JoinVertical(lipgloss.Left, sidebar...))

	body := left
	if a.splitForm != nil {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", a.splitForm.view(a.focus == focusSplit, a.currency))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		renderStatusBar(a.status, a.isErr, a.width),
		renderFooter(a.keys.helpFor(a.focus, a.showAddFriend), a.width),
	)
}
