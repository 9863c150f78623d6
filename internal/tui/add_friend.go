package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/splitbill/internal/friends"
)

const (
	addFieldName = iota
	addFieldImage
	addFieldCount
)

// addFriendForm owns only its two field values. The controller appends the
// friend it returns from submit.
type addFriendForm struct {
	name         textinput.Model
	image        textinput.Model
	defaultImage string
	field        int
}

func newAddFriendForm(defaultImage string) addFriendForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "name"
	name.CharLimit = 64

	image := textinput.New()
	image.Prompt = ""
	image.CharLimit = 256
	image.SetValue(defaultImage)

	return addFriendForm{name: name, image: image, defaultImage: defaultImage}
}

func (f *addFriendForm) input(i int) *textinput.Model {
	if i == addFieldImage {
		return &f.image
	}
	return &f.name
}

func (f *addFriendForm) focus() tea.Cmd {
	f.blur()
	return f.input(f.field).Focus()
}

func (f *addFriendForm) blur() {
	f.name.Blur()
	f.image.Blur()
}

func (f *addFriendForm) move(step int) tea.Cmd {
	f.field = (f.field + step + addFieldCount) % addFieldCount
	return f.focus()
}

func (f *addFriendForm) update(msg tea.Msg) tea.Cmd {
	in := f.input(f.field)
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

// submit builds the new friend from the fields as typed. With an empty name
// or image it does nothing and leaves the fields alone.
func (f *addFriendForm) submit() (friends.Friend, bool) {
	name, image := f.name.Value(), f.image.Value()
	if name == "" || image == "" {
		return friends.Friend{}, false
	}
	fr := friends.New(name, image)
	f.name.SetValue("")
	f.image.SetValue(f.defaultImage)
	return fr, true
}

func (f addFriendForm) view(focused bool) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render("⭐ Friend name"),
		f.name.View(),
		labelStyle.Render("⭐ Friend image URL"),
		f.image.View(),
		buttonStyle.Render("Add"),
	)
	return pane(focused).Render(body)
}
