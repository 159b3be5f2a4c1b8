package form

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rekanban/rekanban/internal/core/styles"
)

// ToggleFunc is invoked when the user toggles an option. It returns the
// new checked state for the option, letting the owner veto or mirror the
// toggle into domain state.
type ToggleFunc func(option string, checked bool) bool

// MultiSelectField is a multi-select form field with checkbox toggles.
type MultiSelectField struct {
	list     list.Model
	options  []string
	checked  map[int]bool
	onToggle ToggleFunc
	label_   string
	focused  bool
}

// multiSelectDelegate renders items with checkbox state.
type multiSelectDelegate struct {
	checked *map[int]bool
}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	isHighlighted := index == m.Index()

	check := "[ ] "
	if (*d.checked)[item.index] {
		check = "[x] "
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if isHighlighted {
		style = styles.SelectFieldItemSelectedStyle
		cursor = "> "
	}

	_, _ = io.WriteString(w, cursor+style.Render(check+item.label))
}

// NewMultiSelectFormField creates a multi-select field from static options.
func NewMultiSelectFormField(label string, options []string) *MultiSelectField {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	const maxVisible = 8
	height := max(min(len(options), maxVisible), 1)

	checked := make(map[int]bool)
	delegate := multiSelectDelegate{checked: &checked}

	l := list.New(items, delegate, 60, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(options) > maxVisible)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = "/ "
	l.FilterInput.PromptStyle = styles.TextPrimaryStyle
	l.FilterInput.Cursor.Style = styles.TextPrimaryStyle

	return &MultiSelectField{
		list:    l,
		options: options,
		checked: checked,
		label_:  label,
	}
}

// OnToggle registers a callback invoked whenever an option is toggled.
func (f *MultiSelectField) OnToggle(fn ToggleFunc) {
	f.onToggle = fn
}

// SetChecked sets the checked state of an option by value without firing
// the toggle callback. Unknown options are ignored.
func (f *MultiSelectField) SetChecked(option string, checked bool) {
	for i, opt := range f.options {
		if opt == option {
			f.checked[i] = checked
			return
		}
	}
}

func (f *MultiSelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == " " && !f.list.SettingFilter() {
		f.toggleCurrent()
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *MultiSelectField) toggleCurrent() {
	item := f.list.SelectedItem()
	si, ok := item.(selectItem)
	if !ok {
		return
	}

	next := !f.checked[si.index]
	if f.onToggle != nil {
		next = f.onToggle(f.options[si.index], next)
	}
	f.checked[si.index] = next
}

func (f *MultiSelectField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label_)

	var content string
	if f.list.SettingFilter() {
		content = lipgloss.JoinVertical(lipgloss.Left,
			title,
			f.list.FilterInput.View(),
			f.list.View(),
		)
	} else {
		content = lipgloss.JoinVertical(lipgloss.Left, title, f.list.View())
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *MultiSelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *MultiSelectField) Blur() {
	f.focused = false
}

func (f *MultiSelectField) Focused() bool { return f.focused }
func (f *MultiSelectField) Label() string { return f.label_ }

// Value returns the selected options as []string.
func (f *MultiSelectField) Value() any {
	var selected []string
	for i, opt := range f.options {
		if f.checked[i] {
			selected = append(selected, opt)
		}
	}
	return selected
}

// IsFiltering returns whether the list is currently filtering.
func (f *MultiSelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}
