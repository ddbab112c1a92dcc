package tui

import (
	"strconv"
	"strings"
)

// picker cycles through a fixed list of string options with left/right.
type picker struct {
	options []string
	idx     int
}

// newPicker preselects value when it is one of the options, otherwise the
// first option stays selected.
func newPicker(options []string, value string) picker {
	p := picker{options: options}
	for i, opt := range options {
		if opt == value {
			p.idx = i
			break
		}
	}
	return p
}

func (p *picker) next() {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx + 1) % len(p.options)
}

func (p *picker) prev() {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx - 1 + len(p.options)) % len(p.options)
}

func (p picker) value() string {
	if len(p.options) == 0 {
		return ""
	}
	return p.options[p.idx]
}

func (p picker) view() string {
	return "< " + p.value() + " >"
}

// intPicker is a picker over numeric options, e.g. session durations.
type intPicker struct {
	options []int
	idx     int
}

func newIntPicker(options []int, value int) intPicker {
	p := intPicker{options: options}
	for i, opt := range options {
		if opt == value {
			p.idx = i
			break
		}
	}
	return p
}

func (p *intPicker) next() {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx + 1) % len(p.options)
}

func (p *intPicker) prev() {
	if len(p.options) == 0 {
		return
	}
	p.idx = (p.idx - 1 + len(p.options)) % len(p.options)
}

func (p intPicker) value() int {
	if len(p.options) == 0 {
		return 0
	}
	return p.options[p.idx]
}

func (p intPicker) view() string {
	return "< " + strconv.Itoa(p.value()) + " >"
}

// multiSelect toggles any number of options on and off. The cursor moves
// with left/right while the owning row is selected.
type multiSelect struct {
	options  []string
	selected map[int]bool
	cursor   int
}

func newMultiSelect(options []string) multiSelect {
	return multiSelect{options: options, selected: make(map[int]bool)}
}

func (m *multiSelect) next() {
	if m.cursor < len(m.options)-1 {
		m.cursor++
	}
}

func (m *multiSelect) prev() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *multiSelect) toggle() {
	m.selected[m.cursor] = !m.selected[m.cursor]
}

// values returns the checked options in list order.
func (m multiSelect) values() []string {
	var out []string
	for i, opt := range m.options {
		if m.selected[i] {
			out = append(out, opt)
		}
	}
	return out
}

func (m multiSelect) view(active bool) string {
	var b strings.Builder
	for i, opt := range m.options {
		if i > 0 {
			b.WriteString("  ")
		}
		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}
		if active && i == m.cursor {
			b.WriteString(">" + mark + " " + opt)
		} else {
			b.WriteString(" " + mark + " " + opt)
		}
	}
	return b.String()
}
