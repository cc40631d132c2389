package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/justlist/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	tabSeparator = " │ "
	footerHint   = "←/→ group  ↑/↓ move  enter launch  esc clear  q quit (empty filter)"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	if header := m.groupTabs(); header != "" {
		lines = append(lines, styledLine{text: header, raw: true})
	}
	lines = append(lines, m.itemLines()...)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerHint, style: styles.Footer})
	}
	// Reserve 2 rows for the bottom bar (error/status + prompt).
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottomLines := []styledLine{
		statusLine,
		{text: m.filterPrompt(), raw: true},
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// groupTabs renders every group label with the active one highlighted and
// its visible/total item count.
func (m *Model) groupTabs() string {
	groups := m.selection.Groups()
	if len(groups) == 0 {
		return ""
	}
	active := m.selection.ActiveIndex()
	parts := make([]string, len(groups))
	for i, g := range groups {
		label := displayLabel(g.Label)
		if label == "" {
			label = fmt.Sprintf("group %d", i+1)
		}
		style := styles.Tab
		if i == active {
			style = styles.ActiveTab
			label = fmt.Sprintf("%s %s", label, m.counter(g))
		}
		parts[i] = renderStyled(style, " "+label+" ")
	}
	return strings.Join(parts, renderStyled(styles.TabSeparator, tabSeparator))
}

func (m *Model) counter(g catalog.Group) string {
	return fmt.Sprintf("%d/%d", m.selection.View().Len(), len(g.Items))
}

func (m *Model) itemLines() []styledLine {
	if _, ok := m.selection.ActiveGroup(); !ok {
		return []styledLine{{text: "(no groups)", style: styles.Info}}
	}
	m.syncViewport()
	view := m.selection.View()
	if view.Len() == 0 {
		msg := "(no entries)"
		if f := m.selection.Filter(); f != "" {
			msg = fmt.Sprintf("No matches for %q", f)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	items := view.Items
	start := 0
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(items) > maxItems {
		start = m.selection.Offset()
		if start+maxItems > len(items) {
			start = len(items) - maxItems
		}
		if start < 0 {
			start = 0
		}
		items = items[start : start+maxItems]
	}
	cursor := m.selection.Cursor()
	lines := make([]styledLine, 0, len(items))
	for i, item := range items {
		lines = append(lines, m.buildItemLine(item.Label, start+i == cursor, m.width))
	}
	return lines
}

// buildItemLine constructs a single styledLine for an item.
// width is the target column width; when > 0 the text is padded so that
// the selected item's background spans the full container.
func (m *Model) buildItemLine(label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + displayLabel(label)
	if width > 0 {
		if pad := width - ansi.StringWidth(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

// displayLabel strips escape sequences and flattens control characters so a
// label always occupies a single row.
func displayLabel(label string) string {
	label = ansi.Strip(label)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, label)
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if len(m.selection.Groups()) > 0 {
		used++ // group tabs
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if ansi.StringWidth(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width terminal cells, marking the cut with an
// ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return ansi.Truncate(text, 1, "")
	}
	return ansi.Truncate(text, width, "…")
}
