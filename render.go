package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerInfoStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorBarStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorSurface0).
			Padding(0, 2)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true)

	expendedStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	unexpendedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	priceCellStyle  = lipgloss.NewStyle().Foreground(colorPeach)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)

	fieldLabelStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	fieldActiveStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	suggestStyle     = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)

	searchPromptStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	statLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	statValueStyle = lipgloss.NewStyle().Foreground(colorPeach)
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if !m.ready {
		return statusStyle.Render(m.status)
	}

	base := m.renderBase()
	statusLine := m.renderStatus()
	footer := m.renderFooter(m.footerBindings())
	view := m.placeWithFooter(base, statusLine, footer)

	switch m.screen {
	case screenInput:
		return m.composeModal(view, m.renderEntryModal())
	case screenEdit:
		return m.composeModal(view, m.renderEditModal())
	}
	return view
}

func (m model) footerBindings() []key.Binding {
	switch m.screen {
	case screenInput, screenEdit:
		return m.inputKeys.ShortHelp()
	case screenQuery:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return m.keys.ShortHelp()
}

func (m model) renderBase() string {
	sections := []string{
		m.renderHeader(),
		m.renderSearchBar(),
		m.renderSection("Purchases", m.renderTable()),
		m.renderSection("Statistics", m.renderStats()),
	}
	nonEmpty := sections[:0]
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, "\n")
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m model) renderHeader() string {
	name := headerAppStyle.Render(appName)
	info := fmt.Sprintf("sort: %s", m.sortKey.label())
	if m.searchQuery != "" {
		info += fmt.Sprintf("  ·  filter: %q", m.searchQuery)
	}
	content := name + "  " + headerInfoStyle.Render(info)
	if m.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(m.width).Render(content)
}

func (m model) renderSearchBar() string {
	if m.screen != screenQuery {
		return ""
	}
	return searchPromptStyle.Render(" / ") + m.searchQuery + cursorStyle.Render("▌")
}

func (m model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sepStyle := lipgloss.NewStyle().Foreground(colorSurface2)
	separator := sepStyle.Render(strings.Repeat("─", contentWidth))
	return listBoxStyle.Width(m.sectionWidth()).Render(header + "\n" + separator + "\n" + content)
}

func (m model) sectionWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

func (m model) sectionContentWidth() int {
	// Border and padding take two cells per side.
	return m.sectionWidth() - 4
}

func (m model) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)
	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) renderStatus() string {
	flat := strings.ReplaceAll(m.status, "\n", " ")
	style := statusBarStyle
	if m.statusErr {
		style = errorBarStyle
	}
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Pad every line to full width to prevent ghosting from previous frames.
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func (m model) composeModal(base, modalContent string) string {
	modal := modalStyle.Render(modalContent)
	if m.height == 0 || m.width == 0 {
		return base + "\n\n" + modal
	}
	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	return centerOverlay(base, modal, m.width, targetHeight)
}

// ---------------------------------------------------------------------------
// Table
// ---------------------------------------------------------------------------

func (m model) renderTable() string {
	if len(m.rows) == 0 {
		if m.searchQuery != "" {
			return statusStyle.Render("No purchases match the filter.")
		}
		return statusStyle.Render("No purchases recorded yet. Press i to add one.")
	}

	width := m.sectionContentWidth()
	cursorWidth := 2
	priceWidth := 10
	dateWidth := 12
	ingWidth := width - priceWidth - 2*dateWidth - cursorWidth - 8
	if ingWidth < 8 {
		ingWidth = 8
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s",
		ingWidth, "Ingredient", priceWidth, "Price", dateWidth, "Purchased", dateWidth, "Expended")
	lines := []string{tableHeaderStyle.Render(header)}

	visible := m.pageSize()
	end := m.topIndex + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.topIndex; i < end; i++ {
		row := m.rows[i]
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		ing := padRight(truncate(row.ingredient, ingWidth), ingWidth)
		price := priceCellStyle.Render(padRight(formatCents(row.priceCents), priceWidth))
		purchased := padRight(row.purchaseDate, dateWidth)
		expended := unexpendedStyle.Render(padRight("in stock", dateWidth))
		if row.expendedDate.Valid {
			expended = expendedStyle.Render(padRight(row.expendedDate.String, dateWidth))
		}
		lines = append(lines, prefix+ing+"  "+price+"  "+purchased+"  "+expended)
	}

	if total := len(m.rows); total > 0 && visible > 0 {
		endIdx := m.topIndex + visible
		if endIdx > total {
			endIdx = total
		}
		lines = append(lines, scrollStyle.Render(
			fmt.Sprintf("── showing %d-%d of %d ──", m.topIndex+1, endIdx, total)))
	}

	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Statistics
// ---------------------------------------------------------------------------

func (m model) renderStats() string {
	now := m.now()
	monthly := monthlySwipeEstimate(now, m.cfg)
	swipes, semesterCost := semesterSwipeEstimate(now, m.cfg)
	spend := monthSpendCents(m.rows, now)

	statLine := func(label, value string) string {
		return statLabelStyle.Render(fmt.Sprintf("%-22s", label)) + " " + statValueStyle.Render(value)
	}
	lines := []string{
		statLine("Month spend", formatCents(spend)),
		statLine("Swipe cost (month)", fmt.Sprintf("$%.2f", monthly)),
		statLine("Swipes (semester)", fmt.Sprintf("%d ($%.2f)", swipes, semesterCost)),
	}

	if chart := renderSpendChart(m.rows, m.sectionContentWidth(), m.cfg.ChartDays, now); chart != "" {
		lines = append(lines, "", chart)
	}
	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Modals
// ---------------------------------------------------------------------------

func (m model) renderEntryModal() string {
	title := titleStyle.Render("New purchase")
	hint := statusStyle.Render("dates: t = today, y = yesterday")

	lines := []string{title, ""}
	lines = append(lines, m.renderField(fieldPurchaseDate, m.purchaseInput))
	lines = append(lines, m.renderField(fieldIngredient, m.ingredientInput))
	lines = append(lines, m.renderField(fieldPrice, m.priceInput))
	lines = append(lines, m.renderField(fieldExpended, m.expendedInput))

	if m.field == fieldIngredient {
		if s := suggestIngredient(m.ingredientInput, m.ingredients); s != "" {
			lines = append(lines, suggestStyle.Render(fmt.Sprintf("similar: %s", s)))
		}
	}

	lines = append(lines, "", hint)
	return strings.Join(lines, "\n")
}

func (m model) renderEditModal() string {
	title := titleStyle.Render("Edit expended date")
	sel, ok := m.selectedPurchase()
	if !ok {
		return title
	}
	lines := []string{
		title,
		"",
		statusStyle.Render(truncate(sel.ingredient, 40)),
		m.renderField(fieldExpended, m.expendedInput),
		"",
		statusStyle.Render("empty clears · t = today, y = yesterday"),
	}
	return strings.Join(lines, "\n")
}

func (m model) renderField(f field, buf string) string {
	label := fmt.Sprintf("%-14s", f.label())
	if m.field == f {
		return fieldActiveStyle.Render(label) + " " + buf + cursorStyle.Render("▌")
	}
	return fieldLabelStyle.Render(label) + " " + buf
}
