package controller

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mole-wink/logmend/internal/model"
)

// fileItem is one row of the summary list.
type fileItem struct {
	path    string
	count   int
	changed bool
}

func (f fileItem) FilterValue() string {
	return f.path
}

// summaryDelegate renders fileItem rows.
type summaryDelegate struct{}

func (d summaryDelegate) Height() int  { return 1 }
func (d summaryDelegate) Spacing() int { return 0 }
func (d summaryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d summaryDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, countStyle lipgloss.Style

	width := lm.Width() - 10 // Subtract count width (6) + marker (2) + spacing (2)

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = pathStyle.
			Width(6).
			Align(lipgloss.Right)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
	}

	marker := "  "
	if file.changed {
		marker = " *"
	}

	line := fmt.Sprintf("%s%s  %s",
		countStyle.Render(fmt.Sprintf("%d", file.count)),
		marker,
		pathStyle.Render(truncateToWidth(file.path, width)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0
	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// summaryModel is the Bubble Tea model for the repair summary.
type summaryModel struct {
	fileList   list.Model
	mode       string
	total      int
	totalFiles int
	width      int
	height     int
}

func newSummaryModel(report m.Report) summaryModel {
	files := make([]m.FileReport, len(report.Files))
	copy(files, report.Files)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	items := make([]list.Item, 0, len(files))
	for _, file := range files {
		items = append(items, fileItem{
			path:    string(file.Path),
			count:   len(file.Findings),
			changed: file.Changed,
		})
	}

	fileList := list.New(items, summaryDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return summaryModel{
		fileList:   fileList,
		mode:       report.Mode,
		total:      report.TotalFindings(),
		totalFiles: len(files),
	}
}

// needsPagination reports whether the list exceeds the current terminal
// height and warrants an interactive program.
func (sm summaryModel) needsPagination() bool {
	if sm.height == 0 {
		return false
	}

	// Title, summary, footer, border and padding take nine rows.
	return sm.totalFiles+9 > sm.height
}

func (sm summaryModel) Init() tea.Cmd {
	return nil
}

func (sm summaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.width = msg.Width
		sm.height = msg.Height
		sm.fileList.SetWidth(sm.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return sm, tea.Quit
		default:
			sm.fileList, cmd = sm.fileList.Update(msg)
			return sm, cmd
		}
	}

	return sm, cmd
}

func (sm summaryModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🩹 Logmend Repair Summary")

	label := "Findings"
	if sm.mode == m.ReportModeFix {
		label = "Repairs"
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"%s: %s   Files: %s",
		label,
		accentStyle.Render(fmt.Sprintf("%d", sm.total)),
		accentStyle.Render(fmt.Sprintf("%d", sm.totalFiles)),
	))

	table := sm.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(sm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (sm summaryModel) renderTable() string {
	listHeight := sm.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := sm.width - 6
	if listWidth < 20 {
		listWidth = 20
	}

	sm.fileList.SetHeight(listHeight)
	sm.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Count", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			sm.fileList.View(),
		),
	)
}
