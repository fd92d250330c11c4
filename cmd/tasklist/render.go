package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	models "tasklist/internal/domain/models/tasks"
	tasksSvc "tasklist/internal/domain/services/tasks"
	"tasklist/internal/seed"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mediumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	bodyCell   = lipgloss.NewStyle().Padding(0, 1)
)

// output prints v as indented JSON with --json, or calls human otherwise
func output(w io.Writer, v any, human func(io.Writer) error) error {
	if jsonOutput {
		return writeJSON(w, v)
	}
	return human(w)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
}

func statusLabel(s models.Status) string {
	switch s {
	case models.StatusDone:
		return doneStyle.Render(s.String())
	case models.StatusInProgress:
		return progressStyle.Render(s.String())
	default:
		return s.String()
	}
}

func priorityLabel(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return highStyle.Render(p.String())
	case models.PriorityMedium:
		return mediumStyle.Render(p.String())
	default:
		return p.String()
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func summaryRows(t *table.Table, items []tasksSvc.ItemSummary) {
	for _, item := range items {
		t.Row(strconv.FormatInt(item.ID, 10), item.Title, statusLabel(item.Status), priorityLabel(item.Priority))
	}
}

func renderLists(w io.Writer, lists []tasksSvc.ListResponse) error {
	if len(lists) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No lists yet."))
		return err
	}

	t := newTable("ID", "Title", "Items", "Done")
	for _, l := range lists {
		done := 0
		for _, item := range l.Items {
			if item.Status == models.StatusDone {
				done++
			}
		}
		t.Row(strconv.FormatInt(l.ID, 10), l.Title, strconv.Itoa(l.ItemCount), strconv.Itoa(done))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderList(w io.Writer, list *tasksSvc.ListResponse) error {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(list.Title), mutedStyle.Render(fmt.Sprintf("#%d", list.ID)))
	if list.Description != "" {
		fmt.Fprintln(w, list.Description)
	}
	if list.ItemCount == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No items."))
		return err
	}

	t := newTable("ID", "Title", "Status", "Priority")
	summaryRows(t, list.Items)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderPage(w io.Writer, page *tasksSvc.PaginatedListResponse) error {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(page.Title), mutedStyle.Render(fmt.Sprintf("#%d", page.ID)))
	if page.Description != "" {
		fmt.Fprintln(w, page.Description)
	}

	if len(page.Items) > 0 {
		t := newTable("ID", "Title", "Status", "Priority")
		summaryRows(t, page.Items)
		fmt.Fprintln(w, t.String())
	}

	_, err := fmt.Fprintln(w, mutedStyle.Render(pageFooter(page)))
	return err
}

func pageFooter(page *tasksSvc.PaginatedListResponse) string {
	footer := fmt.Sprintf("page %d of %d, %d items", page.PageNumber, page.TotalPages, page.TotalItemCount)
	switch {
	case page.HasPreviousPage && page.HasNextPage:
		footer += " (more before and after)"
	case page.HasNextPage:
		footer += " (more after)"
	case page.HasPreviousPage:
		footer += " (more before)"
	}
	return footer
}

func renderItems(w io.Writer, items []tasksSvc.ItemResponse) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No items."))
		return err
	}

	t := newTable("ID", "List", "Title", "Type", "Status", "Priority", "Completed")
	for _, item := range items {
		t.Row(
			strconv.FormatInt(item.ID, 10),
			item.ListTitle,
			item.Title,
			item.Type,
			statusLabel(item.Status),
			priorityLabel(item.Priority),
			formatTime(item.CompletedAt),
		)
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderItem(w io.Writer, item *tasksSvc.ItemResponse) error {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render(item.Title), mutedStyle.Render(fmt.Sprintf("#%d in %s", item.ID, item.ListTitle)))
	if item.Description != "" {
		fmt.Fprintln(w, item.Description)
	}

	t := newTable("Field", "Value").
		Row("Type", item.Type).
		Row("Status", statusLabel(item.Status)).
		Row("Priority", priorityLabel(item.Priority)).
		Row("Created", formatTime(&item.CreatedAt)).
		Row("Completed", formatTime(item.CompletedAt))
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderDashboard(w io.Writer, result *tasksSvc.DashboardResult) error {
	if !result.HasData {
		_, err := fmt.Fprintln(w, mutedStyle.Render("No items yet, nothing to summarize."))
		return err
	}

	s := result.Summary
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("Dashboard"),
		mutedStyle.Render(fmt.Sprintf("%d items in %d lists", s.TotalItemCount, s.ListCount)))

	byStatus := newTable("Status", "Items").
		Row(statusLabel(models.StatusNotStarted), strconv.Itoa(s.NotStartedCount)).
		Row(statusLabel(models.StatusInProgress), strconv.Itoa(s.InProgressCount)).
		Row(statusLabel(models.StatusDone), strconv.Itoa(s.DoneCount))
	byPriority := newTable("Priority", "Items").
		Row(priorityLabel(models.PriorityLow), strconv.Itoa(s.LowPriorityCount)).
		Row(priorityLabel(models.PriorityMedium), strconv.Itoa(s.MediumPriorityCount)).
		Row(priorityLabel(models.PriorityHigh), strconv.Itoa(s.HighPriorityCount))

	_, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, byStatus.String(), "  ", byPriority.String()))
	return err
}

func renderSeedResult(w io.Writer, result *seed.Result) error {
	if result.Skipped {
		_, err := fmt.Fprintf(w, "Owner %s already has lists, nothing seeded.\n", result.OwnerID)
		return err
	}
	_, err := fmt.Fprintf(w, "Seeded %d lists with %d items for owner %s\n", result.Lists, result.Items, titleStyle.Render(result.OwnerID))
	return err
}

func renderDeleted(w io.Writer, resource string, id int64, deleted bool) error {
	if jsonOutput {
		return writeJSON(w, map[string]any{"id": id, "deleted": deleted})
	}
	if !deleted {
		_, err := fmt.Fprintf(w, "No %s %d.\n", resource, id)
		return err
	}
	_, err := fmt.Fprintf(w, "Deleted %s %d.\n", resource, id)
	return err
}
