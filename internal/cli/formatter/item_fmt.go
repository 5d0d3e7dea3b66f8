package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bluecal/internal/domain"
)

// FormatItemList renders a styled item list inside a bordered box.
func FormatItemList(title string, items []domain.Item, now time.Time) string {
	if len(items) == 0 {
		return RenderBox(title, Dim("Nothing here."))
	}

	headers := []string{"ID", "TITLE", "TYPE", "WHEN", "STATUS"}
	rows := make([][]string, 0, len(items))

	for _, it := range items {
		rows = append(rows, []string{
			TruncID(it.ID),
			itemTitleCell(it),
			TypeBadge(it.Type),
			whenCell(it, now),
			CompletionPill(it.Completed),
		})
	}

	return RenderBox(title, RenderTable(headers, rows))
}

func itemTitleCell(it domain.Item) string {
	title := Bold(it.Title)
	if done, total := it.SubtaskProgress(); total > 0 {
		title += " " + Dim(fmt.Sprintf("(%d/%d)", done, total))
	}
	if badge := RepeatBadge(it.Repeat); badge != "" {
		title += " " + badge
	}
	return title
}

func whenCell(it domain.Item, now time.Time) string {
	if it.Date == "" && it.StartTime == "" {
		return Dim("backlog")
	}

	var parts []string
	if it.Date != "" {
		parts = append(parts, StyleFg.Render(HumanDate(it.Date, now)))
	}
	if it.Scheduled() {
		parts = append(parts, StyleYellow.Render(TimeRange(it.StartTime, it.Duration)))
	}
	if it.Rescheduled {
		parts = append(parts, StyleRed.Render("moved"))
	}
	return strings.Join(parts, " ")
}

// FormatItemDetail renders a single item as a metadata card.
func FormatItemDetail(it domain.Item, now time.Time) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(it.Title) + "\n")
	b.WriteString(TypeBadge(it.Type) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS"), CompletionPill(it.Completed)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID    "), TruncID(it.ID)))
	if it.Date != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DATE  "), StyleFg.Render(HumanDate(it.Date, now))))
	}
	if it.Scheduled() {
		b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("TIME  "),
			StyleYellow.Render(TimeRange(it.StartTime, it.Duration)), Dim("("+FormatMinutes(it.Duration)+")")))
	}
	if it.Repeat != domain.RepeatNone && it.Repeat != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("REPEAT"), string(it.Repeat)))
	}
	if it.Notes != "" {
		b.WriteString("\n" + StyleFg.Render(it.Notes) + "\n")
	}

	if len(it.Subtasks) > 0 {
		done, total := it.SubtaskProgress()
		b.WriteString("\n" + RenderProgress(float64(done)/float64(total), 16) + "\n")
		for _, st := range it.Subtasks {
			mark := StyleDim.Render("○")
			if st.Completed {
				mark = StyleGreen.Render("✔")
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", mark, st.Title))
		}
	}

	return RenderBox("", b.String())
}

// FormatInboxList renders the quick-capture notes with their index numbers.
func FormatInboxList(notes []domain.InboxNote, now time.Time) string {
	if len(notes) == 0 {
		return RenderBox("Inbox", Dim("Inbox is empty."))
	}

	var b strings.Builder
	for i, n := range notes {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleYellow.Render(fmt.Sprintf("[%d]", i)),
			StyleFg.Render(n.Text),
			Dim(HumanTimestamp(n.Timestamp, now))))
	}
	return RenderBox("Inbox", strings.TrimRight(b.String(), "\n"))
}

// FormatSettings renders the settings card.
func FormatSettings(cfg domain.Settings, theme string) string {
	onOff := func(v bool) string {
		if v {
			return StyleGreen.Render("on")
		}
		return StyleDim.Render("off")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("notify-start "), onOff(cfg.NotifyTaskStart)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("notify-missed"), onOff(cfg.NotifyMissedTasks)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("auto-resched "), onOff(cfg.AutoReschedule)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("frequency    "), StyleFg.Render(cfg.NotificationFrequency)))
	b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("theme        "), StylePurple.Render(theme)))
	return RenderBox("Settings", b.String())
}
