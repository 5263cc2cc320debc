package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	pkgtypes "github.com/vietdv277/asgcfg/pkg/types"
)

// PrintGroupTable prints Auto Scaling Group summaries in a styled box table
func PrintGroupTable(groups []pkgtypes.GroupSummary) {
	headers := []string{"Name", "Desired", "Min", "Max", "Launch Config", "AZs"}

	// Name and launch-config columns grow with content
	nameWidth := len(headers[0])
	lcWidth := len(headers[4])
	for _, g := range groups {
		if w := runewidth.StringWidth(g.Name); w > nameWidth {
			nameWidth = w
		}
		if w := runewidth.StringWidth(g.LaunchConfigName); w > lcWidth {
			lcWidth = w
		}
	}

	colWidths := []int{nameWidth, 8, 6, 6, lcWidth, 24}

	var sb strings.Builder

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(TopT))
		}
	}
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Header row
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, colWidths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")

	// Header separator
	sb.WriteString(BorderStyle.Render(LeftT))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(Cross))
		}
	}
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Data rows
	for _, g := range groups {
		sb.WriteString(BorderStyle.Render(Vertical))

		cell := " " + padRight(g.Name, colWidths[0]) + " "
		sb.WriteString(NameStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(fmt.Sprintf("%d", g.DesiredCapacity), colWidths[1]) + " "
		sb.WriteString(ValueStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(fmt.Sprintf("%d", g.MinSize), colWidths[2]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(fmt.Sprintf("%d", g.MaxSize), colWidths[3]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(formatOptional(g.LaunchConfigName), colWidths[4]) + " "
		sb.WriteString(ValueStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(strings.Join(g.AZs, ", "), colWidths[5]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	for i, w := range colWidths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(colWidths)-1 {
			sb.WriteString(BorderStyle.Render(BottomT))
		}
	}
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	fmt.Print(sb.String())

	// Summary
	fmt.Printf("  %d Auto Scaling Groups\n", len(groups))
}
