package output

import (
	"fmt"
	"strings"
)

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Mark renders a check for ok and a dot otherwise.
func Mark(ok bool) string {
	if ok {
		return StyleSuccess.Render("✓")
	}
	return StyleMuted.Render("·")
}

// Field renders a label/value line for key/value listings.
func Field(label, value string) string {
	return fmt.Sprintf(" %s %s", StyleLabel.Render(label), value)
}
