// Package webhook formats solve results as chat messages and posts them to webhooks.
package webhook

import (
	"fmt"
	"strings"

	"crosswarped.com/wordle"
)

// Compose renders a chat message for the puzzle of the given day. Guessed words and pool sizes are
// wrapped in spoiler tags.
func Compose(robotLine string, day int, trace wordle.Trace) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n**Wordle %d**\n", robotLine, day)
	for _, g := range trace {
		fmt.Fprintf(&sb, "%s ||`%s` (1 in %d)||\n", g.Feedback, g.Word, g.Pool)
	}
	return sb.String()
}
