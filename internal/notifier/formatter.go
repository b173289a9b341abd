package notifier

import (
	"fmt"
	"html"
	"strings"

	"MetalTracker/internal/model"
)

var sourceLabel = map[model.Source]string{
	model.SourceLive:    "live",
	model.SourceHistory: "last close",
	model.SourceNone:    "unavailable",
}

// FormatPriceReport formats a snapshot into a Telegram HTML message.
func FormatPriceReport(snap model.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("💰 <b>Precious Metal Prices</b> | %s\n\n", snap.BuiltAt.Format("2006-01-02 15:04")))
	b.WriteString("USD per gram\n")
	for _, q := range snap.Quotes {
		b.WriteString(fmt.Sprintf("%s: $%.2f (%s)\n", q.Metal, q.PerGram, sourceLabel[q.Source]))
	}
	if snap.LiveReason != "" {
		b.WriteString(fmt.Sprintf("\n⚠️ live prices unavailable: %s\n", html.EscapeString(snap.LiveReason)))
	}
	return b.String()
}
