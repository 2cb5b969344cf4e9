package report

import (
	"html"
	"strings"
)

// HTML converts the markdown produced by Markdown into a standalone HTML
// page. It recognizes exactly the line shapes the renderer emits: "# ",
// "## ", "- " and blank lines; anything else becomes a paragraph. Bullet
// runs are wrapped in a single <ul>. All user-supplied text is escaped.
// This is deliberately not a general markup converter.
func HTML(markdown string, footer string) string {
	var b strings.Builder
	b.WriteString("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\"/>\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	b.WriteString("<title>Collaudo Report</title>\n")
	b.WriteString("<style>" +
		"body{font-family:system-ui,Segoe UI,Arial;max-width:900px;margin:24px auto;padding:0 16px;}" +
		"h1{font-size:28px;} h2{margin-top:22px;} ul{padding-left:18px;}" +
		"footer{margin-top:28px;color:#666;font-size:13px;}" +
		"</style>\n")
	b.WriteString("</head><body>\n")

	ulOpen := false
	closeList := func() {
		if ulOpen {
			b.WriteString("</ul>\n")
			ulOpen = false
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		switch {
		case strings.HasPrefix(line, "# "):
			closeList()
			b.WriteString("<h1>" + html.EscapeString(strings.TrimSpace(line[2:])) + "</h1>\n")
		case strings.HasPrefix(line, "## "):
			closeList()
			b.WriteString("<h2>" + html.EscapeString(strings.TrimSpace(line[3:])) + "</h2>\n")
		case strings.HasPrefix(line, "- "):
			if !ulOpen {
				b.WriteString("<ul>\n")
				ulOpen = true
			}
			b.WriteString("<li>" + html.EscapeString(strings.TrimSpace(line[2:])) + "</li>\n")
		case strings.TrimSpace(line) == "":
			closeList()
		default:
			closeList()
			b.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
		}
	}
	closeList()

	if footer != "" {
		b.WriteString("<footer>" + html.EscapeString(footer) + "</footer>\n")
	}

	b.WriteString("</body></html>\n")
	return b.String()
}
