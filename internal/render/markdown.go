package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jask/pospreview/internal/view"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
)

// Markdown writes root as CommonMark.
func Markdown(root view.Node) string {
	var b strings.Builder
	writeMarkdown(&b, root)
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Pretty styles Markdown for a terminal of the given width.
func Pretty(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("style markdown: %w", err)
	}
	return out, nil
}

func escape(s string) string {
	return escapeLeading(markdownEscaper.Replace(s))
}

// escapeLeading escapes a heading or list marker at the start of s so the
// text stays a paragraph or list item body when it begins a line.
func escapeLeading(s string) string {
	body := strings.TrimLeft(s, " ")
	lead := s[:len(s)-len(body)]
	if body == "" {
		return s
	}
	switch body[0] {
	case '#', '+', '-':
		return lead + `\` + body
	}
	digits := 0
	for digits < len(body) && digits < 9 && body[digits] >= '0' && body[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(body) && (body[digits] == '.' || body[digits] == ')') {
		return lead + body[:digits] + `\` + body[digits:]
	}
	return s
}

func writeMarkdown(b *strings.Builder, n view.Node) {
	switch n.Kind {
	case view.KindPage, view.KindRow:
		for _, c := range n.Children {
			writeMarkdown(b, c)
		}
	case view.KindHeader:
		for _, c := range n.Children {
			if c.Kind == view.KindLogo {
				writeMarkdown(b, c)
			}
		}
		fmt.Fprintf(b, "# %s\n\n", escape(n.Title))
		for _, c := range n.Children {
			if c.Kind != view.KindLogo {
				writeMarkdown(b, c)
			}
		}
	case view.KindLogo:
		fmt.Fprintf(b, "**( %s )**\n\n", escape(n.Text))
	case view.KindBanner:
		fmt.Fprintf(b, "> **%s %s**\n>\n> %s\n\n", n.Icon, escape(n.Title), escape(n.Text))
	case view.KindCard:
		fmt.Fprintf(b, "## %s\n\n", escape(n.Title))
		for _, c := range n.Children {
			writeMarkdown(b, c)
		}
	case view.KindBox:
		fmt.Fprintf(b, "### %s\n\n", escape(n.Title))
		for _, c := range n.Children {
			writeMarkdown(b, c)
		}
	case view.KindHeading:
		fmt.Fprintf(b, "#### %s\n\n", escape(n.Text))
	case view.KindText:
		if n.Text == "" {
			return
		}
		switch {
		case n.Style.Emphasis:
			fmt.Fprintf(b, "**%s**\n\n", escape(n.Text))
		case n.Style.Tone == view.ToneMuted:
			fmt.Fprintf(b, "*%s*\n\n", escape(n.Text))
		default:
			fmt.Fprintf(b, "%s\n\n", escape(n.Text))
		}
	case view.KindFooter:
		b.WriteString("---\n\n")
		for _, c := range n.Children {
			writeMarkdown(b, c)
		}
	case view.KindList, view.KindGrid:
		for _, c := range n.Children {
			fmt.Fprintf(b, "- %s\n", escape(c.Text))
		}
		b.WriteString("\n")
	case view.KindStatusList:
		for _, c := range n.Children {
			fmt.Fprintf(b, "- %s **%s**: %s\n", c.Icon, escape(c.Title), escape(c.Text))
		}
		b.WriteString("\n")
	case view.KindCode:
		b.WriteString("```sh\n")
		for _, c := range n.Children {
			b.WriteString(c.Text + "\n")
		}
		b.WriteString("```\n\n")
	case view.KindSteps:
		for _, c := range n.Children {
			fmt.Fprintf(b, "%s. %s\n", strconv.Itoa(c.Index), markdownRuns(c))
		}
		b.WriteString("\n")
	case view.KindNote:
		fmt.Fprintf(b, "> %s **%s** %s\n\n", n.Icon, escape(n.Title), markdownRuns(n))
	case view.KindButtons:
		labels := make([]string, len(n.Children))
		for i, c := range n.Children {
			label := strings.TrimSpace(string(c.Icon) + " " + escape(c.Text))
			if c.Style.Emphasis {
				label = "**" + label + "**"
			}
			labels[i] = label
		}
		b.WriteString(strings.Join(labels, " · ") + "\n\n")
	default:
		if s := markdownRuns(n); s != "" {
			b.WriteString(s + "\n\n")
		}
	}
}

func markdownRuns(n view.Node) string {
	if len(n.Children) == 0 {
		return escape(n.Text)
	}
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Kind {
		case view.KindCodeSpan:
			b.WriteString(codeSpan(c.Text))
		case view.KindLink:
			href := c.Href
			if strings.ContainsAny(href, " ()") {
				href = "<" + href + ">"
			}
			fmt.Fprintf(&b, "[%s](%s)", escape(c.Text), href)
		default:
			b.WriteString(escape(c.Text))
		}
	}
	return b.String()
}

// codeSpan fences s with more backticks than any run inside it.
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return fence + " " + s + " " + fence
	}
	return fence + s + fence
}
