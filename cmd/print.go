package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"golang.org/x/term"
)

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal the raw markdown is printed instead, so reports stay pipeable.
func printMarkdown(md string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// markdownToHTML converts a markdown report to a standalone HTML document.
func markdownToHTML(title, md string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("converting %q to HTML: %w", title, err)
	}
	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n", title)
	doc.Write(body.Bytes())
	fmt.Fprint(&doc, "</body>\n</html>\n")
	return doc.Bytes(), nil
}
