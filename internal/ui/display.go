// Package ui renders genpr's terminal output and interactive prompts.
package ui

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 50

// Display writes styled messages to a terminal.
type Display struct {
	out io.Writer
	err io.Writer
}

// NewDisplay returns a Display writing normal output to out and errors to errOut.
func NewDisplay(out, errOut io.Writer) *Display {
	return &Display{out: out, err: errOut}
}

// Selection is what the user chose before generation.
type Selection struct {
	Type        string
	Title       string
	Ticket      string
	Explanation string
	Provider    string
}

// Welcome prints the banner.
func (d *Display) Welcome() {
	fmt.Fprintln(d.out, TitleStyle.Render("🧠 AI Pull Request Generator"))
}

// Options prints the user's selection.
func (d *Display) Options(s Selection) {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, HeadingStyle.Render("📋 Selected Options:"))
	d.detail("Type", s.Type, "")
	d.detail("Title", s.Title, "Auto-generated")
	d.detail("Ticket", s.Ticket, "None")
	d.detail("Explanation", s.Explanation, "None")
	d.detail("AI Provider", s.Provider, "None")
	fmt.Fprintln(d.out)
}

func (d *Display) detail(label, value, fallback string) {
	if value == "" {
		value = fallback
	}
	fmt.Fprintln(d.out, DetailStyle.Render(fmt.Sprintf("   %s: %s", label, value)))
}

// Progress prints a step that is under way.
func (d *Display) Progress(msg string) {
	fmt.Fprintln(d.out, WarnStyle.Render("⏳ "+msg))
}

// Result prints the generated description and where it was saved.
func (d *Display) Result(description, savedPath, provider string) {
	rule := strings.Repeat("─", ruleWidth)
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, SuccessStyle.Render("✅ PR Description Generated!"))
	fmt.Fprintln(d.out, DetailStyle.Render("   Provider: "+provider))
	fmt.Fprintln(d.out, DetailStyle.Render("   Saved to: "+savedPath))
	fmt.Fprintln(d.out, DetailStyle.Render("   Content:"))
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, rule)
	fmt.Fprintln(d.out, description)
	fmt.Fprintln(d.out, rule)
	fmt.Fprintln(d.out)
}

// Error prints err to the error writer.
func (d *Display) Error(err error) {
	fmt.Fprintln(d.err)
	fmt.Fprintln(d.err, ErrorStyle.Render("❌ Error:"))
	fmt.Fprintln(d.err, ErrorStyle.UnsetBold().Render(err.Error()))
	fmt.Fprintln(d.err)
}

// Success prints a confirmation.
func (d *Display) Success(msg string) {
	fmt.Fprintln(d.out, SuccessStyle.Render("✅ "+msg))
}

// Info prints a hint.
func (d *Display) Info(msg string) {
	fmt.Fprintln(d.out, InfoStyle.Render("💡 "+msg))
}

// Warn prints a warning.
func (d *Display) Warn(msg string) {
	fmt.Fprintln(d.out, WarnStyle.Render("⚠️  "+msg))
}

// Link prints a URL.
func (d *Display) Link(url string) {
	fmt.Fprintln(d.out, InfoStyle.Render("🔗 URL: "+url))
}

// Plain prints an unstyled line.
func (d *Display) Plain(msg string) {
	fmt.Fprintln(d.out, msg)
}
