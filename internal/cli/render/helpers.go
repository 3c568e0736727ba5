package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-resolve/pkg/contract"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	labelStyle   = color.New(color.Faint)
	nameStyle    = color.New(color.FgYellow, color.Bold)
	addressStyle = color.New(color.FgWhite)
	headerStyle  = color.New(color.FgCyan, color.Bold)
	warnStyle    = color.New(color.FgYellow)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return warnStyle.Sprintf("⚠️  %s", message)
}

// FormatError formats an error with the error icon. Contract errors are
// prefixed with their kind.
func FormatError(err error) string {
	msg := err.Error()

	var cerr *contract.Error
	if errors.As(err, &cerr) {
		kind := cases.Title(language.English).String(cerr.Kind.String())
		return color.New(color.FgRed).Sprintf("❌ %s: %s", kind, msg)
	}

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

func styled(c *color.Color, s string) string {
	if s == "" {
		return ""
	}
	return c.Sprint(s)
}

// newTable returns a borderless table writer
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	return t
}

// renderFields renders label/value pairs as an aligned two column table
func renderFields(fields [][2]string) string {
	t := newTable()
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		t.AppendRow(table.Row{labelStyle.Sprint(f[0] + ":"), f[1]})
	}
	return t.Render()
}
