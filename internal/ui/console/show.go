package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/pkgq/internal/listing"
)

// RenderShow prints the package and its description, then either the top
// version or every version of the run.
func RenderShow(out io.Writer, s listing.Show, all bool) error {
	versions := s.Top()
	if all {
		versions = s.AllVersions()
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%s - %s\n", s.Package, description(s.Description))
	fmt.Fprintf(w, "    %s - %s\n", s.Package, versions)
	return w.Flush()
}

// RenderShowTable prints every entry of the run as a table row.
func RenderShowTable(out io.Writer, s listing.Show) error {
	_, err := io.WriteString(out, renderShowTable(s))
	return err
}

func renderShowTable(s listing.Show) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Version", "Input", "System", "License"})
	for _, r := range s.Run {
		if r.IsLatestAlias() || r.Version == nil {
			continue
		}
		tw.AppendRow(table.Row{*r.Version, r.Input, orDash(r.System), orDash(deref(r.License))})
	}
	return text.Bold.Sprint(s.Package) + " - " + description(s.Description) + "\n" + tw.Render() + "\n"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
