package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/pterm/pterm"
)

// FragmentRows returns one row per fragment: position, name, files,
// plugins and rule count.
func FragmentRows(fragments []types.RuleFragment) [][]string {
	rows := make([][]string, 0, len(fragments))
	for i, f := range fragments {
		files := strings.Join(f.Files, ", ")
		if f.IsGlobalIgnore() {
			files = fmt.Sprintf("(ignores %d globs)", len(f.Ignores))
		} else if files == "" {
			files = "*"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Name,
			files,
			strings.Join(f.Plugins, ", "),
			strconv.Itoa(len(f.Rules)),
		})
	}
	return rows
}

// WriteFragmentTable writes fragments as a table. color false strips
// styling.
func WriteFragmentTable(w io.Writer, fragments []types.RuleFragment, color bool) error {
	if len(fragments) == 0 {
		msg := "No fragments"
		if color {
			msg = MutedStyle.Render(msg)
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}

	data := pterm.TableData{{"#", "Name", "Files", "Plugins", "Rules"}}
	data = append(data, FragmentRows(fragments)...)

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if !color {
		table = pterm.RemoveColorFromString(table)
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
