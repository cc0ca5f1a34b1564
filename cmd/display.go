package cmd

import (
	"fmt"
	"strconv"

	"locus/common"
	"locus/report"
	"locus/walk"

	"github.com/pterm/pterm"
	"github.com/rickypai/natsort"
)

// displaySymbols displays the symbol table of an analyzed file.
func displaySymbols(reprPath string, res *walk.Result) {
	if len(res.Symbols) == 0 {
		return
	}

	fmt.Println()
	report.InfoStyleBG.Print("Symbols")
	report.InfoColorFG.Println(" " + reprPath)

	if err := pterm.DefaultTable.WithHasHeader().WithData(symbolRows(res)).Render(); err != nil {
		report.ReportStdError(reprPath, err)
	}

	fmt.Println()
}

// symbolRows builds the rows of the symbol table display.  Symbols are sorted
// naturally by name; symbols sharing a name stay in declaration order.
func symbolRows(res *walk.Result) pterm.TableData {
	byName := make(map[string][]*common.Symbol)
	var names []string

	for _, sym := range res.Symbols {
		if _, ok := byName[sym.Name]; !ok {
			names = append(names, sym.Name)
		}

		byName[sym.Name] = append(byName[sym.Name], sym)
	}

	natsort.Strings(names)

	rows := pterm.TableData{{"Name", "Kind", "Type", "Storage", "Depth", "Modes"}}
	for _, name := range names {
		for _, sym := range byName[name] {
			kind := "value"
			if sym.DefKind == common.DefKindFunc {
				kind = "function"
			}

			typeName := sym.TypeName
			if typeName == "" {
				typeName = sym.Type.Repr()
			}

			rows = append(rows, []string{
				sym.Name,
				kind,
				typeName,
				sym.Storage.String(),
				strconv.Itoa(sym.Depth),
				sym.Modes.String(),
			})
		}
	}

	return rows
}
