package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	ErrorStyleBG.Print("Internal Compiler Error")
	ErrorColorFG.Println(" " + message)
	InfoColorFG.Println("This error was not supposed to happen: it is likely a bug in the compiler.")
	fmt.Println()
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + message)
	fmt.Println()
}

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label, absPath, reprPath string, span *TextSpan, message string) {
	style, color := ErrorStyleBG, ErrorColorFG
	if label == "warning" {
		style, color = WarnStyleBG, WarnColorFG
	}

	if span == nil {
		fmt.Printf("%s: ", reprPath)
	} else {
		fmt.Printf("%s:%d:%d: ", reprPath, span.StartLine+1, span.StartCol+1)
	}

	style.Print(label)
	color.Println(" " + message)
	fmt.Println()

	if span != nil && absPath != "" {
		displaySourceText(absPath, span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Printf("%s: ", reprPath)
	ErrorStyleBG.Print("error")
	ErrorColorFG.Println(" " + err.Error())
	fmt.Println()
}

// displayInfo displays an informational message.
func displayInfo(tag, message string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + message)
}

// phaseSpinner is the spinner of the phase being displayed, if any.
var phaseSpinner *pterm.SpinnerPrinter
var currentPhase string
var phaseStartTime time.Time

const maxPhaseLength = len("Generating")

// displayBeginPhase displays the beginning of a compilation phase.
func displayBeginPhase(phase string) {
	currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	phaseSpinner.Start(phaseText)
	phaseStartTime = time.Now()
}

// displayEndPhase displays the end of the current compilation phase.
func displayEndPhase(success bool) {
	if phaseSpinner == nil {
		return
	}

	padding := strings.Repeat(" ", maxPhaseLength-len(currentPhase)+2)
	if success {
		phaseSpinner.Success(currentPhase+padding, fmt.Sprintf("(%.3fs)", time.Since(phaseStartTime).Seconds()))
	} else {
		phaseSpinner.Fail(currentPhase + padding)
	}

	phaseSpinner = nil
}

// displayFinished displays the compilation finished message.
func displayFinished(success bool, errorCount, warningCount int) {
	if success {
		SuccessColorFG.Print("All done! ")
	} else {
		ErrorColorFG.Print("Oh no! ")
	}

	fmt.Print("(")

	switch errorCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Print(" errors, ")
	case 1:
		ErrorColorFG.Print(1)
		fmt.Print(" error, ")
	default:
		ErrorColorFG.Print(errorCount)
		fmt.Print(" errors, ")
	}

	switch warningCount {
	case 0:
		SuccessColorFG.Print(0)
		fmt.Println(" warnings)")
	case 1:
		WarnColorFG.Print(1)
		fmt.Println(" warning)")
	default:
		WarnColorFG.Print(warningCount)
		fmt.Println(" warnings)")
	}
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(absPath string, span *TextSpan) {
	file, err := os.Open(absPath)
	if err != nil {
		displayICE(fmt.Sprintf("failed to open file %s for reporting: %s", absPath, err))
		os.Exit(-1)
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if err := sc.Err(); err != nil {
		displayICE(fmt.Sprintf("failed to read file %s for reporting: %s", absPath, err))
		os.Exit(-1)
	}

	if len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		InfoColorFG.Print(fmt.Sprintf(lineNumFmtStr, i+span.StartLine+1))
		fmt.Println(line[minIndent:])

		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// Underlining on every line but the first continues from the previous
		// line, so only the first line skips up to the start column.
		carretPrefixCount := 0
		if i == 0 {
			carretPrefixCount = span.StartCol - minIndent
		}

		// Only the last line stops short of the end of the line.
		carretSuffixCount := 0
		if i == len(lines)-1 {
			carretSuffixCount = len(line) - span.EndCol
		}

		carretCount := len(line) - carretSuffixCount - carretPrefixCount - minIndent
		if carretPrefixCount < 0 {
			carretPrefixCount = 0
		}
		if carretCount < 1 {
			carretCount = 1
		}

		fmt.Print(strings.Repeat(" ", carretPrefixCount))
		ErrorColorFG.Println(strings.Repeat("^", carretCount))
	}

	fmt.Println()
}
