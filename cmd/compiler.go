package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"locus/ast"
	"locus/codegen"
	"locus/report"
	"locus/syntax"
	"locus/walk"

	"github.com/llir/llvm/ir"
	"github.com/rickypai/natsort"
)

// SourceFileExt is the extension of Locus source files.
const SourceFileExt = ".loc"

// sourceFile is a single compilation unit and the products of each phase of
// its compilation.
type sourceFile struct {
	// The absolute path to the file.
	absPath string

	// The path to the file displayed to the user.
	reprPath string

	// The path the generated IR is written to.
	outPath string

	prog *ast.Program
	res  *walk.Result
	mod  *ir.Module

	// The error produced by the last phase run on the file, if any.
	err error
}

// Compiler compiles Locus source files to LLVM IR.  Every file is an
// independent compilation unit: the files are processed concurrently, one
// goroutine per file, and everything is reported in the order the files were
// added.
type Compiler struct {
	// The build profile of the compilation.
	profile *BuildProfile

	// The files being compiled.
	files []*sourceFile
}

// NewCompiler creates a new compiler.
func NewCompiler(profile *BuildProfile) *Compiler {
	return &Compiler{profile: profile}
}

// AddSources adds the source file at path to the compilation.  If path is a
// directory, every source file of the directory is added in natural order.
func (c *Compiler) AddSources(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	finfo, err := os.Stat(absPath)
	if err != nil {
		return err
	}

	if !finfo.IsDir() {
		c.addFile(absPath)
		return nil
	}

	finfos, err := ioutil.ReadDir(absPath)
	if err != nil {
		return err
	}

	var names []string
	for _, finfo := range finfos {
		if !finfo.IsDir() && filepath.Ext(finfo.Name()) == SourceFileExt {
			names = append(names, finfo.Name())
		}
	}

	if len(names) == 0 {
		return fmt.Errorf("directory `%s` contains no source files", path)
	}

	natsort.Strings(names)
	for _, name := range names {
		c.addFile(filepath.Join(absPath, name))
	}

	return nil
}

// addFile adds a single source file to the compilation.
func (c *Compiler) addFile(absPath string) {
	reprPath := absPath
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, absPath); err == nil {
			reprPath = rel
		}
	}

	c.files = append(c.files, &sourceFile{
		absPath:  absPath,
		reprPath: reprPath,
		outPath:  outputPath(absPath, c.profile.OutputExt),
	})
}

// SetOutputPath overrides the output paths of the compilation.  If a single
// file is compiled, path is the output file; otherwise, it is the directory
// the output files are placed in.
func (c *Compiler) SetOutputPath(path string) {
	if len(c.files) == 1 {
		c.files[0].outPath = path
		return
	}

	for _, sf := range c.files {
		sf.outPath = filepath.Join(path, filepath.Base(outputPath(sf.absPath, c.profile.OutputExt)))
	}
}

// -----------------------------------------------------------------------------

// Check runs the parsing and analysis phases of the compiler.
func (c *Compiler) Check() bool {
	if !c.runPhase("Parsing", c.parseFile, c.reportParsed) {
		return false
	}

	return c.runPhase("Analyzing", c.analyzeFile, c.reportAnalyzed)
}

// Build runs every phase of the compiler.
func (c *Compiler) Build() bool {
	if !c.Check() {
		return false
	}

	if !c.runPhase("Generating", c.generateFile, c.reportError) {
		return false
	}

	return c.runPhase("Writing", c.writeFile, c.reportError)
}

// runPhase runs a phase of compilation on every file concurrently and then
// reports the outcome for each file in order.  It returns whether compilation
// should proceed.
func (c *Compiler) runPhase(name string, run, display func(sf *sourceFile)) bool {
	report.ReportBeginPhase(name)

	wg := &sync.WaitGroup{}
	for _, sf := range c.files {
		wg.Add(1)

		go func(sf *sourceFile) {
			defer wg.Done()
			run(sf)
		}(sf)
	}

	wg.Wait()

	success := true
	for _, sf := range c.files {
		if sf.err != nil || (sf.res != nil && sf.res.HasErrors()) {
			success = false
		}
	}

	report.ReportEndPhase(success)

	for _, sf := range c.files {
		display(sf)
	}

	return !report.AnyErrors()
}

// -----------------------------------------------------------------------------

// parseFile parses a source file.
func (c *Compiler) parseFile(sf *sourceFile) {
	file, err := os.Open(sf.absPath)
	if err != nil {
		sf.err = err
		return
	}
	defer file.Close()

	sf.prog, sf.err = syntax.Parse(bufio.NewReader(file))
}

// reportParsed reports the error a file failed to parse with.
func (c *Compiler) reportParsed(sf *sourceFile) {
	var lce *report.LocalCompileError
	if errors.As(sf.err, &lce) {
		report.ReportCompileError(sf.absPath, sf.reprPath, lce.Span, "%s", lce.Message)
	} else {
		c.reportError(sf)
	}
}

// analyzeFile semantically analyzes a parsed file.
func (c *Compiler) analyzeFile(sf *sourceFile) {
	sf.res = walk.Analyze(sf.prog, walk.Options{StrictMatch: c.profile.StrictMatch})
}

// reportAnalyzed reports the diagnostics and, at the verbose log level, the
// declaration trace and symbol table of an analyzed file.
func (c *Compiler) reportAnalyzed(sf *sourceFile) {
	if report.LogLevel() == report.LogLevelVerbose {
		for _, line := range sf.res.Info {
			report.ReportInfo("Info", "%s", line)
		}

		displaySymbols(sf.reprPath, sf.res)
	}

	for _, diag := range sf.res.Diagnostics {
		report.ReportDiagnostic(sf.absPath, sf.reprPath, diag)
	}
}

// generateFile generates the LLVM module of an analyzed file.
func (c *Compiler) generateFile(sf *sourceFile) {
	sf.mod, sf.err = codegen.Generate(sf.prog, sf.res, codegen.Options{
		SourceFilename: filepath.Base(sf.absPath),
		TargetTriple:   c.profile.TargetTriple,
		DataLayout:     c.profile.DataLayout,
	})
}

// writeFile writes the generated module of a file to its output path.
func (c *Compiler) writeFile(sf *sourceFile) {
	if err := os.MkdirAll(filepath.Dir(sf.outPath), os.ModePerm); err != nil {
		sf.err = err
		return
	}

	file, err := os.Create(sf.outPath)
	if err != nil {
		sf.err = err
		return
	}

	sf.err = codegen.WriteModule(file, sf.mod)

	if err := file.Close(); err != nil && sf.err == nil {
		sf.err = err
	}
}

// reportError reports the error the last phase failed on, if any.
func (c *Compiler) reportError(sf *sourceFile) {
	if sf.err != nil {
		report.ReportStdError(sf.reprPath, sf.err)
	}
}
