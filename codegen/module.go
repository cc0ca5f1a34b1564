package codegen

import (
	"bufio"
	"io"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
)

// Default target parameters of generated modules.
const (
	DefaultTargetTriple = "x86_64-pc-linux-gnu"
	DefaultDataLayout   = "e-m:e-p270:32:32-p271:32:32-p272:64:64-i64:64-f80:128-n8:16:32:64-S128"
)

// HeaderComment is the first line of every written module.
const HeaderComment = "; Generated LLVM IR for Locus program"

// Options configures the header of generated modules.
type Options struct {
	SourceFilename string
	TargetTriple   string
	DataLayout     string
}

// DefaultOptions returns the options for the default target.
func DefaultOptions() Options {
	return Options{
		TargetTriple: DefaultTargetTriple,
		DataLayout:   DefaultDataLayout,
	}
}

// NewModule creates a module holding the fixed header: the target parameters
// and the declarations of the runtime functions.
func NewModule(opts Options) *ir.Module {
	mod := ir.NewModule()
	mod.SourceFilename = opts.SourceFilename
	mod.TargetTriple = opts.TargetTriple
	mod.DataLayout = opts.DataLayout

	printf := mod.NewFunc("printf", lltypes.I32, ir.NewParam("", lltypes.I8Ptr))
	printf.Sig.Variadic = true

	mod.NewFunc("puts", lltypes.I32, ir.NewParam("", lltypes.I8Ptr))

	malloc := mod.NewFunc("malloc", lltypes.I8Ptr, ir.NewParam("", lltypes.I64))
	malloc.ReturnAttrs = append(malloc.ReturnAttrs, enum.ReturnAttrNoAlias)

	mod.NewFunc("free", lltypes.Void, ir.NewParam("", lltypes.I8Ptr))

	return mod
}

// WriteModule writes the textual IR of a module preceded by the header
// comment.
func WriteModule(w io.Writer, mod *ir.Module) error {
	bw := bufio.NewWriter(w)

	if _, err := io.WriteString(bw, HeaderComment+"\n"); err != nil {
		return err
	}

	if _, err := mod.WriteTo(bw); err != nil {
		return err
	}

	return bw.Flush()
}
