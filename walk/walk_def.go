package walk

import (
	"locus/ast"
	"locus/common"
	"locus/report"
	"locus/types"
)

// runtimeFuncs are the functions declared in the header of every module.
// User functions cannot reuse their names.
var runtimeFuncs = map[string]struct{}{
	"printf": {},
	"puts":   {},
	"malloc": {},
	"free":   {},
}

// PrintFunc is the name of the builtin print function.  It accepts one value
// of any type.
const PrintFunc = "print"

// declareBuiltins declares the builtin functions in the module scope.
func (w *Walker) declareBuiltins() {
	sym := &common.Symbol{
		Name:       PrintFunc,
		Type:       types.Void,
		DefKind:    common.DefKindFunc,
		Storage:    common.StorageRegister,
		ParamTypes: []types.Type{types.Unknown},
	}

	w.scopes.Declare(sym)
	w.res.Funcs[sym.Name] = sym
}

// collectEnums builds the enum table from the program's enum declarations.
func (w *Walker) collectEnums(prog *ast.Program) {
	declared := make(map[string]struct{})

	for _, def := range prog.Defs {
		ed, ok := def.(*ast.EnumDef)
		if !ok {
			continue
		}

		if _, ok := declared[ed.Name]; ok {
			w.recError(report.DuplicateDefinition, ed.Span(), "multiple enums named `%s`", ed.Name)
			continue
		}
		declared[ed.Name] = struct{}{}

		seen := make(map[string]struct{})
		for _, variant := range ed.Variants {
			if _, ok := seen[variant]; ok {
				w.recError(report.DuplicateDefinition, ed.Span(), "enum `%s` has multiple variants named `%s`", ed.Name, variant)
			}

			seen[variant] = struct{}{}
		}

		w.res.Enums.Define(common.NewEnum(ed.Name, ed.Variants))
		w.info("Enum declaration: %s", ed.Name)
	}
}

// declareFuncs declares every function of the program in the module scope so
// functions can be called before their definition.
func (w *Walker) declareFuncs(prog *ast.Program) {
	for _, fd := range prog.Funcs() {
		if _, ok := runtimeFuncs[fd.Name]; ok {
			w.recError(report.DuplicateDefinition, fd.NameSpan, "`%s` is reserved by the runtime", fd.Name)
			continue
		}

		if _, ok := w.res.Funcs[fd.Name]; ok {
			w.recError(report.DuplicateDefinition, fd.NameSpan, "multiple functions named `%s`", fd.Name)
			continue
		}

		rtType, rtEnum := w.resolveType(fd.ReturnType)

		sym := &common.Symbol{
			Name:     fd.Name,
			DefSpan:  fd.NameSpan,
			Type:     rtType,
			EnumName: rtEnum,
			DefKind:  common.DefKindFunc,
			Storage:  common.StorageRegister,
		}

		if fd.ReturnType != nil {
			sym.TypeName = fd.ReturnType.String()
		}

		for _, param := range fd.Params {
			ptype, _ := w.resolveType(param.Type)
			if ptype == types.Void {
				w.recError(report.UnresolvedType, param.Type.Span(), "parameter `%s` cannot be of type void", param.Name)
			}

			sym.ParamTypes = append(sym.ParamTypes, ptype)
		}

		w.scopes.Declare(sym)
		w.res.Funcs[sym.Name] = sym
		w.res.Symbols = append(w.res.Symbols, sym)
		w.funcDefs[fd] = sym
	}
}

// -----------------------------------------------------------------------------

// VisitEnumDef does nothing: enums are collected before any function is
// walked.
func (w *Walker) VisitEnumDef(ed *ast.EnumDef) {}

// VisitFuncDef walks a function definition.
func (w *Walker) VisitFuncDef(fd *ast.FuncDef) {
	defer w.catchErrors()

	w.info("Entering function: %s", fd.Name)

	w.scopes.EnterFunction()
	defer w.scopes.ExitFunction()

	// The labels of declared functions were already checked by declareFuncs:
	// only functions which failed to declare report their labels here.
	_, declared := w.funcDefs[fd]
	typeOf := w.resolveType
	if declared {
		typeOf = w.labelType
	}

	w.enclosingReturnType, _ = typeOf(fd.ReturnType)

	for _, param := range fd.Params {
		ptype, penum := typeOf(param.Type)

		w.defineLocal(&common.Symbol{
			Name:     param.Name,
			DefSpan:  param.Span(),
			Type:     ptype,
			TypeName: param.Type.String(),
			EnumName: penum,
			DefKind:  common.DefKindValue,
			Storage:  common.StorageRegister,
			Modes:    param.Modes,
		})

		w.info("Parameter: %s %s %s", param.Modes, param.Type, param.Name)
	}

	w.VisitBlock(fd.Body)

	w.info("Exiting function: %s", fd.Name)
}
