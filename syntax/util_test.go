package syntax

import (
	"bufio"
	"fmt"
	"strings"

	"locus/ast"
)

func bufioReader(src string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(src))
}

// exprString renders an expression fully parenthesized.
func exprString(expr ast.ASTExpr) string {
	switch v := expr.(type) {
	case *ast.IntLit:
		return fmt.Sprint(v.Value)
	case *ast.FloatLit:
		return fmt.Sprint(v.Value)
	case *ast.BoolLit:
		return fmt.Sprint(v.Value)
	case *ast.Identifier:
		return v.Name
	case *ast.EnumAccess:
		return v.Enum + "." + v.Variant
	case *ast.BinaryOp:
		return fmt.Sprintf("(%s %s %s)", exprString(v.Lhs), v.Op, exprString(v.Rhs))
	case *ast.Assignment:
		return fmt.Sprintf("(%s = %s)", exprString(v.Target), exprString(v.Rhs))
	case *ast.Paren:
		return exprString(v.Inner)
	case *ast.Call:
		args := make([]string, len(v.Args))
		for i, arg := range v.Args {
			args[i] = exprString(arg)
		}

		return fmt.Sprintf("%s(%s)", exprString(v.Func), strings.Join(args, ", "))
	}

	return "?"
}
