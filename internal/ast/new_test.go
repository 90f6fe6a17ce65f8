package ast

import (
	goast "go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Every exported constructor carries a doc comment naming it.
func TestConstructorsDocumented(t *testing.T) {
	f, err := parser.ParseFile(token.NewFileSet(), "new.go", nil, parser.ParseComments)
	require.NoError(t, err)

	n := 0
	for _, d := range f.Decls {
		fn, ok := d.(*goast.FuncDecl)
		if !ok || !fn.Name.IsExported() {
			continue
		}
		n++
		require.NotNil(t, fn.Doc, "%s has no doc comment", fn.Name.Name)
		require.True(t, strings.HasPrefix(fn.Doc.Text(), fn.Name.Name+" "),
			"doc comment of %s should start with its name", fn.Name.Name)
	}
	require.Equal(t, 35, n)
}
