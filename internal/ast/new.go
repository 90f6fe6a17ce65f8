package ast

import (
	"slices"

	"github.com/you-not-fish/lang/internal/intern"
	"github.com/you-not-fish/lang/internal/syntax"
)

// Constructors do no validation beyond wiring their arguments into a node.
// List arguments are copied, so a node never shares a backing array with
// the caller.

// ----------------------------------------------------------------------------
// Typespecs

// NewNameTypespec returns a reference to a named type.
func NewNameTypespec(name *intern.Name) *NameTypespec {
	return &NameTypespec{Name: name}
}

// NewFuncTypespec returns a function type. params is copied; ret may be nil.
func NewFuncTypespec(params []Typespec, ret Typespec) *FuncTypespec {
	return &FuncTypespec{Params: slices.Clone(params), Ret: ret}
}

// NewArrayTypespec returns an array type. length may be nil.
func NewArrayTypespec(base Typespec, length Expr) *ArrayTypespec {
	return &ArrayTypespec{Base: base, Len: length}
}

// NewPointerTypespec returns a pointer to base.
func NewPointerTypespec(base Typespec) *PointerTypespec {
	return &PointerTypespec{Base: base}
}

// ----------------------------------------------------------------------------
// Expressions

// NewIntLit returns an integer literal.
func NewIntLit(v uint64) *IntLit { return &IntLit{Value: v} }

// NewFloatLit returns a floating-point literal.
func NewFloatLit(v float64) *FloatLit { return &FloatLit{Value: v} }

// NewStringLit returns a string literal holding the decoded value s.
func NewStringLit(s string) *StringLit { return &StringLit{Value: s} }

// NewNameExpr returns a reference to name.
func NewNameExpr(name *intern.Name) *NameExpr { return &NameExpr{Name: name} }

// NewCastExpr returns the conversion of x to typ.
func NewCastExpr(typ Typespec, x Expr) *CastExpr {
	return &CastExpr{Type: typ, X: x}
}

// NewCallExpr returns a call of fun. args is copied.
func NewCallExpr(fun Expr, args ...Expr) *CallExpr {
	return &CallExpr{Fun: fun, Args: slices.Clone(args)}
}

// NewIndexExpr returns x[index].
func NewIndexExpr(x, index Expr) *IndexExpr {
	return &IndexExpr{X: x, Index: index}
}

// NewFieldExpr returns the selector x.name.
func NewFieldExpr(x Expr, name *intern.Name) *FieldExpr {
	return &FieldExpr{X: x, Name: name}
}

// NewCompoundLit returns a compound literal. typ may be nil; args is copied.
func NewCompoundLit(typ Typespec, args ...Expr) *CompoundLit {
	return &CompoundLit{Type: typ, Args: slices.Clone(args)}
}

// NewUnaryExpr returns op applied to x, where op is a token kind such as
// '-' or syntax.Inc.
func NewUnaryExpr(op syntax.Kind, x Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, X: x}
}

// NewBinaryExpr returns x op y.
func NewBinaryExpr(op syntax.Kind, x, y Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, X: x, Y: y}
}

// NewTernaryExpr returns cond ? then : els.
func NewTernaryExpr(cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{Cond: cond, Then: then, Else: els}
}

// ----------------------------------------------------------------------------
// Statements

// NewReturnStmt returns a return statement. result may be nil.
func NewReturnStmt(result Expr) *ReturnStmt {
	return &ReturnStmt{Result: result}
}

// NewBreakStmt returns a break statement.
func NewBreakStmt() *BreakStmt { return &BreakStmt{} }

// NewContinueStmt returns a continue statement.
func NewContinueStmt() *ContinueStmt { return &ContinueStmt{} }

// NewBlockStmt returns a block of stmts. stmts is copied.
func NewBlockStmt(stmts ...Stmt) *BlockStmt {
	return &BlockStmt{Stmts: slices.Clone(stmts)}
}

// NewIfStmt returns an if statement. elseIfs is copied, with each arm's
// block shared; els may be nil.
func NewIfStmt(cond Expr, then *BlockStmt, elseIfs []ElseIf, els *BlockStmt) *IfStmt {
	return &IfStmt{Cond: cond, Then: then, ElseIfs: slices.Clone(elseIfs), Else: els}
}

// NewWhileStmt returns a while loop.
func NewWhileStmt(cond Expr, body *BlockStmt) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body}
}

// NewDoWhileStmt returns a do-while loop; body runs before cond is tested.
func NewDoWhileStmt(body *BlockStmt, cond Expr) *DoWhileStmt {
	return &DoWhileStmt{Body: body, Cond: cond}
}

// NewForStmt returns a for loop. init, cond and post may be nil.
func NewForStmt(init *BlockStmt, cond Expr, post, body *BlockStmt) *ForStmt {
	return &ForStmt{Init: init, Cond: cond, Post: post, Body: body}
}

// NewSwitchStmt returns a switch on x. Both cases and the Exprs of each
// case are copied; case blocks are shared.
func NewSwitchStmt(x Expr, cases ...SwitchCase) *SwitchStmt {
	cs := make([]SwitchCase, len(cases))
	for i, c := range cases {
		cs[i] = SwitchCase{Exprs: slices.Clone(c.Exprs), Block: c.Block}
	}
	return &SwitchStmt{X: x, Cases: cs}
}

// NewAssignStmt returns lhs op rhs, where op is '=' or a compound
// assignment kind such as syntax.AddAssign.
func NewAssignStmt(op syntax.Kind, lhs, rhs Expr) *AssignStmt {
	return &AssignStmt{Op: op, LHS: lhs, RHS: rhs}
}

// NewAutoAssignStmt returns name := rhs.
func NewAutoAssignStmt(name *intern.Name, rhs Expr) *AutoAssignStmt {
	return &AutoAssignStmt{Name: name, RHS: rhs}
}

// NewExprStmt wraps x as a statement.
func NewExprStmt(x Expr) *ExprStmt { return &ExprStmt{X: x} }

// ----------------------------------------------------------------------------
// Declarations

// NewEnumDecl returns an enum declaration. items is copied; an item Type
// may be nil.
func NewEnumDecl(name *intern.Name, items ...EnumItem) *EnumDecl {
	return &EnumDecl{Name: name, Items: slices.Clone(items)}
}

// NewStructDecl returns a struct declaration. items and the Names of each
// item are copied.
func NewStructDecl(name *intern.Name, items ...AggregateItem) *StructDecl {
	return &StructDecl{Name: name, Items: cloneAggregate(items)}
}

// NewUnionDecl is NewStructDecl for unions.
func NewUnionDecl(name *intern.Name, items ...AggregateItem) *UnionDecl {
	return &UnionDecl{Name: name, Items: cloneAggregate(items)}
}

func cloneAggregate(items []AggregateItem) []AggregateItem {
	out := make([]AggregateItem, len(items))
	for i, it := range items {
		out[i] = AggregateItem{Names: slices.Clone(it.Names), Type: it.Type}
	}
	return out
}

// NewVarDecl returns a variable declaration. typ or init may be nil.
func NewVarDecl(name *intern.Name, typ Typespec, init Expr) *VarDecl {
	return &VarDecl{Name: name, Type: typ, Init: init}
}

// NewConstDecl returns a constant declaration. typ or init may be nil.
func NewConstDecl(name *intern.Name, typ Typespec, init Expr) *ConstDecl {
	return &ConstDecl{Name: name, Type: typ, Init: init}
}

// NewTypedefDecl declares name as an alias for typ.
func NewTypedefDecl(name *intern.Name, typ Typespec) *TypedefDecl {
	return &TypedefDecl{Name: name, Type: typ}
}

// NewFuncDecl returns a function declaration. params is copied; ret may be nil.
func NewFuncDecl(name *intern.Name, params []FuncParam, ret Typespec, body *BlockStmt) *FuncDecl {
	return &FuncDecl{Name: name, Params: slices.Clone(params), Ret: ret, Body: body}
}
