// Package ast defines the syntax tree for the language: type specifiers,
// expressions, statements and declarations, with constructors and an
// s-expression printer.
package ast

import (
	"github.com/you-not-fish/lang/internal/intern"
	"github.com/you-not-fish/lang/internal/syntax"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 4 classes of nodes: Typespecs, Expressions, Statements, and
// Declarations. All nodes implement the Node interface. Each class is a
// closed sum type: the marker methods are unexported, so only this package
// can add variants.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() syntax.Pos // position of first character belonging to the node
	aNode()
}

// Typespec is the interface for all type specifier nodes.
type Typespec interface {
	Node
	aTypespec()
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos syntax.Pos
}

func (n *node) Pos() syntax.Pos { return n.pos }

// SetPos records where the node starts. Constructors leave it invalid.
func (n *node) SetPos(pos syntax.Pos) { n.pos = pos }

func (n *node) aNode() {}

type typespec struct{ node }

func (*typespec) aTypespec() {}

type expr struct{ node }

func (*expr) aExpr() {}

type stmt struct{ node }

func (*stmt) aStmt() {}

type decl struct{ node }

func (*decl) aDecl() {}

// ----------------------------------------------------------------------------
// Typespecs

// NameTypespec names a type: int, Vector.
type NameTypespec struct {
	typespec
	Name *intern.Name
}

// FuncTypespec is a function type: func(Params...) Ret.
type FuncTypespec struct {
	typespec
	Params []Typespec
	Ret    Typespec // nil for no result
}

// ArrayTypespec is an array type: Base[Len].
type ArrayTypespec struct {
	typespec
	Base Typespec
	Len  Expr // nil when the length is omitted
}

// PointerTypespec is a pointer type: Base*.
type PointerTypespec struct {
	typespec
	Base Typespec
}

// ----------------------------------------------------------------------------
// Expressions

// IntLit is an integer or character literal.
type IntLit struct {
	expr
	Value uint64
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	expr
	Value float64
}

// StringLit is a string literal. Value holds the decoded contents.
type StringLit struct {
	expr
	Value string
}

// NameExpr refers to a named entity.
type NameExpr struct {
	expr
	Name *intern.Name
}

// CastExpr converts X to Type.
type CastExpr struct {
	expr
	Type Typespec
	X    Expr
}

// CallExpr is a call: Fun(Args...).
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}

// IndexExpr is an index expression: X[Index].
type IndexExpr struct {
	expr
	X     Expr
	Index Expr
}

// FieldExpr selects a field: X.Name.
type FieldExpr struct {
	expr
	X    Expr
	Name *intern.Name
}

// CompoundLit is a compound literal: Type{Args...}.
type CompoundLit struct {
	expr
	Type Typespec // nil when inferred from context
	Args []Expr
}

// UnaryExpr applies a prefix operator.
type UnaryExpr struct {
	expr
	Op syntax.Kind
	X  Expr
}

// BinaryExpr applies an infix operator.
type BinaryExpr struct {
	expr
	Op   syntax.Kind
	X, Y Expr
}

// TernaryExpr is Cond ? Then : Else.
type TernaryExpr struct {
	expr
	Cond Expr
	Then Expr
	Else Expr
}

// ----------------------------------------------------------------------------
// Statements

// ReturnStmt is return [Result].
type ReturnStmt struct {
	stmt
	Result Expr // nil for bare return
}

type BreakStmt struct {
	stmt
}

type ContinueStmt struct {
	stmt
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	stmt
	Stmts []Stmt
}

// ElseIf is one "else if" clause of an IfStmt.
type ElseIf struct {
	Cond  Expr
	Block *BlockStmt
}

// IfStmt is if Cond Then {else if ...} [else Else].
type IfStmt struct {
	stmt
	Cond    Expr
	Then    *BlockStmt
	ElseIfs []ElseIf
	Else    *BlockStmt // nil if absent
}

// WhileStmt tests Cond before each iteration.
type WhileStmt struct {
	stmt
	Cond Expr
	Body *BlockStmt
}

// DoWhileStmt tests Cond after each iteration.
type DoWhileStmt struct {
	stmt
	Body *BlockStmt
	Cond Expr
}

// ForStmt is for (Init; Cond; Post) Body. Any of Init, Cond and Post may
// be nil.
type ForStmt struct {
	stmt
	Init *BlockStmt
	Cond Expr
	Post *BlockStmt
	Body *BlockStmt
}

// SwitchCase is one arm of a SwitchStmt. It is taken when the tag equals
// any of Exprs.
type SwitchCase struct {
	Exprs []Expr
	Block *BlockStmt
}

// SwitchStmt dispatches on X.
type SwitchStmt struct {
	stmt
	X     Expr
	Cases []SwitchCase
}

// AssignStmt is LHS Op RHS, where Op is '=' or a compound assignment.
type AssignStmt struct {
	stmt
	Op  syntax.Kind
	LHS Expr
	RHS Expr
}

// AutoAssignStmt declares Name with the type of RHS: Name := RHS.
type AutoAssignStmt struct {
	stmt
	Name *intern.Name
	RHS  Expr
}

// ExprStmt is an expression evaluated for its effects.
type ExprStmt struct {
	stmt
	X Expr
}

// ----------------------------------------------------------------------------
// Declarations

// EnumItem is one enumerator. Type is nil unless given explicitly.
type EnumItem struct {
	Name *intern.Name
	Type Typespec
}

// EnumDecl declares an enumeration.
type EnumDecl struct {
	decl
	Name  *intern.Name
	Items []EnumItem
}

// AggregateItem declares one or more fields sharing a type.
type AggregateItem struct {
	Names []*intern.Name
	Type  Typespec
}

// StructDecl declares a struct type.
type StructDecl struct {
	decl
	Name  *intern.Name
	Items []AggregateItem
}

// UnionDecl declares a union type.
type UnionDecl struct {
	decl
	Name  *intern.Name
	Items []AggregateItem
}

// VarDecl declares a variable. Either Type or Init may be nil.
type VarDecl struct {
	decl
	Name *intern.Name
	Type Typespec
	Init Expr
}

// ConstDecl declares a constant. Either Type or Init may be nil.
type ConstDecl struct {
	decl
	Name *intern.Name
	Type Typespec
	Init Expr
}

// TypedefDecl gives Type another name.
type TypedefDecl struct {
	decl
	Name *intern.Name
	Type Typespec
}

// FuncParam is a named function parameter.
type FuncParam struct {
	Name *intern.Name
	Type Typespec
}

// FuncDecl declares a function.
type FuncDecl struct {
	decl
	Name   *intern.Name
	Params []FuncParam
	Ret    Typespec // nil for no result
	Body   *BlockStmt
}

// isNil reports whether n is absent: either a nil interface or an interface
// holding a nil node pointer.
func isNil(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *NameTypespec:
		return n == nil
	case *FuncTypespec:
		return n == nil
	case *ArrayTypespec:
		return n == nil
	case *PointerTypespec:
		return n == nil
	case *IntLit:
		return n == nil
	case *FloatLit:
		return n == nil
	case *StringLit:
		return n == nil
	case *NameExpr:
		return n == nil
	case *CastExpr:
		return n == nil
	case *CallExpr:
		return n == nil
	case *IndexExpr:
		return n == nil
	case *FieldExpr:
		return n == nil
	case *CompoundLit:
		return n == nil
	case *UnaryExpr:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *TernaryExpr:
		return n == nil
	case *ReturnStmt:
		return n == nil
	case *BreakStmt:
		return n == nil
	case *ContinueStmt:
		return n == nil
	case *BlockStmt:
		return n == nil
	case *IfStmt:
		return n == nil
	case *WhileStmt:
		return n == nil
	case *DoWhileStmt:
		return n == nil
	case *ForStmt:
		return n == nil
	case *SwitchStmt:
		return n == nil
	case *AssignStmt:
		return n == nil
	case *AutoAssignStmt:
		return n == nil
	case *ExprStmt:
		return n == nil
	case *EnumDecl:
		return n == nil
	case *StructDecl:
		return n == nil
	case *UnionDecl:
		return n == nil
	case *VarDecl:
		return n == nil
	case *ConstDecl:
		return n == nil
	case *TypedefDecl:
		return n == nil
	case *FuncDecl:
		return n == nil
	}
	return false
}
