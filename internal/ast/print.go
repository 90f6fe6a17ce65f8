package ast

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/you-not-fish/lang/internal/intern"
)

// Print returns the s-expression form of n: every compound node is
// parenthesized with its operator or keyword first, as in (+ 1 2).
//
// Print panics if it reaches a nil node in a position that requires one.
func Print(n Node) string {
	var b strings.Builder
	p := &printer{w: &b}
	p.node(n)
	return b.String()
}

// Fprint writes the s-expression form of n to w and returns the first
// write error.
func Fprint(w io.Writer, n Node) error {
	p := &printer{w: w}
	p.node(n)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) str(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) name(n *intern.Name) { p.str(n.String()) }

// open writes "(head".
func (p *printer) open(head string) {
	p.str("(")
	p.str(head)
}

func (p *printer) close() { p.str(")") }

// sub writes a space and then n.
func (p *printer) sub(n Node) {
	p.str(" ")
	p.node(n)
}

// opt writes a space and then n, or "nil" when n is absent.
func (p *printer) opt(n Node, present bool) {
	if !present {
		p.str(" nil")
		return
	}
	p.sub(n)
}

func (p *printer) node(n Node) {
	if isNil(n) {
		panic(errors.AssertionFailedf("ast: cannot print nil node %T", n))
	}

	switch n := n.(type) {
	// Typespecs
	case *NameTypespec:
		p.name(n.Name)
	case *FuncTypespec:
		p.open("func (")
		for i, t := range n.Params {
			if i > 0 {
				p.str(" ")
			}
			p.node(t)
		}
		p.str(")")
		p.opt(n.Ret, n.Ret != nil)
		p.close()
	case *ArrayTypespec:
		p.open("array")
		p.sub(n.Base)
		if n.Len != nil {
			p.sub(n.Len)
		}
		p.close()
	case *PointerTypespec:
		p.open("ptr")
		p.sub(n.Base)
		p.close()

	// Expressions
	case *IntLit:
		p.str(strconv.FormatUint(n.Value, 10))
	case *FloatLit:
		p.str(strconv.FormatFloat(n.Value, 'f', 6, 64))
	case *StringLit:
		p.str(strconv.Quote(n.Value))
	case *NameExpr:
		p.name(n.Name)
	case *CastExpr:
		p.open("cast")
		p.sub(n.Type)
		p.sub(n.X)
		p.close()
	case *CallExpr:
		p.str("(")
		p.node(n.Fun)
		p.list(n.Args)
		p.close()
	case *IndexExpr:
		p.open("index")
		p.sub(n.X)
		p.sub(n.Index)
		p.close()
	case *FieldExpr:
		p.open("field")
		p.sub(n.X)
		p.str(" ")
		p.name(n.Name)
		p.close()
	case *CompoundLit:
		p.open("compound")
		if n.Type != nil {
			p.sub(n.Type)
		}
		p.list(n.Args)
		p.close()
	case *UnaryExpr:
		p.open(n.Op.String())
		p.sub(n.X)
		p.close()
	case *BinaryExpr:
		p.open(n.Op.String())
		p.sub(n.X)
		p.sub(n.Y)
		p.close()
	case *TernaryExpr:
		p.open("ternary")
		p.sub(n.Cond)
		p.sub(n.Then)
		p.sub(n.Else)
		p.close()

	// Statements
	case *ReturnStmt:
		p.open("return")
		if n.Result != nil {
			p.sub(n.Result)
		}
		p.close()
	case *BreakStmt:
		p.str("(break)")
	case *ContinueStmt:
		p.str("(continue)")
	case *BlockStmt:
		p.open("block")
		for _, s := range n.Stmts {
			p.sub(s)
		}
		p.close()
	case *IfStmt:
		p.open("if")
		p.sub(n.Cond)
		p.sub(n.Then)
		for _, ei := range n.ElseIfs {
			p.str(" ")
			p.open("elseif")
			p.sub(ei.Cond)
			p.sub(ei.Block)
			p.close()
		}
		if n.Else != nil {
			p.str(" ")
			p.open("else")
			p.sub(n.Else)
			p.close()
		}
		p.close()
	case *WhileStmt:
		p.open("while")
		p.sub(n.Cond)
		p.sub(n.Body)
		p.close()
	case *DoWhileStmt:
		p.open("do")
		p.sub(n.Body)
		p.sub(n.Cond)
		p.close()
	case *ForStmt:
		p.open("for")
		p.opt(n.Init, n.Init != nil)
		p.opt(n.Cond, n.Cond != nil)
		p.opt(n.Post, n.Post != nil)
		p.sub(n.Body)
		p.close()
	case *SwitchStmt:
		p.open("switch")
		p.sub(n.X)
		for _, c := range n.Cases {
			p.str(" ")
			p.open("case (")
			for i, x := range c.Exprs {
				if i > 0 {
					p.str(" ")
				}
				p.node(x)
			}
			p.str(")")
			p.sub(c.Block)
			p.close()
		}
		p.close()
	case *AssignStmt:
		p.open(n.Op.String())
		p.sub(n.LHS)
		p.sub(n.RHS)
		p.close()
	case *AutoAssignStmt:
		p.open(":= ")
		p.name(n.Name)
		p.sub(n.RHS)
		p.close()
	case *ExprStmt:
		p.node(n.X)

	// Declarations
	case *EnumDecl:
		p.open("enum ")
		p.name(n.Name)
		for _, it := range n.Items {
			p.str(" ")
			if it.Type == nil {
				p.name(it.Name)
				continue
			}
			p.str("(")
			p.name(it.Name)
			p.sub(it.Type)
			p.close()
		}
		p.close()
	case *StructDecl:
		p.aggregate("struct", n.Name, n.Items)
	case *UnionDecl:
		p.aggregate("union", n.Name, n.Items)
	case *VarDecl:
		p.open("var ")
		p.name(n.Name)
		p.opt(n.Type, n.Type != nil)
		p.opt(n.Init, n.Init != nil)
		p.close()
	case *ConstDecl:
		p.open("const ")
		p.name(n.Name)
		p.opt(n.Type, n.Type != nil)
		p.opt(n.Init, n.Init != nil)
		p.close()
	case *TypedefDecl:
		p.open("typedef ")
		p.name(n.Name)
		p.sub(n.Type)
		p.close()
	case *FuncDecl:
		p.open("func ")
		p.name(n.Name)
		p.str(" (")
		for i, param := range n.Params {
			if i > 0 {
				p.str(" ")
			}
			p.str("(")
			p.name(param.Name)
			p.sub(param.Type)
			p.close()
		}
		p.str(")")
		p.opt(n.Ret, n.Ret != nil)
		p.sub(n.Body)
		p.close()

	default:
		panic(errors.AssertionFailedf("ast: unexpected node %T", n))
	}
}

func (p *printer) list(xs []Expr) {
	for _, x := range xs {
		p.sub(x)
	}
}

func (p *printer) aggregate(keyword string, name *intern.Name, items []AggregateItem) {
	p.open(keyword + " ")
	p.name(name)
	for _, it := range items {
		p.str(" (")
		for i, n := range it.Names {
			if i > 0 {
				p.str(" ")
			}
			p.name(n)
		}
		p.sub(it.Type)
		p.close()
	}
	p.close()
}
