package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(n Node) bool

// Walk traverses an AST in depth-first order, children in source order.
// Absent children, including typed nil pointers, are skipped.
func Walk(n Node, v Visitor) {
	if isNil(n) || !v(n) {
		return
	}

	switch n := n.(type) {
	// Typespecs
	case *FuncTypespec:
		for _, t := range n.Params {
			Walk(t, v)
		}
		Walk(n.Ret, v)
	case *ArrayTypespec:
		Walk(n.Base, v)
		Walk(n.Len, v)
	case *PointerTypespec:
		Walk(n.Base, v)

	// Expressions
	case *CastExpr:
		Walk(n.Type, v)
		Walk(n.X, v)
	case *CallExpr:
		Walk(n.Fun, v)
		walkExprs(n.Args, v)
	case *IndexExpr:
		Walk(n.X, v)
		Walk(n.Index, v)
	case *FieldExpr:
		Walk(n.X, v)
	case *CompoundLit:
		Walk(n.Type, v)
		walkExprs(n.Args, v)
	case *UnaryExpr:
		Walk(n.X, v)
	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)
	case *TernaryExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	// Statements
	case *ReturnStmt:
		Walk(n.Result, v)
	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		for _, ei := range n.ElseIfs {
			Walk(ei.Cond, v)
			Walk(ei.Block, v)
		}
		Walk(n.Else, v)
	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *DoWhileStmt:
		Walk(n.Body, v)
		Walk(n.Cond, v)
	case *ForStmt:
		Walk(n.Init, v)
		Walk(n.Cond, v)
		Walk(n.Post, v)
		Walk(n.Body, v)
	case *SwitchStmt:
		Walk(n.X, v)
		for _, c := range n.Cases {
			walkExprs(c.Exprs, v)
			Walk(c.Block, v)
		}
	case *AssignStmt:
		Walk(n.LHS, v)
		Walk(n.RHS, v)
	case *AutoAssignStmt:
		Walk(n.RHS, v)
	case *ExprStmt:
		Walk(n.X, v)

	// Declarations
	case *EnumDecl:
		for _, it := range n.Items {
			Walk(it.Type, v)
		}
	case *StructDecl:
		walkAggregate(n.Items, v)
	case *UnionDecl:
		walkAggregate(n.Items, v)
	case *VarDecl:
		Walk(n.Type, v)
		Walk(n.Init, v)
	case *ConstDecl:
		Walk(n.Type, v)
		Walk(n.Init, v)
	case *TypedefDecl:
		Walk(n.Type, v)
	case *FuncDecl:
		for _, p := range n.Params {
			Walk(p.Type, v)
		}
		Walk(n.Ret, v)
		Walk(n.Body, v)

	// Leaf nodes: NameTypespec, IntLit, FloatLit, StringLit, NameExpr,
	// BreakStmt, ContinueStmt
	}
}

func walkExprs(xs []Expr, v Visitor) {
	for _, x := range xs {
		Walk(x, v)
	}
}

func walkAggregate(items []AggregateItem, v Visitor) {
	for _, it := range items {
		Walk(it.Type, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(n Node, f func(Node) bool) {
	Walk(n, Visitor(f))
}
