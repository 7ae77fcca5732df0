package interp

import (
	"github.com/eantcal/nuexpreval/internal/errors"
)

// Node is one node of the compiled expression tree. Trees are
// immutable after construction; a parent owns its children.
type Node interface {
	// Eval computes the node's value against the context.
	Eval(ctx *Context) (Value, error)
	// Empty reports whether the node is the empty expression.
	Empty() bool
	// Name returns the identifier reachable through the node's
	// left/right spines, dot-concatenated. Only function dispatch
	// uses it.
	Name() string
	// Args returns the flattened list of operand subtrees.
	Args() []Node
}

// EmptyExpr is the empty expression. It evaluates to integer zero.
type EmptyExpr struct{}

// Eval returns integer zero.
func (e *EmptyExpr) Eval(*Context) (Value, error) {
	return NewInteger(0), nil
}

// Empty returns true.
func (e *EmptyExpr) Empty() bool { return true }

// Name returns the empty string.
func (e *EmptyExpr) Name() string { return "" }

// Args returns no arguments.
func (e *EmptyExpr) Args() []Node { return nil }

// ConstExpr is a literal constant.
type ConstExpr struct {
	value Value
}

// NewConst creates a constant node.
func NewConst(v Value) *ConstExpr {
	return &ConstExpr{value: v}
}

// Eval returns the constant.
func (e *ConstExpr) Eval(*Context) (Value, error) {
	return e.value, nil
}

// Empty returns false.
func (e *ConstExpr) Empty() bool { return false }

// Name returns the empty string: constants are anonymous.
func (e *ConstExpr) Name() string { return "" }

// Args returns the node itself as its only operand.
func (e *ConstExpr) Args() []Node { return []Node{e} }

// VarExpr is a variable reference by name.
type VarExpr struct {
	name string
}

// NewVar creates a variable reference.
func NewVar(name string) *VarExpr {
	return &VarExpr{name: name}
}

// Eval looks the name up in the context.
func (e *VarExpr) Eval(ctx *Context) (Value, error) {
	v, ok := ctx.Get(e.name)
	if !ok {
		return Value{}, errors.NewRuntimeError(errors.ErrVarUndef, e.name)
	}
	return v, nil
}

// Empty returns false.
func (e *VarExpr) Empty() bool { return false }

// Name returns the referenced identifier.
func (e *VarExpr) Name() string { return e.name }

// Args returns the node itself as its only operand.
func (e *VarExpr) Args() []Node { return []Node{e} }

// FuncExpr is a named call with an argument list.
type FuncExpr struct {
	name string
	args []Node
}

// NewFuncCall creates a call node.
func NewFuncCall(name string, args []Node) *FuncExpr {
	return &FuncExpr{name: name, args: args}
}

// Eval dispatches through the function registry. A name missing from
// the registry but bound in the context with a single argument is
// reinterpreted as a subscript into the context variable.
func (e *FuncExpr) Eval(ctx *Context) (Value, error) {
	fn, ok := Functions()[e.name]
	if !ok {
		if v, bound := ctx.Get(e.name); bound && len(e.args) == 1 {
			idx, err := e.args[0].Eval(ctx)
			if err != nil {
				return Value{}, err
			}
			elem, err := v.At(idx.ToInt())
			if err != nil {
				return Value{}, runtimeWithStmt(err, e.name)
			}
			return elem, nil
		}
		return Value{}, errors.NewRuntimeError(errors.ErrFuncUndef, e.name)
	}
	return fn(ctx, e.name, e.args)
}

// Empty returns false.
func (e *FuncExpr) Empty() bool { return false }

// Name returns the called name.
func (e *FuncExpr) Name() string { return e.name }

// Args returns the argument subtrees.
func (e *FuncExpr) Args() []Node { return e.args }

// SubscrExpr is a subscript reference: name[index].
type SubscrExpr struct {
	index Node
	name  string
}

// NewSubscript creates a subscript node.
func NewSubscript(name string, index Node) *SubscrExpr {
	return &SubscrExpr{name: name, index: index}
}

// Eval indexes the named context vector.
func (e *SubscrExpr) Eval(ctx *Context) (Value, error) {
	v, ok := ctx.Get(e.name)
	if !ok {
		return Value{}, errors.NewRuntimeError(errors.ErrVarUndef, e.name)
	}

	idx, err := e.index.Eval(ctx)
	if err != nil {
		return Value{}, err
	}

	elem, err := v.At(idx.ToInt())
	if err != nil {
		return Value{}, runtimeWithStmt(err, e.name)
	}
	return elem, nil
}

// Empty returns false.
func (e *SubscrExpr) Empty() bool { return false }

// Name returns the subscripted identifier.
func (e *SubscrExpr) Name() string { return e.name }

// Args returns the index expression.
func (e *SubscrExpr) Args() []Node { return []Node{e.index} }

// BinExpr applies a binary operator function to two subtrees.
type BinExpr struct {
	fn    BinOp
	left  Node
	right Node
}

// NewBinary creates a binary operation node.
func NewBinary(fn BinOp, left, right Node) *BinExpr {
	return &BinExpr{fn: fn, left: left, right: right}
}

// Eval evaluates left then right and applies the operator.
func (e *BinExpr) Eval(ctx *Context) (Value, error) {
	l, err := e.left.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	r, err := e.right.Eval(ctx)
	if err != nil {
		return Value{}, err
	}
	return e.fn(l, r)
}

// Empty returns false.
func (e *BinExpr) Empty() bool { return false }

// Name concatenates the operand names along the spines with a dot.
func (e *BinExpr) Name() string {
	if e.left == nil {
		return ""
	}
	name := e.left.Name()
	if e.right != nil && e.right.Name() != "" {
		name += "." + e.right.Name()
	}
	return name
}

// Args concatenates both operands' flattened argument lists.
func (e *BinExpr) Args() []Node {
	var args []Node
	if e.left != nil {
		args = e.left.Args()
	}
	if e.right != nil {
		args = append(args, e.right.Args()...)
	}
	return args
}

// runtimeWithStmt stamps a statement prefix onto a runtime error that
// lacks one.
func runtimeWithStmt(err error, stmt string) error {
	if rte, ok := err.(*errors.RuntimeError); ok && rte.Stmt == "" {
		return errors.NewRuntimeError(rte.Code, stmt)
	}
	return err
}
