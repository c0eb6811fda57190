// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expression

import (
	"math"

	"github.com/cqlkit/cql/catalog"
	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
)

func errColumnNoRow(name string) error {
	return errs.ErrEval.New("column #" + name + " referenced with no row in scope")
}

// Eval evaluates the child, propagates Invalid, then applies the unary
// operator per its type contract: arithmetic/trig functions require
// Float, `not` requires Bool, string operands to arithmetic unary are an
// EvalError.
func (u *Unary) Eval(row *sql.Row, vars *catalog.VariableStore, index int) (sql.Value, error) {
	child, err := u.Child.Eval(row, vars, index)
	if err != nil {
		return sql.Value{}, err
	}
	if child.IsInvalid() {
		return sql.NewInvalid(), nil
	}

	switch u.Op {
	case OpNot:
		b, ok := boolOperand(child)
		if !ok {
			return sql.Value{}, errs.ErrEval.New("not requires a bool operand")
		}
		return sql.NewBool(!b), nil

	case OpToStr:
		s, err := sql.ToStr(child)
		if err != nil {
			return sql.Value{}, errs.ErrEval.New(err.Error())
		}
		return sql.NewString(s), nil

	case OpToFloat:
		f, err := sql.ToFloat(child)
		if err != nil {
			return sql.Value{}, errs.ErrEval.New(err.Error())
		}
		return sql.NewFloat(f), nil

	case OpToBool:
		b, err := sql.ToBool(child)
		if err != nil {
			return sql.Value{}, errs.ErrEval.New(err.Error())
		}
		return sql.NewBool(b), nil
	}

	f, ok := floatOperand(child)
	if !ok {
		return sql.Value{}, errs.ErrEval.New("unary arithmetic on a non-float operand")
	}

	switch u.Op {
	case OpNeg:
		return sql.NewFloat(-f), nil
	case OpSin:
		return sql.NewFloat(math.Sin(f)), nil
	case OpCos:
		return sql.NewFloat(math.Cos(f)), nil
	case OpTan:
		return sql.NewFloat(math.Tan(f)), nil
	case OpAsin:
		return sql.NewFloat(math.Asin(f)), nil
	case OpAcos:
		return sql.NewFloat(math.Acos(f)), nil
	case OpAtan:
		return sql.NewFloat(math.Atan(f)), nil
	case OpExp:
		return sql.NewFloat(math.Exp(f)), nil
	case OpLn:
		return sql.NewFloat(math.Log(f)), nil
	case OpSqrt:
		return sql.NewFloat(math.Sqrt(f)), nil
	case OpSqr:
		return sql.NewFloat(f * f), nil
	case OpSgn:
		switch {
		case f > 0:
			return sql.NewFloat(1), nil
		case f < 0:
			return sql.NewFloat(-1), nil
		default:
			return sql.NewFloat(0), nil
		}
	case OpAbs:
		return sql.NewFloat(math.Abs(f)), nil
	}

	return sql.Value{}, errs.ErrEval.New("unrecognized unary operator")
}

func boolOperand(v sql.Value) (bool, bool) {
	if v.Tag() != sql.Bool {
		return false, false
	}
	return v.Bool(), true
}

func floatOperand(v sql.Value) (float64, bool) {
	if v.Tag() != sql.Float {
		return 0, false
	}
	return v.Float(), true
}

// Eval evaluates both children (left then right, matching the post-order
// build which pops right before left) and applies the binary operator.
func (b *Binary) Eval(row *sql.Row, vars *catalog.VariableStore, index int) (sql.Value, error) {
	if b.Op == OpIn {
		return b.evalIn(row, vars, index)
	}

	left, err := b.Left.Eval(row, vars, index)
	if err != nil {
		return sql.Value{}, err
	}
	right, err := b.Right.Eval(row, vars, index)
	if err != nil {
		return sql.Value{}, err
	}

	switch b.Op {
	case OpLt, OpLe, OpGt, OpGe, OpEq, OpNe:
		return b.evalComparison(left, right)
	case OpAnd, OpOr, OpXor:
		return b.evalLogical(left, right)
	default:
		return b.evalArithmetic(left, right)
	}
}

// evalComparison requires matching tags post-evaluation; any Invalid
// operand propagates Invalid rather than erroring.
func (b *Binary) evalComparison(left, right sql.Value) (sql.Value, error) {
	if left.IsInvalid() || right.IsInvalid() {
		return sql.NewInvalid(), nil
	}
	if err := sql.CheckTags(left, right); err != nil {
		return sql.Value{}, errs.ErrEval.New(err.Error())
	}

	switch b.Op {
	case OpEq:
		return sql.NewBool(left.Equal(right)), nil
	case OpNe:
		return sql.NewBool(!left.Equal(right)), nil
	case OpLt:
		return sql.NewBool(left.Less(right)), nil
	case OpLe:
		return sql.NewBool(left.Less(right) || left.Equal(right)), nil
	case OpGt:
		return sql.NewBool(!left.Less(right) && !left.Equal(right)), nil
	case OpGe:
		return sql.NewBool(!left.Less(right)), nil
	}
	return sql.Value{}, errs.ErrEval.New("unrecognized comparison operator")
}

func (b *Binary) evalLogical(left, right sql.Value) (sql.Value, error) {
	if left.IsInvalid() || right.IsInvalid() {
		return sql.NewInvalid(), nil
	}
	lb, ok1 := boolOperand(left)
	rb, ok2 := boolOperand(right)
	if !ok1 || !ok2 {
		return sql.Value{}, errs.ErrEval.New("logical operator requires bool operands")
	}
	switch b.Op {
	case OpAnd:
		return sql.NewBool(lb && rb), nil
	case OpOr:
		return sql.NewBool(lb || rb), nil
	case OpXor:
		return sql.NewBool(lb != rb), nil
	}
	return sql.Value{}, errs.ErrEval.New("unrecognized logical operator")
}

// evalArithmetic: + works on Float+Float and String+String
// (concatenation); -, *, /, %, ^ are Float-only; % (mod) truncates
// toward zero via int64 cast; division by zero yields IEEE infinity
// with no special handling.
func (b *Binary) evalArithmetic(left, right sql.Value) (sql.Value, error) {
	if left.IsInvalid() || right.IsInvalid() {
		return sql.NewInvalid(), nil
	}

	if b.Op == OpAdd && left.Tag() == sql.String && right.Tag() == sql.String {
		return sql.NewString(left.Str() + right.Str()), nil
	}

	lf, ok1 := floatOperand(left)
	rf, ok2 := floatOperand(right)
	if !ok1 || !ok2 {
		return sql.Value{}, errs.ErrEval.New("arithmetic operator requires float operands")
	}

	switch b.Op {
	case OpAdd:
		return sql.NewFloat(lf + rf), nil
	case OpSub:
		return sql.NewFloat(lf - rf), nil
	case OpMul:
		return sql.NewFloat(lf * rf), nil
	case OpDiv:
		return sql.NewFloat(lf / rf), nil
	case OpPow:
		return sql.NewFloat(math.Pow(lf, rf)), nil
	case OpMod:
		li, ri := int64(lf), int64(rf)
		if ri == 0 {
			return sql.NewFloat(math.Inf(1)), nil
		}
		return sql.NewFloat(float64(li % ri)), nil
	}
	return sql.Value{}, errs.ErrEval.New("unrecognized arithmetic operator")
}

// evalIn: `a in @v` is true iff there exists i such that v[i] equals a.
func (b *Binary) evalIn(row *sql.Row, vars *catalog.VariableStore, index int) (sql.Value, error) {
	left, err := b.Left.Eval(row, vars, index)
	if err != nil {
		return sql.Value{}, err
	}

	variable, ok := b.Right.(*Variable)
	if !ok {
		return sql.Value{}, errs.ErrEval.New("in requires a variable on the right-hand side")
	}
	if vars == nil {
		return sql.NewBool(false), nil
	}
	seq, ok := vars.Sequence(variable.Name)
	if !ok {
		return sql.NewBool(false), nil
	}
	for _, v := range seq {
		if v.Tag() == left.Tag() && v.Equal(left) {
			return sql.NewBool(true), nil
		}
	}
	return sql.NewBool(false), nil
}
