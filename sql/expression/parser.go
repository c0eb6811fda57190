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
	"strconv"
	"strings"

	"github.com/cqlkit/cql/errs"
	"github.com/cqlkit/cql/sql"
	"github.com/cqlkit/cql/token"
)

var unaryByText = map[string]UnaryOp{
	"~": OpNeg, "not": OpNot, "sin": OpSin, "cos": OpCos, "tan": OpTan,
	"asin": OpAsin, "acos": OpAcos, "atan": OpAtan, "exp": OpExp, "ln": OpLn,
	"sqrt": OpSqrt, "sqr": OpSqr, "sgn": OpSgn, "abs": OpAbs,
	"tostr": OpToStr, "tofloat": OpToFloat, "tobool": OpToBool,
}

var binaryByText = map[string]BinaryOp{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "^": OpPow, "%": OpMod,
	"<": OpLt, "<=": OpLe, ">": OpGt, ">=": OpGe, "=": OpEq, "!=": OpNe,
	"and": OpAnd, "or": OpOr, "xor": OpXor, "in": OpIn,
}

var aggregateByText = map[string]AggregateOp{
	"agg": AggAgg, "count": AggCount, "sum": AggSum, "min": AggMin, "max": AggMax,
}

// postfixItem is either a resolved leaf (Const/Column/Variable) or an
// operator awaiting its children, produced by toPostfix in RPN order.
type postfixItem struct {
	leaf     Expression
	unaryOp  UnaryOp
	binaryOp BinaryOp
	aggOp    AggregateOp
	isUnary  bool
	isBinary bool
	isAgg    bool
}

func leafFromToken(tok token.Token) (Expression, bool, error) {
	switch tok.Kind {
	case token.Number:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, false, errs.ErrParse.New("invalid numeric literal " + tok.Text)
		}
		return &Const{Value: sql.NewFloat(f)}, true, nil

	case token.Lit:
		// quotes are preserved in-band: strip exactly one leading and one
		// trailing '\''.
		body := tok.Text
		if len(body) >= 2 {
			body = body[1 : len(body)-1]
		}
		return &Const{Value: sql.NewString(body)}, true, nil

	case token.Column:
		return &Column{Name: strings.TrimPrefix(tok.Text, "#")}, true, nil

	case token.Variable:
		return &Variable{Name: strings.TrimPrefix(tok.Text, "@")}, true, nil

	case token.Word:
		switch tok.Text {
		case "true":
			return &Const{Value: sql.NewBool(true)}, true, nil
		case "false":
			return &Const{Value: sql.NewBool(false)}, true, nil
		}
	}
	return nil, false, nil
}

func operatorItem(text string) (postfixItem, bool) {
	if isAggregateToken(text) {
		return postfixItem{isAgg: true, aggOp: aggregateByText[text]}, true
	}
	if isUnaryToken(text) {
		return postfixItem{isUnary: true, unaryOp: unaryByText[text]}, true
	}
	if isBinaryToken(text) {
		return postfixItem{isBinary: true, binaryOp: binaryByText[text]}, true
	}
	return postfixItem{}, false
}

// toPostfix converts an infix token window into RPN using an
// operator-precedence algorithm: constants/columns/variables emit
// directly; operators and parentheses are resolved against an operator
// stack by comparing in-coming priority (ICP) of the arriving token
// against the in-stack priority (ISP) of the stack top.
func toPostfix(tokens []token.Token) ([]postfixItem, error) {
	var stack []string // operator token texts, including "("
	var out []postfixItem

	i := 0
	n := len(tokens)
	for i < n {
		tok := tokens[i]

		if leaf, ok, err := leafFromToken(tok); err != nil {
			return nil, err
		} else if ok {
			out = append(out, postfixItem{leaf: leaf})
			i++
			continue
		}

		text := tok.Text
		if !isOperatorToken(text) {
			return nil, errs.ErrParse.New("unrecognized token " + text)
		}

		if len(stack) == 0 {
			stack = append(stack, text)
			i++
			continue
		}

		top := stack[len(stack)-1]
		in, is := icp(text), isp(top)

		switch {
		case in > is:
			stack = append(stack, text)
			i++

		case in < is:
			if top != "(" && top != ")" {
				item, ok := operatorItem(top)
				if !ok {
					return nil, errs.ErrParse.New("unrecognized operator " + top)
				}
				out = append(out, item)
			}
			stack = stack[:len(stack)-1]
			// do not advance i: retry the same token against the new top

		default:
			// equal priority: only reachable when top == "(" and text == ")"
			stack = stack[:len(stack)-1]
			i++
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top == "(" || top == ")" {
			continue
		}
		item, ok := operatorItem(top)
		if !ok {
			return nil, errs.ErrParse.New("unrecognized operator " + top)
		}
		out = append(out, item)
	}

	return out, nil
}

// buildTree consumes the RPN stream with a value stack, attaching
// children to unary (one pop), binary (two pops, right-then-left), and
// aggregate (one pop) nodes.
func buildTree(items []postfixItem) (Expression, error) {
	var stack []Expression

	pop := func() (Expression, error) {
		if len(stack) == 0 {
			return nil, errs.ErrParse.New("missing operand")
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, nil
	}

	for _, item := range items {
		switch {
		case item.leaf != nil:
			stack = append(stack, item.leaf)

		case item.isUnary:
			child, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Unary{Op: item.unaryOp, Child: child})

		case item.isAgg:
			child, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Aggregate{Op: item.aggOp, Child: child})

		case item.isBinary:
			right, err := pop()
			if err != nil {
				return nil, err
			}
			left, err := pop()
			if err != nil {
				return nil, err
			}
			stack = append(stack, &Binary{Op: item.binaryOp, Left: left, Right: right})
		}
	}

	if len(stack) != 1 {
		return nil, errs.ErrParse.New("malformed expression: leftover operands")
	}
	return stack[0], nil
}

// Parse converts a canonical token window into an expression tree.
func Parse(tokens []token.Token) (Expression, error) {
	if len(tokens) == 0 {
		return nil, errs.ErrParse.New("empty expression")
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return buildTree(postfix)
}
