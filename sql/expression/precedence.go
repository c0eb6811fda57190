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

// rank assigns each operator lexeme to its precedence class, highest
// binding first: function calls, unary minus, mult class, add class,
// compare, not, in, logical. Function calls and unary minus tie at the
// top rank, since both are "anything not found in the binary operator
// table".
var rank = map[string]int{
	// function-call class (rank 7)
	"sin": 7, "cos": 7, "tan": 7, "asin": 7, "acos": 7, "atan": 7,
	"exp": 7, "ln": 7, "sqrt": 7, "sqr": 7, "sgn": 7, "abs": 7,
	"tostr": 7, "tofloat": 7, "tobool": 7,
	"agg": 7, "count": 7, "max": 7, "min": 7, "sum": 7,
	"~": 7, // unary minus

	// mult class (rank 6)
	"*": 6, "/": 6, "^": 6, "%": 6,

	// add class (rank 5)
	"+": 5, "-": 5,

	// compare (rank 4)
	"<": 4, ">": 4, "<=": 4, ">=": 4, "=": 4, "!=": 4,

	// not (rank 3)
	"not": 3,

	// in (rank 2)
	"in": 2,

	// logical (rank 1)
	"and": 1, "or": 1, "xor": 1,
}

const (
	parenISP = 1    // "(" never yields to anything resting above it
	parenICP = 1000 // "(" always gets pushed
	closeISP = 1000 // ")" is never itself pushed; value is unused
	closeICP = 1    // ")" pops through every real operator down to "("
)

// isp returns the in-stack priority of optr: the priority used when it is
// popped for emission while sitting on the operator stack.
func isp(optr string) int {
	switch optr {
	case "(":
		return parenISP
	case ")":
		return closeISP
	}
	if r, ok := rank[optr]; ok {
		return r*2 + 1
	}
	return 15 // unrecognized operator, treated as a top-priority function call
}

// icp returns the in-coming priority of optr: the priority considered
// when the token is next in the input and about to be pushed.
func icp(optr string) int {
	switch optr {
	case "(":
		return parenICP
	case ")":
		return closeICP
	}
	if r, ok := rank[optr]; ok {
		return r * 2
	}
	return 14
}

// isOperatorToken reports whether text names an operator/function/
// aggregate recognized by the precedence tables, a parenthesis, or
// `not`/`in`/logical keywords that the tokenizer leaves as plain words.
func isOperatorToken(text string) bool {
	if text == "(" || text == ")" {
		return true
	}
	_, ok := rank[text]
	return ok
}

func isUnaryToken(text string) bool {
	switch text {
	case "~", "sin", "cos", "tan", "asin", "acos", "atan", "exp", "ln",
		"sqrt", "sqr", "sgn", "abs", "tostr", "tofloat", "tobool", "not":
		return true
	}
	return false
}

func isAggregateToken(text string) bool {
	switch text {
	case "agg", "count", "max", "min", "sum":
		return true
	}
	return false
}

func isBinaryToken(text string) bool {
	switch text {
	case "+", "-", "*", "/", "^", "%",
		"<", ">", "<=", ">=", "=", "!=",
		"and", "or", "xor", "in":
		return true
	}
	return false
}
