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

// ContainsVariable reports whether e references a Variable anywhere in
// its tree, used by the insert path to decide whether a value tuple
// needs to be expanded across increasing variable indices or evaluated
// once.
func ContainsVariable(e Expression) bool {
	switch n := e.(type) {
	case *Variable:
		return true
	case *Unary:
		return ContainsVariable(n.Child)
	case *Binary:
		return ContainsVariable(n.Left) || ContainsVariable(n.Right)
	case *Aggregate:
		if n.Child == nil {
			return false
		}
		return ContainsVariable(n.Child)
	default:
		return false
	}
}
