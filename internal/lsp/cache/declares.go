// Copyright 2026 The gnls Authors
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

package cache

import (
	"gnls.dev/go/gn/ast"
	"gnls.dev/go/gn/literal"
	"gnls.dev/go/gn/token"
)

// A Declare is a call with a block, such as a target or config
// definition.
type Declare struct {
	Function  string      `json:"function"`
	Arguments []string    `json:"arguments"` // as in [FunctionInfo]
	Range     token.Range `json:"range"`     // from the function name to the opening brace
}

// Declares returns the calls with blocks among the statements of the tree
// rooted at root, including those inside conditions, in source order.
// Blocks of calls are not searched.
func Declares(root ast.Node) []Declare {
	var decls []Declare
	stack := []ast.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := n.(type) {
		case *ast.Block:
			for i := len(n.Statements) - 1; i >= 0; i-- {
				stack = append(stack, n.Statements[i])
			}
		case *ast.Condition:
			if n.IfFalse != nil {
				stack = append(stack, n.IfFalse)
			}
			if n.IfTrue != nil {
				stack = append(stack, n.IfTrue)
			}
		case *ast.FunctionCall:
			if n.Block == nil {
				break
			}
			info := functionInfo(n)
			decls = append(decls, Declare{
				Function:  info.Name,
				Arguments: info.Arguments,
				Range:     token.NewRange(n.Function.Range.Begin, n.Block.Range().Begin),
			})
		}
	}
	return decls
}

// Label returns the type and name of the target d declares. For the
// generic form target("type", "name") the type is taken from the first
// argument. Quotes are removed from both.
func (d Declare) Label() (kind, name string) {
	args := d.Arguments
	kind = d.Function
	if d.Function == "target" && len(args) > 0 {
		kind, args = literal.Trim(args[0]), args[1:]
	}
	if len(args) > 0 {
		name = literal.Trim(args[0])
	}
	return kind, name
}
