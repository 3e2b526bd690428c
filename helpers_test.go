// Copyright 2024-2026 Tolerant Labs, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax_test

import (
	"testing"

	"github.com/tolerantlabs/syntax"
	"github.com/tolerantlabs/syntax/internal/treetest"
	"github.com/tolerantlabs/syntax/source"
)

// program is a fully-built two-statement tree over programText, shared by
// most tests in this package.
type program struct {
	grammar *treetest.Grammar
	tree    *syntax.Tree

	root   *syntax.Node // File
	stmt1  *syntax.Node // x = f(1, y);
	stmt2  *syntax.Node // y = 2;
	xRef   *syntax.Node
	call   *syntax.Node // f(1, y)
	fRef   *syntax.Node
	args   *syntax.Node // ArgList
	oneLit *syntax.Node
	yArg   *syntax.Node
	yRef   *syntax.Node
	twoLit *syntax.Node
}

const programText = "x = f(1, y); # assign\ny = 2;\n"

func buildProgram(t *testing.T) *program {
	t.Helper()

	g := treetest.NewGrammar()
	tree := syntax.NewTree(g.Schema, source.NewFile("test.lang", programText))
	lex := treetest.NewLexer(programText)

	p := &program{grammar: g, tree: tree}

	xTok := lex.Next(g.Ident, 1)
	eq1 := lex.Next(g.Punct, 1)
	fTok := lex.Next(g.Ident, 1)
	open := lex.Next(g.Punct, 1)
	one := lex.Next(g.Number, 1)
	comma := lex.Next(g.Punct, 1)
	yArgTok := lex.Next(g.Ident, 1)
	closeTok := lex.Next(g.Punct, 1)
	semi1 := lex.Next(g.Punct, 1)
	yTok := lex.Next(g.Ident, 1)
	eq2 := lex.Next(g.Punct, 1)
	two := lex.Next(g.Number, 1)
	semi2 := lex.Next(g.Punct, 1)
	eof := lex.EOF(g.EndOfFile)

	p.xRef = tree.NewNode(g.NameRef, syntax.PutToken("Name", xTok))
	p.fRef = tree.NewNode(g.NameRef, syntax.PutToken("Name", fTok))
	p.oneLit = tree.NewNode(g.NumberLit, syntax.PutToken("Value", one))
	p.yArg = tree.NewNode(g.NameRef, syntax.PutToken("Name", yArgTok))
	p.args = tree.NewNode(g.ArgList, syntax.PutList("Items",
		syntax.NodeOf(p.oneLit),
		syntax.TokenOf(comma),
		syntax.NodeOf(p.yArg)))
	p.call = tree.NewNode(g.Call,
		syntax.PutNode("Callee", p.fRef),
		syntax.PutToken("Open", open),
		syntax.PutNode("Args", p.args),
		syntax.PutToken("Close", closeTok))
	p.stmt1 = tree.NewNode(g.Statement,
		syntax.PutNode("Name", p.xRef),
		syntax.PutToken("Equals", eq1),
		syntax.PutNode("Value", p.call),
		syntax.PutToken("Semicolon", semi1))

	p.yRef = tree.NewNode(g.NameRef, syntax.PutToken("Name", yTok))
	p.twoLit = tree.NewNode(g.NumberLit, syntax.PutToken("Value", two))
	p.stmt2 = tree.NewNode(g.Statement,
		syntax.PutNode("Name", p.yRef),
		syntax.PutToken("Equals", eq2),
		syntax.PutNode("Value", p.twoLit),
		syntax.PutToken("Semicolon", semi2))

	p.root = tree.NewNode(g.File, syntax.PutList("Statements",
		syntax.NodeOf(p.stmt1),
		syntax.NodeOf(p.stmt2)))
	tree.Finish(p.root, eof)
	return p
}
