// Package render implements spec.md §4.6's renderer (stage 10) and §2
// stage 11's string reinjector: it walks the weighted, scope-resolved AST
// and the shared session, and produces the final emitted program text.
package render

import (
	"strings"

	"github.com/kent-wong/my-processing/internal/resolve"
	"github.com/kent-wong/my-processing/pkg/ast"
	"github.com/kent-wong/my-processing/pkg/atom"
	"github.com/kent-wong/my-processing/pkg/lexer"
	"github.com/kent-wong/my-processing/pkg/metaweight"
	"github.com/kent-wong/my-processing/pkg/session"
)

const banner = "// this code was autogenerated from a Processing sketch; do not edit.\n"

// Program renders a whole translation unit. It must run after
// metaweight.Weigh(sess) has resolved every class's Weight — top-level
// class/interface declarations are re-ordered into descending-weight order
// the same way inner classes are (spec.md §4.6 step 4, applied one level
// up at the Root), while every other top-level statement keeps its
// original relative position.
func Program(root *ast.Root, sess *session.Session, opts resolve.Options) string {
	r := newRenderer(sess, opts)

	var classIDs []int
	classNode := map[int]ast.Node{}
	var other []ast.Node

	for _, n := range root.Statements {
		id := topLevelClassID(n)
		if id < 0 {
			other = append(other, n)
			continue
		}
		classIDs = append(classIDs, id)
		classNode[id] = n
	}

	var body strings.Builder
	for _, id := range metaweight.OrderDescending(sess, classIDs) {
		body.WriteString(r.renderNode(classNode[id]))
		body.WriteString("\n")
	}
	for _, n := range other {
		body.WriteString(r.renderNode(n))
		body.WriteString("\n")
	}

	rendered := banner + "(function($p){\n" + body.String() + "})();\n"
	return Reinject(rendered, sess)
}

func topLevelClassID(n ast.Node) int {
	switch v := n.(type) {
	case *ast.Class:
		return v.ClassID
	case *ast.Interface:
		return v.ClassID
	}
	return -1
}

// Reinject is spec.md §2 stage 11, the string reinjector: it restores
// every `'N'` string-table placeholder left in rendered text verbatim (the
// renderer already does this for the ones it encounters walking
// expressions, so in practice this pass is a defensive final sweep for
// any placeholder that slipped into TrailingMisc/raw-prefix text without
// going through expandAndResolve) and reverses pkg/lexer's identifier
// escaping from stage 1's elision pass.
func Reinject(text string, sess *session.Session) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		if text[i] == '\'' {
			if end, ok := scanStringToken(text, i); ok {
				idx, _ := atom.ParseStringToken(text[i:end])
				lit, _ := sess.Strings.Get(idx)
				b.WriteString(lit)
				i = end
				continue
			}
		}
		b.WriteByte(text[i])
		i++
	}
	return lexer.UnescapeIdentifiers(b.String())
}
