package declare

import (
	"strings"

	"github.com/kent-wong/my-processing/pkg/atom"
)

// Result is what Extract returns: the atomized text with every recognized
// declaration spliced out as a placeholder, plus the parsed header for
// each new atom index the extractor minted, keyed by atom-table index.
type Result struct {
	Text    string
	Classes map[int]*ClassHeader  // indexed by the new E-atom's table index
	Methods map[int]*MethodHeader // indexed by the new D/G/H-atom's table index
}

// Extract runs spec.md §4.4 over one span of already-atomized body text.
// className is the enclosing class's name when body is a class body (so
// constructors can be recognized); it is empty at the top level, where
// constructors never match.
func Extract(body string, className string, tab *atom.Table) *Result {
	res := &Result{Classes: map[int]*ClassHeader{}, Methods: map[int]*MethodHeader{}}

	words := scanWords(body)
	var out strings.Builder
	last := 0
	i := 0
	for i < len(words) {
		if hdr, ok := matchClassHeader(words, i); ok {
			out.WriteString(body[last:words[i].start])
			end := i + hdr.Consumed
			newIdx := tab.Add(atom.KindClass, body[words[i].start:words[end-1].end])
			res.Classes[newIdx] = hdr
			out.WriteString(atom.Placeholder(atom.KindClass, newIdx))
			last = words[end-1].end
			i = end
			continue
		}
		if hdr, ok := matchConstructorHeader(words, i, className); ok {
			out.WriteString(body[last:words[i].start])
			end := i + hdr.Consumed
			newIdx := tab.Add(atom.KindConstructor, body[words[i].start:words[end-1].end])
			res.Methods[newIdx] = hdr
			out.WriteString(atom.Placeholder(atom.KindConstructor, newIdx))
			last = words[end-1].end
			i = end
			continue
		}
		if hdr, ok := matchFunctionHeader(words, i); ok {
			out.WriteString(body[last:words[i].start])
			end := i + hdr.Consumed
			newIdx := tab.Add(atom.KindFunction, body[words[i].start:words[end-1].end])
			res.Methods[newIdx] = hdr
			out.WriteString(atom.Placeholder(atom.KindFunction, newIdx))
			last = words[end-1].end
			i = end
			continue
		}
		if hdr, ok := matchMethodHeader(words, i); ok {
			out.WriteString(body[last:words[i].start])
			end := i + hdr.Consumed
			newIdx := tab.Add(atom.KindMethod, body[words[i].start:words[end-1].end])
			res.Methods[newIdx] = hdr
			out.WriteString(atom.Placeholder(atom.KindMethod, newIdx))
			last = words[end-1].end
			i = end
			continue
		}
		i++
	}
	out.WriteString(body[last:])
	res.Text = out.String()
	return res
}

// SplitFields splits the remainder text (after class/method/function/
// constructor extraction) on top-level `;` into field-declaration
// candidates, per spec.md §4.4's field rule: "split remainder by ; after
// method/class extraction". Each returned segment still contains its atom
// placeholders; pkg/classbody parses each into a *ast.Field.
func SplitFields(remainder string) []string {
	var segs []string
	var cur strings.Builder
	for i := 0; i < len(remainder); i++ {
		c := remainder[i]
		cur.WriteByte(c)
		if c == ';' {
			segs = append(segs, cur.String())
			cur.Reset()
		}
	}
	if strings.TrimSpace(cur.String()) != "" {
		segs = append(segs, cur.String())
	}
	return segs
}
