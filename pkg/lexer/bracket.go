package lexer

import (
	"fmt"

	"github.com/kent-wong/my-processing/pkg/atom"
)

// ErrUnbalancedBrackets is the one fatal error the front end can raise
// (spec.md §7): atomization found a closing bracket with no matching
// opener, or ran out of input with openers still on the stack.
type ErrUnbalancedBrackets struct {
	Offset int
}

func (e *ErrUnbalancedBrackets) Error() string {
	return fmt.Sprintf("unbalanced brackets at offset %d", e.Offset)
}

// Atomize implements spec.md §4.3: split src on the six bracket
// characters, maintaining a stack of partial buffers. Every balanced
// {}/()/[] span becomes one atom-table entry and is replaced in the
// enclosing buffer by its placeholder token. The bracket-free remainder
// that's left once the whole input has been consumed is recorded as the
// last atom-table entry and is also returned as the flat top-level token
// stream.
func Atomize(src string, tab *atom.Table) (string, error) {
	type frame struct {
		buf    []byte
		opener byte
		start  int
	}

	var stack []frame
	cur := frame{buf: make([]byte, 0, len(src))}

	for i := 0; i < len(src); i++ {
		c := src[i]
		switch c {
		case '{', '(', '[':
			stack = append(stack, cur)
			cur = frame{buf: []byte{c}, opener: c, start: i}

		case '}', ')', ']':
			if len(stack) == 0 {
				return "", &ErrUnbalancedBrackets{Offset: i}
			}
			if !matchingPair(cur.opener, c) {
				return "", &ErrUnbalancedBrackets{Offset: i}
			}
			cur.buf = append(cur.buf, c)
			kind, _ := atom.BracketKindFor(c)
			idx := tab.Add(kind, string(cur.buf))

			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent.buf = append(parent.buf, []byte(atom.Placeholder(kind, idx))...)
			cur = parent

		default:
			cur.buf = append(cur.buf, c)
		}
	}

	if len(stack) != 0 {
		return "", &ErrUnbalancedBrackets{Offset: len(src)}
	}

	top := string(cur.buf)
	tab.Add(atomKindForTopLevel(), top)
	return top, nil
}

// atomKindForTopLevel labels the bracket-free remainder's entry. It reuses
// KindBrace as a neutral "body text" tag since nothing ever addresses that
// entry through a placeholder token — later stages receive it directly as
// the return value of Atomize.
func atomKindForTopLevel() atom.Kind { return atom.KindBrace }

func matchingPair(opener, closer byte) bool {
	switch opener {
	case '{':
		return closer == '}'
	case '(':
		return closer == ')'
	case '[':
		return closer == ']'
	}
	return false
}
