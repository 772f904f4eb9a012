package Trees

import (
	"fmt"
	"io"
	"strings"
)

// to control the print routine
type branch uint8

const (
	atRoot branch = iota
	atLeft
	atRight
)

// Print an ASCII representation of the tree to w, lying on its side with the
// right subtree on top. Recursive, the depth is bounded by Height().
//
//	       /------+ 3
//	|------+ 2
//	       \------+ 1
func (u *SearchTree[T, S]) Print(w io.Writer) error {
	var b strings.Builder
	u.print(&b, u.root, "", atRoot)
	_, err := io.WriteString(w, b.String())
	return err
}

func (u *SearchTree[T, S]) print(b *strings.Builder, i S, prefix string, br branch) {
	if i == 0 {
		return
	}
	n := &u.ns[i]
	if n.r != 0 {
		t := "       "
		if br == atLeft {
			t = "|      "
		}
		u.print(b, n.r, prefix+t, atRight)
	}
	switch br {
	case atRoot:
		fmt.Fprintf(b, "%s|------+ %v\n", prefix, n.v)
	case atLeft:
		fmt.Fprintf(b, "%s\\------+ %v\n", prefix, n.v)
	case atRight:
		fmt.Fprintf(b, "%s/------+ %v\n", prefix, n.v)
	}
	if n.l != 0 {
		t := "       "
		if br == atRight {
			t = "|      "
		}
		u.print(b, n.l, prefix+t, atLeft)
	}
}
