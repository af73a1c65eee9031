package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// Node is one element of a parsed reply, stripped down to local names.
// Matching by local-name is what makes the decoder indifferent to whichever
// namespace prefixes the remote serializer chose.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// ParseDocument parses an XML document into a Node tree. Namespaces and
// attributes are discarded; only element local-names and character data
// survive.
func ParseDocument(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *Node
		stack []*Node
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("soap: document has no elements")
	}
	return root, nil
}

// Find locates a descendant element by local-name, case-insensitively.
// Direct children win over deeper matches, and earlier siblings over later
// ones, so a payload nested one level below its conventional place is still
// found.
func (n *Node) Find(name string) *Node {
	for _, c := range n.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	for _, c := range n.Children {
		if r := c.Find(name); r != nil {
			return r
		}
	}
	return nil
}

// FindText returns the trimmed text of the named descendant, or "".
func (n *Node) FindText(name string) string {
	c := n.Find(name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// XML re-serializes the subtree rooted at n, namespace-free. The direct
// decode path feeds this to encoding/xml.
func (n *Node) XML() []byte {
	var b bytes.Buffer
	n.writeXML(&b)
	return b.Bytes()
}

func (n *Node) writeXML(b *bytes.Buffer) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	b.WriteByte('>')
	if len(n.Children) == 0 {
		_ = xml.EscapeText(b, []byte(strings.TrimSpace(n.Text)))
	} else {
		for _, c := range n.Children {
			c.writeXML(b)
		}
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}
