// Package xmltree decodes an XML document into a generic element tree
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/KirkDiggler/spellmerge/internal/errors"
)

// Node is one XML element with its attributes, direct character data and
// child elements in document order
type Node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []Node     `xml:",any"`
}

// Parse decodes the root element of the document read from r
func Parse(r io.Reader) (*Node, error) {
	var root Node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return nil, errors.SchemaViolation("document has no root element")
		}
		return nil, errors.WrapWithCode(err, errors.CodeSchemaViolation, "failed to decode XML document")
	}
	return &root, nil
}

// Tag returns the element's local name
func (n *Node) Tag() string {
	return n.XMLName.Local
}

// Attr returns the value of the named attribute
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given tag, or nil
func (n *Node) Child(tag string) *Node {
	for i := range n.Children {
		if n.Children[i].Tag() == tag {
			return &n.Children[i]
		}
	}
	return nil
}

// Value returns the element's character data with surrounding whitespace removed
func (n *Node) Value() string {
	return strings.TrimSpace(n.Text)
}
