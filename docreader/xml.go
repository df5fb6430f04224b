package docreader

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// element is a generic XML tree node decoded by encoding/xml.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	CharData string     `xml:",chardata"`
	Children []element  `xml:",any"`
}

func (e *element) Name() string {
	return e.XMLName.Local
}

func (e *element) Text() string {
	return strings.TrimSpace(e.CharData)
}

func (e *element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (e *element) Element(name string) Node {
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			return &e.Children[i]
		}
	}
	return nil
}

func (e *element) Elements(name string) []Node {
	var out []Node
	for i := range e.Children {
		if e.Children[i].XMLName.Local == name {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// ParseXML decodes an XML document into a Node rooted at the document
// element.
func ParseXML(r io.Reader) (Node, error) {
	var root element
	decoder := xml.NewDecoder(r)
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &root, nil
}

// ParseXMLString decodes an XML document held in a string.
func ParseXMLString(s string) (Node, error) {
	if s == "" {
		return nil, fmt.Errorf("input XML cannot be empty")
	}
	return ParseXML(strings.NewReader(s))
}
