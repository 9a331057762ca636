package source

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"medref/internal"
	"medref/internal/codes"
	"medref/internal/table"
)

var (
	icd10LeadingCode = regexp.MustCompile(`^([A-TV-Z][0-9][0-9A-Z](?:\.[0-9A-Z]{1,4})?)\b`)
	icd10CodePrefix  = regexp.MustCompile(`^[A-TV-Z][0-9][0-9A-Z](?:\.[0-9A-Z]{1,4})?\b[:\s-]*`)
)

// Attribute names that may carry the element's code, and child tags that may
// carry it embedded at the start of their text.
var (
	whoCodeAttrs = map[string]bool{"code": true, "id": true, "codeid": true, "icdcode": true}
	whoCodeTags  = map[string]bool{"title": true, "name": true, "desc": true, "label": true}
	whoDescTags  = map[string]bool{
		"title": true, "name": true, "desc": true, "label": true,
		"definition": true, "rubric": true, "text": true, "caption": true,
	}
)

type icd10whoSource struct{}

func (s *icd10whoSource) Name() internal.SourceName { return internal.SourceICD10WHO }

func (s *icd10whoSource) Load(path string) (*table.Table, error) {
	if err := requireInput(path); err != nil {
		return nil, err
	}

	blob, err := loadXMLBytes(path)
	if err != nil {
		return nil, err
	}

	root, err := parseXMLTree(blob)
	if err != nil {
		return nil, err
	}

	t := &table.Table{Columns: []string{"code", "description"}}
	seen := map[string]struct{}{}
	walkNodes(root, func(n *xmlNode) {
		code := n.findCode()
		if code == "" {
			return
		}
		desc := n.findDescription()
		if desc == "" {
			return
		}
		if _, dup := seen[code]; dup {
			return
		}
		seen[code] = struct{}{}
		t.Rows = append(t.Rows, []string{code, desc})
	})
	return t, nil
}

func (s *icd10whoSource) Clean(t *table.Table) ([]internal.CodePair, error) {
	pairs := pairsFromTable(t, "code", "description")
	return codes.Clean(pairs, codes.CleanOptions{
		Uppercase: true,
		Validate:  codes.PatternValidator(codes.ICD10Pattern),
	}), nil
}

// loadXMLBytes accepts a raw .xml file or a .zip holding one; the first zip
// entry ending in .xml wins.
func loadXMLBytes(path string) ([]byte, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		archive, err := zip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		defer archive.Close()
		for _, entry := range archive.File {
			if !strings.HasSuffix(strings.ToLower(entry.Name), ".xml") {
				continue
			}
			rc, err := entry.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
		return nil, fmt.Errorf("no .xml file found inside %s", path)
	case strings.HasSuffix(lower, ".xml"):
		return os.ReadFile(path)
	default:
		return nil, fmt.Errorf("expected .xml or .zip containing an .xml, got %s", path)
	}
}

// xmlNode is a minimal element tree. text holds only the character data
// between the start tag and the first child, matching how the description
// fallback reads an element's own text.
type xmlNode struct {
	tag      string
	attrs    []xml.Attr
	text     string
	children []*xmlNode
}

func parseXMLTree(blob []byte) (*xmlNode, error) {
	decoder := xml.NewDecoder(bytes.NewReader(blob))
	decoder.Strict = false

	root := &xmlNode{}
	stack := []*xmlNode{root}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlNode{tag: t.Name.Local, attrs: append([]xml.Attr(nil), t.Attr...)}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			node := stack[len(stack)-1]
			if len(node.children) == 0 {
				node.text += string(t)
			}
		}
	}

	if len(root.children) == 0 {
		return nil, fmt.Errorf("empty XML document")
	}
	return root.children[0], nil
}

func walkNodes(n *xmlNode, visit func(*xmlNode)) {
	visit(n)
	for _, child := range n.children {
		walkNodes(child, visit)
	}
}

// findCode scans attributes first, then immediate children whose text begins
// with a code-shaped token.
func (n *xmlNode) findCode() string {
	for _, attr := range n.attrs {
		v := strings.TrimSpace(attr.Value)
		if codes.ICD10Pattern.MatchString(v) && whoCodeAttrs[strings.ToLower(attr.Name.Local)] {
			return strings.ToUpper(v)
		}
	}
	for _, child := range n.children {
		if !whoCodeTags[strings.ToLower(child.tag)] {
			continue
		}
		if m := icd10LeadingCode.FindStringSubmatch(strings.TrimSpace(child.text)); m != nil {
			return strings.ToUpper(m[1])
		}
	}
	return ""
}

// findDescription takes the first child in the broader tag set with
// non-empty text, stripping a leading code token; failing that it falls back
// to the element's own text.
func (n *xmlNode) findDescription() string {
	desc := ""
	for _, child := range n.children {
		if !whoDescTags[strings.ToLower(child.tag)] {
			continue
		}
		t := strings.TrimSpace(child.text)
		if t == "" {
			continue
		}
		desc = removeLeadingCode(t)
		if desc != "" {
			break
		}
	}
	if desc == "" {
		desc = removeLeadingCode(strings.TrimSpace(n.text))
	}
	return desc
}

func removeLeadingCode(text string) string {
	return strings.TrimSpace(icd10CodePrefix.ReplaceAllString(text, ""))
}
