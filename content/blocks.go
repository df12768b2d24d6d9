package content

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// BlockKind identifies how a block of panel text is laid out.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockListItem
)

// Link is an anchor found inside a block.
type Link struct {
	Text string
	Href string
}

// Block is one laid-out unit of a section body: a heading, a paragraph or
// a list item. Text has its whitespace collapsed.
type Block struct {
	Kind  BlockKind
	Level int // heading level, 1-6; zero for other kinds
	Text  string
	Links []Link
}

// Blocks parses the section's HTML into a flat list of blocks in document
// order. Nested lists are flattened.
func (sec Section) Blocks() []Block {
	return ParseBlocks(sec.HTML)
}

// ParseBlocks splits an HTML fragment into headings, paragraphs and list
// items. Loose text outside any block element becomes a paragraph.
func ParseBlocks(src string) []Block {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil
	}
	var out []Block
	for _, n := range nodes {
		out = appendBlocks(out, n)
	}
	return out
}

func appendBlocks(out []Block, n *html.Node) []Block {
	switch n.Type {
	case html.TextNode:
		if t := collapseSpace(n.Data); t != "" {
			out = append(out, Block{Kind: BlockParagraph, Text: t})
		}
		return out
	case html.ElementNode:
	default:
		return out
	}

	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return appendLeaf(out, n, BlockHeading, int(n.Data[1]-'0'))
	case atom.P:
		return appendLeaf(out, n, BlockParagraph, 0)
	case atom.Li:
		// A list item may hold a nested list; its own text comes first.
		var b Block
		b.Kind = BlockListItem
		var nested []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
				nested = append(nested, c)
				continue
			}
			gatherText(c, &b)
		}
		b.Text = collapseSpace(b.Text)
		if b.Text != "" {
			out = append(out, b)
		}
		for _, c := range nested {
			out = appendBlocks(out, c)
		}
		return out
	case atom.Script, atom.Style:
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = appendBlocks(out, c)
	}
	return out
}

func appendLeaf(out []Block, n *html.Node, kind BlockKind, level int) []Block {
	b := Block{Kind: kind, Level: level}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		gatherText(c, &b)
	}
	b.Text = collapseSpace(b.Text)
	if b.Text == "" {
		return out
	}
	return append(out, b)
}

// gatherText appends the text under n to b, recording anchors as links.
func gatherText(n *html.Node, b *Block) {
	switch n.Type {
	case html.TextNode:
		b.Text += n.Data
		return
	case html.ElementNode:
		if n.DataAtom == atom.Br {
			b.Text += " "
			return
		}
	default:
		return
	}
	if n.DataAtom == atom.A {
		var l Link
		for _, a := range n.Attr {
			if a.Key == "href" {
				l.Href = a.Val
			}
		}
		start := len(b.Text)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			gatherText(c, b)
		}
		l.Text = collapseSpace(b.Text[start:])
		b.Links = append(b.Links, l)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		gatherText(c, b)
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
