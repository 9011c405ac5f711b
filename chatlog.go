// Chat log model: the exported fragment parsed into an ordered list of
// messages.
package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// message is one chat entry. node points into the parsed input and is never
// modified; everything else is read from it once at parse time.
type message struct {
	node      *html.Node
	ID        string   // data-messageid
	PlayerID  string   // data-playerid, empty when absent
	Classes   []string // full class list in source order
	Speaker   string   // text of the first .by element
	AvatarURL string   // src of the first .avatar img
}

func newMessage(n *html.Node) *message {
	m := &message{
		node:     n,
		ID:       dom.GetAttributeOr(n, "data-messageid", ""),
		PlayerID: dom.GetAttributeOr(n, "data-playerid", ""),
		Classes:  classList(n),
	}
	if by := findFirst(n, withClass("by")); by != nil {
		m.Speaker = textContent(by)
	}
	if img := findFirst(n, isAvatarImage(n)); img != nil {
		m.AvatarURL = dom.GetAttributeOr(img, "src", "")
	}
	return m
}

// isAvatarImage matches an img with an .avatar ancestor below root.
func isAvatarImage(root *html.Node) matcher {
	return func(n *html.Node) bool {
		if !isTag("img")(n) {
			return false
		}
		for p := n.Parent; p != nil && p != root; p = p.Parent {
			if dom.HasClass(p, "avatar") {
				return true
			}
		}
		return false
	}
}

func (m *message) hasClass(class string) bool {
	return slices.Contains(m.Classes, class)
}

// classAttr is the class attribute emitted on the rewritten container.
func (m *message) classAttr() string {
	return strings.Join(m.Classes, " ")
}

// chatDocument is a parsed chat log export.
type chatDocument struct {
	root     *html.Node
	messages []*message
}

// parseChatDocument parses an exported chat log (a full page or a bare
// fragment) and collects every .message element in document order.
// Messages nested inside other messages are treated as message content.
func parseChatDocument(r io.Reader) (*chatDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing chat log: %w", err)
	}
	doc := &chatDocument{root: root}

	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && dom.HasClass(c, "message") {
				doc.messages = append(doc.messages, newMessage(c))
				continue
			}
			collect(c)
		}
	}
	collect(root)
	return doc, nil
}
