// Package ui is a tiny CSS-styled label renderer used for the stats panel.
// Nodes are rectangles with optional text; a stylesheet of .class/#id rules
// gives them color, size, and position.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Node is one UI element. Class and ID select stylesheet rules; Bounds is
// filled in from the resolved style on draw.
type Node struct {
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string
}

// NewPanel returns a text-less node (a styled rectangle).
func NewPanel(class string) *Node {
	return &Node{Class: class}
}

// NewLabel returns a text node.
func NewLabel(class, text string) *Node {
	return &Node{Class: class, Text: text}
}
