package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is one CSS rule: a .class or #id selector and raw property strings.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is an ordered rule list; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle is a resolved style ready for drawing. LeftPct/TopPct are
// 0-100 for percentage positioning, -1 when Left/Top are pixel values.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Padding    int32
}

func defaultStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
	}
}

// ParseCSS parses a primitive stylesheet: ".class { key: value; }" and
// "#id { ... }" blocks only, no combinators or @rules. Blocks with other
// selectors are skipped, not rejected.
func ParseCSS(content string) *Stylesheet {
	sheet := &Stylesheet{}
	content = stripComments(content)
	for {
		open := strings.Index(content, "{")
		if open == -1 {
			return sheet
		}
		close := strings.Index(content[open:], "}")
		if close == -1 {
			return sheet
		}
		close += open

		selector := strings.TrimSpace(content[:open])
		body := content[open+1 : close]
		content = content[close+1:]

		if len(selector) < 2 || (selector[0] != '.' && selector[0] != '#') {
			continue
		}
		sheet.Rules = append(sheet.Rules, Rule{
			Selector: selector,
			Props:    parseDeclarations(body),
		})
	}
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "/*")
		if start == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		end := strings.Index(s[start+2:], "*/")
		if end == -1 {
			return b.String()
		}
		s = s[start+2+end+2:]
	}
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k != "" && v != "" {
			props[k] = v
		}
	}
	return props
}

// resolve builds a ComputedStyle from merged rule properties. Unparseable
// values leave the default in place.
func resolve(props map[string]string) ComputedStyle {
	out := defaultStyle()
	for k, v := range props {
		switch k {
		case "background":
			if c, ok := parseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := parseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := parseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := parsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := parsePx(v); ok {
				out.Height = n
			}
		case "left":
			if pct, ok := parsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := parsePx(v); ok {
				out.Left = n
			}
		case "top":
			if pct, ok := parsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := parsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := parsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		}
	}
	return out
}

// parseHexColor accepts #RGB and #RRGGBB, alpha 255.
func parseHexColor(s string) (rl.Color, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return rl.Black, false
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		return rl.NewColor(hexNibble(hex[0])*17, hexNibble(hex[1])*17, hexNibble(hex[2])*17, 255), true
	case 6:
		return rl.NewColor(
			hexNibble(hex[0])<<4+hexNibble(hex[1]),
			hexNibble(hex[2])<<4+hexNibble(hex[3]),
			hexNibble(hex[4])<<4+hexNibble(hex[5]), 255), true
	}
	return rl.Black, false
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// parsePx parses a pixel length; a bare number is treated as pixels.
func parsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// parsePct parses "N%" with N in 0-100.
func parsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}
