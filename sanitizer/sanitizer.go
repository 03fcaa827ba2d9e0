// Package sanitizer renders untrusted datagram payloads safely for a console.
// Rules pair a character filter with a transform; the first matching rule wins.
package sanitizer

import (
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Runes not printable per strconv.IsPrint
	FilterControl                         // Control characters, including ANSI escape introducers
	FilterWhitespace                      // unicode.IsSpace
	FilterShellSpecial                    // '`', '$', ';', '|', '&', '>', '<', '(', ')', '#'
)

// Transform flags for character transformation
const (
	TransformStrip     uint64 = 1 << iota // Drop the character
	TransformHexEncode                    // Replace with "<xx..>" of its UTF-8 bytes
	TransformEscape                       // Replace with a Go-style escape such as \n or \x1b
)

// PolicyPreset names a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw   PolicyPreset = "raw"   // Passthrough
	PolicyTxt   PolicyPreset = "txt"   // Hex-encode anything non-printable
	PolicyLine  PolicyPreset = "line"  // Escape control characters, keep the payload on one line
	PolicyShell PolicyPreset = "shell" // Strip shell metacharacters and whitespace
)

type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:   {},
	PolicyTxt:   {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyLine:  {{filter: FilterControl | FilterNonPrintable, transform: TransformEscape}},
	PolicyShell: {{filter: FilterShellSpecial | FilterWhitespace, transform: TransformStrip}},
}

// filterOrder fixes evaluation order so matching is deterministic
var filterOrder = []uint64{FilterNonPrintable, FilterControl, FilterWhitespace, FilterShellSpecial}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterShellSpecial: func(r rune) bool {
		return strings.ContainsRune("`$;|&><()#", r)
	},
}

// Sanitizer applies rules to text. Not safe for concurrent use.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a passthrough sanitizer
func New() *Sanitizer {
	return &Sanitizer{buf: make([]byte, 0, 256)}
}

// Rule appends a custom rule
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset, unknown presets are ignored
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all rules to data. Invalid UTF-8 bytes are treated as utf8.RuneError
// and hex-encoded by the matching rule, if any.
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.buf[:0]

	for i := 0; i < len(data); {
		r, size := utf8.DecodeRuneInString(data[i:])
		raw := data[i : i+size]
		i += size

		applied := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) || (r == utf8.RuneError && size == 1 && rl.filter&FilterNonPrintable != 0) {
				s.buf = applyTransform(s.buf, r, raw, rl.transform)
				applied = true
				break
			}
		}
		if !applied {
			s.buf = append(s.buf, raw...)
		}
	}

	return string(s.buf)
}

// Payload sanitizes a datagram payload
func (s *Sanitizer) Payload(payload []byte) string {
	return s.Sanitize(string(payload))
}

// IsText reports whether payload is valid UTF-8 made of printable runes and common whitespace
func IsText(payload []byte) bool {
	if !utf8.Valid(payload) {
		return false
	}
	for _, r := range string(payload) {
		if !strconv.IsPrint(r) && r != '\n' && r != '\r' && r != '\t' {
			return false
		}
	}
	return true
}

// HexDump renders a binary payload with byte offsets for debugging
func HexDump(payload []byte) string {
	dumper := &spew.ConfigState{
		Indent:                  " ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	return strings.TrimSpace(dumper.Sdump(payload))
}

func matchesFilter(r rune, filterMask uint64) bool {
	for _, flag := range filterOrder {
		if filterMask&flag != 0 && filterCheckers[flag](r) {
			return true
		}
	}
	return false
}

func applyTransform(buf []byte, r rune, raw string, transformMask uint64) []byte {
	switch {
	case transformMask&TransformStrip != 0:
		return buf

	case transformMask&TransformHexEncode != 0:
		buf = append(buf, '<')
		buf = hex.AppendEncode(buf, []byte(raw))
		return append(buf, '>')

	case transformMask&TransformEscape != 0:
		if r == utf8.RuneError && len(raw) == 1 {
			buf = append(buf, `\x`...)
			return hex.AppendEncode(buf, []byte(raw))
		}
		// QuoteRune yields a quoted literal such as '\n' or '\x1b'; drop the quotes
		quoted := strconv.QuoteRune(r)
		return append(buf, quoted[1:len(quoted)-1]...)

	default:
		return append(buf, raw...)
	}
}
