package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		policy   PolicyPreset
		expected string
	}{
		{
			name:     "raw passes through",
			input:    "hello\x00world\n",
			policy:   PolicyRaw,
			expected: "hello\x00world\n",
		},
		{
			name:     "txt hex encodes null byte",
			input:    "test\x00data",
			policy:   PolicyTxt,
			expected: "test<00>data",
		},
		{
			name:     "txt hex encodes control chars",
			input:    "bell\x07tab\x09form\x0c",
			policy:   PolicyTxt,
			expected: "bell<07>tab<09>form<0c>",
		},
		{
			name:     "txt neutralizes ansi escape",
			input:    "\x1b[31mred",
			policy:   PolicyTxt,
			expected: "<1b>[31mred",
		},
		{
			name:     "txt keeps unicode",
			input:    "héllo wörld ✓",
			policy:   PolicyTxt,
			expected: "héllo wörld ✓",
		},
		{
			name:     "txt encodes invalid utf8",
			input:    "ok\xffok",
			policy:   PolicyTxt,
			expected: "ok<ff>ok",
		},
		{
			name:     "line escapes newlines",
			input:    "a\nb\r\tc",
			policy:   PolicyLine,
			expected: `a\nb\r\tc`,
		},
		{
			name:     "line escapes escape and invalid bytes",
			input:    "\x1b\xfe",
			policy:   PolicyLine,
			expected: `\x1b\xfe`,
		},
		{
			name:     "shell strips metacharacters",
			input:    "rm -rf $(pwd); echo `id`",
			policy:   PolicyShell,
			expected: "rm-rfpwdechoid",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := New().Policy(tc.policy)
			assert.Equal(t, tc.expected, s.Sanitize(tc.input))
		})
	}
}

func TestSanitizerRules(t *testing.T) {
	t.Run("first rule wins", func(t *testing.T) {
		s := New().
			Rule(FilterWhitespace, TransformStrip).
			Rule(FilterControl, TransformHexEncode)

		// Tab is both whitespace and control, the strip rule comes first
		assert.Equal(t, "ab<00>", s.Sanitize("a\tb\x00"))
	})

	t.Run("unknown policy ignored", func(t *testing.T) {
		s := New().Policy("nope")
		assert.Equal(t, "\x00", s.Sanitize("\x00"))
	})

	t.Run("payload", func(t *testing.T) {
		s := New().Policy(PolicyTxt)
		assert.Equal(t, "ping<00>", s.Payload([]byte("ping\x00")))
	})

	t.Run("buffer reuse", func(t *testing.T) {
		s := New().Policy(PolicyTxt)
		first := s.Sanitize("first\x01")
		second := s.Sanitize("2")
		assert.Equal(t, "first<01>", first)
		assert.Equal(t, "2", second)
	})
}

func TestIsText(t *testing.T) {
	assert.True(t, IsText([]byte("hello world\n")))
	assert.True(t, IsText([]byte("")))
	assert.False(t, IsText([]byte{0x00, 0x01}))
	assert.False(t, IsText([]byte("bad\xff")))
}

func TestHexDump(t *testing.T) {
	dump := HexDump([]byte("hello"))

	assert.Contains(t, dump, "68 65 6c 6c 6f")
	assert.Contains(t, dump, "|hello|")
	assert.False(t, strings.HasSuffix(dump, "\n"))
}
