package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"sports":["tennis"]}`,
			want: `{"sports":["tennis"]}`,
		},
		{
			name: "markdown fences",
			in:   "```json\n{\"sports\":[\"tennis\"]}\n```",
			want: `{"sports":["tennis"]}`,
		},
		{
			name: "surrounding prose",
			in:   `Here you go: {"sports":[]} hope that helps!`,
			want: `{"sports":[]}`,
		},
		{
			name: "nested objects",
			in:   `{"a": {"b": 1}}`,
			want: `{"a": {"b": 1}}`,
		},
		{
			name: "closing brace inside string value",
			in:   `{"summary": "events} and more", "sports": []}`,
			want: `{"summary": "events} and more", "sports": []}`,
		},
		{
			name: "escaped quote inside string value",
			in:   `{"summary": "say \"}\" out loud"}`,
			want: `{"summary": "say \"}\" out loud"}`,
		},
		{
			name: "no object at all",
			in:   "no braces here",
			want: "no braces here",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSON(tt.in))
		})
	}
}
