package quizgen

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"items":[]}`,
			want: `{"items":[]}`,
		},
		{
			name: "prose before and after",
			in:   `Sure! Here it is: {"items":[]} Hope that helps.`,
			want: `{"items":[]}`,
		},
		{
			name: "code fence",
			in:   "```json\n{\"items\":[]}\n```",
			want: `{"items":[]}`,
		},
		{
			name: "nested objects",
			in:   `{"a":{"b":{"c":1}}}`,
			want: `{"a":{"b":{"c":1}}}`,
		},
		{
			name: "braces inside strings",
			in:   `{"question":"What does } mean in {code}?"}`,
			want: `{"question":"What does } mean in {code}?"}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"q":"say \"hi\" {now}"}`,
			want: `{"q":"say \"hi\" {now}"}`,
		},
		{
			name:    "no object",
			in:      "I could not generate a quiz.",
			wantErr: true,
		},
		{
			name:    "unterminated object",
			in:      `{"items":[`,
			wantErr: true,
		},
		{
			name: "only first object",
			in:   `{"a":1} {"b":2}`,
			want: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
