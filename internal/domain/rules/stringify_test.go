package rules

import "testing"

func TestApplyDoubleStringify(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		want        string
		wantChanged bool
	}{
		{
			name:        "literal and expression",
			line:        "console.log(`${JSON.stringify(`Found user`)} ${JSON.stringify(user.id)}`);",
			want:        "console.log(`Found user user.id`);",
			wantChanged: true,
		},
		{
			name:        "indentation preserved",
			line:        "      console.log(`${JSON.stringify(`Created record`)} ${JSON.stringify(record.id)}`);",
			want:        "      console.log(`Created record record.id`);",
			wantChanged: true,
		},
		{
			name:        "trailing backtick stripped from expression",
			line:        "console.log(`${JSON.stringify(`Deleted record`)} ${JSON.stringify(record.id`)}`);",
			want:        "console.log(`Deleted record record.id`);",
			wantChanged: true,
		},
		{
			name:        "single wrap is not touched",
			line:        "console.log(`${JSON.stringify(`Updated account`)}`);",
			want:        "console.log(`${JSON.stringify(`Updated account`)}`);",
			wantChanged: false,
		},
		{
			name:        "clean line passes through",
			line:        "console.log(`Found user user.id`);",
			want:        "console.log(`Found user user.id`);",
			wantChanged: false,
		},
		{
			name:        "unrelated code passes through",
			line:        "const user = await storage.getUser(id);",
			want:        "const user = await storage.getUser(id);",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ApplyDoubleStringify(tt.line)
			if got != tt.want {
				t.Fatalf("ApplyDoubleStringify(%q) = %q, want %q", tt.line, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Fatalf("ApplyDoubleStringify(%q) changed = %v, want %v", tt.line, changed, tt.wantChanged)
			}
		})
	}
}

func TestApplySingleStringify(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		want        string
		wantChanged bool
	}{
		{
			name:        "single literal unwrapped",
			line:        "console.log(`${JSON.stringify(`Processing request`)}`);",
			want:        "console.log(`Processing request`);",
			wantChanged: true,
		},
		{
			name:        "indentation preserved",
			line:        "    console.log(`${JSON.stringify(`Server started`)}`);",
			want:        "    console.log(`Server started`);",
			wantChanged: true,
		},
		{
			name:        "clean line passes through",
			line:        "console.log(`Server started`);",
			want:        "console.log(`Server started`);",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ApplySingleStringify(tt.line)
			if got != tt.want {
				t.Fatalf("ApplySingleStringify(%q) = %q, want %q", tt.line, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Fatalf("ApplySingleStringify(%q) changed = %v, want %v", tt.line, changed, tt.wantChanged)
			}
		})
	}
}
