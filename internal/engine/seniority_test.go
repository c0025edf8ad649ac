package engine

import (
	"testing"

	"resumerank/internal/types"
)

func TestInferSeniority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.Seniority
	}{
		{
			name: "explicit senior",
			text: "Senior Python Engineer",
			want: types.SenioritySenior,
		},
		{
			name: "leadership title",
			text: "Staff engineer on the storage team",
			want: types.SenioritySenior,
		},
		{
			name: "lead counts as senior",
			text: "Tech lead for payments",
			want: types.SenioritySenior,
		},
		{
			name: "mid level",
			text: "Mid-level backend developer",
			want: types.SeniorityMid,
		},
		{
			name: "intermediate",
			text: "Intermediate developer, 3 years",
			want: types.SeniorityMid,
		},
		{
			name: "junior",
			text: "Junior frontend developer",
			want: types.SeniorityJunior,
		},
		{
			name: "entry level",
			text: "Entry-level position wanted",
			want: types.SeniorityJunior,
		},
		{
			name: "leadership beats junior mention",
			text: "Engineering manager, previously junior developer",
			want: types.SenioritySenior,
		},
		{
			name: "no signal",
			text: "Software developer",
			want: types.SeniorityUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferSeniority(tt.text); got != tt.want {
				t.Errorf("InferSeniority(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSeniority(t *testing.T) {
	tests := []struct {
		in   string
		want types.Seniority
	}{
		{"Senior", types.SenioritySenior},
		{"senior", types.SenioritySenior},
		{"  Mid  ", types.SeniorityMid},
		{"intermediate", types.SeniorityMid},
		{"entry", types.SeniorityJunior},
		{"Junior", types.SeniorityJunior},
		{"staff", types.SeniorityUnknown},
		{"", types.SeniorityUnknown},
		{"garbage", types.SeniorityUnknown},
	}

	for _, tt := range tests {
		if got := types.ParseSeniority(tt.in); got != tt.want {
			t.Errorf("ParseSeniority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
