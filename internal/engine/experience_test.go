package engine

import "testing"

func TestExtractYears(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "explicit figure",
			text: "I have 5 years of experience",
			want: 5,
		},
		{
			name: "takes the maximum",
			text: "3 years at Acme, then 8 years at Globex",
			want: 8,
		},
		{
			name: "singular year",
			text: "1 year of professional work",
			want: 1,
		},
		{
			name: "case insensitive",
			text: "10 YEARS in infrastructure",
			want: 10,
		},
		{
			name: "senior fallback",
			text: "Senior backend engineer",
			want: 7,
		},
		{
			name: "principal fallback",
			text: "Principal architect for the platform team",
			want: 7,
		},
		{
			name: "mid fallback",
			text: "Mid-level developer",
			want: 4,
		},
		{
			name: "junior fallback",
			text: "Junior developer seeking first role",
			want: 1,
		},
		{
			name: "explicit figure beats fallback",
			text: "Senior engineer with 2 years experience",
			want: 2,
		},
		{
			name: "no signal",
			text: "Developer",
			want: 0,
		},
		{
			name: "digits without years keyword ignored",
			text: "Worked on 25 microservices",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractYears(tt.text); got != tt.want {
				t.Errorf("ExtractYears(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
