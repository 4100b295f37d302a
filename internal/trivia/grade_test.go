package trivia

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		submitted string
		expected  string
		want      bool
	}{
		{"Paris", "Paris", true},
		{" Paris ", "paris", true},
		{"PARIS", "paris", true},
		{"\tparis\n", "Paris", true},
		{"Paris", "France", false},
		{"", "", true},
		{"  ", "", true},
		{"par is", "paris", false},
	}

	for _, tc := range tests {
		got := Grade(tc.submitted, tc.expected)
		if got != tc.want {
			t.Errorf("Grade(%q, %q) = %v, want %v", tc.submitted, tc.expected, got, tc.want)
		}
	}
}
