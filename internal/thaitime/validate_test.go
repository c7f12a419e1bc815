package thaitime

import "testing"

func TestZone_IsValidDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2020-04-20", true},
		{"2020/04/20", true},
		{"2020/04-20", false},
		{"2020-04/20", false},
		{"2020-02-29", true},
		{"2019-02-29", false},
		{"2020-4-20", false},
		{"2020-13-01", false},
		{"2020-04-31", false},
		{"2020-04-00", false},
		{"abcdefghij", false},
		{"", false},
		{"2020-04-20 ", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Thai.IsValidDate(tt.input); got != tt.want {
				t.Errorf("Thai.IsValidDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for _, offset := range []float64{-8, 0, 5.5} {
				if got := IsValidDate(tt.input, offset); got != tt.want {
					t.Errorf("IsValidDate(%q, %v) = %v, want %v", tt.input, offset, got, tt.want)
				}
			}
		})
	}
}

func TestZone_IsValidTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"9:59", false},
		{"09:59", true},
		{"15:20", true},
		{"15:20:59", true},
		{"15:20:49:293", true},
		{"15:20:49.293", true},
		{"24:20:49:293", false},
		{"23:60", false},
		{"23:59:60", false},
		{"ab:cd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Thai.IsValidTime(tt.input); got != tt.want {
				t.Errorf("Thai.IsValidTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsValidTime(tt.input, 0); got != tt.want {
				t.Errorf("IsValidTime(%q, 0) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestZone_IsValidDateTime(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2020/04/20 5:20", false},
		{"2020/04/20 15:20", true},
		{"2020/04/16 15:20:59", true},
		{"2020/04/16 15:20:59.999", true},
		{"2020-04-16 15:20:59.999", true},
		{"2020-04-16T15:20:59.999", false},
		{"2020/04-16 15:20:59", false},
		{"2019-02-29 15:20", false},
		{"2020-02-29 25:20", false},
		{"2020-02-29", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Thai.IsValidDateTime(tt.input); got != tt.want {
				t.Errorf("Thai.IsValidDateTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := IsValidDateTime(tt.input, -3); got != tt.want {
				t.Errorf("IsValidDateTime(%q, -3) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
