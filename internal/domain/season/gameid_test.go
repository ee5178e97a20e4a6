package season

import "testing"

func TestParseGameID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want GameInfo
	}{
		{id: "GWBB2025-20250110-H-Central", want: GameInfo{Date: "2025-01-10", Site: "vs", Opponent: "Central"}},
		{id: "GWBB2025-20250117-A-North-Valley", want: GameInfo{Date: "2025-01-17", Site: "@", Opponent: "North-Valley"}},
		{id: "G1", want: GameInfo{}},
		{id: "", want: GameInfo{}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()
			if got := ParseGameID(tt.id); got != tt.want {
				t.Fatalf("ParseGameID(%q) = %+v, want %+v", tt.id, got, tt.want)
			}
		})
	}
}
