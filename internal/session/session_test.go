package session

import (
	"reflect"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []Session
	}{
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
		{
			name: "single session",
			out:  "work|1|1700000000\n",
			want: []Session{
				{Name: "work", Attached: 1, Created: time.Unix(1700000000, 0)},
			},
		},
		{
			name: "multiple sessions keep order",
			out:  "a|0|100\nb|2|200\nc|0|300\n",
			want: []Session{
				{Name: "a", Attached: 0, Created: time.Unix(100, 0)},
				{Name: "b", Attached: 2, Created: time.Unix(200, 0)},
				{Name: "c", Attached: 0, Created: time.Unix(300, 0)},
			},
		},
		{
			name: "extra delimiters leave created unparsable",
			out:  "odd|1|100|extra\n",
			want: []Session{
				{Name: "odd", Attached: 1},
			},
		},
		{
			name: "malformed lines skipped",
			out:  "work|1|100\ngarbage\n|0|200\n\nscratch|0|300\n",
			want: []Session{
				{Name: "work", Attached: 1, Created: time.Unix(100, 0)},
				{Name: "scratch", Attached: 0, Created: time.Unix(300, 0)},
			},
		},
		{
			name: "non-numeric fields become zero values",
			out:  "work|yes|soon\n",
			want: []Session{
				{Name: "work"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	sessions := []Session{
		{Name: "old-idle", Attached: 0, Created: time.Unix(100, 0)},
		{Name: "new-idle", Attached: 0, Created: time.Unix(300, 0)},
		{Name: "attached", Attached: 1, Created: time.Unix(200, 0)},
		{Name: "b-tied", Attached: 0, Created: time.Unix(300, 0)},
	}
	Sort(sessions)

	expected := []string{"attached", "b-tied", "new-idle", "old-idle"}
	for i, s := range sessions {
		if s.Name != expected[i] {
			t.Errorf("position %d: got %q, want %q", i, s.Name, expected[i])
		}
	}
}

func TestSortTieBrokenByName(t *testing.T) {
	sessions := []Session{
		{Name: "zeta", Attached: 0, Created: time.Unix(100, 0)},
		{Name: "alpha", Attached: 0, Created: time.Unix(100, 0)},
	}
	Sort(sessions)
	if sessions[0].Name != "alpha" || sessions[1].Name != "zeta" {
		t.Errorf("tie order = [%s %s], want [alpha zeta]", sessions[0].Name, sessions[1].Name)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		expect  string
	}{
		{30, "30s"},
		{90, "1m"},
		{3600, "1h"},
		{3660, "1h 1m"},
		{86400, "1d"},
		{90000, "1d 1h"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			d := time.Duration(tt.seconds) * time.Second
			got := FormatDuration(d)
			if got != tt.expect {
				t.Errorf("FormatDuration(%ds) = %q, want %q", tt.seconds, got, tt.expect)
			}
		})
	}
}
