package aoc2022day06

import "testing"

func TestRun(t *testing.T) {
	tests := []struct {
		input string
		want1 string
		want2 string
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb\n", "7 (jpqm)", "19 (qmgbljsphdztnv)"},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", "5 (vwbj)", "23 (vbhsrlpgdmjqwf)"},
		{"nppdvjthqldpwncqszvftbrmjlhg", "6 (pdvj)", "23 (ldpwncqszvftbr)"},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", "10 (rfnt)", "29 (wmzdfjlvtqnbhc)"},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", "11 (zqfr)", "26 (jwzlrfnpqdbhtm)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Part1(tt.input)
			if err != nil || got != tt.want1 {
				t.Errorf("Part1() = %q, %v, want %q", got, err, tt.want1)
			}
			got, err = Part2(tt.input)
			if err != nil || got != tt.want2 {
				t.Errorf("Part2() = %q, %v, want %q", got, err, tt.want2)
			}
		})
	}
}

func TestRun_NoMarker(t *testing.T) {
	if _, err := Part1("aaaaaa"); err == nil {
		t.Error("expected error when no marker exists")
	}
}
