package letters

import "testing"

func TestSet(t *testing.T) {
	a, err := FromString("vJrwpWtwJgWr")
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromString("hcsFMMfFFhFp")
	if err != nil {
		t.Fatal(err)
	}

	shared := a.Intersect(b)
	if shared.Len() != 1 {
		t.Fatalf("expected one shared letter, got %d", shared.Len())
	}
	if shared.Priority() != 16 {
		t.Errorf("Priority() = %d, want 16 (p)", shared.Priority())
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		letter string
		want   int
	}{
		{"a", 1},
		{"z", 26},
		{"A", 27},
		{"Z", 52},
		{"", 0},
	}

	for _, tt := range tests {
		set, err := FromString(tt.letter)
		if err != nil {
			t.Fatal(err)
		}
		if got := set.Priority(); got != tt.want {
			t.Errorf("Priority(%q) = %d, want %d", tt.letter, got, tt.want)
		}
	}
}

func TestFromString_Invalid(t *testing.T) {
	if _, err := FromString("ab1"); err == nil {
		t.Error("expected error for a digit")
	}
}
