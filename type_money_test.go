package gbce

import "testing"

func TestMoneyRound(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "tie rounds away from zero", in: "0.005", want: "0.01"},
		{name: "tie above one", in: "1.005", want: "1.01"},
		{name: "tie on odd cent", in: "2.675", want: "2.68"},
		{name: "below tie truncates", in: "100.0333", want: "100.03"},
		{name: "above tie rounds up", in: "100.036", want: "100.04"},
		{name: "already 2 digits unchanged", in: "95.50", want: "95.5"},
		{name: "integer unchanged", in: "42", want: "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseMoney(tc.in)
			if err != nil {
				t.Fatalf("ParseMoney(%q): %v", tc.in, err)
			}
			got := m.Round()
			want, err := ParseMoney(tc.want)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("Round(%s) = %s, want %s", tc.in, got.value, tc.want)
			}
			// Rounding is idempotent: a second pass changes nothing.
			if !got.Round().Equal(got) {
				t.Errorf("Round is not idempotent on %s", tc.in)
			}
		})
	}
}

func TestPennies(t *testing.T) {
	if got, want := Pennies(9550), mustMoney(t, "95.50"); !got.Equal(want) {
		t.Errorf("Pennies(9550) = %s, want %s", got.value, want.value)
	}
	if !Pennies(0).IsZero() {
		t.Error("Pennies(0) is not zero")
	}
	if !Pennies(-1).IsNegative() {
		t.Error("Pennies(-1) is not negative")
	}
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		pennies int64
		want    string
	}{
		{pennies: 9550, want: "£95.50"},
		{pennies: 8, want: "£0.08"},
		{pennies: 1000333, want: "£10,003.33"},
	}
	for _, tc := range testCases {
		if got := Pennies(tc.pennies).String(); got != tc.want {
			t.Errorf("Pennies(%d).String() = %q, want %q", tc.pennies, got, tc.want)
		}
	}
}

func TestParseMoneyRejectsGarbage(t *testing.T) {
	if _, err := ParseMoney("ten pounds"); err == nil {
		t.Error("ParseMoney accepted a non-numeric amount")
	}
}

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := ParseMoney(s)
	if err != nil {
		t.Fatal(err)
	}
	return m
}
