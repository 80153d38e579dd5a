package textinput

import "testing"

func TestPhoneFormatting(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "+998"},
		{"bare prefix", "+998", "+998"},
		{"partial first group", "+99812", "+99812"},
		{"first group full", "+998123", "+998123"},
		{"second group partial", "+9981234", "+998123.4"},
		{"all groups", "+998123456789", "+998123.45.67.89"},
		{"overflow digits dropped", "+9981234567890123", "+998123.45.67.89"},
		{"letters dropped", "+998a1b2c3", "+998123"},
		{"digits without prefix kept", "901234567", "+998901.23.45.67"},
		{"separators reflowed", "+998-12-345-67-89", "+998123.45.67.89"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Phone(tc.in); got != tc.want {
				t.Fatalf("Phone(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPhoneIdempotent(t *testing.T) {
	inputs := []string{"", "+998", "+99812", "+998123.45.67.89", "misc 12 text 345", "+998 91 234 56 78"}
	for _, in := range inputs {
		once := Phone(in)
		if twice := Phone(once); twice != once {
			t.Fatalf("Phone not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}

func TestPhoneComplete(t *testing.T) {
	if !PhoneComplete("+998123.45.67.89") {
		t.Fatal("expected full number to be complete")
	}
	if PhoneComplete("+998123.45.67.8") {
		t.Fatal("expected 8-digit number to be incomplete")
	}
	if PhoneComplete("+998") {
		t.Fatal("expected bare prefix to be incomplete")
	}
	if PhoneComplete("998123456789") {
		t.Fatal("expected missing prefix to fail")
	}
}

func TestHandle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "@"},
		{"@", "@"},
		{"user", "@user"},
		{"@user", "@user"},
		{"@@user", "@user"},
		{"us@er", "@user"},
	}

	for _, tc := range cases {
		if got := Handle(tc.in); got != tc.want {
			t.Fatalf("Handle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHandleIdempotent(t *testing.T) {
	for _, in := range []string{"", "@", "abc", "@abc", "@@x"} {
		once := Handle(in)
		if twice := Handle(once); twice != once {
			t.Fatalf("Handle not idempotent on %q: %q != %q", in, twice, once)
		}
	}
}
