package player

import "testing"

func TestFieldNamesRoundTrip(t *testing.T) {
	for _, f := range Fields() {
		got, ok := ParseField(f.String())
		if !ok || got != f {
			t.Errorf("ParseField(%q) = %v, %v; want %v", f.String(), got, ok, f)
		}
	}
	if _, ok := ParseField("rpc"); ok {
		t.Error("unknown name should not resolve")
	}
	if Field(200).String() != "unknown" {
		t.Errorf("out of range String = %q", Field(200).String())
	}
}

func TestDefaultLayoutCoversEveryField(t *testing.T) {
	l := DefaultLayout()
	if err := l.Validate(DefaultWidth, DefaultHeight); err != nil {
		t.Fatalf("built-in layout invalid: %v", err)
	}
	for _, f := range Fields() {
		if _, ok := l.Region(f.String()); !ok {
			t.Errorf("built-in layout has no %s region", f)
		}
	}
	for _, name := range l.Names() {
		if _, ok := ParseField(name); !ok {
			t.Errorf("built-in layout names unknown field %q", name)
		}
	}
}
