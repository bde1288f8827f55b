package value

import "testing"

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsy", Nil, false},
		{"false is falsy", Boolean(false), false},
		{"true is truthy", Boolean(true), true},
		{"zero is truthy", Number(0), true},
		{"empty string is truthy", Str(""), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEqualNoCrossTagCoercion(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"number equals itself", Number(1), Number(1), true},
		{"number vs boolean never equal", Number(1), Boolean(true), false},
		{"nil equals nil", Nil, Nil, true},
		{"nil vs false never equal", Nil, Boolean(false), false},
		{"string equality is by content", Str("a"), Str("a"), true},
		{"string vs number never equal", Str("1"), Number(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringFormatting(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(7), "7"},
		{Number(3.5), "3.5"},
		{Boolean(true), "true"},
		{Boolean(false), "false"},
		{Nil, "nil"},
		{Str("hello"), "hello"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
