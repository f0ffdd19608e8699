// SPDX-License-Identifier: EPL-2.0

package timespec

import (
	"errors"
	"math"
	"testing"
)

func TestSeconds_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", 12.5, 12.5},
		{"float32", float32(2), 2},
		{"int", 90, 90},
		{"int64", int64(3600), 3600},
		{"uint", uint(7), 7},
		{"negative", -3.0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Seconds(tt.in)
			if err != nil {
				t.Fatalf("Seconds(%v) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Seconds(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeconds_HMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   HMS
		want float64
	}{
		{"plain", HMS{1, 2, 3}, 3723},
		{"seconds overflow", HMS{0, 0, 90}, 90},
		{"minutes overflow", HMS{0, 90, 0}, 5400},
		{"negative component", HMS{1, -30, 0}, 1800},
		{"fractional", HMS{0, 0, 1.5}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Seconds(tt.in)
			if err != nil {
				t.Fatalf("Seconds(%+v) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Seconds(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeconds_Strings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want float64
	}{
		{"1:2:3", 3723},
		{"00:01:30", 90},
		{"0:0:1.5", 1.5},
		{"01:30", 90},
		{"42", 42},
		{" 0:10:00 ", 600},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := Seconds(tt.in)
			if err != nil {
				t.Fatalf("Seconds(%q) error = %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Seconds(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSeconds_Errors(t *testing.T) {
	t.Parallel()

	bad := []any{
		"not a time",
		"1:2:3:4",
		"12:xx:00",
		struct{}{},
		nil,
		[]int{1, 2, 3},
	}

	for _, in := range bad {
		if _, err := Seconds(in); !errors.Is(err, ErrTimeParse) {
			t.Errorf("Seconds(%v) error = %v, want ErrTimeParse", in, err)
		}
	}
}

func TestAddSub(t *testing.T) {
	t.Parallel()

	got, err := Add("0:1:0", 30, HMS{0, 0, 15})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got != 105 {
		t.Errorf("Add() = %v, want 105", got)
	}

	got, err = Sub("0:2:0", "0:0:30")
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	if got != 90 {
		t.Errorf("Sub() = %v, want 90", got)
	}

	if _, err = Add(1, "bogus"); !errors.Is(err, ErrTimeParse) {
		t.Errorf("Add() error = %v, want ErrTimeParse", err)
	}
	if _, err = Sub("bogus", 1); !errors.Is(err, ErrTimeParse) {
		t.Errorf("Sub() error = %v, want ErrTimeParse", err)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00.000"},
		{90.5, "00:01:30.500"},
		{3723, "01:02:03.000"},
		{59.9996, "00:01:00.000"},
		{-90, "-00:01:30.000"},
		{3600*11 + 60*59 + 59.25, "11:59:59.250"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, sec := range []float64{0, 1.25, 59.999, 61, 3599.5, 86400.125} {
		got, err := Seconds(Format(sec))
		if err != nil {
			t.Fatalf("Seconds(Format(%v)) error = %v", sec, err)
		}
		if math.Abs(got-sec) > 0.0005 {
			t.Errorf("Seconds(Format(%v)) = %v", sec, got)
		}
	}
}
