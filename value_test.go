// Copyright 2024 The EDS Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package eds

import "testing"

func TestNewIntegerRanges(t *testing.T) {
	tests := []struct {
		name    string
		ctor    func(string) (Value, error)
		text    string
		wantErr bool
	}{
		{"sint in range", NewSint, "-128", false},
		{"sint out of range", NewSint, "128", true},
		{"uint hex", NewUint, "0x0071", false},
		{"uint out of range", NewUint, "65536", true},
		{"udint decimal", NewUdint, "4294967295", false},
		{"byte hex", NewByte, "0xFF", false},
		{"bool zero", NewBool, "0", false},
		{"bool bad", NewBool, "2", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ctor(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("ctor(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestValueFormatRoundTrip(t *testing.T) {
	v, err := NewUint("113")
	if err != nil {
		t.Fatalf("NewUint: %v", err)
	}
	if got := v.Format(); got != "113" {
		t.Errorf("Format() = %q, want %q", got, "113")
	}
	if got := v.Text(); got != "113" {
		t.Errorf("Text() = %q, want %q", got, "113")
	}
}

func TestNewStringRejectsNonPrintable(t *testing.T) {
	if _, err := NewString("hello\x01world"); err == nil {
		t.Errorf("NewString with control byte: want error, got nil")
	}
	v, err := NewString("motor speed")
	if err != nil {
		t.Fatalf("NewString: %v", err)
	}
	if v.Text() != "motor speed" {
		t.Errorf("Text() = %q", v.Text())
	}
}

func TestNewDateTwoDigitYear(t *testing.T) {
	tests := []struct {
		text     string
		wantYear int
	}{
		{"01-01-99", 1999},
		{"01-01-71", 2071},
		{"01-01-2020", 2020},
	}
	for _, tt := range tests {
		v, err := NewDate(tt.text)
		if err != nil {
			t.Fatalf("NewDate(%q): %v", tt.text, err)
		}
		if v.Date().Year != tt.wantYear {
			t.Errorf("NewDate(%q).Date().Year = %d, want %d", tt.text, v.Date().Year, tt.wantYear)
		}
	}
}

func TestNewDateRejectsImpossibleDay(t *testing.T) {
	if _, err := NewDate("13-40-1999"); err == nil {
		t.Errorf("NewDate(month 13, day 40): want error, got nil")
	}
	if _, err := NewDate("02-30-2021"); err == nil {
		t.Errorf("NewDate(Feb 30 non-leap): want error, got nil")
	}
	if _, err := NewDate("02-29-2020"); err != nil {
		t.Errorf("NewDate(Feb 29 leap year): unexpected error %v", err)
	}
}

func TestNewEPathPermitsEmptyAndBracketedSegments(t *testing.T) {
	tests := []struct {
		text    string
		wantErr bool
	}{
		{"", false},
		{"20 04 24 01", false},
		{"20 04 [Param1] 30 03", false},
		{"2004", true},  // not a two-hex-digit segment
		{"GG 01", true}, // not hex
	}
	for _, tt := range tests {
		_, err := NewEPath(tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewEPath(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
		}
	}
}

func TestNewRefMatchesStemFamily(t *testing.T) {
	v, err := NewRef("Param7", []string{"ParamN"})
	if err != nil {
		t.Fatalf("NewRef: %v", err)
	}
	if v.Text() != "Param7" {
		t.Errorf("Text() = %q", v.Text())
	}
	if _, err := NewRef("Assem1", []string{"ParamN"}); err == nil {
		t.Errorf("NewRef(Assem1, [ParamN]): want error, got nil")
	}
}

func TestNewKeywordCaseInsensitive(t *testing.T) {
	if _, err := NewKeyword("ethernetip", []string{"EtherNetIP", "DeviceNet"}); err != nil {
		t.Errorf("NewKeyword: %v", err)
	}
	if _, err := NewKeyword("nonsense", []string{"EtherNetIP", "DeviceNet"}); err == nil {
		t.Errorf("NewKeyword(nonsense): want error, got nil")
	}
}

func TestValueIsEmpty(t *testing.T) {
	v := NewEmpty()
	if !v.IsEmpty() {
		t.Errorf("NewEmpty().IsEmpty() = false, want true")
	}
	u, _ := NewUint("0")
	if u.IsEmpty() {
		t.Errorf("NewUint(0).IsEmpty() = true, want false")
	}
}
