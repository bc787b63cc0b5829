package validation

import (
	"testing"
	"time"
)

func TestBusinessNumberChecksum(t *testing.T) {
	tests := []struct {
		number   string
		expected bool
	}{
		{"123-45-67891", true}, // weighted sum 165 + 4, check digit 1
		{"000-00-00000", true},
		{"987-65-43215", true},
		{"120-81-47521", true},
		{"123-45-67890", false}, // wrong check digit
		{"120-81-47522", false},
		{"123-45-6789", false},   // too short
		{"123-45-678911", false}, // too long
		{"abc-de-fghij", false},  // not digits
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			if got := BusinessNumberChecksumOK(tt.number); got != tt.expected {
				t.Errorf("BusinessNumberChecksumOK(%q) = %v, want %v", tt.number, got, tt.expected)
			}
		})
	}
}

// checksumFor mirrors the production arithmetic so the fixture check digits
// above stay honest.
func checksumFor(first9 string) int {
	weights := [9]int{1, 3, 7, 1, 3, 7, 1, 3, 5}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(first9[i]-'0') * weights[i]
	}
	sum += int(first9[8]-'0') * 5 / 10
	return (10 - sum%10) % 10
}

func TestBusinessNumberChecksumRoundTrip(t *testing.T) {
	// For arbitrary 9-digit prefixes, appending the computed check digit must
	// validate and every other final digit must not.
	prefixes := []string{"123456789", "000000000", "987654321", "120814752"}
	for _, prefix := range prefixes {
		check := checksumFor(prefix)
		for d := 0; d <= 9; d++ {
			full := prefix + string(rune('0'+d))
			formatted := full[:3] + "-" + full[3:5] + "-" + full[5:]
			want := d == check
			if got := BusinessNumberChecksumOK(formatted); got != want {
				t.Errorf("BusinessNumberChecksumOK(%q) = %v, want %v", formatted, got, want)
			}
		}
	}
}

func TestValidateBusinessNumberFormat(t *testing.T) {
	valid := FormatBusinessNumber("1234567891")
	if valid != "123-45-67891" {
		t.Fatalf("FormatBusinessNumber = %q", valid)
	}
	if ok, _ := ValidateBusinessNumber("12345-67891"); ok {
		t.Error("malformed number must be rejected before checksum")
	}
	if ok, msg := ValidateBusinessNumber("123-45-67891"); !ok {
		t.Errorf("valid number rejected: %q", msg)
	}
	if ok, _ := ValidateBusinessNumber("123-45-67890"); ok {
		t.Error("bad check digit must be rejected")
	}
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		birthDate string
		expected  int
	}{
		{"2012-09-01", 14}, // birthday today
		{"2012-09-02", 13}, // birthday tomorrow
		{"2012-08-31", 14},
		{"2000-01-01", 26},
		{"not-a-date", -1},
	}

	for _, tt := range tests {
		t.Run(tt.birthDate, func(t *testing.T) {
			if got := Age(tt.birthDate, now); got != tt.expected {
				t.Errorf("Age(%q) = %d, want %d", tt.birthDate, got, tt.expected)
			}
		})
	}

	if !AgeOK("2012-09-01", now) {
		t.Error("exactly 14 must pass")
	}
	if AgeOK("2012-09-02", now) {
		t.Error("13 must fail")
	}
}

func TestChannelURLOK(t *testing.T) {
	tests := []struct {
		channelType string
		url         string
		expected    bool
	}{
		{"instagram", "https://instagram.com/some.user", true},
		{"instagram", "https://www.instagram.com/some_user/", true},
		{"instagram", "https://instagram.com/user/extra", false},
		{"youtube", "https://youtube.com/@channel", true},
		{"youtube", "https://youtu.be/abc123", true},
		{"youtube", "https://vimeo.com/abc123", false},
		{"blog", "https://myname.tistory.com/entry/1", true},
		{"blog", "https://example.org", false},
		{"tiktok", "https://www.tiktok.com/@dancer", true},
		{"tiktok", "https://tiktok.com/dancer", false},
		{"twitter", "https://twitter.com/user", false}, // unsupported type
	}

	for _, tt := range tests {
		t.Run(tt.channelType+"_"+tt.url, func(t *testing.T) {
			if got := ChannelURLOK(tt.channelType, tt.url); got != tt.expected {
				t.Errorf("ChannelURLOK(%q, %q) = %v, want %v", tt.channelType, tt.url, got, tt.expected)
			}
		})
	}
}
