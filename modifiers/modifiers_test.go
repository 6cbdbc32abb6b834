package modifiers

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringModifiers(t *testing.T) {
	tests := []struct {
		name string
		f    func(string) string
		in   string
		want string
	}{
		{name: "trim", f: TrimSpace, in: "  padded  ", want: "padded"},
		{name: "lower", f: Lower, in: "MiXeD", want: "mixed"},
		{name: "upper", f: Upper, in: "MiXeD", want: "MIXED"},
		{name: "casefold ascii", f: Casefold, in: "GooGle.COM", want: "google.com"},
		{name: "casefold eszett", f: Casefold, in: "Straße", want: "strasse"},
		{name: "email gmail dots and tag", f: NormalizeEmail, in: "Foo.Bar+spam@GMAIL.com", want: "foobar@gmail.com"},
		{name: "email invalid passes through", f: NormalizeEmail, in: "not an email", want: "not an email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.f(tt.in))
		})
	}
}

func TestToIPAddr(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "ipv4", in: "142.250.69.206", want: netip.MustParseAddr("142.250.69.206")},
		{name: "ipv6", in: "2606:2800:220:1:248:1893:25c8:1946", want: netip.MustParseAddr("2606:2800:220:1:248:1893:25c8:1946")},
		{name: "not an address", in: "google.com", want: "google.com"},
		{name: "out of range", in: "999.0.0.1", want: "999.0.0.1"},
		{name: "not a string", in: 7, want: 7},
		{name: "nil", in: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToIPAddr(tt.in))
		})
	}
}

func TestCasefoldIsSafeInParallelChains(t *testing.T) {
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				_ = Casefold("ConCurRent Straße")
			}
		}()
	}
	for range 8 {
		<-done
	}
}
