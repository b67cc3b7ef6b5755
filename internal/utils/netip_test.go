package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseHostNoPort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"192.0.2.1:8080", "192.0.2.1"},
		{"192.0.2.1", "192.0.2.1"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"example.com:80", "example.com"},
	}
	for _, tt := range tests {
		if got := ParseHostNoPort(tt.in); got != tt.want {
			t.Errorf("ParseHostNoPort(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstForwardedFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"198.51.100.1", "198.51.100.1"},
		{"198.51.100.1, 10.0.0.1", "198.51.100.1"},
		{"  198.51.100.1 , 10.0.0.1", "198.51.100.1"},
	}
	for _, tt := range tests {
		if got := FirstForwardedFor(tt.in); got != tt.want {
			t.Errorf("FirstForwardedFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	req.Header.Set("X-Real-IP", "198.51.100.9")

	if got := ClientIP(req, false); got != "10.0.0.1" {
		t.Errorf("ClientIP(untrusted) = %q, want RemoteAddr host", got)
	}
	if got := ClientIP(req, true); got != "198.51.100.7" {
		t.Errorf("ClientIP(trusted) = %q, want first forwarded IP", got)
	}

	req.Header.Del("X-Forwarded-For")
	if got := ClientIP(req, true); got != "198.51.100.9" {
		t.Errorf("ClientIP(trusted, no XFF) = %q, want X-Real-IP", got)
	}

	req.Header.Del("X-Real-IP")
	if got := ClientIP(req, true); got != "10.0.0.1" {
		t.Errorf("ClientIP(trusted, no headers) = %q, want RemoteAddr host", got)
	}
}
