package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatewaylab/admitkit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for single",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			remoteAddr: "10.0.0.1:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for chain takes first valid",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 198.51.100.2, 10.0.0.1"},
			remoteAddr: "10.0.0.1:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for skips garbage entries",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip, 198.51.100.2"},
			remoteAddr: "10.0.0.1:1234",
			want:       "198.51.100.2",
		},
		{
			name:       "x-real-ip fallback",
			headers:    map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr: "10.0.0.1:1234",
			want:       "198.51.100.2",
		},
		{
			name:       "remote addr fallback strips port",
			remoteAddr: "192.0.2.9:4321",
			want:       "192.0.2.9",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.9",
			want:       "192.0.2.9",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "nothing valid",
			headers:    map[string]string{"X-Forwarded-For": "garbage"},
			remoteAddr: "also-garbage",
			want:       "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}
