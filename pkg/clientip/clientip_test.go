package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordidev/recetaskit/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	newReq := func(remoteAddr string, headers map[string]string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req
	}

	tests := []struct {
		name string
		req  *http.Request
		want string
	}{
		{
			name: "tunnel header wins",
			req: newReq("10.0.0.1:443", map[string]string{
				"CF-Connecting-IP": "203.0.113.7",
				"X-Forwarded-For":  "198.51.100.1",
			}),
			want: "203.0.113.7",
		},
		{
			name: "first valid forwarded entry",
			req: newReq("10.0.0.1:443", map[string]string{
				"X-Forwarded-For": "not-an-ip, 198.51.100.1, 10.0.0.2",
			}),
			want: "198.51.100.1",
		},
		{
			name: "real ip fallback",
			req:  newReq("10.0.0.1:443", map[string]string{"X-Real-IP": "198.51.100.9"}),
			want: "198.51.100.9",
		},
		{
			name: "remote addr fallback",
			req:  newReq("203.0.113.50:54321", nil),
			want: "203.0.113.50",
		},
		{
			name: "spoofed garbage is ignored",
			req: newReq("203.0.113.50:54321", map[string]string{
				"CF-Connecting-IP": "<script>alert(1)</script>",
			}),
			want: "203.0.113.50",
		},
		{
			name: "ipv6 is normalized",
			req:  newReq("[2001:db8::1]:443", nil),
			want: "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clientip.GetIP(tt.req))
		})
	}
}
