package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name     string
		forward  string
		realIP   string
		remote   string
		expected string
	}{
		{
			name:     "X-Forwarded-For tem prioridade",
			forward:  "200.1.2.3, 10.0.0.1",
			realIP:   "201.1.1.1",
			remote:   "172.16.0.5:4312",
			expected: "200.1.2.3, 10.0.0.1",
		},
		{
			name:     "X-Real-Ip quando não há forward",
			realIP:   "201.1.1.1",
			remote:   "172.16.0.5:4312",
			expected: "201.1.1.1",
		},
		{
			name:     "RemoteAddr sem a porta como último recurso",
			remote:   "172.16.0.5:4312",
			expected: "172.16.0.5",
		},
		{
			name:     "RemoteAddr sem porta é devolvido como está",
			remote:   "172.16.0.5",
			expected: "172.16.0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.forward != "" {
				r.Header.Set("X-Forwarded-For", tt.forward)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-Ip", tt.realIP)
			}

			assert.Equal(t, tt.expected, ClientIP(r))
		})
	}
}

func TestSplitIPs(t *testing.T) {
	assert.Equal(t, []string{"200.1.2.3"}, SplitIPs("200.1.2.3"))
	assert.Equal(t, []string{"200.1.2.3", "10.0.0.1"}, SplitIPs("200.1.2.3, 10.0.0.1"))
	assert.Equal(t, []string{"200.1.2.3"}, SplitIPs(" 200.1.2.3 , , "))
	assert.Empty(t, SplitIPs(""))
}
