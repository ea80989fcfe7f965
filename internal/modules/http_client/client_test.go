package http_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRequestOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Accept", r.Header.Get("Accept"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := NewWithTimeout(time.Second)
	req, err := c.NewRequest(http.MethodGet, srv.URL, WithContext(ctx), WithHeader("Accept", "image/*"))
	require.NoError(t, err)
	require.Equal(t, ctx, req.Context())

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "image/*", resp.Header.Get("X-Accept"))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New()
	req, err := c.NewRequest(http.MethodGet, "http://127.0.0.1:1", WithContext(ctx))
	require.NoError(t, err)
	_, err = c.Do(req)
	require.ErrorIs(t, err, context.Canceled)
}

func TestIsPublic(t *testing.T) {
	cases := map[string]bool{
		"93.184.216.34":        true,
		"2606:4700:4700::1111": true,
		"127.0.0.1":            false,
		"::1":                  false,
		"10.1.2.3":             false,
		"172.16.0.1":           false,
		"192.168.1.1":          false,
		"169.254.169.254":      false,
		"fe80::1":              false,
		"fd00::1":              false,
		"0.0.0.0":              false,
		"100.64.0.1":           false,
		"224.0.0.1":            false,
	}
	for addr, want := range cases {
		require.Equal(t, want, isPublic(netip.MustParseAddr(addr)), addr)
	}
}

func TestPublicClientRefusesLoopback(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	c := NewPublic(time.Second)
	req, err := c.NewRequest(http.MethodGet, srv.URL)
	require.NoError(t, err)
	_, err = c.Do(req)
	require.ErrorIs(t, err, ErrForbiddenAddress)
	require.False(t, hit)
}
