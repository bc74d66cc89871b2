package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/akshad/studyquest/releases/latest", r.URL.Path)
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/akshad/studyquest/releases/tag/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckFindsNewerRelease(t *testing.T) {
	srv := releaseServer(t, "v1.4.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.3"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
	assert.Equal(t, "v1.2.3", result.CurrentVersion)
	assert.Contains(t, result.ReleaseURL, "v1.4.0")
}

func TestCheckAlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.2.3")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.3"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckOlderReleaseNotOffered(t *testing.T) {
	srv := releaseServer(t, "v1.0.0")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.3"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckRejectsDevBuild(t *testing.T) {
	c := NewChecker()
	for _, v := range []string{"(devel)", "dev", "", "not-a-version"} {
		_, err := c.Check(context.Background(), &CheckInput{Version: v})
		assert.True(t, errors.Is(err, ErrDevBuild), "version %q", v)
	}
}

func TestCheckSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewChecker(WithAPIBaseURL(srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheckRejectsNonSemverTag(t *testing.T) {
	srv := releaseServer(t, "nightly")
	c := NewChecker(WithAPIBaseURL(srv.URL))

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.3", "v1.2.3"},
		{"1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"(devel)", ""},
		{"", ""},
		{"banana", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in), "input %q", tt.in)
	}
}
