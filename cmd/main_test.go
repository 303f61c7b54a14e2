package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sp-provision/internal/core/domain"
)

// fakePlatform serves the token endpoint and the four creation endpoints,
// echoing deterministic IDs for every submitted entry.
func fakePlatform(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/o2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"Atza|e2e","token_type":"bearer","expires_in":3600}`)
	})
	echo := func(key, idField, prefix string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer Atza|e2e", r.Header.Get("Authorization"))
			var req map[string][]json.RawMessage
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			success := make([]map[string]any, 0, len(req[key]))
			for i := range req[key] {
				success = append(success, map[string]any{"index": i, idField: prefix + strconv.Itoa(i+1)})
			}
			w.WriteHeader(http.StatusMultiStatus)
			_ = json.NewEncoder(w).Encode(map[string]any{key: map[string]any{"success": success, "error": []any{}}})
		}
	}
	mux.HandleFunc("POST /sp/campaigns", echo("campaigns", "campaignId", "C"))
	mux.HandleFunc("POST /sp/adGroups", echo("adGroups", "adGroupId", "AG"))
	mux.HandleFunc("POST /sp/keywords", echo("keywords", "keywordId", "KW"))
	mux.HandleFunc("POST /sp/productAds", echo("productAds", "adId", "AD"))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunCommand(t *testing.T) {
	srv := fakePlatform(t)
	chdir(t, t.TempDir())
	t.Setenv("ADS_CLIENT_ID", "client")
	t.Setenv("ADS_CLIENT_SECRET", "secret")
	t.Setenv("ADS_REFRESH_TOKEN", "refresh")
	t.Setenv("ADS_PROFILE_ID", "profile")
	t.Setenv("ADS_TOKEN_URL", srv.URL+"/auth/o2/token")
	t.Setenv("ADS_API_URL", srv.URL)
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run"})
	require.NoError(t, cmd.Execute())

	var result domain.ProvisionResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, domain.ProvisionResult{
		CampaignID:   "C1",
		AdGroupID:    "AG1",
		KeywordIDs:   []string{"KW1", "KW2", "KW3"},
		ProductAdIDs: []string{"AD1", "AD2", "AD3"},
	}, result)
}

func TestRunCommandMissingCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{"ADS_CLIENT_ID", "ADS_CLIENT_SECRET", "ADS_REFRESH_TOKEN", "ADS_PROFILE_ID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	assert.Error(t, cmd.Execute())
}

// chdir changes the working directory for the duration of the test,
// restoring the original one on cleanup (equivalent of t.Chdir).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
