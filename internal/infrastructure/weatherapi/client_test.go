package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_CurrentParsesConditions(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weather":[{"main":"Clouds","icon":"04d"}],"main":{"temp":18.5}}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)

	snap, err := client.Current(context.Background(), "São Paulo")
	require.NoError(t, err)
	require.Equal(t, "Clouds", snap.Main)
	require.Equal(t, "04d", snap.Icon)
	require.InDelta(t, 18.5, snap.TempC, 0.001)
	require.Contains(t, gotQuery, "units=metric")
	require.Contains(t, gotQuery, "appid=test-key")

	require.Equal(t, "Clouds, 18.5°C", snap.Text())
}

func TestClient_NonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"city not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	_, err := client.Current(context.Background(), "Atlantis")
	require.Error(t, err)
}

func TestClient_EmptyConditionsIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"weather":[],"main":{"temp":10}}`))
	}))
	defer srv.Close()

	client := New(Config{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	_, err := client.Current(context.Background(), "Paris")
	require.Error(t, err)
}

func TestClient_WithoutAPIKeyIsUnconfigured(t *testing.T) {
	client := New(Config{}, nil)
	require.False(t, client.Configured())

	_, err := client.Current(context.Background(), "Paris")
	require.Error(t, err)
}
