package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDailyObservations(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/daily", r.URL.Path)
			assert.Equal(t, "2024-01-01", r.URL.Query().Get("start"))
			assert.Equal(t, "2024-01-31", r.URL.Query().Get("end"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"station":"KNYC","date":"2024-01-01","tmax":8.3,"tmin":1.1,"prcp":0.5}]`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0, nil)
		obs, err := client.DailyObservations(context.Background(), "2024-01-01", "2024-01-31")
		require.NoError(t, err)
		require.Len(t, obs, 1)
		assert.Equal(t, "KNYC", obs[0].Station)
		assert.Equal(t, 8.3, obs[0].TMax)
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0, nil)
		_, err := client.DailyObservations(context.Background(), "2024-01-01", "2024-01-31")
		assert.ErrorContains(t, err, "status 502")
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, 0, nil)
		_, err := client.DailyObservations(context.Background(), "2024-01-01", "2024-01-31")
		assert.ErrorContains(t, err, "decode weather response")
	})

	t.Run("unreachable proxy", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1", 0, nil)
		_, err := client.DailyObservations(context.Background(), "2024-01-01", "2024-01-31")
		assert.Error(t, err)
	})
}
