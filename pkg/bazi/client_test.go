package bazi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFetch(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bazi", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"八字": "庚午 辛巳 丙寅 乙未",
				"日主": "丙",
				"生肖": "Horse",
				"阳历": "1990-05-15 14:30",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	chart, err := client.Fetch(context.Background(), "1990-05-15", "14:30", "Karachi, Pakistan", "male")

	assert.Equal(t, nil, err)
	assert.Equal(t, "1990-05-15T14:30:00+05:00", gotBody["solarDatetime"])
	assert.Equal(t, float64(1), gotBody["gender"])
	assert.Equal(t, "庚午 辛巳 丙寅 乙未", chart.EightChars())
	assert.Equal(t, "丙", chart.DayMaster())
	assert.Equal(t, "Horse", chart.Zodiac())
}

func TestFetch_FemaleGenderFlag(t *testing.T) {
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"生肖": "Horse"},
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), "1990-05-15", "14:30", "Tokyo", "female")

	assert.Equal(t, nil, err)
	assert.Equal(t, float64(0), gotBody["gender"])
}

func TestFetch_UpstreamFailurePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "invalid solar datetime",
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), "1990-05-15", "14:30", "Karachi", "male")

	var svcErr *ServiceError
	assert.Equal(t, true, errors.As(err, &svcErr))
	assert.Equal(t, "invalid solar datetime", svcErr.Message)
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), "1990-05-15", "14:30", "Karachi", "male")

	var svcErr *ServiceError
	assert.Equal(t, true, errors.As(err, &svcErr))
	assert.Equal(t, http.StatusInternalServerError, svcErr.Status)
}

func TestFetch_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background(), "1990-05-15", "14:30", "Karachi", "male")

	var svcErr *ServiceError
	assert.Equal(t, true, errors.As(err, &svcErr))
	assert.Equal(t, 0, svcErr.Status)
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.Equal(t, true, client.HealthCheck(context.Background()))

	srv.Close()
	assert.Equal(t, false, client.HealthCheck(context.Background()))
}
