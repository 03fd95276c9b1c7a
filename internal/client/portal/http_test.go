package portal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/amcdesk/onboard/internal/client/imports"
	"github.com/amcdesk/onboard/internal/client/models"
)

func TestGetOnboarding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/portal/onboarding", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "ob-1",
			"status": "draft",
			"current_step": 2,
			"step1_company_contract": {"company_name": "Acme"}
		}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok-123", time.Second)
	defer c.Close()

	rec, err := c.GetOnboarding(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ob-1", rec.ID)
	require.Equal(t, models.StatusDraft, rec.Status)
	require.Equal(t, 2, rec.CurrentStep)
	require.Equal(t, "Acme", rec.Steps["step1_company_contract"]["company_name"])
}

func TestSaveOnboarding_BodyShape(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/portal/onboarding", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	steps := map[string]models.StepData{
		"step1_company_contract": {"company_name": "Acme"},
		"step3_device_categories": {
			"has_laptops": true,
		},
	}
	require.NoError(t, c.SaveOnboarding(context.Background(), 3, steps))

	// step payloads are flattened next to current_step, not nested
	require.Equal(t, float64(3), got["current_step"])
	step1, ok := got["step1_company_contract"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Acme", step1["company_name"])
	require.NotContains(t, got, "steps")
}

func TestSubmit(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/portal/onboarding/submit", r.URL.Path)
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	require.NoError(t, c.Submit(context.Background()))
	require.True(t, called)
}

func TestUploadDevices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/portal/onboarding/upload-devices", r.URL.Path)

		var body struct {
			Devices []map[string]string `json:"devices"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Devices, 2)
		require.Equal(t, "SN-1", body.Devices[0]["Serial Number*"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"count": 2,
			"devices": [
				{"id": "dev_a", "device_type": "laptop", "serial_number": "SN-1"},
				{"id": "dev_b", "device_type": "desktop", "serial_number": "SN-2"}
			]
		}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	rows := []imports.RawRow{
		{"Serial Number*": "SN-1", "Device Type*": "Laptop"},
		{"Serial Number*": "SN-2", "Device Type*": "Desktop"},
	}
	count, devices, err := c.UploadDevices(context.Background(), rows)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, devices, 2)
	require.Equal(t, models.DeviceTypeLaptop, devices[0].DeviceType)
}

func TestDownloadTemplate_CategoriesQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/portal/onboarding/device-template", r.URL.Path)
		gotQuery = r.URL.Query().Get("categories")
		_, _ = w.Write([]byte("xlsx-bytes"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	data, err := c.DownloadTemplate(context.Background(), []string{"laptops", "printers"})
	require.NoError(t, err)
	require.Equal(t, []byte("xlsx-bytes"), data)
	require.Equal(t, "laptops,printers", gotQuery)
}

func TestDownloadTemplate_NoCategoriesOmitsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte("full-template"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	data, err := c.DownloadTemplate(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, []byte("full-template"), data)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		target error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := NewHTTPClient(srv.URL, "tok", time.Second)
			defer c.Close()

			_, err := c.GetOnboarding(context.Background())
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestServerErrorIncludesBodySnippet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "record locked by admin", http.StatusConflict)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	err := c.Submit(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "409")
	require.Contains(t, err.Error(), "record locked by admin")
}

func TestNetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, "tok", time.Second)
	defer c.Close()

	_, err := c.GetOnboarding(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}
