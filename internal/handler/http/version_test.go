package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-deed-keeper/internal/config"
	"github.com/MKhiriev/go-deed-keeper/internal/logger"
	"github.com/MKhiriev/go-deed-keeper/internal/mock"
	"github.com/MKhiriev/go-deed-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newVersionHandler(t *testing.T, version string) *Handler {
	t.Helper()
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(&service.Services{AppInfoService: appInfo}, config.App{}, logger.Nop())
}

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "release", version: "1.2.3"},
		{name: "pre-release with build metadata", version: "v2.0.0-beta+build.42"},
		{name: "empty body when unset", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newVersionHandler(t, tt.version)

			rec := httptest.NewRecorder()
			h.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	router := newVersionHandler(t, "3.0.0").Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
