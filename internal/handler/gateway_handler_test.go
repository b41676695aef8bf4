package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fredneedsausername/GateKeeper/internal/config"
	"github.com/fredneedsausername/GateKeeper/internal/handler"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

// stubIngest records every batch handed to it.
type stubIngest struct {
	batches [][]service.GatewayDevice
}

func (s *stubIngest) ProcessDeviceList(_ context.Context, devices []service.GatewayDevice) {
	s.batches = append(s.batches, devices)
}

func postGateway(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/gateway-endpoint", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestGateway_ValidEnvelope(t *testing.T) {
	svc := &stubIngest{}
	h := handler.GatewayHandler(svc, config.EnvProduction, zaptest.NewLogger(t))

	body := `{"data":{"value":{"device_list":[{"data":"aa"},{"data":"bb"}]}}}`
	rec := postGateway(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed", rec.Body.String())
	require.Len(t, svc.batches, 1)
	assert.Len(t, svc.batches[0], 2)
}

func TestGateway_EmptyDeviceListStillProcessed(t *testing.T) {
	svc := &stubIngest{}
	h := handler.GatewayHandler(svc, config.EnvProduction, zaptest.NewLogger(t))

	rec := postGateway(t, h, `{"data":{"value":{"device_list":[]}}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.batches, 1)
	assert.Empty(t, svc.batches[0])
}

func TestGateway_MalformedEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not even close`},
		{name: "missing data", body: `{"value":{"device_list":[]}}`},
		{name: "missing value", body: `{"data":{"device_list":[]}}`},
		{name: "missing device_list", body: `{"data":{"value":{}}}`},
		{name: "device_list null", body: `{"data":{"value":{"device_list":null}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubIngest{}
			h := handler.GatewayHandler(svc, config.EnvProduction, zaptest.NewLogger(t))

			rec := postGateway(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid gateway message", rec.Body.String())
			assert.Empty(t, svc.batches)
		})
	}
}

func TestGateway_JSONModeDumpsWithoutProcessing(t *testing.T) {
	svc := &stubIngest{}
	h := handler.GatewayHandler(svc, config.EnvJSON, zaptest.NewLogger(t))

	rec := postGateway(t, h, `{"anything":{"the":"gateway sends"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Processed", rec.Body.String())
	assert.Empty(t, svc.batches)
}
