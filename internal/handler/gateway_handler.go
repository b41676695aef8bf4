package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fredneedsausername/GateKeeper/internal/config"
	"github.com/fredneedsausername/GateKeeper/internal/service"
)

// gatewayEnvelope is the fixed wrapping the gateway firmware puts around a
// scan report. Only device_list matters; everything else rides along.
type gatewayEnvelope struct {
	Data *struct {
		Value *struct {
			DeviceList []service.GatewayDevice `json:"device_list"`
		} `json:"value"`
	} `json:"data"`
}

// GatewayHandler accepts scan reports from the Bluetooth gateways. The
// endpoint is unauthenticated: gateways live on a trusted network segment
// and cannot hold credentials.
func GatewayHandler(svc service.IngestService, env config.Environment, logger *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var raw json.RawMessage
		if err := c.Bind(&raw); err != nil {
			return c.String(http.StatusBadRequest, "Invalid gateway message")
		}

		// json mode: dump what the gateway sends and touch nothing. Used to
		// characterize new gateway firmware in the field.
		if env == config.EnvJSON {
			var pretty any
			if err := json.Unmarshal(raw, &pretty); err != nil {
				return c.String(http.StatusBadRequest, "Invalid gateway message")
			}
			out, _ := json.MarshalIndent(pretty, "", "  ")
			logger.Info("gateway message", zap.String("body", string(out)))
			return c.String(http.StatusOK, "Processed")
		}

		var msg gatewayEnvelope
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Data == nil || msg.Data.Value == nil || msg.Data.Value.DeviceList == nil {
			return c.String(http.StatusBadRequest, "Invalid gateway message")
		}

		// Per-device outcomes never change the response; the gateway retries
		// whole reports on anything but 200 and that would duplicate work.
		svc.ProcessDeviceList(c.Request().Context(), msg.Data.Value.DeviceList)
		return c.String(http.StatusOK, "Processed")
	}
}
