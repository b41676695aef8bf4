// Package beacon decodes the hex payloads posted by the shipyard gateway and
// resolves the direction of a gate crossing from an ordered activator pair.
package beacon

import (
	"errors"
	"math"
	"strconv"
)

// Frame decode failures. All of them are silent drops: the gateway contract
// is best-effort ingestion and never sees per-device errors.
var (
	ErrMissingData      = errors.New("device has no data field")
	ErrShortPayload     = errors.New("payload shorter than presence frame")
	ErrWrongMessageType = errors.New("not a presence message")
	ErrMissingTLMFlag   = errors.New("eddystone TLM flag not set")
	ErrMalformedHex     = errors.New("malformed hex payload")
)

const (
	// The gateway prepends an 8-byte header to every scanned advertisement.
	gatewayHeaderHexChars = 16
	// Activator number (4) + type (2) + counter (2) + MAC (12) + RSSI (2) +
	// flags (2) + battery (4).
	minPayloadHexChars = 28

	presenceMessageType = "03"
	flagEddystoneTLM    = 0x04
)

// Frame is one decoded presence advertisement.
type Frame struct {
	// ActivatorNumber is the over-the-air friendly identifier of the fixed
	// beacon the tag echoed, not its database id.
	ActivatorNumber uint16
	PacketCounter   int16
	// MACAddress is the 12-hex-char tag address exactly as transmitted,
	// case preserved.
	MACAddress        string
	RSSIdBm           int
	BatteryMillivolts uint16
}

// DecodeFrame strips the gateway header from an ASCII hex blob and extracts
// the presence fields. Multi-byte fields are big-endian. A non-nil error is a
// drop reason, never something to surface to the gateway.
func DecodeFrame(data string) (Frame, error) {
	if data == "" {
		return Frame{}, ErrMissingData
	}
	if len(data) < gatewayHeaderHexChars+minPayloadHexChars {
		return Frame{}, ErrShortPayload
	}
	payload := data[gatewayHeaderHexChars:]

	if payload[4:6] != presenceMessageType {
		return Frame{}, ErrWrongMessageType
	}

	activator, err := strconv.ParseUint(payload[0:4], 16, 16)
	if err != nil {
		return Frame{}, ErrMalformedHex
	}
	counter, err := strconv.ParseUint(payload[6:8], 16, 8)
	if err != nil {
		return Frame{}, ErrMalformedHex
	}
	rssi, err := strconv.ParseUint(payload[20:22], 16, 8)
	if err != nil {
		return Frame{}, ErrMalformedHex
	}
	flags, err := strconv.ParseUint(payload[22:24], 16, 8)
	if err != nil {
		return Frame{}, ErrMalformedHex
	}
	if flags&flagEddystoneTLM == 0 {
		return Frame{}, ErrMissingTLMFlag
	}
	battery, err := strconv.ParseUint(payload[24:28], 16, 16)
	if err != nil {
		return Frame{}, ErrMalformedHex
	}
	if _, err := strconv.ParseUint(payload[8:20], 16, 64); err != nil {
		return Frame{}, ErrMalformedHex
	}

	return Frame{
		ActivatorNumber:   uint16(activator),
		PacketCounter:     int16(counter),
		MACAddress:        payload[8:20],
		RSSIdBm:           int(rssi) - 256,
		BatteryMillivolts: uint16(battery),
	}, nil
}

// BatteryPercent converts the advertised battery voltage into a percentage
// of maxMillivolts, rounded to one decimal and clamped to [0, 100].
func (f Frame) BatteryPercent(maxMillivolts int) float64 {
	if maxMillivolts <= 0 {
		return 0
	}
	pct := float64(f.BatteryMillivolts) / float64(maxMillivolts) * 100
	pct = math.Round(pct*10) / 10
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
