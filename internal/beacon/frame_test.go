package beacon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredneedsausername/GateKeeper/internal/beacon"
)

const gatewayHeader = "1122334455667788"

// buildFrame assembles a raw gateway blob from its payload fields.
func buildFrame(activator, msgType, counter, mac, rssi, flags, battery string) string {
	return gatewayHeader + activator + msgType + counter + mac + rssi + flags + battery
}

func TestDecodeFrame_Valid(t *testing.T) {
	data := buildFrame("0001", "03", "0a", "AABBCCDDEEFF", "c5", "04", "0e10")

	frame, err := beacon.DecodeFrame(data)
	require.NoError(t, err)

	assert.Equal(t, uint16(1), frame.ActivatorNumber)
	assert.Equal(t, int16(10), frame.PacketCounter)
	assert.Equal(t, "AABBCCDDEEFF", frame.MACAddress)
	assert.Equal(t, -59, frame.RSSIdBm)
	assert.Equal(t, uint16(3600), frame.BatteryMillivolts)
}

func TestDecodeFrame_PreservesMACCase(t *testing.T) {
	data := buildFrame("00ff", "03", "01", "aabbccddeeff", "c5", "06", "0c80")

	frame, err := beacon.DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, "aabbccddeeff", frame.MACAddress)
}

func TestDecodeFrame_DropReasons(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{
			name: "empty data",
			data: "",
			want: beacon.ErrMissingData,
		},
		{
			name: "header only",
			data: gatewayHeader,
			want: beacon.ErrShortPayload,
		},
		{
			name: "payload one char short",
			data: buildFrame("0001", "03", "0a", "AABBCCDDEEFF", "c5", "04", "0e1"),
			want: beacon.ErrShortPayload,
		},
		{
			name: "not a presence message",
			data: buildFrame("0001", "05", "0a", "AABBCCDDEEFF", "c5", "04", "0e10"),
			want: beacon.ErrWrongMessageType,
		},
		{
			name: "TLM flag missing",
			data: buildFrame("0001", "03", "0a", "AABBCCDDEEFF", "c5", "00", "0e10"),
			want: beacon.ErrMissingTLMFlag,
		},
		{
			name: "TLM flag bit not set among others",
			data: buildFrame("0001", "03", "0a", "AABBCCDDEEFF", "c5", "03", "0e10"),
			want: beacon.ErrMissingTLMFlag,
		},
		{
			name: "garbage activator number",
			data: buildFrame("zzzz", "03", "0a", "AABBCCDDEEFF", "c5", "04", "0e10"),
			want: beacon.ErrMalformedHex,
		},
		{
			name: "garbage counter",
			data: buildFrame("0001", "03", "zz", "AABBCCDDEEFF", "c5", "04", "0e10"),
			want: beacon.ErrMalformedHex,
		},
		{
			name: "garbage MAC",
			data: buildFrame("0001", "03", "0a", "AABBCCDDEEGG", "c5", "04", "0e10"),
			want: beacon.ErrMalformedHex,
		},
		{
			name: "garbage battery",
			data: buildFrame("0001", "03", "0a", "AABBCCDDEEFF", "c5", "04", "zzzz"),
			want: beacon.ErrMalformedHex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := beacon.DecodeFrame(tt.data)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBatteryPercent(t *testing.T) {
	tests := []struct {
		name string
		mv   uint16
		max  int
		want float64
	}{
		{name: "full battery", mv: 3600, max: 3600, want: 100},
		{name: "rounded to one decimal", mv: 3200, max: 3600, want: 88.9},
		{name: "over reference clamps to 100", mv: 3700, max: 3600, want: 100},
		{name: "zero reading", mv: 0, max: 3600, want: 0},
		{name: "misconfigured max", mv: 3000, max: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := beacon.Frame{BatteryMillivolts: tt.mv}
			assert.InDelta(t, tt.want, frame.BatteryPercent(tt.max), 0.001)
		})
	}
}
