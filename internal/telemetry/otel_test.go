package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"multi_accessor/internal/config"
)

func TestInitWithoutEndpoint(t *testing.T) {
	shutdown, err := Init(context.Background(), &config.Config{OTELServiceName: "multi-accessor"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestNormalizeOTLPEndpoint(t *testing.T) {
	cases := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:4317", want: "localhost:4317"},
		{raw: "http://collector:4317", want: "collector:4317"},
		{raw: "https://collector.example.com:443/v1/traces", want: "collector.example.com:443"},
		{raw: " http://collector:4317 ", want: "collector:4317"},
		{raw: "http://", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := normalizeOTLPEndpoint(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
