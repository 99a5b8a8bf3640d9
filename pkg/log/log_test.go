package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buffer := &bytes.Buffer{}
	logrus.SetOutput(buffer)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logrus.SetLevel(logrus.DebugLevel)
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	return buffer
}

func TestWithCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_CamposEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buffer := captureOutput(t)

	L.WithStore("store-1").WithFields(Fields{"remote_addr": "127.0.0.1", "job": "stock-alerts"}).Info("teste")

	output := buffer.String()
	assert.Contains(t, output, "store_id=store-1")
	assert.Contains(t, output, "job=stock-alerts")
	assert.NotContains(t, output, "remote_addr")
}

func TestLogger_CamposEmProducao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buffer := captureOutput(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("remote_addr", "127.0.0.1").Warn("teste")

	output := buffer.String()
	assert.Contains(t, output, "correlation_id="+correlationID)
	assert.Contains(t, output, "remote_addr=127.0.0.1")
	assert.Contains(t, output, "level=warning")
}
