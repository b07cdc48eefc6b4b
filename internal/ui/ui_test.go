package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, false)

	l.Debugf("hidden %d\n", 1)
	l.Infof("Descargando capítulo %d", 3)
	l.Errorf("Error HTTP %d en capítulo %d\n", 404, 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Descargando capítulo 3")
	assert.Contains(t, out, "Error HTTP 404 en capítulo 7")
	assert.Contains(t, out, "ERR")
}

func TestLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, true)

	l.Debugf("HTTP GET %s", "https://example.org")

	assert.Contains(t, buf.String(), "HTTP GET https://example.org")
	assert.True(t, l.Debug)
}

func TestProgressHandle(t *testing.T) {
	var buf bytes.Buffer
	pm := NewProgressManager(&buf)
	h := pm.Register("Juan")

	h.SetTotal(2)
	h.Advance(100)
	h.Advance(28)
	h.MarkDone()
	h.Advance(1000)

	assert.Equal(t, int64(128), h.bytes.Load())
	assert.True(t, h.final.Load())
}
