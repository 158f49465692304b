package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("debug", "json", buf)

	log.WithField("service", "incident").Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "incident", entry["service"])
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestNewWithOutput_TextAndBadLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("loud", "text", buf)

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	log.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
