package main

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/kebabmane/toDo/internal/config"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default", []string{"cmd"}, "config.env"},
		{"custom", []string{"cmd", "-c", "myconfig.env"}, "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			os.Args = tt.args
			assert.Equal(t, tt.expected, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestNewKafkaWriter(t *testing.T) {
	assert.Nil(t, newKafkaWriter(config.KafkaConfig{ResetTopic: "password-reset"}))

	w := newKafkaWriter(config.KafkaConfig{Brokers: []string{"kafka:9092"}, ResetTopic: "password-reset"})
	require.NotNil(t, w)
	kw, ok := w.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, "password-reset", kw.Topic)
	assert.Equal(t, "kafka:9092", kw.Addr.String())
}
