package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_LevelFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	assert.NotContains(t, out.String(), "hidden 1")
	assert.Contains(t, out.String(), "shown 2")
	assert.Contains(t, out.String(), "logger_test.go")
}

func TestInit_TagFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	DebugTagf("noisy", "dropped")
	DebugTagf("core", "kept")
	Debugf("untagged")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
	assert.Contains(t, out.String(), "tag=core")
	assert.Contains(t, out.String(), "untagged")
}

func TestInit_EnabledTagsDropUntagged(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"config"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })

	Debugf("untagged")
	DebugTagf("config", "tagged")

	assert.NotContains(t, out.String(), "untagged")
	assert.Contains(t, out.String(), "tagged")
}

func TestInit_PackageAndFileFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledFiles: []string{"logger_test.go"}}, &out)
	Infof("from test file")
	assert.Empty(t, out.String())

	out.Reset()
	Init(Config{LogLevel: "debug", EnabledPackages: []string{"app"}}, &out)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	Infof("from logger package")
	assert.Empty(t, out.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("Debug").String())
	assert.Equal(t, "WARN", ParseLevel("warning").String())
	assert.Equal(t, "ERROR", ParseLevel("err").String())
	assert.Equal(t, "INFO", ParseLevel("bogus").String())
}

func TestOpenOutput(t *testing.T) {
	w, c, err := OpenOutput("-", "")
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, c.Close())

	path := filepath.Join(t.TempDir(), "nested", "codepad.log")
	w, c, err = OpenOutput("", path)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, c.Close())
	assert.FileExists(t, path)
}
