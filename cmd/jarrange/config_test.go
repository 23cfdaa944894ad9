package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNoConfigFile(t *testing.T) {
	writer := bytes.NewBuffer([]byte{})
	err := printConfigFile(&ArrangeConfig{
		LineEnding: "keep",
		SourceDirs: []string{"src/main/java"},
	}, writer)
	require.NoError(t, err)

	conf := make(map[string]interface{})
	require.NoError(t, yaml.Unmarshal(writer.Bytes(), &conf))
	for _, key := range []string{"write", "verbose", "diff", "check", "keep-blank-lines", "skip"} {
		assert.Equal(t, false, conf[key], "%s should be false", key)
	}
	assert.Equal(t, 0, conf["jobs"])
	assert.Equal(t, "keep", conf["line-ending"])
	assert.Equal(t, []interface{}{"src/main/java"}, conf["source-dirs"])
}

func TestConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, dir, ".jarrange.yaml", `write: true
jobs: 2
line-ending: lf
source-dirs:
  - java
  - test
`)

	out := captureOutput(t)
	cmd := buildMainCommand()
	cmd.SetArgs([]string{"print-config"})
	require.NoError(t, cmd.Execute())

	conf := ArrangeConfig{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &conf))
	assert.Equal(t, ArrangeConfig{
		Write:      true,
		Jobs:       2,
		LineEnding: "lf",
		SourceDirs: []string{"java", "test"},
	}, conf)
}

func TestConfigEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("JARRANGE_KEEP_BLANK_LINES", "true")
	t.Setenv("JARRANGE_LINE_ENDING", "crlf")

	out := captureOutput(t)
	cmd := buildMainCommand()
	cmd.SetArgs([]string{"print-config"})
	require.NoError(t, cmd.Execute())

	conf := ArrangeConfig{}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &conf))
	assert.True(t, conf.KeepBlankLines)
	assert.Equal(t, "crlf", conf.LineEnding)
}

func TestInvalidConfigValue(t *testing.T) {
	dir := chdirTemp(t)
	writeFile(t, dir, ".jarrange.yaml", "jobs: many\n")

	cmd := buildMainCommand()
	cmd.SetArgs([]string{"arrange", "Demo.java"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"jobs"`)
}
