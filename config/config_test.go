package config

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/collide/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logging "github.com/op/go-logging"
)

func TestLoad(t *testing.T) {
	c := Default()
	err := c.Load(strings.NewReader(`
[collider]
epsilon = 1e-9
closing_edges = true

[[logging]]
output = "stdout"
level = "debug"
`))
	require.NoError(t, err)

	assert.Equal(t, advanced.Collider{Epsilon: 1e-9, TestClosingEdges: true}, c.NewCollider())
	require.Len(t, c.Logging, 1)
	assert.Equal(t, LoggingConfig{Output: "stdout", Level: "debug"}, c.Logging[0])
}

func TestLoad_Defaults(t *testing.T) {
	c := Default()
	require.NoError(t, c.Load(strings.NewReader("")))
	assert.Equal(t, advanced.Collider{}, c.NewCollider())
	assert.Equal(t, Default().Logging, c.Logging)
}

func TestLoad_Invalid(t *testing.T) {
	c := Default()
	err := c.Load(strings.NewReader("[collider]\nepsilon = \"tiny\"\n"))
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collide.log")
	c := Config{Logging: []LoggingConfig{{Output: path, Level: "info"}}}
	closeLogs, err := c.SetupLogging()
	require.NoError(t, err)
	assert.Equal(t, logging.INFO, logging.GetLevel(""))

	logging.MustGetLogger("collide:config").Info("written to the log file")
	require.NoError(t, closeLogs())
	require.NoError(t, closeLogs(), "closing twice is harmless")

	contents, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "written to the log file")
}

func TestSetupLogging_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collide.log")
	c := Config{Logging: []LoggingConfig{{Output: path, Level: "info"}, {Output: "stderr", Level: "loud"}}}
	_, err := c.SetupLogging()
	assert.Error(t, err)

	_, err = Config{}.SetupLogging()
	assert.Error(t, err)
}
