package subcmd_test

import (
	"bytes"
	"testing"

	"github.com/amonks/lineup/subcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sc := subcmd.New("set", "set a value")
	sc.SetArg("key", "string", "the key").SetArg("value", "string", "the value")
	verbose := sc.Bool("v", false, "verbose")

	require.NoError(t, sc.Parse([]string{"-v", "space_id", "abc"}))
	assert.True(t, *verbose)
	assert.Equal(t, []string{"space_id", "abc"}, sc.Args())
}

func TestParseWrongArgCount(t *testing.T) {
	var out bytes.Buffer
	sc := subcmd.New("set", "set a value")
	sc.SetOutput(&out)
	sc.SetArg("key", "string", "the key").SetArg("value", "string", "the value")

	err := sc.Parse([]string{"space_id"})
	assert.EqualError(t, err, "set: expected 2 arguments but got 1")
	assert.Contains(t, out.String(), "lineup set [flags] <key> <value>")
}

func TestParseNoArgs(t *testing.T) {
	sc := subcmd.New("catalog", "list filter options")
	require.NoError(t, sc.Parse(nil))
}
