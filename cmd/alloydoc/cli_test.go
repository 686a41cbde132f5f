package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/alloydoc/cmd/alloydoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commands = []string{"serve", "lookup", "resolve", "search", "docs"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "--db")
	assert.Contains(t, helpOutput, "--corpus")
}

func TestCLI_ParsesLookupFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--log-level", "debug", "lookup", "BlockId", "-n", "3", "--json"})
	require.NoError(t, err)

	assert.Equal(t, "debug", cli.LogLevel)
	assert.InDelta(t, 0.5, cli.MinSimilarity, 1e-9)
	assert.Equal(t, "BlockId", cli.Lookup.Query)
	assert.Equal(t, 3, cli.Lookup.Limit)
	assert.True(t, cli.Lookup.JSON)
}

func TestCLI_RejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--log-level", "loud", "docs"})
	assert.Error(t, err)
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, nil, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range commands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_NoArgsShowsHelpAndErrors(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, stdout.String(), "lookup")
}
