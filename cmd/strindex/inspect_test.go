package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chiTransport "github.com/kailas-cloud/strindex/internal/transport/chi"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := execute(t, "analyze", "  Racecar ")
	require.NoError(t, err)

	var resp chiTransport.EntryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Racecar", resp.Value)
	assert.True(t, resp.Properties.IsPalindrome)
	assert.Equal(t, resp.ID, resp.Properties.SHA256Hash)
}

func TestAnalyzeCommand_Empty(t *testing.T) {
	_, err := execute(t, "analyze", "   ")
	assert.Error(t, err)
}

func TestInterpretCommand(t *testing.T) {
	out, err := execute(t, "interpret", "strings", "longer", "than", "10")
	require.NoError(t, err)

	var resp chiTransport.InterpretedQuery
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "strings longer than 10", resp.Original)
	require.NotNil(t, resp.ParsedFilters.MinLength)
	assert.Equal(t, 11, *resp.ParsedFilters.MinLength)
}

func TestInterpretCommand_Unparseable(t *testing.T) {
	_, err := execute(t, "interpret", "xyz")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}
