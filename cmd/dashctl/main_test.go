package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/analytics-hub/internal/query"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--seed-file", ""))

	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCmd(t *testing.T) {
	t.Run("Sucesso - busca e status", func(t *testing.T) {
		out, err := execute(t, "query", "--search", "Google", "--status", "active")
		require.NoError(t, err)

		summer := strings.Index(out, "Summer Sale 2024")
		retargeting := strings.Index(out, "Retargeting Campaign")
		require.GreaterOrEqual(t, summer, 0)
		require.GreaterOrEqual(t, retargeting, 0)
		assert.Less(t, summer, retargeting)
		assert.Contains(t, out, "$12,500")
		assert.Contains(t, out, "Showing 1 to 2 of 2 results (page 1 of 1)")
	})

	t.Run("Sucesso - saída JSON", func(t *testing.T) {
		out, err := execute(t, "query", "--sort", "spend", "--page-size", "3", "--json")
		require.NoError(t, err)

		var result query.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, 8, result.TotalMatches)
		assert.Equal(t, 3, result.TotalPages)
		require.Len(t, result.Rows, 3)
		assert.Equal(t, "Product Launch", result.Rows[0].Campaign)
	})

	t.Run("Erro - campo de ordenação desconhecido", func(t *testing.T) {
		_, err := execute(t, "query", "--sort", "budget")
		assert.ErrorIs(t, err, query.ErrUnknownSortField)
	})
}

func TestSummaryCmd(t *testing.T) {
	out, err := execute(t, "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "Geographic: $4,030,000 revenue, 161,500 users across 8 markets (top market $1,250,000)")
	assert.Contains(t, out, "Competitors: Your Brand ranks #2 of 5 with 24.8% share (+4.7)")
	assert.Contains(t, out, "Campaigns: 765,000 impressions, $76,500 spend, 2,255 conversions")
	assert.Contains(t, out, "Unread alerts: 2")
}

func TestExportCmd(t *testing.T) {
	t.Run("Sucesso - saída padrão", func(t *testing.T) {
		out, err := execute(t, "export")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 9)
		assert.Equal(t, "Campaign,Platform,Impressions,CTR,Spend,ROAS,Status", lines[0])
	})

	t.Run("Sucesso - arquivo", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "campaign_data.csv")

		out, err := execute(t, "export", "-o", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(content), "Campaign,Platform"))
	})

	t.Run("Erro - seed inexistente", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"export", "--seed-file", filepath.Join(t.TempDir(), "nao-existe.yaml")})

		assert.Error(t, cmd.Execute())
	})
}
