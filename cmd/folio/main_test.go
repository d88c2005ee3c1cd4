package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/eringen/folio/content"
)

func testSnapshot() content.Snapshot {
	return content.Snapshot{
		Content:  content.DefaultContent(),
		Skills:   []content.Skill{{ID: 1, Icon: "fab fa-go", Name: "Go"}},
		EditMode: true,
	}
}

func TestWriteSnapshotJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSnapshot(&buf, "json", testSnapshot()))

	var got content.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Go", got.Skills[0].Name)
	assert.True(t, got.EditMode)
	assert.Equal(t, "My Personal Website", got.Content["en"].SiteTitle)
}

func TestWriteSnapshotYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSnapshot(&buf, "yaml", testSnapshot()))
	assert.Contains(t, buf.String(), "siteTitle: My Personal Website")

	var got content.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(1), got.Skills[0].ID)
}

func TestMigrateAndExportCommands(t *testing.T) {
	t.Setenv("FOLIO_DATA_DIR", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"migrate", "--to", "1"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "schema version 1")

	out.Reset()
	rootCmd.SetArgs([]string{"export", "--format", "json"})
	require.NoError(t, rootCmd.Execute())
	var snap content.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snap))
	assert.Empty(t, snap.Skills)
	assert.False(t, snap.EditMode)

	rootCmd.SetArgs([]string{"export", "--format", "xml"})
	assert.Error(t, rootCmd.Execute())
}
