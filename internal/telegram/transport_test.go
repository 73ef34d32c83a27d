package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/job-warden/internal/core"
)

func TestBuildMarkupSingleRow(t *testing.T) {
	markup, err := buildMarkup([]core.Button{
		{Label: "📊 Check Status", Action: core.CheckStatusAction(42)},
		{Label: "🔧 Repair", Action: core.RepairAction(99)},
	})
	require.NoError(t, err)

	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)

	assert.Equal(t, "📊 Check Status", row[0].Text)
	first, err := core.DecodeAction(row[0].Data)
	require.NoError(t, err)
	assert.Equal(t, core.CheckStatusAction(42), first)

	second, err := core.DecodeAction(row[1].Data)
	require.NoError(t, err)
	assert.Equal(t, core.RepairAction(99), second)
}

func TestBuildMarkupRejectsInvalidAction(t *testing.T) {
	_, err := buildMarkup([]core.Button{
		{Label: "broken", Action: core.Action{Kind: "detonate"}},
	})
	assert.Error(t, err)
}
