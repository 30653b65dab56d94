package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRendererWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "donations.png")
	renderer := NewChartRenderer(path)

	err := renderer.Render([]Bar{
		{Area: "North", Total: 10},
		{Area: "South", Total: 5},
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// png magic bytes
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
