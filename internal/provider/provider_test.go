package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haystack/internal/core"
)

func TestBuildAboutGridHasOneRowAndExpectedColumns(t *testing.T) {
	info := AboutInfo{
		HaystackVersion: "3.0",
		TZ:              "UTC",
		ServerName:      "test-server",
		ProductName:     "haystack",
		ProductURI:      "https://project-haystack.org",
		ProductVersion:  "1.0.0",
		ModuleName:      "haystack-go",
		ModuleVersion:   "1.0.0",
	}
	g, err := BuildAboutGrid(info)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumRows())
	for _, name := range []string{"haystackVersion", "tz", "serverName", "serverTime", "serverBootTime", "productName", "productUri", "productVersion", "moduleName", "moduleVersion"} {
		_, ok := g.Col(name)
		assert.Truef(t, ok, "expected column %q", name)
	}
	assert.Equal(t, core.Str("test-server"), g.Cell(0, "serverName"))
}

func TestBuildOpsGridOneRowPerOperation(t *testing.T) {
	g, err := BuildOpsGrid([]string{"about", "ops", "formats", "read"})
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumRows())
	assert.Equal(t, core.Str("read"), g.Cell(3, "name"))
}

func TestBuildFormatsGridHasReceiveAndSendMarkers(t *testing.T) {
	g, err := BuildFormatsGrid()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumRows())
	for i := 0; i < g.NumRows(); i++ {
		assert.Equal(t, core.Marker{}, g.Cell(i, "receive"))
		assert.Equal(t, core.Marker{}, g.Cell(i, "send"))
	}
}

func TestBuildAboutGridAcceptsEmptyInfo(t *testing.T) {
	g, err := BuildAboutGrid(AboutInfo{})
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumRows())
}
