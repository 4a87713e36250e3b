// Package provider defines the HaystackProvider capability contract
// consumed by the out-of-scope HTTP operation dispatchers, plus the grid
// shapes for the three stateless operations (about, ops, formats) that
// need no external state to build. Grounded on internal/dialect's
// registry-of-capabilities pattern, generalized from "one Dialect per SQL
// flavor" to "one capability set per deployment".
package provider

import (
	"haystack/internal/core"
	"haystack/internal/filter"
	"haystack/internal/negotiate"
	"haystack/internal/rangeutil"
)

// HaystackProvider is the capability set a collaborator (HTTP dispatcher,
// GraphQL facade, etc.) implements against the core. The core never calls
// these itself; it only defines the contract and the result grid shapes.
type HaystackProvider interface {
	About(baseURL string) (*core.Grid, error)
	Ops() (*core.Grid, error)
	Formats() (*core.Grid, error)
	Read(limit int, selectTags []string, ids []core.Ref, f filter.Expr, version *core.DateTime) (*core.Grid, error)
	Nav(navID string) (*core.Grid, error)
	WatchSub(dis string, id string, ids []core.Ref, lease *core.Number) (*core.Grid, error)
	WatchUnsub(id string, ids []core.Ref) error
	WatchPoll(id string) (*core.Grid, error)
	PointWriteRead(id core.Ref, version *core.DateTime) (*core.Grid, error)
	PointWriteWrite(id core.Ref, level int, val core.Val, who string, duration *core.Number, version *core.DateTime) (*core.Grid, error)
	HisRead(id core.Ref, r rangeutil.Range, version *core.DateTime) (*core.Grid, error)
	HisWrite(id core.Ref, tsGrid *core.Grid, version *core.DateTime) (*core.Grid, error)
	InvokeAction(id core.Ref, action string, params *core.Dict) (*core.Grid, error)
	ValuesForTag(tagName string, version *core.DateTime) ([]core.Val, error)
	Versions() ([]core.DateTime, error)
	GetTZ() (string, error)
}

// AboutInfo carries the fields a provider's About implementation fills in;
// the core only knows how to shape them into the one-row grid the
// operation contract requires.
type AboutInfo struct {
	HaystackVersion string
	TZ              string
	ServerName      string
	ServerTime      core.DateTime
	ServerBootTime  core.DateTime
	ProductName     string
	ProductURI      string
	ProductVersion  string
	ModuleName      string
	ModuleVersion   string
}

// BuildAboutGrid shapes info into the one-row grid the about() operation
// returns.
func BuildAboutGrid(info AboutInfo) (*core.Grid, error) {
	g := core.NewGrid("3.0")
	cols := []string{
		"haystackVersion", "tz", "serverName", "serverTime", "serverBootTime",
		"productName", "productUri", "productVersion", "moduleName", "moduleVersion",
	}
	for _, c := range cols {
		if err := g.AddCol(c, nil); err != nil {
			return nil, err
		}
	}
	row := core.NewDict().
		Set("haystackVersion", core.Str(info.HaystackVersion)).
		Set("tz", core.Str(info.TZ)).
		Set("serverName", core.Str(info.ServerName)).
		Set("serverTime", info.ServerTime).
		Set("serverBootTime", info.ServerBootTime).
		Set("productName", core.Str(info.ProductName)).
		Set("productUri", core.Uri(info.ProductURI)).
		Set("productVersion", core.Str(info.ProductVersion)).
		Set("moduleName", core.Str(info.ModuleName)).
		Set("moduleVersion", core.Str(info.ModuleVersion))
	if err := g.AddRow(row); err != nil {
		return nil, err
	}
	return g, nil
}

// BuildOpsGrid shapes the list of supported operation names into the ops()
// grid: one row per operation, column "name".
func BuildOpsGrid(opNames []string) (*core.Grid, error) {
	g := core.NewGrid("3.0")
	if err := g.AddCol("name", nil); err != nil {
		return nil, err
	}
	for _, name := range opNames {
		if err := g.AddRow(core.NewDict().Set("name", core.Str(name))); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// BuildFormatsGrid shapes the supported mime list into the formats() grid:
// one row per format, with receive/send marker columns.
func BuildFormatsGrid() (*core.Grid, error) {
	g := core.NewGrid("3.0")
	for _, c := range []string{"mime", "receive", "send"} {
		if err := g.AddCol(c, nil); err != nil {
			return nil, err
		}
	}
	for _, f := range []negotiate.Format{negotiate.Zinc, negotiate.JSON, negotiate.CSV} {
		row := core.NewDict().
			Set("mime", core.Str(negotiate.MimeType(f))).
			Marker("receive").
			Marker("send")
		if err := g.AddRow(row); err != nil {
			return nil, err
		}
	}
	return g, nil
}
