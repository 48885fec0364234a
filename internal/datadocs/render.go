// Package datadocs renders validation results as static HTML reports under
// <project_dir>/data_docs.
package datadocs

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gyeh/dqgate/internal/expect"
)

// Page is everything one run report needs.
type Page struct {
	RunID          string
	SuiteName      string
	DatasourceName string
	DataAssetName  string
	DataPath       string
	DataSHA256     string
	Rows           int
	Columns        int
	Result         expect.SuiteResult
}

var pageTmpl = template.Must(template.New("run").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Validation {{.RunID}} - {{.SuiteName}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.pass { color: #1a7f37; }
.fail { color: #cf222e; font-weight: bold; }
dl dt { font-weight: bold; }
</style>
</head>
<body>
<h1>Validation run {{.RunID}}</h1>
<p class="{{if .Result.Success}}pass{{else}}fail{{end}}">
{{if .Result.Success}}All expectations passed.{{else}}{{.Result.FailedCount}} expectation(s) failed.{{end}}
</p>
<dl>
<dt>Suite</dt><dd>{{.SuiteName}}</dd>
<dt>Datasource / asset</dt><dd>{{.DatasourceName}} / {{.DataAssetName}}</dd>
<dt>Batch</dt><dd>{{.DataPath}} ({{.Rows}} rows, {{.Columns}} columns)</dd>
<dt>SHA-256</dt><dd>{{.DataSHA256}}</dd>
<dt>Evaluated</dt><dd>{{.Result.EvaluatedAt.Format "2006-01-02 15:04:05 UTC"}}</dd>
</dl>
<table>
<tr><th>Expectation</th><th>Status</th><th>Elements</th><th>Unexpected</th><th>Detail</th></tr>
{{range .Result.Results}}
<tr>
<td>{{.Expectation.Describe}}</td>
<td class="{{if .Success}}pass{{else}}fail{{end}}">{{if .Success}}PASS{{else}}FAIL{{end}}</td>
<td>{{.ElementCount}}</td>
<td>{{.UnexpectedCount}}</td>
<td>{{.Detail}}{{if .UnexpectedSamples}} {{range .UnexpectedSamples}}[{{.}}] {{end}}{{end}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Data Docs - validation runs</title></head>
<body>
<h1>Validation runs</h1>
<ul>
{{range .}}<li><a href="{{.}}.html">{{.}}</a></li>
{{end}}</ul>
</body>
</html>
`))

// Render writes one run report to w.
func Render(w io.Writer, p Page) error {
	if err := pageTmpl.Execute(w, p); err != nil {
		return fmt.Errorf("render data docs page: %w", err)
	}
	return nil
}

// Build writes the run report under <projectDir>/data_docs and refreshes
// index.html. Returns the path of the run report.
func Build(projectDir string, p Page) (string, error) {
	dir := filepath.Join(projectDir, "data_docs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data_docs dir: %w", err)
	}

	path := filepath.Join(dir, p.RunID+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create data docs page: %w", err)
	}
	if err := Render(f, p); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close data docs page: %w", err)
	}

	if err := buildIndex(dir); err != nil {
		return "", err
	}
	return path, nil
}

func buildIndex(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read data_docs dir: %w", err)
	}

	var runs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == "index.html" || !strings.HasSuffix(name, ".html") {
			continue
		}
		runs = append(runs, strings.TrimSuffix(name, ".html"))
	}
	// newest first; run ids are time-prefixed
	sort.Sort(sort.Reverse(sort.StringSlice(runs)))

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer f.Close()
	if err := indexTmpl.Execute(f, runs); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}
