package web

import "html/template"

// dashboardTemplate 看板主页面
// 布局对齐原始看板：标题 + 五个磁贴 + 折线图 + 原始数据表
var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>LeRobot Metrics Dashboard</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 24px; color: #222; }
  h1 { margin-bottom: 4px; }
  .caption { color: #888; margin-bottom: 24px; }
  .warning { background: #fff4e5; border: 1px solid #f0c36d; padding: 12px 16px; border-radius: 6px; }
  .tiles { display: flex; gap: 16px; margin-bottom: 24px; }
  .tile { flex: 1; border: 1px solid #e3e3e3; border-radius: 8px; padding: 12px 16px; }
  .tile .label { color: #666; font-size: 13px; }
  .tile .value { font-size: 28px; font-weight: 600; margin-top: 4px; }
  iframe { border: none; width: 100%; height: 560px; }
  table { border-collapse: collapse; width: 100%; font-size: 13px; }
  th, td { border: 1px solid #e3e3e3; padding: 6px 10px; text-align: right; }
  th { background: #fafafa; }
  td:first-child, th:first-child { text-align: left; }
</style>
</head>
<body>
<h1>LeRobot Ecosystem Weekly Metrics</h1>
<div class="caption">Source: GitHub API + Hugging Face API snapshots</div>
{{if .OK}}
<div class="tiles">
  {{range .Report.Tiles}}
  <div class="tile">
    <div class="label">{{.Label}}</div>
    <div class="value">{{if .Missing}}&ndash;{{else}}{{.Value}}{{end}}</div>
  </div>
  {{end}}
</div>
<iframe src="/chart"></iframe>
<h2>Raw Snapshot Data</h2>
<table>
  <tr>{{range .Report.Columns}}<th>{{.}}</th>{{end}}</tr>
  {{range .Report.Rows}}<tr>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
  {{end}}
</table>
{{else}}
<div class="warning">{{.Report.Message}}</div>
{{end}}
</body>
</html>
`))
