package report

import "html/template"

// inlineCSS is embedded into every report so the file renders without any
// external asset. The .dark overrides apply when report_theme is dark.
const inlineCSS = `
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, Segoe UI, sans-serif; background: #f8fafc; color: #1e293b; min-height: 100vh; line-height: 1.5; -webkit-font-smoothing: antialiased; }
.report-wrap { max-width: 64rem; margin: 0 auto; padding: 2rem 1rem; }
.gradient-head { background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 50%, #a855f7 100%); border-radius: 1rem; padding: 2rem; margin-bottom: 2rem; color: #fff; box-shadow: 0 10px 25px -5px rgb(0 0 0 / 0.1); }
.gradient-head h1 { margin: 0; font-size: 1.875rem; font-weight: 700; letter-spacing: -0.025em; }
.gradient-head .sub { margin-top: 0.5rem; color: rgba(255,255,255,0.9); font-size: 1.125rem; }
.gradient-head .meta { margin-top: 1rem; font-size: 0.875rem; color: rgba(255,255,255,0.8); }
.stats-row { display: grid; grid-template-columns: repeat(2, 1fr); gap: 0.75rem; margin-top: 1rem; }
@media (min-width: 640px) { .stats-row { grid-template-columns: repeat(4, 1fr); } }
.stat-box { background: rgba(255,255,255,0.15); border-radius: 0.5rem; padding: 0.75rem; text-align: center; }
.stat-box .n { font-size: 1.25rem; font-weight: 700; display: block; }
.stat-box .l { font-size: 0.7rem; color: rgba(255,255,255,0.85); text-transform: uppercase; letter-spacing: 0.05em; }
.stat-box.add .n { color: #6ee7b7; }
.stat-box.del .n { color: #fda4af; }
.section { margin-bottom: 2rem; }
.section h2 { font-size: 1.25rem; font-weight: 600; margin: 0 0 0.75rem 0; }
.card { background: #fff; border: 1px solid #e2e8f0; border-radius: 0.75rem; padding: 1.5rem; box-shadow: 0 1px 3px 0 rgb(0 0 0 / 0.05); }
.grid-2-1 { display: grid; gap: 1.5rem; }
@media (min-width: 1024px) { .grid-2-1 { grid-template-columns: 2fr 1fr; } }
.table-wrap { overflow-x: auto; }
table { width: 100%; font-size: 0.875rem; border-collapse: collapse; }
th, td { padding: 0.75rem 1rem; text-align: left; border-bottom: 1px solid #f1f5f9; }
th { background: #f8fafc; font-weight: 600; color: #475569; font-size: 0.8rem; }
.text-right { text-align: right; }
.add-num { color: #059669; font-weight: 500; }
.del-num { color: #e11d48; font-weight: 500; }
.truncate { max-width: 18rem; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.font-mono { font-family: ui-monospace, monospace; }
.label-cell { color: #64748b; width: 5rem; }
.prose-sm a { color: #6366f1; text-decoration: underline; }
.prose-sm ul { list-style: disc; padding-left: 1.25rem; margin: 0.5em 0; }
.prose-sm ol { list-style: decimal; padding-left: 1.25rem; margin: 0.5em 0; }
.prose-sm strong { font-weight: 600; }
.prose-sm pre { background: #1e1e2e; color: #cdd6f4; padding: 1rem; border-radius: 0.5rem; overflow-x: auto; font-size: 0.8rem; }
.prose-sm code { background: #e2e8f0; color: #701a75; padding: 0.15rem 0.35rem; border-radius: 0.25rem; font-size: 0.85em; }
.diff-block { background: #0f172a; color: #cbd5e1; padding: 1rem; border-radius: 0.75rem; overflow: auto; max-height: 24rem; font-size: 0.875rem; font-family: ui-monospace, monospace; white-space: pre; }
.commit-body { margin-top: 1rem; padding-top: 1rem; border-top: 1px solid #e2e8f0; }
.commit-body pre { margin: 0.25rem 0 0 0; white-space: pre-wrap; font-size: 0.85rem; }
.footer { text-align: center; color: #94a3b8; font-size: 0.875rem; padding-top: 2rem; }
.chart-wrap { display: flex; align-items: center; justify-content: center; min-height: 200px; }
@keyframes sd-fade { from { opacity: 0; transform: translateY(8px); } to { opacity: 1; transform: translateY(0); } }
.section.animate-in { animation: sd-fade 0.5s ease-out both; }
body.dark { background: #0f172a; color: #e2e8f0; }
body.dark .card { background: #1e293b; border-color: #334155; }
body.dark .section h2 { color: #e2e8f0; }
body.dark th { background: #1e293b; color: #94a3b8; }
body.dark th, body.dark td { border-bottom-color: #334155; }
body.dark .prose-sm code { background: #334155; color: #f0abfc; }
body.dark .label-cell { color: #94a3b8; }
body.dark .commit-body { border-top-color: #334155; }
`

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>Smart Diff Report — {{.ScopeLabel}}</title>
  <style>{{.InlineCSS}}</style>
</head>
<body{{if eq .Theme "dark"}} class="dark"{{end}}>
  <div class="report-wrap">
    <header class="gradient-head">
      <h1>Smart Diff Report</h1>
      <p class="sub">{{.ScopeLabel}}</p>
      <p class="meta">Model: <strong>{{.Model}}</strong> · {{.GeneratedAt}}</p>
      <div class="stats-row">
        <div class="stat-box"><span class="n">{{.FilesCount}}</span><span class="l">Files</span></div>
        <div class="stat-box add"><span class="n">+{{.TotalAdded}}</span><span class="l">Added</span></div>
        <div class="stat-box del"><span class="n">−{{.TotalDeleted}}</span><span class="l">Deleted</span></div>
        <div class="stat-box"><span class="n">{{.Net}}</span><span class="l">Net</span></div>
      </div>
    </header>

    {{if .Commit}}
    <section class="section animate-in">
      <h2>Commit</h2>
      <div class="card">
        <table>
          <tr><td class="label-cell">Hash</td><td><code class="font-mono">{{.Commit.Hash}}</code></td></tr>
          <tr><td class="label-cell">Author</td><td>{{.Commit.Author}}</td></tr>
          <tr><td class="label-cell">Date</td><td>{{.Commit.Date}}</td></tr>
          <tr><td class="label-cell">Subject</td><td>{{.Commit.Subject}}</td></tr>
        </table>
        {{if .Commit.Body}}
        <div class="commit-body"><span class="l">Body</span><pre>{{.Commit.Body}}</pre></div>
        {{end}}
      </div>
    </section>
    {{end}}

    <section class="section animate-in" style="animation-delay: 0.05s;">
      <h2>Analysis</h2>
      <div class="card prose-sm">
        {{.AnalysisHTML}}
      </div>
    </section>

    {{if .FileStats}}
    <section class="section animate-in" style="animation-delay: 0.1s;">
      <h2>Changed files</h2>
      <div class="grid-2-1">
        <div class="card">
          <div class="table-wrap">
            <table>
              <thead><tr><th>File</th><th class="text-right add-num">+</th><th class="text-right del-num">−</th></tr></thead>
              <tbody>
                {{range .FileStats}}
                <tr><td class="truncate font-mono" title="{{.Path}}">{{.Path}}</td><td class="text-right add-num">{{.Added}}</td><td class="text-right del-num">{{.Deleted}}</td></tr>
                {{end}}
              </tbody>
            </table>
          </div>
        </div>
        <div class="card chart-wrap"><canvas id="chartFiles" height="220"></canvas></div>
      </div>
      <div class="card chart-wrap" style="margin-top:1rem;"><canvas id="chartLines" height="120"></canvas></div>
    </section>
    {{end}}

    {{if .HasExts}}
    <section class="section animate-in" style="animation-delay: 0.15s;">
      <h2>By extension</h2>
      <div class="card chart-wrap"><canvas id="chartExt" height="200"></canvas></div>
    </section>
    {{end}}

    {{if .FileStats}}
    <section class="section animate-in" style="animation-delay: 0.2s;">
      <h2>Add / Del per file (top 10)</h2>
      <div class="card chart-wrap"><canvas id="chartPerFile" height="280"></canvas></div>
    </section>
    <section class="section animate-in" style="animation-delay: 0.25s;">
      <h2>Net change per file</h2>
      <div class="card chart-wrap"><canvas id="chartNet" height="260"></canvas></div>
    </section>
    {{end}}

    <section class="section animate-in" style="animation-delay: 0.3s;">
      <h2>Diff</h2>
      <div class="card"><pre class="diff-block">{{.Diff}}</pre></div>
    </section>

    <footer class="footer">
      Generated by Smart Diff · {{.Version}} · {{.GeneratedAt}}
    </footer>
  </div>

  <script>{{.ChartJS}}</script>
  <script>
    (function(){
      var fileStats = {{.FileStatsJSON}};
      if (!fileStats || typeof Chart === 'undefined') return;
      var labels = fileStats.map(function(f){ return f.path.split('/').pop() || f.path; });
      var added = fileStats.map(function(f){ return f.added; });
      var deleted = fileStats.map(function(f){ return f.deleted; });
      var DELAY = 220;
      var opts = { responsive: true, maintainAspectRatio: false, animation: { duration: 1000 } };

      function mk(id, fn) {
        var el = document.getElementById(id);
        if (!el) return;
        fn(el);
      }
      var delay = 0;
      function deferred(fn) {
        var at = delay;
        delay += DELAY;
        return function(el){ setTimeout(function(){ fn(el); }, at); };
      }

      mk('chartFiles', deferred(function(el){
        new Chart(el, {
          type: 'bar',
          data: { labels: labels, datasets: [
            { label: 'Added', data: added, backgroundColor: 'rgba(16, 185, 129, 0.7)', borderColor: 'rgb(16, 185, 129)', borderWidth: 1 },
            { label: 'Deleted', data: deleted, backgroundColor: 'rgba(244, 63, 94, 0.7)', borderColor: 'rgb(244, 63, 94)', borderWidth: 1 }
          ]},
          options: Object.assign({}, opts, { indexAxis: 'y', plugins: { legend: { position: 'top' } }, scales: { x: { stacked: true }, y: { stacked: true } } })
        });
      }));
      mk('chartLines', deferred(function(el){
        var ta = added.reduce(function(a,b){ return a+b; }, 0);
        var td = deleted.reduce(function(a,b){ return a+b; }, 0);
        new Chart(el, {
          type: 'doughnut',
          data: { labels: ['Lines added', 'Lines deleted'], datasets: [{ data: [ta, td], backgroundColor: ['rgba(16, 185, 129, 0.8)', 'rgba(244, 63, 94, 0.8)'], borderWidth: 0 }]},
          options: Object.assign({}, opts, { plugins: { legend: { position: 'bottom' } } })
        });
      }));
      {{if .HasExts}}
      mk('chartExt', deferred(function(el){
        new Chart(el, { type: 'doughnut', data: { labels: {{.ExtLabels}}, datasets: [{ data: {{.ExtData}}, backgroundColor: {{.ExtColors}}, borderWidth: 0 }]}, options: Object.assign({}, opts, { plugins: { legend: { position: 'right' } } }) });
      }));
      {{end}}
      var top10 = fileStats.slice(0, 10);
      var topLabels = top10.map(function(f){ return f.path.split('/').pop() || f.path; });
      mk('chartPerFile', deferred(function(el){
        new Chart(el, { type: 'bar', data: { labels: topLabels, datasets: [
          { label: '+ Added', data: top10.map(function(f){ return f.added; }), backgroundColor: 'rgba(16, 185, 129, 0.7)', borderColor: 'rgb(16, 185, 129)', borderWidth: 1 },
          { label: '− Deleted', data: top10.map(function(f){ return f.deleted; }), backgroundColor: 'rgba(244, 63, 94, 0.7)', borderColor: 'rgb(244, 63, 94)', borderWidth: 1 }
        ]}, options: Object.assign({}, opts, { indexAxis: 'y', plugins: { legend: { position: 'top' } }, scales: { x: { stacked: true }, y: { stacked: true } } }) });
      }));
      mk('chartNet', deferred(function(el){
        var netValues = top10.map(function(f){ return f.added - f.deleted; });
        var netColors = netValues.map(function(v){ return v >= 0 ? 'rgba(16, 185, 129, 0.7)' : 'rgba(244, 63, 94, 0.7)'; });
        new Chart(el, { type: 'bar', data: { labels: topLabels, datasets: [{ label: 'Net', data: netValues, backgroundColor: netColors, borderWidth: 1 }]}, options: Object.assign({}, opts, { indexAxis: 'y', plugins: { legend: { display: false } }, scales: { x: { ticks: { callback: function(v){ return v >= 0 ? '+' + v : v; } } } } }) });
      }));
    })();
  </script>
</body>
</html>
`))
