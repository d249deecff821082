package render

// DashboardTemplate is the HTML template for the dashboard.
// It is embedded as a Go constant — no external file dependencies.
const DashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
<style>
  :root {
    --bg: #0f172a;
    --panel: #1e293b;
    --text: #e2e8f0;
    --muted: #94a3b8;
    --border: #334155;
    --accent: #38bdf8;
    --warn: #f59e0b;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.5;
    max-width: 1200px;
    margin: 0 auto;
    padding: 20px;
  }
  h1 { font-size: 1.4rem; color: var(--accent); }
  h2 { font-size: 1.05rem; margin: 20px 0 10px; border-bottom: 1px solid var(--border); padding-bottom: 6px; }
  .muted { color: var(--muted); font-size: 0.8rem; }
  .stats { display: flex; gap: 12px; margin: 14px 0; flex-wrap: wrap; }
  .stat { background: var(--panel); border-radius: 8px; padding: 10px 16px; text-align: center; }
  .stat .value { font-size: 1.3rem; font-weight: 700; color: var(--accent); }
  .stat .label { font-size: 0.7rem; color: var(--muted); text-transform: uppercase; }
  .notice {
    background: rgba(245, 158, 11, 0.12);
    border-left: 4px solid var(--warn);
    padding: 10px 14px;
    border-radius: 6px;
    margin: 12px 0;
    font-size: 0.9rem;
  }
  #network { height: 480px; background: var(--panel); border-radius: 8px; }
  #chart-wrap { background: var(--panel); border-radius: 8px; padding: 14px; }
  table { width: 100%; border-collapse: collapse; font-size: 0.85rem; margin: 8px 0 16px; }
  th { text-align: left; padding: 6px 8px; color: var(--muted); border-bottom: 1px solid var(--border); }
  td { padding: 6px 8px; border-bottom: 1px solid var(--border); }
  a { color: var(--accent); text-decoration: none; }
  ul.headlines { list-style: none; }
  ul.headlines li { padding: 5px 0; border-bottom: 1px solid var(--border); font-size: 0.9rem; }
</style>
</head>
<body>
  <header>
    <h1>{{.Title}}</h1>
    <p class="muted">Generated {{.GeneratedAt}}</p>
  </header>

  <div class="stats">
    <div class="stat"><div class="value">{{len .Ports}}</div><div class="label">Ports</div></div>
    <div class="stat"><div class="value">{{len .Benchmarks}}</div><div class="label">Benchmarks</div></div>
    <div class="stat"><div class="value">{{.NodeCount}}</div><div class="label">Graph Nodes</div></div>
    <div class="stat"><div class="value">{{.EdgeCount}}</div><div class="label">Graph Edges</div></div>
    <div class="stat"><div class="value">{{.LinkCount}}</div><div class="label">Resolved Links</div></div>
  </div>

  {{if .MarketDegraded}}
  <div class="notice" id="market-degraded">
    ⚠️ Market data is unavailable — the price feed could not be reached. All other panels are live.
  </div>
  {{end}}

  <h2>Price History (3 months)</h2>
  <div id="chart-wrap"><canvas id="price-chart" height="120"></canvas></div>

  <h2>Knowledge Graph</h2>
  <div id="network"></div>

  <h2>Benchmarks</h2>
  <table id="benchmarks">
    <tr><th>Symbol</th><th>Description</th><th>Commodity</th><th>Currency</th><th>UOM</th></tr>
    {{range .Benchmarks}}
    <tr>
      <td>{{.Symbol}}</td><td>{{.Description}}</td><td>{{.Commodity}}</td>
      <td>{{.Currency}}</td><td>{{.UOM}}</td>
    </tr>
    {{end}}
  </table>

  <h2>Ports</h2>
  <table id="ports">
    <tr><th>ID</th><th>Name</th><th>Region</th><th>Lat</th><th>Lng</th></tr>
    {{range .Ports}}
    <tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Region}}</td><td>{{.Lat}}</td><td>{{.Lng}}</td></tr>
    {{end}}
  </table>

  {{if .Headlines}}
  <h2>Market Headlines</h2>
  <ul class="headlines">
    {{range .Headlines}}
    <li><a href="{{.URL}}">{{.Title}}</a> <span class="muted">— {{.Source}}</span></li>
    {{end}}
  </ul>
  {{end}}

<script>
  const payload = {{.PayloadJSON}};

  // Price history chart.
  const md = payload.market_data || {dates: [], datasets: {}};
  if (md.dates.length > 0) {
    const labels = Object.keys(md.datasets);
    new Chart(document.getElementById('price-chart'), {
      type: 'line',
      data: {
        labels: md.dates,
        datasets: labels.map((id, i) => ({
          label: id,
          data: md.datasets[id],
          borderWidth: 1.5,
          pointRadius: 0,
          borderColor: 'hsl(' + (i * 360 / labels.length) + ', 70%, 60%)'
        }))
      },
      options: { responsive: true, scales: { y: { beginAtZero: false } } }
    });
  }

  // Knowledge graph network.
  const g = payload.graph || {nodes: [], edges: []};
  new vis.Network(
    document.getElementById('network'),
    { nodes: new vis.DataSet(g.nodes), edges: new vis.DataSet(g.edges) },
    {
      nodes: { shape: 'dot', font: { color: '#e2e8f0' } },
      groups: {
        benchmark: { color: '#38bdf8' },
        commodity: { color: '#f97316' },
        currency:  { color: '#10b981' },
        port:      { color: '#a78bfa' }
      },
      physics: { stabilization: { iterations: 200 } }
    }
  );
</script>
</body>
</html>
`
