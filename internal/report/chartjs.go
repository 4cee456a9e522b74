package report

import (
	"io"
	"net/http"
	"strings"
	"time"
)

const chartJSURL = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"

// chartJSStub keeps the page rendering when the bundle cannot be fetched:
// charts are skipped, everything else still works offline.
const chartJSStub = "/* Chart.js load failed */ window.Chart = undefined;"

// fetchChartJS downloads the Chart.js UMD bundle for inlining so the report
// works over file:// with no CDN. Any failure falls back to the stub.
func fetchChartJS() string {
	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequest("GET", chartJSURL, nil)
	if err != nil {
		return chartJSStub
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; SmartDiff/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return chartJSStub
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return chartJSStub
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return chartJSStub
	}
	// A literal </script> inside the bundle would end the inline block early.
	return strings.ReplaceAll(strings.ToValidUTF8(string(raw), "�"), "</script>", "<\\/script>")
}
