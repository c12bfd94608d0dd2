package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"landmass/pkg/engine/world"
)

// SaveScreenshotHTML saves the map as an HTML file in dir, named after the
// current time, and returns the path written
func SaveScreenshotHTML(dir string, seed int64, m *world.LandMap, messages []string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	if err := os.WriteFile(filename, []byte(RenderHTML(seed, m, messages)), 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// RenderHTML draws the map with its border as a standalone HTML page,
// top row first
func RenderHTML(seed int64, m *world.LandMap, messages []string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Landmass - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 12px;
        }
        .land { color: #3c9a3c; }
        .water { color: #1c3f7a; }
        .border { color: #666; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">Seed %d: %dx%d</div>`+"\n", seed, m.Width(), m.Height())
	b.WriteString(`    <div class="map-container">` + "\n")

	for y := m.Height(); y >= -1; y-- {
		b.WriteString(`        <div class="map-row">`)
		for x := -1; x <= m.Width(); x++ {
			icon, class := cellHTMLInfo(m, x, y)
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, icon)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(`    </div>` + "\n")

	if len(messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func cellHTMLInfo(m *world.LandMap, x, y int) (string, string) {
	switch {
	case !m.InBounds(x, y):
		return "▒", "border"
	case m.IsLand(x, y):
		return "█", "land"
	default:
		return "·", "water"
	}
}
