package app

import (
	"fmt"

	"github.com/mthorpe/grip/internal/grid"
)

// demoGrid builds the built-in demo dataset: a deterministic inventory of
// fictional services, wide enough to make resizing and auto-fit worthwhile.
func demoGrid() *grid.Grid {
	g := grid.New([]grid.Column{
		{Key: "name", Title: "NAME", Width: 20},
		{Key: "status", Title: "STATUS", Width: 12},
		{Key: "region", Title: "REGION", Width: 14},
		{Key: "endpoint", Title: "ENDPOINT", Width: 30},
		{Key: "uptime", Title: "UPTIME", Width: 10},
	})

	names := []string{"gateway", "billing", "ledger", "search", "notifier", "scheduler", "archiver", "mailer"}
	statuses := []string{"running", "degraded", "stopped", "starting"}
	regions := []string{"eu-west-1", "us-east-2", "ap-southeast-1"}

	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("%s-%02d", names[i%len(names)], i)
		g.AppendRows(grid.Row{
			"name":     name,
			"status":   statuses[i%len(statuses)],
			"region":   regions[i%len(regions)],
			"endpoint": fmt.Sprintf("https://%s.internal.example.com:%d", name, 8000+i),
			"uptime":   fmt.Sprintf("%dh%02dm", i*7%120, i*13%60),
		})
	}
	return g
}
