// Command checklistctl drives checklists on a remote checklist API: it creates,
// updates, exports and live-watches them through a realtime session.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
