package pipeline

// Selection is the version chosen for a service at one rank.
type Selection struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// Snapshot holds the selections of a run, in configured service order.
type Snapshot struct {
	Latest      []Selection
	Penultimate []Selection

	// PluginTags are the release tags used to filter the plugin service.
	PluginTags []string

	// Missing lists services for which no version could be selected.
	Missing []string
}

// Output describes where snapshot files are written.
type Output struct {
	Dir             string
	LatestFile      string
	PenultimateFile string
}
