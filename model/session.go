package model

// HistoryEntry is a closed session shown in the sidebar.
type HistoryEntry struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"` // first user message, truncated
	Active bool   `yaml:"active"`
}

// Toggle selects between the short and the detailed canned reply.
type Toggle struct {
	Detailed bool `yaml:"detailed"`
}
