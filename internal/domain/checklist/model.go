package checklist

// Item is one expected check within a project's checklist
type Item struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	Expected  string `json:"expected,omitempty"`
	Position  int    `json:"position"`
}

// Entry is a raw checklist row before validation and numbering,
// as produced by an importer or editor.
type Entry struct {
	Title    string
	Category string
	Expected string
}
