package contract

// ImportResult reports what an import wrote.
type ImportResult struct {
	Kind    string
	Source  string
	Created int
}
