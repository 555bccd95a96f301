package search

// Match represents a single matching line in a file.
type Match struct {
	// File is the tree-relative, slash-separated path of the matching file.
	File string
	// Line is the 1-based line number of the match.
	Line int
	// Content is the text of the matching line.
	Content string
}
