package model

// Path represents a file system path.
type Path string

// Strings converts paths to plain strings.
func Strings(paths []Path) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(p))
	}

	return out
}
