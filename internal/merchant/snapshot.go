package merchant

import "context"

// Snapshot is an immutable in-memory copy of the directory. A nil Snapshot is an empty
// directory.
type Snapshot map[string]string

var _ Directory = Snapshot(nil)

// NewSnapshot indexes aliases by original name. Later duplicates win.
func NewSnapshot(aliases []Alias) Snapshot {
	s := make(Snapshot, len(aliases))
	for _, a := range aliases {
		s[a.OriginalName] = a.DisplayName
	}
	return s
}

func (s Snapshot) Lookup(_ context.Context, originalName string) (string, bool, error) {
	name, ok := s[originalName]
	return name, ok, nil
}

func (s Snapshot) ListAll(_ context.Context) ([]Alias, error) {
	out := make([]Alias, 0, len(s))
	for original, display := range s {
		out = append(out, Alias{OriginalName: original, DisplayName: display})
	}
	return out, nil
}
