package history

// FilterState is the presentation layer's current view settings: a search
// query plus a tag selection that only applies while TagFilterActive. The
// store owns one instance so selection survives across operations, but the
// state never influences mutations.
type FilterState struct {
	Query           string
	SelectedTags    []string
	TagFilterActive bool
}

// ToggleTag adds the tag to the selection, or removes it if already
// selected. Reports whether the tag is selected afterwards.
func (f *FilterState) ToggleTag(tag string) bool {
	for i, t := range f.SelectedTags {
		if t == tag {
			f.SelectedTags = append(f.SelectedTags[:i], f.SelectedTags[i+1:]...)
			return false
		}
	}
	f.SelectedTags = append(f.SelectedTags, tag)
	return true
}

// Reset clears the query and tag selection.
func (f *FilterState) Reset() {
	f.Query = ""
	f.SelectedTags = nil
	f.TagFilterActive = false
}
