package domain

// AttachedMedia references a file stored in the external blob service. A
// populated PublicID must point at a live remote object; replacing or
// deleting the owning record releases that object.
type AttachedMedia struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	FileName string `json:"file_name,omitempty"`
}

// Present reports whether the value references a remote object.
func (m *AttachedMedia) Present() bool {
	return m != nil && m.PublicID != ""
}
