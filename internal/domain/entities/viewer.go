package entities

// Viewer is the identity attempting to read or act on a record. A zero ID
// means the request carried no valid session.
type Viewer struct {
	ID string
}

func (v Viewer) Authenticated() bool {
	return v.ID != ""
}

// Owns reports whether v created the record. Convenience for gating; the
// store re-checks ownership on every conditional write regardless.
func (v Viewer) Owns(p Project) bool {
	return v.Authenticated() && v.ID == p.OwnerID
}
