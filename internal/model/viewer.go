package model

// Viewer is the request-scoped identity resolved from the session. A nil
// Viewer is an anonymous request.
type Viewer struct {
	ID          int64
	Username    string
	IsStaff     bool
	IsSuperuser bool
}

// SeesHidden reports whether the viewer sees draft and scheduled posts.
// Either flag elevates the listing and detail views.
func (v *Viewer) SeesHidden() bool {
	return v != nil && (v.IsStaff || v.IsSuperuser)
}

// CanManagePosts gates create/update/delete. Unlike SeesHidden it requires
// both flags; the two checks are intentionally not the same.
func (v *Viewer) CanManagePosts() bool {
	return v != nil && v.IsStaff && v.IsSuperuser
}
