package models

// Group represents a reusable set of persons.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// OwnerID is the user who created the group.
	OwnerID string

	// Name is the display name of the group (e.g., "Roommates", "Band").
	Name string

	// Members is the list of persons in this group, ordered by name.
	Members []GroupMember
}

// GroupMember links a person to a group.
type GroupMember struct {
	GroupID  string
	PersonID string

	// Name is the person's name, resolved on read.
	Name string
}

// MemberIDs returns the person IDs of the group's members.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.PersonID
	}
	return ids
}

// GroupUpdate lists the group fields that may change after creation.
// When ReplaceMembers is set, MemberIDs becomes the complete member set.
type GroupUpdate struct {
	Name           *string
	MemberIDs      []string
	ReplaceMembers bool
}
