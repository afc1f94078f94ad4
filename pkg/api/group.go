package api

type Group struct {
	ID      string         `json:"id"`
	OwnerID string         `json:"ownerId"`
	Name    string         `json:"name"`
	Members []*GroupMember `json:"members"`
}

type GroupMember struct {
	PersonID string `json:"personId"`
	Name     string `json:"name"`
}

type CreateGroupRequest struct {
	Name      string   `json:"name"`
	MemberIDs []string `json:"memberIds,omitempty"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"groupId"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

// UpdateGroupRequest changes only the fields that are set. A non-nil
// MemberIDs replaces the whole member set; an empty list removes everyone.
type UpdateGroupRequest struct {
	GroupID   string    `json:"groupId"`
	Name      *string   `json:"name,omitempty"`
	MemberIDs *[]string `json:"memberIds,omitempty"`
}

type UpdateGroupResponse struct {
	Group *Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"groupId"`
}

type DeleteGroupResponse struct{}
