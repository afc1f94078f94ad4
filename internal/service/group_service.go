package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

// GroupService implements the Connect GroupService
type GroupService struct {
	apiconnect.UnimplementedGroupServiceHandler
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a new group. Unknown member IDs are ignored.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.MemberIDs),
	)

	name, err := requireName("group", req.Msg.Name)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	group := &models.Group{OwnerID: session.UserID, Name: name}
	if err := s.store.CreateGroup(ctx, group, req.Msg.MemberIDs); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Group created", "group_id", group.ID, "members", len(group.Members))
	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		slog.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("GetGroup successful", "group_id", group.ID, "name", group.Name)
	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups retrieves all groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	resp := &api.ListGroupsResponse{Groups: make([]*api.Group, len(groups))}
	for i, g := range groups {
		resp.Groups[i] = toAPIGroup(g)
	}

	slog.Info("ListGroups successful", "count", len(groups))
	return connect.NewResponse(resp), nil
}

// UpdateGroup renames a group or replaces its members.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("UpdateGroup request received", "group_id", req.Msg.GroupID, "user_id", session.UserID)

	update := models.GroupUpdate{Name: trimPtr(req.Msg.Name)}
	if update.Name != nil && *update.Name == "" {
		return nil, apperr.ToConnect(apperr.Validation("group name is required"))
	}
	if req.Msg.MemberIDs != nil {
		update.MemberIDs = *req.Msg.MemberIDs
		update.ReplaceMembers = true
	}

	group, err := s.store.UpdateGroup(ctx, req.Msg.GroupID, session.UserID, update)
	if err != nil {
		slog.Error("UpdateGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Group updated", "group_id", group.ID)
	return connect.NewResponse(&api.UpdateGroupResponse{Group: toAPIGroup(group)}), nil
}

// DeleteGroup deletes a group the caller owns.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID, session.UserID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)
	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}
