package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

func TestCreateGroup(t *testing.T) {
	ts := setupTestServer(t)
	alice := createPerson(t, ts, "Alice")
	bob := createPerson(t, ts, "Bob")

	resp, err := ts.groups.CreateGroup(context.Background(), as("alice", &api.CreateGroupRequest{
		Name:      "Roommates",
		MemberIDs: []string{bob.ID, alice.ID, "unknown"},
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	group := resp.Msg.Group
	if group.ID == "" {
		t.Error("Expected group ID to be generated")
	}
	if len(group.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(group.Members))
	}
	if group.Members[0].Name != "Alice" || group.Members[1].Name != "Bob" {
		t.Errorf("members = %v, want Alice then Bob", group.Members)
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	ts := setupTestServer(t)
	_, err := ts.groups.GetGroup(context.Background(), as("alice", &api.GetGroupRequest{GroupID: "non-existent-id"}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestListGroups_Empty(t *testing.T) {
	ts := setupTestServer(t)
	resp, err := ts.groups.ListGroups(context.Background(), as("alice", &api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 0 {
		t.Errorf("groups = %d, want 0", len(resp.Msg.Groups))
	}
}

func TestUpdateGroup(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()
	alice := createPerson(t, ts, "Alice")
	bob := createPerson(t, ts, "Bob")

	created, err := ts.groups.CreateGroup(ctx, as("alice", &api.CreateGroupRequest{Name: "Band", MemberIDs: []string{alice.ID}}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.ID

	t.Run("name only keeps members", func(t *testing.T) {
		name := "The Band"
		resp, err := ts.groups.UpdateGroup(ctx, as("alice", &api.UpdateGroupRequest{GroupID: groupID, Name: &name}))
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if resp.Msg.Group.Name != "The Band" || len(resp.Msg.Group.Members) != 1 {
			t.Errorf("group = %+v", resp.Msg.Group)
		}
	})

	t.Run("members replaced", func(t *testing.T) {
		members := []string{bob.ID}
		resp, err := ts.groups.UpdateGroup(ctx, as("alice", &api.UpdateGroupRequest{GroupID: groupID, MemberIDs: &members}))
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 1 || resp.Msg.Group.Members[0].PersonID != bob.ID {
			t.Errorf("members = %v, want only Bob", resp.Msg.Group.Members)
		}
	})

	t.Run("empty list clears members", func(t *testing.T) {
		members := []string{}
		resp, err := ts.groups.UpdateGroup(ctx, as("alice", &api.UpdateGroupRequest{GroupID: groupID, MemberIDs: &members}))
		if err != nil {
			t.Fatalf("UpdateGroup failed: %v", err)
		}
		if len(resp.Msg.Group.Members) != 0 {
			t.Errorf("members = %v, want none", resp.Msg.Group.Members)
		}
	})

	t.Run("not owner", func(t *testing.T) {
		name := "Hijacked"
		_, err := ts.groups.UpdateGroup(ctx, as("bob", &api.UpdateGroupRequest{GroupID: groupID, Name: &name}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("not found", func(t *testing.T) {
		name := "x"
		_, err := ts.groups.UpdateGroup(ctx, as("alice", &api.UpdateGroupRequest{GroupID: "missing", Name: &name}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestDeleteGroup(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	created, err := ts.groups.CreateGroup(ctx, as("alice", &api.CreateGroupRequest{Name: "Temp"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	groupID := created.Msg.Group.ID

	if _, err := ts.groups.DeleteGroup(ctx, as("alice", &api.DeleteGroupRequest{GroupID: groupID})); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
	_, err = ts.groups.GetGroup(ctx, as("alice", &api.GetGroupRequest{GroupID: groupID}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = ts.groups.DeleteGroup(ctx, as("alice", &api.DeleteGroupRequest{GroupID: groupID}))
	assertCode(t, err, connect.CodeNotFound)
}
