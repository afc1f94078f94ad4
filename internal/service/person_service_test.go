package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

func createPerson(t *testing.T, ts *testServer, name string) *api.Person {
	t.Helper()
	resp, err := ts.persons.CreatePerson(context.Background(), as("alice", &api.CreatePersonRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	return resp.Msg.Person
}

func TestPersonLifecycle(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	created, err := ts.persons.CreatePerson(ctx, as("alice", &api.CreatePersonRequest{Name: "Carol", UserID: ts.bob.ID}))
	if err != nil {
		t.Fatalf("CreatePerson failed: %v", err)
	}
	person := created.Msg.Person
	if person.UserID != ts.bob.ID || person.OwnerID != ts.alice.ID {
		t.Errorf("person = %+v", person)
	}

	list, err := ts.persons.ListPersons(ctx, as("bob", &api.ListPersonsRequest{}))
	if err != nil {
		t.Fatalf("ListPersons failed: %v", err)
	}
	if len(list.Msg.Persons) != 1 {
		t.Errorf("persons = %d, want 1", len(list.Msg.Persons))
	}

	name := "Caroline"
	unlink := ""
	updated, err := ts.persons.UpdatePerson(ctx, as("alice", &api.UpdatePersonRequest{
		PersonID: person.ID,
		Name:     &name,
		UserID:   &unlink,
	}))
	if err != nil {
		t.Fatalf("UpdatePerson failed: %v", err)
	}
	if updated.Msg.Person.Name != "Caroline" || updated.Msg.Person.UserID != "" {
		t.Errorf("updated = %+v", updated.Msg.Person)
	}

	_, err = ts.persons.DeletePerson(ctx, as("bob", &api.DeletePersonRequest{PersonID: person.ID}))
	assertCode(t, err, connect.CodePermissionDenied)

	if _, err := ts.persons.DeletePerson(ctx, as("alice", &api.DeletePersonRequest{PersonID: person.ID})); err != nil {
		t.Fatalf("DeletePerson failed: %v", err)
	}
	_, err = ts.persons.GetPerson(ctx, as("alice", &api.GetPersonRequest{PersonID: person.ID}))
	assertCode(t, err, connect.CodeNotFound)
}

func TestCreatePerson_UnknownUser(t *testing.T) {
	ts := setupTestServer(t)
	_, err := ts.persons.CreatePerson(context.Background(), as("alice", &api.CreatePersonRequest{Name: "Eve", UserID: "nobody"}))
	assertCode(t, err, connect.CodeNotFound)
}
