package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
	"github.com/mmynk/splitledger/pkg/api/apiconnect"
)

var _ apiconnect.PersonServiceHandler = (*PersonService)(nil)

// PersonService implements the Connect PersonService.
type PersonService struct {
	store storage.Store
}

// NewPersonService creates a new PersonService with the given storage backend.
func NewPersonService(store storage.Store) *PersonService {
	return &PersonService{store: store}
}

// CreatePerson creates a person owned by the caller.
func (s *PersonService) CreatePerson(ctx context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("CreatePerson request received", "name", req.Msg.Name, "user_id", session.UserID)

	name, err := requireName("person", req.Msg.Name)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	userID := strings.TrimSpace(req.Msg.UserID)
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, apperr.ToConnect(err)
	}

	person := &models.Person{OwnerID: session.UserID, Name: name, UserID: userID}
	if err := s.store.CreatePerson(ctx, person); err != nil {
		slog.Error("CreatePerson failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Person created", "person_id", person.ID)
	return connect.NewResponse(&api.CreatePersonResponse{Person: toAPIPerson(person)}), nil
}

// checkUser rejects links to login identities that do not exist.
func (s *PersonService) checkUser(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user", userID)
	}
	return nil
}

// GetPerson retrieves a person by ID.
func (s *PersonService) GetPerson(ctx context.Context, req *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("GetPerson request received", "person_id", req.Msg.PersonID)

	person, err := s.store.GetPerson(ctx, req.Msg.PersonID)
	if err != nil {
		slog.Error("GetPerson failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&api.GetPersonResponse{Person: toAPIPerson(person)}), nil
}

// ListPersons retrieves all persons.
func (s *PersonService) ListPersons(ctx context.Context, req *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("ListPersons request received")

	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		slog.Error("ListPersons failed", "error", err)
		return nil, apperr.ToConnect(err)
	}

	resp := &api.ListPersonsResponse{Persons: make([]*api.Person, len(persons))}
	for i, p := range persons {
		resp.Persons[i] = toAPIPerson(p)
	}
	return connect.NewResponse(resp), nil
}

// UpdatePerson renames a person or changes its user link.
func (s *PersonService) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("UpdatePerson request received", "person_id", req.Msg.PersonID, "user_id", session.UserID)

	update := models.PersonUpdate{
		Name:   trimPtr(req.Msg.Name),
		UserID: trimPtr(req.Msg.UserID),
	}
	if update.Name != nil && *update.Name == "" {
		return nil, apperr.ToConnect(apperr.Validation("person name is required"))
	}
	if update.UserID != nil {
		if err := s.checkUser(ctx, *update.UserID); err != nil {
			return nil, apperr.ToConnect(err)
		}
	}

	person, err := s.store.UpdatePerson(ctx, req.Msg.PersonID, session.UserID, update)
	if err != nil {
		slog.Error("UpdatePerson failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Person updated", "person_id", person.ID)
	return connect.NewResponse(&api.UpdatePersonResponse{Person: toAPIPerson(person)}), nil
}

// DeletePerson removes a person the caller owns.
func (s *PersonService) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	session, err := requireSession(ctx)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	slog.Info("DeletePerson request received", "person_id", req.Msg.PersonID, "user_id", session.UserID)

	if err := s.store.DeletePerson(ctx, req.Msg.PersonID, session.UserID); err != nil {
		slog.Error("DeletePerson failed", "person_id", req.Msg.PersonID, "error", err)
		return nil, apperr.ToConnect(err)
	}

	slog.Info("Person deleted", "person_id", req.Msg.PersonID)
	return connect.NewResponse(&api.DeletePersonResponse{}), nil
}
