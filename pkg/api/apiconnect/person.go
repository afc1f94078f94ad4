package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

// PersonServiceName is the fully-qualified name of the PersonService service.
const PersonServiceName = "splitledger.v1.PersonService"

// Procedure paths of the PersonService RPCs.
const (
	PersonServiceCreatePersonProcedure = "/splitledger.v1.PersonService/CreatePerson"
	PersonServiceGetPersonProcedure    = "/splitledger.v1.PersonService/GetPerson"
	PersonServiceListPersonsProcedure  = "/splitledger.v1.PersonService/ListPersons"
	PersonServiceUpdatePersonProcedure = "/splitledger.v1.PersonService/UpdatePerson"
	PersonServiceDeletePersonProcedure = "/splitledger.v1.PersonService/DeletePerson"
)

// PersonServiceClient is a client for the splitledger.v1.PersonService service.
type PersonServiceClient interface {
	CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error)
	GetPerson(context.Context, *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error)
	ListPersons(context.Context, *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error)
	UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
}

// NewPersonServiceClient constructs a client for the splitledger.v1.PersonService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewPersonServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PersonServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &personServiceClient{
		createPerson: connect.NewClient[api.CreatePersonRequest, api.CreatePersonResponse](httpClient, baseURL+PersonServiceCreatePersonProcedure, opts...),
		getPerson:    connect.NewClient[api.GetPersonRequest, api.GetPersonResponse](httpClient, baseURL+PersonServiceGetPersonProcedure, opts...),
		listPersons:  connect.NewClient[api.ListPersonsRequest, api.ListPersonsResponse](httpClient, baseURL+PersonServiceListPersonsProcedure, opts...),
		updatePerson: connect.NewClient[api.UpdatePersonRequest, api.UpdatePersonResponse](httpClient, baseURL+PersonServiceUpdatePersonProcedure, opts...),
		deletePerson: connect.NewClient[api.DeletePersonRequest, api.DeletePersonResponse](httpClient, baseURL+PersonServiceDeletePersonProcedure, opts...),
	}
}

type personServiceClient struct {
	createPerson *connect.Client[api.CreatePersonRequest, api.CreatePersonResponse]
	getPerson    *connect.Client[api.GetPersonRequest, api.GetPersonResponse]
	listPersons  *connect.Client[api.ListPersonsRequest, api.ListPersonsResponse]
	updatePerson *connect.Client[api.UpdatePersonRequest, api.UpdatePersonResponse]
	deletePerson *connect.Client[api.DeletePersonRequest, api.DeletePersonResponse]
}

func (c *personServiceClient) CreatePerson(ctx context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	return c.createPerson.CallUnary(ctx, req)
}

func (c *personServiceClient) GetPerson(ctx context.Context, req *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error) {
	return c.getPerson.CallUnary(ctx, req)
}

func (c *personServiceClient) ListPersons(ctx context.Context, req *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error) {
	return c.listPersons.CallUnary(ctx, req)
}

func (c *personServiceClient) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	return c.updatePerson.CallUnary(ctx, req)
}

func (c *personServiceClient) DeletePerson(ctx context.Context, req *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return c.deletePerson.CallUnary(ctx, req)
}

// PersonServiceHandler is implemented by the server side of splitledger.v1.PersonService.
type PersonServiceHandler interface {
	CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error)
	GetPerson(context.Context, *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error)
	ListPersons(context.Context, *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error)
	UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error)
	DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error)
}

// NewPersonServiceHandler builds an HTTP handler serving every PersonService procedure.
// It returns the path to mount the handler on.
func NewPersonServiceHandler(svc PersonServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	createPersonHandler := connect.NewUnaryHandler(PersonServiceCreatePersonProcedure, svc.CreatePerson, opts...)
	getPersonHandler := connect.NewUnaryHandler(PersonServiceGetPersonProcedure, svc.GetPerson, opts...)
	listPersonsHandler := connect.NewUnaryHandler(PersonServiceListPersonsProcedure, svc.ListPersons, opts...)
	updatePersonHandler := connect.NewUnaryHandler(PersonServiceUpdatePersonProcedure, svc.UpdatePerson, opts...)
	deletePersonHandler := connect.NewUnaryHandler(PersonServiceDeletePersonProcedure, svc.DeletePerson, opts...)
	return "/splitledger.v1.PersonService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PersonServiceCreatePersonProcedure:
			createPersonHandler.ServeHTTP(w, r)
		case PersonServiceGetPersonProcedure:
			getPersonHandler.ServeHTTP(w, r)
		case PersonServiceListPersonsProcedure:
			listPersonsHandler.ServeHTTP(w, r)
		case PersonServiceUpdatePersonProcedure:
			updatePersonHandler.ServeHTTP(w, r)
		case PersonServiceDeletePersonProcedure:
			deletePersonHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedPersonServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPersonServiceHandler struct{}

func (UnimplementedPersonServiceHandler) CreatePerson(context.Context, *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.CreatePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.PersonService.CreatePerson is not implemented"))
}

func (UnimplementedPersonServiceHandler) GetPerson(context.Context, *connect.Request[api.GetPersonRequest]) (*connect.Response[api.GetPersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.PersonService.GetPerson is not implemented"))
}

func (UnimplementedPersonServiceHandler) ListPersons(context.Context, *connect.Request[api.ListPersonsRequest]) (*connect.Response[api.ListPersonsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.PersonService.ListPersons is not implemented"))
}

func (UnimplementedPersonServiceHandler) UpdatePerson(context.Context, *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.UpdatePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.PersonService.UpdatePerson is not implemented"))
}

func (UnimplementedPersonServiceHandler) DeletePerson(context.Context, *connect.Request[api.DeletePersonRequest]) (*connect.Response[api.DeletePersonResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.PersonService.DeletePerson is not implemented"))
}
