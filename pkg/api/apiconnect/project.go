package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

// ProjectServiceName is the fully-qualified name of the ProjectService service.
const ProjectServiceName = "splitledger.v1.ProjectService"

// Procedure paths of the ProjectService RPCs.
const (
	ProjectServiceCreateProjectProcedure       = "/splitledger.v1.ProjectService/CreateProject"
	ProjectServiceGetProjectProcedure          = "/splitledger.v1.ProjectService/GetProject"
	ProjectServiceListProjectsProcedure        = "/splitledger.v1.ProjectService/ListProjects"
	ProjectServiceUpdateProjectProcedure       = "/splitledger.v1.ProjectService/UpdateProject"
	ProjectServiceSetProjectCompletedProcedure = "/splitledger.v1.ProjectService/SetProjectCompleted"
	ProjectServiceDeleteProjectProcedure       = "/splitledger.v1.ProjectService/DeleteProject"
	ProjectServiceListParticipantsProcedure    = "/splitledger.v1.ProjectService/ListParticipants"
	ProjectServiceSuggestPayoutProcedure       = "/splitledger.v1.ProjectService/SuggestPayout"
	ProjectServicePayoutProjectProcedure       = "/splitledger.v1.ProjectService/PayoutProject"
)

// ProjectServiceClient is a client for the splitledger.v1.ProjectService service.
type ProjectServiceClient interface {
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
	UpdateProject(context.Context, *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error)
	SetProjectCompleted(context.Context, *connect.Request[api.SetProjectCompletedRequest]) (*connect.Response[api.SetProjectCompletedResponse], error)
	DeleteProject(context.Context, *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	SuggestPayout(context.Context, *connect.Request[api.SuggestPayoutRequest]) (*connect.Response[api.SuggestPayoutResponse], error)
	PayoutProject(context.Context, *connect.Request[api.PayoutProjectRequest]) (*connect.Response[api.PayoutProjectResponse], error)
}

// NewProjectServiceClient constructs a client for the splitledger.v1.ProjectService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewProjectServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProjectServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &projectServiceClient{
		createProject:       connect.NewClient[api.CreateProjectRequest, api.CreateProjectResponse](httpClient, baseURL+ProjectServiceCreateProjectProcedure, opts...),
		getProject:          connect.NewClient[api.GetProjectRequest, api.GetProjectResponse](httpClient, baseURL+ProjectServiceGetProjectProcedure, opts...),
		listProjects:        connect.NewClient[api.ListProjectsRequest, api.ListProjectsResponse](httpClient, baseURL+ProjectServiceListProjectsProcedure, opts...),
		updateProject:       connect.NewClient[api.UpdateProjectRequest, api.UpdateProjectResponse](httpClient, baseURL+ProjectServiceUpdateProjectProcedure, opts...),
		setProjectCompleted: connect.NewClient[api.SetProjectCompletedRequest, api.SetProjectCompletedResponse](httpClient, baseURL+ProjectServiceSetProjectCompletedProcedure, opts...),
		deleteProject:       connect.NewClient[api.DeleteProjectRequest, api.DeleteProjectResponse](httpClient, baseURL+ProjectServiceDeleteProjectProcedure, opts...),
		listParticipants:    connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](httpClient, baseURL+ProjectServiceListParticipantsProcedure, opts...),
		suggestPayout:       connect.NewClient[api.SuggestPayoutRequest, api.SuggestPayoutResponse](httpClient, baseURL+ProjectServiceSuggestPayoutProcedure, opts...),
		payoutProject:       connect.NewClient[api.PayoutProjectRequest, api.PayoutProjectResponse](httpClient, baseURL+ProjectServicePayoutProjectProcedure, opts...),
	}
}

type projectServiceClient struct {
	createProject       *connect.Client[api.CreateProjectRequest, api.CreateProjectResponse]
	getProject          *connect.Client[api.GetProjectRequest, api.GetProjectResponse]
	listProjects        *connect.Client[api.ListProjectsRequest, api.ListProjectsResponse]
	updateProject       *connect.Client[api.UpdateProjectRequest, api.UpdateProjectResponse]
	setProjectCompleted *connect.Client[api.SetProjectCompletedRequest, api.SetProjectCompletedResponse]
	deleteProject       *connect.Client[api.DeleteProjectRequest, api.DeleteProjectResponse]
	listParticipants    *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	suggestPayout       *connect.Client[api.SuggestPayoutRequest, api.SuggestPayoutResponse]
	payoutProject       *connect.Client[api.PayoutProjectRequest, api.PayoutProjectResponse]
}

func (c *projectServiceClient) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	return c.createProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	return c.getProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return c.listProjects.CallUnary(ctx, req)
}

func (c *projectServiceClient) UpdateProject(ctx context.Context, req *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error) {
	return c.updateProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) SetProjectCompleted(ctx context.Context, req *connect.Request[api.SetProjectCompletedRequest]) (*connect.Response[api.SetProjectCompletedResponse], error) {
	return c.setProjectCompleted.CallUnary(ctx, req)
}

func (c *projectServiceClient) DeleteProject(ctx context.Context, req *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	return c.deleteProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

func (c *projectServiceClient) SuggestPayout(ctx context.Context, req *connect.Request[api.SuggestPayoutRequest]) (*connect.Response[api.SuggestPayoutResponse], error) {
	return c.suggestPayout.CallUnary(ctx, req)
}

func (c *projectServiceClient) PayoutProject(ctx context.Context, req *connect.Request[api.PayoutProjectRequest]) (*connect.Response[api.PayoutProjectResponse], error) {
	return c.payoutProject.CallUnary(ctx, req)
}

// ProjectServiceHandler is implemented by the server side of splitledger.v1.ProjectService.
type ProjectServiceHandler interface {
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
	UpdateProject(context.Context, *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error)
	SetProjectCompleted(context.Context, *connect.Request[api.SetProjectCompletedRequest]) (*connect.Response[api.SetProjectCompletedResponse], error)
	DeleteProject(context.Context, *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	SuggestPayout(context.Context, *connect.Request[api.SuggestPayoutRequest]) (*connect.Response[api.SuggestPayoutResponse], error)
	PayoutProject(context.Context, *connect.Request[api.PayoutProjectRequest]) (*connect.Response[api.PayoutProjectResponse], error)
}

// NewProjectServiceHandler builds an HTTP handler serving every ProjectService procedure.
// It returns the path to mount the handler on.
func NewProjectServiceHandler(svc ProjectServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	createProjectHandler := connect.NewUnaryHandler(ProjectServiceCreateProjectProcedure, svc.CreateProject, opts...)
	getProjectHandler := connect.NewUnaryHandler(ProjectServiceGetProjectProcedure, svc.GetProject, opts...)
	listProjectsHandler := connect.NewUnaryHandler(ProjectServiceListProjectsProcedure, svc.ListProjects, opts...)
	updateProjectHandler := connect.NewUnaryHandler(ProjectServiceUpdateProjectProcedure, svc.UpdateProject, opts...)
	setProjectCompletedHandler := connect.NewUnaryHandler(ProjectServiceSetProjectCompletedProcedure, svc.SetProjectCompleted, opts...)
	deleteProjectHandler := connect.NewUnaryHandler(ProjectServiceDeleteProjectProcedure, svc.DeleteProject, opts...)
	listParticipantsHandler := connect.NewUnaryHandler(ProjectServiceListParticipantsProcedure, svc.ListParticipants, opts...)
	suggestPayoutHandler := connect.NewUnaryHandler(ProjectServiceSuggestPayoutProcedure, svc.SuggestPayout, opts...)
	payoutProjectHandler := connect.NewUnaryHandler(ProjectServicePayoutProjectProcedure, svc.PayoutProject, opts...)
	return "/splitledger.v1.ProjectService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ProjectServiceCreateProjectProcedure:
			createProjectHandler.ServeHTTP(w, r)
		case ProjectServiceGetProjectProcedure:
			getProjectHandler.ServeHTTP(w, r)
		case ProjectServiceListProjectsProcedure:
			listProjectsHandler.ServeHTTP(w, r)
		case ProjectServiceUpdateProjectProcedure:
			updateProjectHandler.ServeHTTP(w, r)
		case ProjectServiceSetProjectCompletedProcedure:
			setProjectCompletedHandler.ServeHTTP(w, r)
		case ProjectServiceDeleteProjectProcedure:
			deleteProjectHandler.ServeHTTP(w, r)
		case ProjectServiceListParticipantsProcedure:
			listParticipantsHandler.ServeHTTP(w, r)
		case ProjectServiceSuggestPayoutProcedure:
			suggestPayoutHandler.ServeHTTP(w, r)
		case ProjectServicePayoutProjectProcedure:
			payoutProjectHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedProjectServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedProjectServiceHandler struct{}

func (UnimplementedProjectServiceHandler) CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.CreateProject is not implemented"))
}

func (UnimplementedProjectServiceHandler) GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.GetProject is not implemented"))
}

func (UnimplementedProjectServiceHandler) ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.ListProjects is not implemented"))
}

func (UnimplementedProjectServiceHandler) UpdateProject(context.Context, *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.UpdateProject is not implemented"))
}

func (UnimplementedProjectServiceHandler) SetProjectCompleted(context.Context, *connect.Request[api.SetProjectCompletedRequest]) (*connect.Response[api.SetProjectCompletedResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.SetProjectCompleted is not implemented"))
}

func (UnimplementedProjectServiceHandler) DeleteProject(context.Context, *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.DeleteProject is not implemented"))
}

func (UnimplementedProjectServiceHandler) ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.ListParticipants is not implemented"))
}

func (UnimplementedProjectServiceHandler) SuggestPayout(context.Context, *connect.Request[api.SuggestPayoutRequest]) (*connect.Response[api.SuggestPayoutResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.SuggestPayout is not implemented"))
}

func (UnimplementedProjectServiceHandler) PayoutProject(context.Context, *connect.Request[api.PayoutProjectRequest]) (*connect.Response[api.PayoutProjectResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.ProjectService.PayoutProject is not implemented"))
}
