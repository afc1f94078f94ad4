package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/pkg/api"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "splitledger.v1.LedgerService"

// Procedure paths of the LedgerService RPCs.
const (
	LedgerServiceCreateLedgerProcedure        = "/splitledger.v1.LedgerService/CreateLedger"
	LedgerServiceGetLedgerProcedure           = "/splitledger.v1.LedgerService/GetLedger"
	LedgerServiceListLedgersProcedure         = "/splitledger.v1.LedgerService/ListLedgers"
	LedgerServiceUpdateLedgerProcedure        = "/splitledger.v1.LedgerService/UpdateLedger"
	LedgerServiceDeleteLedgerProcedure        = "/splitledger.v1.LedgerService/DeleteLedger"
	LedgerServiceCreateTransactionProcedure   = "/splitledger.v1.LedgerService/CreateTransaction"
	LedgerServiceGetTransactionProcedure      = "/splitledger.v1.LedgerService/GetTransaction"
	LedgerServiceListTransactionsProcedure    = "/splitledger.v1.LedgerService/ListTransactions"
	LedgerServiceVerifyLedgerBalanceProcedure = "/splitledger.v1.LedgerService/VerifyLedgerBalance"
)

// LedgerServiceClient is a client for the splitledger.v1.LedgerService service.
type LedgerServiceClient interface {
	CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error)
	UpdateLedger(context.Context, *connect.Request[api.UpdateLedgerRequest]) (*connect.Response[api.UpdateLedgerResponse], error)
	DeleteLedger(context.Context, *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	VerifyLedgerBalance(context.Context, *connect.Request[api.VerifyLedgerBalanceRequest]) (*connect.Response[api.VerifyLedgerBalanceResponse], error)
}

// NewLedgerServiceClient constructs a client for the splitledger.v1.LedgerService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &ledgerServiceClient{
		createLedger:        connect.NewClient[api.CreateLedgerRequest, api.CreateLedgerResponse](httpClient, baseURL+LedgerServiceCreateLedgerProcedure, opts...),
		getLedger:           connect.NewClient[api.GetLedgerRequest, api.GetLedgerResponse](httpClient, baseURL+LedgerServiceGetLedgerProcedure, opts...),
		listLedgers:         connect.NewClient[api.ListLedgersRequest, api.ListLedgersResponse](httpClient, baseURL+LedgerServiceListLedgersProcedure, opts...),
		updateLedger:        connect.NewClient[api.UpdateLedgerRequest, api.UpdateLedgerResponse](httpClient, baseURL+LedgerServiceUpdateLedgerProcedure, opts...),
		deleteLedger:        connect.NewClient[api.DeleteLedgerRequest, api.DeleteLedgerResponse](httpClient, baseURL+LedgerServiceDeleteLedgerProcedure, opts...),
		createTransaction:   connect.NewClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL+LedgerServiceCreateTransactionProcedure, opts...),
		getTransaction:      connect.NewClient[api.GetTransactionRequest, api.GetTransactionResponse](httpClient, baseURL+LedgerServiceGetTransactionProcedure, opts...),
		listTransactions:    connect.NewClient[api.ListTransactionsRequest, api.ListTransactionsResponse](httpClient, baseURL+LedgerServiceListTransactionsProcedure, opts...),
		verifyLedgerBalance: connect.NewClient[api.VerifyLedgerBalanceRequest, api.VerifyLedgerBalanceResponse](httpClient, baseURL+LedgerServiceVerifyLedgerBalanceProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	createLedger        *connect.Client[api.CreateLedgerRequest, api.CreateLedgerResponse]
	getLedger           *connect.Client[api.GetLedgerRequest, api.GetLedgerResponse]
	listLedgers         *connect.Client[api.ListLedgersRequest, api.ListLedgersResponse]
	updateLedger        *connect.Client[api.UpdateLedgerRequest, api.UpdateLedgerResponse]
	deleteLedger        *connect.Client[api.DeleteLedgerRequest, api.DeleteLedgerResponse]
	createTransaction   *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	getTransaction      *connect.Client[api.GetTransactionRequest, api.GetTransactionResponse]
	listTransactions    *connect.Client[api.ListTransactionsRequest, api.ListTransactionsResponse]
	verifyLedgerBalance *connect.Client[api.VerifyLedgerBalanceRequest, api.VerifyLedgerBalanceResponse]
}

func (c *ledgerServiceClient) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	return c.createLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListLedgers(ctx context.Context, req *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error) {
	return c.listLedgers.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateLedger(ctx context.Context, req *connect.Request[api.UpdateLedgerRequest]) (*connect.Response[api.UpdateLedgerResponse], error) {
	return c.updateLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteLedger(ctx context.Context, req *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error) {
	return c.deleteLedger.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetTransaction(ctx context.Context, req *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	return c.getTransaction.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListTransactions(ctx context.Context, req *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) VerifyLedgerBalance(ctx context.Context, req *connect.Request[api.VerifyLedgerBalanceRequest]) (*connect.Response[api.VerifyLedgerBalanceResponse], error) {
	return c.verifyLedgerBalance.CallUnary(ctx, req)
}

// LedgerServiceHandler is implemented by the server side of splitledger.v1.LedgerService.
type LedgerServiceHandler interface {
	CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error)
	UpdateLedger(context.Context, *connect.Request[api.UpdateLedgerRequest]) (*connect.Response[api.UpdateLedgerResponse], error)
	DeleteLedger(context.Context, *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error)
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error)
	VerifyLedgerBalance(context.Context, *connect.Request[api.VerifyLedgerBalanceRequest]) (*connect.Response[api.VerifyLedgerBalanceResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler serving every LedgerService procedure.
// It returns the path to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)
	createLedgerHandler := connect.NewUnaryHandler(LedgerServiceCreateLedgerProcedure, svc.CreateLedger, opts...)
	getLedgerHandler := connect.NewUnaryHandler(LedgerServiceGetLedgerProcedure, svc.GetLedger, opts...)
	listLedgersHandler := connect.NewUnaryHandler(LedgerServiceListLedgersProcedure, svc.ListLedgers, opts...)
	updateLedgerHandler := connect.NewUnaryHandler(LedgerServiceUpdateLedgerProcedure, svc.UpdateLedger, opts...)
	deleteLedgerHandler := connect.NewUnaryHandler(LedgerServiceDeleteLedgerProcedure, svc.DeleteLedger, opts...)
	createTransactionHandler := connect.NewUnaryHandler(LedgerServiceCreateTransactionProcedure, svc.CreateTransaction, opts...)
	getTransactionHandler := connect.NewUnaryHandler(LedgerServiceGetTransactionProcedure, svc.GetTransaction, opts...)
	listTransactionsHandler := connect.NewUnaryHandler(LedgerServiceListTransactionsProcedure, svc.ListTransactions, opts...)
	verifyLedgerBalanceHandler := connect.NewUnaryHandler(LedgerServiceVerifyLedgerBalanceProcedure, svc.VerifyLedgerBalance, opts...)
	return "/splitledger.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceCreateLedgerProcedure:
			createLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceGetLedgerProcedure:
			getLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceListLedgersProcedure:
			listLedgersHandler.ServeHTTP(w, r)
		case LedgerServiceUpdateLedgerProcedure:
			updateLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteLedgerProcedure:
			deleteLedgerHandler.ServeHTTP(w, r)
		case LedgerServiceCreateTransactionProcedure:
			createTransactionHandler.ServeHTTP(w, r)
		case LedgerServiceGetTransactionProcedure:
			getTransactionHandler.ServeHTTP(w, r)
		case LedgerServiceListTransactionsProcedure:
			listTransactionsHandler.ServeHTTP(w, r)
		case LedgerServiceVerifyLedgerBalanceProcedure:
			verifyLedgerBalanceHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) CreateLedger(context.Context, *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.CreateLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetLedger(context.Context, *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListLedgers(context.Context, *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ListLedgers is not implemented"))
}

func (UnimplementedLedgerServiceHandler) UpdateLedger(context.Context, *connect.Request[api.UpdateLedgerRequest]) (*connect.Response[api.UpdateLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.UpdateLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteLedger(context.Context, *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.DeleteLedger is not implemented"))
}

func (UnimplementedLedgerServiceHandler) CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.CreateTransaction is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetTransaction(context.Context, *connect.Request[api.GetTransactionRequest]) (*connect.Response[api.GetTransactionResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.GetTransaction is not implemented"))
}

func (UnimplementedLedgerServiceHandler) ListTransactions(context.Context, *connect.Request[api.ListTransactionsRequest]) (*connect.Response[api.ListTransactionsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.ListTransactions is not implemented"))
}

func (UnimplementedLedgerServiceHandler) VerifyLedgerBalance(context.Context, *connect.Request[api.VerifyLedgerBalanceRequest]) (*connect.Response[api.VerifyLedgerBalanceResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("splitledger.v1.LedgerService.VerifyLedgerBalance is not implemented"))
}
