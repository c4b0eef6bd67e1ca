package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/0xcafe-io/iz"
	"github.com/fatali-fataliyev/finance_graphql/internal/contextutil"
	"github.com/fatali-fataliyev/finance_graphql/internal/finance"
	"github.com/fatali-fataliyev/finance_graphql/logging"
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

type Api struct {
	Service *finance.FinanceTracker
	schema  graphql.Schema
}

func NewApi(service *finance.FinanceTracker) (*Api, error) {
	api := &Api{
		Service: service,
	}
	schema, err := api.newSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to build graphql schema: %w", err)
	}
	api.schema = schema
	return api, nil
}

func (api *Api) Routes() *http.ServeMux {
	server := http.NewServeMux()

	server.HandleFunc("POST /graphql", iz.Bind(api.GraphQLHandler)) // Execute GraphQL operation
	server.HandleFunc("GET /graphql", iz.Bind(api.GraphQLHandler))  // Execute GraphQL query from URL params
	server.HandleFunc("GET /health", iz.Bind(api.HealthHandler))    // Liveness + storage type

	return server
}

// GraphQLHandler serves POST bodies of the form {query, variables, operationName}
// and GET requests carrying the same fields as query parameters.
// Execution errors are reported inside a 200 response, as GraphQL clients expect.
func (api *Api) GraphQLHandler(r *iz.Request) iz.Responder {
	traceID := uuid.New().String()
	ctx := contextutil.WithTraceID(r.Context(), traceID)

	var gqlReq GraphQLRequest
	if r.Method == "GET" {
		params := r.URL.Query()
		gqlReq.Query = params.Get("query")
		gqlReq.OperationName = params.Get("operationName")
		if rawVars := params.Get("variables"); rawVars != "" {
			if err := json.Unmarshal([]byte(rawVars), &gqlReq.Variables); err != nil {
				msg := fmt.Sprintf("invalid variables parameter: %s", err.Error())
				return iz.Respond().Status(400).Text(msg)
			}
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&gqlReq); err != nil {
			logging.Logger.Errorf("[TraceID=%s] | failed to parse graphql request: %v", traceID, err)
			msg := fmt.Sprintf("invalid request body: %s", err.Error())
			return iz.Respond().Status(400).Text(msg)
		}
	}

	if strings.TrimSpace(gqlReq.Query) == "" {
		return iz.Respond().Status(400).Text("query is required")
	}

	result := graphql.Do(graphql.Params{
		Schema:         api.schema,
		RequestString:  gqlReq.Query,
		VariableValues: gqlReq.Variables,
		OperationName:  gqlReq.OperationName,
		Context:        ctx,
	})
	if result.HasErrors() {
		logging.Logger.Debugf("[TraceID=%s] | graphql request finished with %d error(s)", traceID, len(result.Errors))
	}

	return iz.Respond().Status(200).JSON(result)
}

func (api *Api) HealthHandler(r *iz.Request) iz.Responder {
	resp := HealthResponse{
		Status:      "ok",
		StorageType: api.Service.StorageType,
	}
	return iz.Respond().Status(200).JSON(resp)
}
