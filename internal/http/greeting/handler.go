package greeting

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Register wires the greeting route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-greeting",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Get the greeting",
		Tags:        []string{"Greeting"},
	}, getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*Output, error) {
	return &Output{Body: Data{Message: Message}}, nil
}
