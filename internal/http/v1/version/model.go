package version

// Info models the response payload for the version endpoint.
type Info struct {
	Version     string `json:"version"     doc:"Semantic version of the service" example:"1.0.0"       pattern:"^\\d+\\.\\d+\\.\\d+$"`
	Environment string `json:"environment" doc:"Deployment environment"         example:"development" enum:"development,staging,production,test"`
}

// Output is the response wrapper for the version endpoint.
type Output struct {
	Body Info
}
