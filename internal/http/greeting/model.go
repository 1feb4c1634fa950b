package greeting

// Message is the fixed greeting returned by GET /.
const Message = "Hello World! 🚀"

// Data models the response payload for the greeting endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello World! 🚀"`
}

// Output is the response wrapper for the greeting endpoint.
type Output struct {
	Body Data
}
