package model

// Task is one unit of routed work bound to a named resolver. Tasks are
// produced when the router decomposes a composite request and are discarded
// after execution.
type Task struct {
	Description string `json:"description"`
	Resolver    string `json:"resolver"`
	Priority    int    `json:"priority"`
	Input       string `json:"input"`
}
