package alloydoc

// Prompt is a canned conversation that walks a user through a common task.
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Request is the user turn; Response is the assistant's markdown reply.
	Request  string `json:"request"`
	Response string `json:"response"`
}

// Validate returns an error if the prompt contains invalid fields.
func (p *Prompt) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "prompt name required")
	}
	if p.Request == "" {
		return Errorf(EINVALID, "prompt %q: request required", p.Name)
	}
	if p.Response == "" {
		return Errorf(EINVALID, "prompt %q: response required", p.Name)
	}
	return nil
}
