package request_models

// ChatRequest accepts the current "message" key and the legacy
// "mensaje" alias used by older frontend builds.
type ChatRequest struct {
	Message string `json:"message"`
	Mensaje string `json:"mensaje"`
}

func (r ChatRequest) Text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Mensaje
}
