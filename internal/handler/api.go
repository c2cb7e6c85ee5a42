package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cipherpipe-go/internal/cipher"
	"github.com/cipherpipe-go/internal/errors"
)

// API serves encode/decode requests against the configured pipeline
type API struct {
	pipeline *cipher.Pipeline
}

// New creates an API handler over the given pipeline
func New(pipeline *cipher.Pipeline) *API {
	return &API{pipeline: pipeline}
}

// stageSpec describes one ad-hoc pipeline stage in a request body
type stageSpec struct {
	Name   string         `json:"name"`
	Kind   string         `json:"kind"`
	Params map[string]any `json:"params"`
}

// codecRequest is the body of /api/encode and /api/decode. When Stages is
// present a one-shot pipeline is built for the request; otherwise the
// configured pipeline is used.
type codecRequest struct {
	Text   string      `json:"text"`
	Stages []stageSpec `json:"stages,omitempty"`
}

// Encode handles POST /api/encode
func (a *API) Encode(c *gin.Context) {
	a.transform(c, func(enc cipher.Encoder, text string) (string, error) {
		return enc.Encode(text)
	})
}

// Decode handles POST /api/decode
func (a *API) Decode(c *gin.Context) {
	a.transform(c, func(enc cipher.Encoder, text string) (string, error) {
		return enc.Decode(text)
	})
}

func (a *API) transform(c *gin.Context, fn func(cipher.Encoder, string) (string, error)) {
	var req codecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, errors.NewValidationf("invalid request body: %v", err))
		return
	}

	enc, err := a.resolve(req.Stages)
	if err != nil {
		RespondError(c, err)
		return
	}

	out, err := fn(enc, req.Text)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondSuccess(c, gin.H{"text": out})
}

// resolve builds a one-shot pipeline from request stages, or falls back
// to the configured one
func (a *API) resolve(specs []stageSpec) (cipher.Encoder, error) {
	if len(specs) == 0 {
		return a.pipeline, nil
	}

	stages := make([]cipher.Stage, 0, len(specs))
	for _, spec := range specs {
		enc, err := cipher.New(spec.Kind, spec.Params)
		if err != nil {
			return nil, err
		}
		name := spec.Name
		if name == "" {
			name = spec.Kind
		}
		stages = append(stages, cipher.Stage{Encoder: enc, Name: name})
	}
	return cipher.NewPipeline(stages...)
}

// Stages handles GET /api/stages, listing the configured stage names in
// encode order
func (a *API) Stages(c *gin.Context) {
	RespondSuccess(c, gin.H{"stages": a.pipeline.StageNames()})
}

// Kinds handles GET /api/kinds, listing the registered encoder kinds
func (a *API) Kinds(c *gin.Context) {
	RespondSuccess(c, gin.H{"kinds": cipher.ListRegistered()})
}

// Health handles GET /health
func (a *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
