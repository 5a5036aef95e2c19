package integration

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/go-sod/sax/internal/hotsax"
	"github.com/go-sod/sax/internal/node"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/vsm"
)

type SAXRequest struct {
	Params *sax.Config `json:"params,omitempty"`
	Series node.Series `json:"series"`
	PAA    bool        `json:"paa,omitempty"`
}

type SAXResponse struct {
	ID uuid.UUID `json:"id"`
	node.SAXResult
}

type HotSAXParams struct {
	SAX    *sax.Config    `json:"sax,omitempty"`
	HotSAX *hotsax.Config `json:"hotsax,omitempty"`
}

type HotSAXRequest struct {
	Params HotSAXParams `json:"params"`
	Series node.Series  `json:"series"`
	Words  []string     `json:"words,omitempty"`
}

type HotSAXResponse struct {
	ID uuid.UUID `json:"id"`
	node.HotSAXResult
}

type VSMRequest struct {
	Params *sax.Config   `json:"params,omitempty"`
	Train  []vsm.Sample `json:"train"`
	Test   []vsm.Sample `json:"test"`
}

type VSMResponse struct {
	ID uuid.UUID `json:"id"`
	vsm.Evaluation
}

// StatusError is returned for any non-200 answer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
