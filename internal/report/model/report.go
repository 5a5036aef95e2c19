package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report is a finished node run kept for later retrieval.
type Report struct {
	ID        uuid.UUID       `json:"id"`
	Node      string          `json:"node"`
	Params    json.RawMessage `json:"params"`
	Result    json.RawMessage `json:"result"`
	Warning   string          `json:"warning,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewReport(node string, params, result interface{}, createdAt time.Time) (Report, error) {
	p, err := json.Marshal(params)
	if err != nil {
		return Report{}, fmt.Errorf("unable marshal report params: %w", err)
	}
	r, err := json.Marshal(result)
	if err != nil {
		return Report{}, fmt.Errorf("unable marshal report result: %w", err)
	}
	return Report{
		ID:        uuid.New(),
		Node:      node,
		Params:    p,
		Result:    r,
		CreatedAt: createdAt,
	}, nil
}
