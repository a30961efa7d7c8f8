package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Quantity accepts a JSON number or a numeric string. null and "" decode
// to zero. Text records that the client sent a non-empty string, which
// counts as a supplied value even when it reads as zero.
type Quantity struct {
	Value int
	Text  bool
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = Quantity{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*q = Quantity{Text: raw != ""}
		s := strings.TrimSpace(raw)
		if s == "" {
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("quantity %q is not an integer", s)
		}
		q.Value = n
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*q = Quantity{Value: n}
	return nil
}

// StockRequest is the payload for POST /stock and PUT /stock/:id.
type StockRequest struct {
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Department string   `json:"department"`
	Quantity   Quantity `json:"quantity"`
}

// StockResponse mirrors a stock_items row.
type StockResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Department string `json:"department"`
	Quantity   int    `json:"quantity"`
}
