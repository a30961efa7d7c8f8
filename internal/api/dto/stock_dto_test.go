package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		body string
		want Quantity
	}{
		{`{"quantity": 7}`, Quantity{Value: 7}},
		{`{"quantity": 0}`, Quantity{}},
		{`{"quantity": -2}`, Quantity{Value: -2}},
		{`{"quantity": "12"}`, Quantity{Value: 12, Text: true}},
		{`{"quantity": " 4 "}`, Quantity{Value: 4, Text: true}},
		{`{"quantity": "0"}`, Quantity{Value: 0, Text: true}},
		{`{"quantity": " "}`, Quantity{Value: 0, Text: true}},
		{`{"quantity": ""}`, Quantity{}},
		{`{"quantity": null}`, Quantity{}},
		{`{}`, Quantity{}},
	}
	for _, tc := range cases {
		var req StockRequest
		require.NoError(t, json.Unmarshal([]byte(tc.body), &req), tc.body)
		assert.Equal(t, tc.want, req.Quantity, tc.body)
	}
}

func TestQuantity_RejectsNonIntegers(t *testing.T) {
	for _, body := range []string{`{"quantity": "ten"}`, `{"quantity": 1.5}`, `{"quantity": true}`} {
		var req StockRequest
		assert.Error(t, json.Unmarshal([]byte(body), &req), body)
	}
}
