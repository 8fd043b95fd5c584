// Copyright 2025 The Logcrunch Authors. All rights reserved.
// Use of this source code is governed by a MIT license
// that can be found in the LICENSE file.

package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirilStrezikozin/zstring/internal/types"
)

type Op string

const (
	OpSplit   Op = "split"
	OpJoin    Op = "join"
	OpFind    Op = "find"
	OpCompare Op = "compare"
	OpConcat  Op = "concat"
)

// Result is the outcome of one string operation run by the command line
// tool. Only the fields relevant to Op are set.
type Result struct {
	Op        Op       `json:"op"`
	Inputs    []string `json:"inputs"`
	Delimiter *string  `json:"delimiter,omitempty"`

	// Split.
	Items []string `json:"items,omitempty"`

	// Join and concat.
	Value *string `json:"value,omitempty"`

	// Find. Index is set only when Found is true.
	Found *bool `json:"found,omitempty"`
	Index *int  `json:"index,omitempty"`

	// Compare.
	Order *int `json:"order,omitempty"`
}

// Text renders the result the way the command line tool prints it in text
// mode: one line per split item, the value, the offset or the order.
func (r *Result) Text() string {
	switch {
	case r.Items != nil:
		return strings.Join(r.Items, "\n")
	case r.Value != nil:
		return *r.Value
	case r.Found != nil:
		if !*r.Found || r.Index == nil {
			return "not found"
		}
		return strconv.Itoa(*r.Index)
	case r.Order != nil:
		return strconv.Itoa(*r.Order)
	}
	return ""
}

func (r *Result) JSON() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error marshaling result: %w", err)
	}
	return data, nil
}

// Write prints r to w in the given format, followed by a newline.
func (r *Result) Write(w io.Writer, format types.OutputFormat) error {
	var out []byte
	switch format {
	case types.OutputJSON:
		data, err := r.JSON()
		if err != nil {
			return err
		}
		out = data
	default:
		out = []byte(r.Text())
	}

	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("error writing result: %w", err)
	}
	return nil
}
