package amazonads

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"sp-provision/internal/core/domain"
)

// multiStatus is the per-resource part of a v3 create response:
//
//	{"campaigns": {"success": [{"index": 0, "campaignId": "..."}],
//	               "error":   [{"index": 1, "errors": [...]}]}}
type multiStatus struct {
	Success []map[string]json.RawMessage `json:"success"`
	Error   []errorEntry                 `json:"error"`
}

type errorEntry struct {
	Index  int           `json:"index"`
	Errors []entityError `json:"errors"`
}

// entityError carries the error detail keyed by its type, for example
// {"errorType": "duplicateValueError", "errorValue": {"duplicateValueError": {...}}}.
type entityError struct {
	ErrorType  string                 `json:"errorType"`
	ErrorValue map[string]errorDetail `json:"errorValue"`
}

type errorDetail struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type parsedResult struct {
	ids      []string
	rejected []domain.RejectionReason
}

type indexedID struct {
	index int
	id    string
}

// parseMultiStatus extracts accepted IDs, sorted by request index, and the
// rejection reasons from a create response body.
func parseMultiStatus(raw []byte, res resource) (parsedResult, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return parsedResult{}, fmt.Errorf("%s: decode response: %w", res.key, err)
	}

	var result parsedResult
	section, ok := envelope[res.key]
	if !ok || string(section) == "null" {
		return result, nil
	}

	var ms multiStatus
	if err := json.Unmarshal(section, &ms); err != nil {
		return parsedResult{}, fmt.Errorf("%s: decode response: %w", res.key, err)
	}

	entries := make([]indexedID, 0, len(ms.Success))
	for pos, s := range ms.Success {
		id, err := decodeID(s[res.idField])
		if err != nil || id == "" {
			return parsedResult{}, fmt.Errorf("%s: success entry %d has no %s", res.key, pos, res.idField)
		}
		index := pos
		if rawIndex, ok := s["index"]; ok {
			if err = json.Unmarshal(rawIndex, &index); err != nil {
				return parsedResult{}, fmt.Errorf("%s: success entry %d: bad index: %w", res.key, pos, err)
			}
		}
		entries = append(entries, indexedID{index: index, id: id})
	}
	slices.SortStableFunc(entries, func(a, b indexedID) int { return cmp.Compare(a.index, b.index) })
	for _, e := range entries {
		result.ids = append(result.ids, e.id)
	}

	for _, entry := range ms.Error {
		if len(entry.Errors) == 0 {
			result.rejected = append(result.rejected, domain.RejectionReason{Index: entry.Index})
			continue
		}
		for _, ee := range entry.Errors {
			result.rejected = append(result.rejected, toReason(entry.Index, ee))
		}
	}
	return result, nil
}

func toReason(index int, ee entityError) domain.RejectionReason {
	reason := domain.RejectionReason{Index: index, Code: ee.ErrorType}
	detail, ok := ee.ErrorValue[ee.ErrorType]
	if !ok {
		for _, d := range ee.ErrorValue {
			detail = d
			break
		}
	}
	if detail.Reason != "" {
		reason.Code = detail.Reason
	}
	reason.Message = detail.Message
	return reason
}

// decodeID accepts IDs encoded either as JSON strings or as numbers.
func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return "", err
	}
	return n.String(), nil
}
