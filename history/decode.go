package history

import (
	"encoding/json"

	"github.com/unotto/genchi"
)

// decodeList coerces any payload shape this app has ever written into a
// HistoryList. Accepted legacy shapes, in order: bare array,
// {"items":[...]}, {"data":{"items":[...]}}. Everything else reads as
// no history. This is the only place that knows about the old shapes.
func decodeList(payload []byte) genchi.HistoryList {
	if len(payload) == 0 {
		return genchi.HistoryList{}
	}

	var entries []genchi.HistoryEntry
	if err := json.Unmarshal(payload, &entries); err == nil && entries != nil {
		return entries
	}

	var wrapped struct {
		Items []genchi.HistoryEntry `json:"items"`
		Data  struct {
			Items []genchi.HistoryEntry `json:"items"`
		} `json:"data"`
	}

	if err := json.Unmarshal(payload, &wrapped); err == nil {
		if wrapped.Items != nil {
			return wrapped.Items
		}
		if wrapped.Data.Items != nil {
			return wrapped.Data.Items
		}
	}

	return genchi.HistoryList{}
}
