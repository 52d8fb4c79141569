package redirect

import (
	"fmt"
	"strings"
)

const (
	statusSuccess = "success"

	ReasonInvalidResponse = "invalid authentication response"
	ReasonAuthFailed      = "authentication failed"
)

// Verdict is the validated meaning of a redirect payload.
type Verdict struct {
	Success bool
	Reason  string
	Params  map[string]any
}

// Evaluate validates a redirect payload before it can seed a receipt.
//
// A nil payload counts as success: the gateway reached a terminal URL without
// telling us otherwise, and the order lookup that follows is authoritative.
func Evaluate(payload map[string]any, callbackOrigin string) Verdict {
	if payload == nil {
		return Verdict{Success: true}
	}

	if target := text(payload["url"]); target != "" && !strings.HasPrefix(target, callbackOrigin) {
		return Verdict{Reason: ReasonInvalidResponse}
	}

	params, ok := payload["params"].(map[string]any)
	if !ok {
		return Verdict{Success: true}
	}

	if text(params["response_status"]) != statusSuccess {
		reason := text(params["error_message"])
		if reason == "" {
			reason = ReasonAuthFailed
		}
		return Verdict{Reason: reason, Params: params}
	}

	return Verdict{Success: true, Params: params}
}

func text(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
