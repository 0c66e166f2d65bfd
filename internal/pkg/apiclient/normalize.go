package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// listEnvelope mirrors the two object envelopes the backend uses for
// list responses
type listEnvelope struct {
	Data        json.RawMessage `json:"data"`
	Embarcacoes json.RawMessage `json:"embarcacoes"`
}

// List normalizes a list-endpoint response body. The backend answers
// with a bare array, {"data": [...]} or {"embarcacoes": [...]};
// whichever shape arrives, the result is the decoded sequence. Any
// other shape yields an empty sequence, never an error.
func List[T any](body []byte) []T {
	raw := listPayload(body)
	if raw == nil {
		return []T{}
	}

	var itens []T
	if err := json.Unmarshal(raw, &itens); err != nil {
		return []T{}
	}
	if itens == nil {
		return []T{}
	}
	return itens
}

// listPayload picks the array portion out of a list response, or nil
// when no recognized shape matches
func listPayload(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if isArray(trimmed) {
		return trimmed
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil
	}
	if isArray(bytes.TrimSpace(env.Data)) {
		return env.Data
	}
	if isArray(bytes.TrimSpace(env.Embarcacoes)) {
		return env.Embarcacoes
	}
	return nil
}

func isArray(raw []byte) bool {
	return len(raw) > 0 && raw[0] == '['
}

// erroEnvelope mirrors the {"erro": ...} failure body, whose payload
// varies by endpoint and validation layer
type erroEnvelope struct {
	Erro json.RawMessage `json:"erro"`
}

type erroIssues struct {
	Issues []erroIssue `json:"issues"`
}

type erroIssue struct {
	Message string `json:"message"`
}

// ErrorMessage turns an HTTP failure body into the message shown to
// the user. Recognized payloads under "erro": a single string, an
// array of strings or message objects, an object with an "issues"
// array, or an opaque object. Anything unparseable falls back to a
// generic status notice.
func ErrorMessage(body []byte, code int) string {
	generic := fmt.Sprintf("Erro HTTP %d: %s", code, http.StatusText(code))

	var env erroEnvelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil || len(env.Erro) == 0 {
		return generic
	}

	raw := bytes.TrimSpace(env.Erro)
	switch {
	case len(raw) > 0 && raw[0] == '"':
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
			return msg
		}
	case len(raw) > 0 && raw[0] == '[':
		var itens []json.RawMessage
		if err := json.Unmarshal(raw, &itens); err == nil {
			if msgs := collectMessages(itens); len(msgs) > 0 {
				return "Erro de validação: " + strings.Join(msgs, ", ")
			}
		}
	case len(raw) > 0 && raw[0] == '{':
		var issues erroIssues
		if err := json.Unmarshal(raw, &issues); err == nil && len(issues.Issues) > 0 {
			msgs := make([]string, 0, len(issues.Issues))
			for _, issue := range issues.Issues {
				if issue.Message != "" {
					msgs = append(msgs, issue.Message)
				}
			}
			if len(msgs) > 0 {
				return "Erro de validação: " + strings.Join(msgs, ", ")
			}
		}
		return "Erro de validação nos dados enviados"
	}

	return generic
}

// collectMessages extracts display text from a mixed array of strings
// and {"message": ...} objects
func collectMessages(itens []json.RawMessage) []string {
	msgs := make([]string, 0, len(itens))
	for _, item := range itens {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			msgs = append(msgs, s)
			continue
		}
		var obj erroIssue
		if err := json.Unmarshal(item, &obj); err == nil && obj.Message != "" {
			msgs = append(msgs, obj.Message)
		}
	}
	return msgs
}
