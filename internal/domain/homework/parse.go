package homework

import "fmt"

// CheckResponse verifies the decoded API payload has the expected shape:
// a JSON object holding an array under the "homeworks" key, every element of
// which is itself an object. It returns the homework records; an empty slice
// is a valid outcome meaning no status changed.
func CheckResponse(payload any) ([]map[string]any, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %T, want a JSON object", ErrMalformedResponse, payload)
	}

	raw, ok := obj["homeworks"]
	if !ok {
		return nil, fmt.Errorf(`%w: key "homeworks" is absent`, ErrMalformedResponse)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf(`%w: "homeworks" is %T, want a JSON array`, ErrMalformedResponse, raw)
	}

	records := make([]map[string]any, 0, len(list))
	for i, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf(`%w: "homeworks"[%d] is %T, want a JSON object`, ErrMalformedResponse, i, item)
		}
		records = append(records, rec)
	}
	return records, nil
}

// CurrentDate extracts the server-reported "current_date" Unix timestamp from
// the payload. When the field is absent or not numeric the fallback is
// returned, leaving the caller's poll cursor unchanged.
func CurrentDate(payload any, fallback int64) int64 {
	obj, ok := payload.(map[string]any)
	if !ok {
		return fallback
	}
	if v, ok := obj["current_date"].(float64); ok {
		return int64(v)
	}
	return fallback
}

// ParseStatus maps one homework record to the notification text for the chat.
// Pure function: it fails with ErrMissingField when "homework_name" or
// "status" is absent (or not a string), and with *UnknownStatusError when the
// status is outside the documented enumeration. A valid status without a
// verdict entry (pending) yields the verdict-less form of the message.
func ParseStatus(hw map[string]any) (string, error) {
	rawName, ok := hw["homework_name"]
	if !ok {
		return "", fmt.Errorf(`%w: "homework_name"`, ErrMissingField)
	}
	name, ok := rawName.(string)
	if !ok {
		return "", fmt.Errorf(`%w: "homework_name" is %T, want a string`, ErrMissingField, rawName)
	}

	rawStatus, ok := hw["status"]
	if !ok {
		return "", fmt.Errorf(`%w: "status"`, ErrMissingField)
	}
	statusText, ok := rawStatus.(string)
	if !ok {
		return "", fmt.Errorf(`%w: "status" is %T, want a string`, ErrMissingField, rawStatus)
	}

	status := Status(statusText)
	if !status.Known() {
		return "", &UnknownStatusError{Status: statusText}
	}

	verdict, ok := Verdicts[status]
	if !ok {
		return fmt.Sprintf("Изменился статус проверки работы %q.", name), nil
	}
	return fmt.Sprintf("Изменился статус проверки работы %q. %s", name, verdict), nil
}
