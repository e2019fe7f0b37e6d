package wire

import "strings"

// parseTagFields splits a block 3/5 content string into its {TAG:VALUE}
// entries. Per spec.md §4.5: split on '}', drop empty (or whitespace-only)
// fragments, strip the
// leading '{' from each, then split once on the first ':' into key/value;
// if no ':' is present the whole fragment is the key and the value is
// empty. No ordering is assumed or required of the input.
func parseTagFields(content string) map[string]string {
	fields := make(map[string]string)
	for _, frag := range strings.Split(content, "}") {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		frag = strings.TrimPrefix(frag, "{")
		key, value, found := strings.Cut(frag, ":")
		if !found {
			fields[frag] = ""
		} else {
			fields[key] = value
		}
	}
	return fields
}

// take removes and returns key from fields along with whether it was
// present, letting decoders populate an *string field only when the tag
// was seen.
func take(fields map[string]string, key string) *string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	delete(fields, key)
	return &v
}
