package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/zen-explorer/zen-explorer/internal/messages"
)

const (
	keyVersion        = "version"
	keyUpdatedAt      = "updatedAt"
	keyChromeTargets  = "uclChromeTarget"
	keyContentTargets = "uclContentTarget"
	keyEnabled        = "enabled"

	indent = "    "
)

// Decode parses manifest JSON, preserving key order and unknown record keys.
func Decode(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New(messages.ManifestNotObject)
	}

	m := New()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf(messages.ManifestUnexpectedKeyFmt, keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf(messages.ManifestThemeFmt, id, err)
		}
		record, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf(messages.ManifestThemeFmt, id, err)
		}
		m.Set(id, record)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(messages.ManifestTrailingData)
	}
	return m, nil
}

func decodeRecord(raw json.RawMessage) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Record{}, err
	}
	if fields == nil {
		return Record{}, errors.New(messages.ManifestRecordNotObject)
	}

	record := Record{
		ChromeTargets:  []string{},
		ContentTargets: []string{},
	}
	for key, value := range fields {
		var err error
		switch key {
		case keyVersion:
			err = json.Unmarshal(value, &record.Version)
		case keyUpdatedAt:
			err = json.Unmarshal(value, &record.UpdatedAt)
		case keyChromeTargets:
			err = decodeTargets(value, &record.ChromeTargets)
		case keyContentTargets:
			err = decodeTargets(value, &record.ContentTargets)
		case keyEnabled:
			var enabled bool
			if err = json.Unmarshal(value, &enabled); err == nil {
				record.Enabled = &enabled
			}
		default:
			if record.Extra == nil {
				record.Extra = make(map[string]json.RawMessage)
			}
			var compacted bytes.Buffer
			if err = json.Compact(&compacted, value); err == nil {
				record.Extra[key] = json.RawMessage(compacted.Bytes())
			}
		}
		if err != nil {
			return Record{}, fmt.Errorf(messages.ManifestFieldFmt, key, err)
		}
	}
	return record, nil
}

func decodeTargets(value json.RawMessage, dst *[]string) error {
	var targets []string
	if err := json.Unmarshal(value, &targets); err != nil {
		return err
	}
	if targets == nil {
		targets = []string{}
	}
	*dst = targets
	return nil
}

// Encode renders m as pretty-printed JSON in manifest order with a trailing newline.
func Encode(m *Manifest) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, entry := range m.Entries() {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeJSON(&compact, entry.ID); err != nil {
			return nil, err
		}
		compact.WriteByte(':')
		if err := encodeRecord(&compact, entry.Record); err != nil {
			return nil, fmt.Errorf(messages.ManifestThemeFmt, entry.ID, err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", indent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// MarshalJSON encodes m in manifest order so it can be embedded in other JSON output.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	var compact bytes.Buffer
	data, err := Encode(m)
	if err != nil {
		return nil, err
	}
	if err := json.Compact(&compact, data); err != nil {
		return nil, err
	}
	return compact.Bytes(), nil
}

func encodeRecord(buf *bytes.Buffer, r Record) error {
	type field struct {
		key   string
		value any
	}
	fields := []field{
		{keyVersion, r.Version},
		{keyUpdatedAt, r.UpdatedAt},
		{keyChromeTargets, nonNil(r.ChromeTargets)},
		{keyContentTargets, nonNil(r.ContentTargets)},
	}
	if r.Enabled != nil {
		fields = append(fields, field{keyEnabled, *r.Enabled})
	}
	extraKeys := make([]string, 0, len(r.Extra))
	for key := range r.Extra {
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		fields = append(fields, field{key, r.Extra[key]})
	}

	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(buf, f.key); err != nil {
			return err
		}
		buf.WriteByte(':')
		if err := writeJSON(buf, f.value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(data)
	return nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
