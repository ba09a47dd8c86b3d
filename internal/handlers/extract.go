package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// DefaultBodyLimit is the largest request body JSONExtractor reads.
const DefaultBodyLimit int64 = 2 << 20

var (
	errInvalidUTF8   = errors.New("body is not valid UTF-8")
	errLoneSurrogate = errors.New("unpaired surrogate in \\u escape")
)

// JSONExtractor reads a JSON request body into a struct and classifies
// every failure as a *Rejection.
type JSONExtractor struct {
	limit    int64
	validate *validator.Validate
}

// NewJSONExtractor creates an extractor reading at most limit bytes.
// A non-positive limit selects DefaultBodyLimit.
func NewJSONExtractor(limit int64) *JSONExtractor {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &JSONExtractor{limit: limit, validate: v}
}

// Extract decodes the body of r into dst, which must be a pointer to a struct.
// Checks run in order: content type, body read, JSON syntax, JSON shape.
//
// Field names match exactly. Top-level keys that are not exact field names
// are ignored, and a field given twice is a data error.
func (e *JSONExtractor) Extract(w http.ResponseWriter, r *http.Request, dst any) error {
	if !hasJSONContentType(r.Header) {
		return &Rejection{Kind: RejectionMissingJSONContentType}
	}

	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(http.MaxBytesReader(w, r.Body, e.limit))
		if err != nil {
			return &Rejection{Kind: RejectionBytes, Err: err}
		}
	}

	if err := checkSyntax(body); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, errInvalidUTF8) || errors.Is(err, errLoneSurrogate) {
			return &Rejection{Kind: RejectionJSONSyntax, Err: err}
		}
		return &Rejection{Kind: RejectionUnknown, Err: err}
	}

	filtered, err := selectFields(body, fieldNames(dst))
	if err != nil {
		return &Rejection{Kind: RejectionJSONData, Err: err}
	}

	if err := json.Unmarshal(filtered, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &Rejection{Kind: RejectionJSONData, Err: err}
		}
		return &Rejection{Kind: RejectionUnknown, Err: err}
	}

	if err := e.validate.Struct(dst); err != nil {
		var fieldsErr validator.ValidationErrors
		if errors.As(err, &fieldsErr) {
			return &Rejection{Kind: RejectionJSONData, Err: err}
		}
		return &Rejection{Kind: RejectionUnknown, Err: err}
	}

	return nil
}

// checkSyntax reports whether body is a single well-formed UTF-8 JSON value
// whose string escapes all decode to valid code points.
func checkSyntax(body []byte) error {
	if !utf8.Valid(body) {
		return errInvalidUTF8
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return err
	}

	if hasLoneSurrogate(body) {
		return errLoneSurrogate
	}
	return nil
}

// hasLoneSurrogate scans string literals of well-formed JSON for \u escapes
// in D800-DFFF that are not a high surrogate followed by a low one.
func hasLoneSurrogate(data []byte) bool {
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if !inString {
			if c == '"' {
				inString = true
			}
			continue
		}

		switch c {
		case '"':
			inString = false
		case '\\':
			if i+1 >= len(data) {
				return false
			}
			if data[i+1] != 'u' {
				i++
				continue
			}
			r, ok := hex4(data, i+2)
			if !ok {
				i++
				continue
			}
			i += 5

			switch {
			case r >= 0xD800 && r <= 0xDBFF:
				if i+6 < len(data) && data[i+1] == '\\' && data[i+2] == 'u' {
					if lo, ok := hex4(data, i+3); ok && lo >= 0xDC00 && lo <= 0xDFFF {
						i += 6
						continue
					}
				}
				return true
			case r >= 0xDC00 && r <= 0xDFFF:
				return true
			}
		}
	}
	return false
}

func hex4(data []byte, at int) (rune, bool) {
	if at+4 > len(data) {
		return 0, false
	}

	var r rune
	for _, c := range data[at : at+4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// fieldNames returns the JSON names of the exported fields of the struct dst points to.
// It returns nil when dst is not a pointer to a struct.
func fieldNames(dst any) map[string]struct{} {
	t := reflect.TypeOf(dst)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	t = t.Elem()

	names := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if !fld.IsExported() {
			continue
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = fld.Name
		}
		names[name] = struct{}{}
	}
	return names
}

// selectFields rewrites a top-level JSON object so that it only holds keys
// listed in known, failing when one of them appears more than once.
// Bodies that are not objects, or targets that are not structs, pass through.
func selectFields(body []byte, known map[string]struct{}) ([]byte, error) {
	if known == nil {
		return body, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return body, nil
	}

	fields := make(map[string]json.RawMessage, len(known))
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		if _, ok := known[key]; !ok {
			continue
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("duplicate field %q", key)
		}
		fields[key] = raw
	}

	return json.Marshal(fields)
}

// hasJSONContentType accepts application/json and application/*+json.
func hasJSONContentType(h http.Header) bool {
	ct := h.Get("Content-Type")
	if ct == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}

	typ, sub, ok := strings.Cut(mediaType, "/")
	return ok && typ == "application" && (sub == "json" || strings.HasSuffix(sub, "+json"))
}
