package core

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"haystack/internal/herr"
)

// XStr is an extended scalar: an opaque type name paired with a byte
// payload. For the two well-known encodings ("hex" and "b64") the payload
// is decoded once at construction time and kept as a byte buffer; dumping
// re-encodes from that buffer rather than replaying the original literal,
// so a round-tripped XStr always serializes in canonical form. Any other
// Type is an open-ended extension point with no known encoding, so its
// payload is stored as the raw bytes of the literal text, unchanged.
type XStr struct {
	Type string
	Raw  []byte
}

// NewXStr decodes data according to typeName and returns the constructed
// XStr, or a *herr.ParseError if typeName names a known encoding and data
// is not valid for it.
func NewXStr(typeName, data string) (XStr, error) {
	switch typeName {
	case "hex":
		b, err := hex.DecodeString(data)
		if err != nil {
			return XStr{}, &herr.ParseError{Fragment: data, Msg: "malformed hex XStr: " + err.Error()}
		}
		return XStr{Type: typeName, Raw: b}, nil
	case "b64":
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return XStr{}, &herr.ParseError{Fragment: data, Msg: "malformed b64 XStr: " + err.Error()}
		}
		return XStr{Type: typeName, Raw: b}, nil
	default:
		return XStr{Type: typeName, Raw: []byte(data)}, nil
	}
}

func (x XStr) Kind() Kind { return KindXStr }

// Encoded re-encodes Raw back into its wire text form (e.g. the hex digits
// for a "hex" XStr). Codecs that embed the payload in their own delimiters
// (JSON's "x:Type:data", Zinc's "Type(\"data\")") call this directly
// instead of re-deriving an encoding from Type themselves.
func (x XStr) Encoded() string {
	switch x.Type {
	case "hex":
		return hex.EncodeToString(x.Raw)
	case "b64":
		return base64.StdEncoding.EncodeToString(x.Raw)
	default:
		return string(x.Raw)
	}
}

func (x XStr) String() string {
	return fmt.Sprintf("%s(%q)", x.Type, x.Encoded())
}

func (x XStr) Equal(o Val) bool {
	ox, ok := o.(XStr)
	return ok && ox.Type == x.Type && bytes.Equal(ox.Raw, x.Raw)
}

// Bytes returns the decoded payload. It never fails: decoding (for the
// known "hex"/"b64" encodings) already happened in NewXStr.
func (x XStr) Bytes() ([]byte, error) {
	return x.Raw, nil
}
