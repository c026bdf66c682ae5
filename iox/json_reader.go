package iox

import (
	"bytes"

	"github.com/bytedance/sonic"
)

type JSONReader struct {
	val any
	buf *bytes.Reader
}

// NewJSONReader serializes val with sonic on the first Read and streams the
// result, so a request body can be built without an intermediate buffer.
//
// val must be JSON serializable; the marshal error is returned from Read.
// Not safe for concurrent use. A nil val reads as `null`.
func NewJSONReader(val any) *JSONReader {
	return &JSONReader{
		val: val,
	}
}

func (r *JSONReader) Read(obj []byte) (n int, err error) {
	if r.buf == nil {
		var data []byte
		data, err = sonic.Marshal(r.val)
		if err == nil {
			r.buf = bytes.NewReader(data)
		}
	}
	if err != nil {
		return
	}

	return r.buf.Read(obj)
}
