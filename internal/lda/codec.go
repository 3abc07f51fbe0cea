//    HipparchiaGoTopics
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
)

// gzjson - json.Marshal and then gzip; compressed output is c. 1/3 of the original
func gzjson(v any) ([]byte, error) {
	const (
		GZ = gzip.BestSpeed
	)
	eb, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	if err != nil {
		return nil, err
	}
	if _, err = zw.Write(eb); err != nil {
		return nil, err
	}
	if err = zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ungzjson - the inverse of gzjson
func ungzjson(b []byte, into any) error {
	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer zr.Close()

	decompr, err := io.ReadAll(zr)
	if err != nil {
		return err
	}
	return json.Unmarshal(decompr, into)
}
