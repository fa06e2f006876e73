package http

import (
	"bytes"
	"net/http"
)

// signatureHeader carries the hex HMAC-SHA256 of the response body, keyed
// with the token sign key.
const signatureHeader = "X-Content-Signature"

// bufferedWriter holds the response until the whole body is known.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(statusCode int) {
	if b.status == 0 {
		b.status = statusCode
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

// withSignature signs successful response bodies so a downloaded export can
// later be checked against the server's key. Error responses pass unsigned.
func (h *Handler) withSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedWriter{header: w.Header()}
		next.ServeHTTP(bw, r)

		if bw.status == 0 {
			bw.status = http.StatusOK
		}
		if bw.status < http.StatusMultipleChoices {
			w.Header().Set(signatureHeader, h.signer.Sign(bw.body.Bytes()))
			h.logger.Debug().Str("func", "*Handler.withSignature").Int("size", bw.body.Len()).Msg("response signed")
		}

		w.WriteHeader(bw.status)
		w.Write(bw.body.Bytes())
	})
}
