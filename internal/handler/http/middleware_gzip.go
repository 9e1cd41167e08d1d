// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vpn-pilot/internal/app"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for
// clients that send Accept-Encoding: gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := inflateRequest(r); err != nil {
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := newGZipWriter(w)
		defer gw.finish()
		next.ServeHTTP(gw, r)
	})
}

func inflateRequest(r *http.Request) error {
	if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
		return nil
	}

	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	r.Body = &gzipBody{Reader: zr, src: r.Body}
	r.Header.Del("Content-Encoding")
	r.ContentLength = -1
	return nil
}

// gzipBody returns its reader to the pool on the first Close.
type gzipBody struct {
	*gzip.Reader
	src  io.ReadCloser
	once sync.Once
}

func (b *gzipBody) Close() error {
	var err error
	b.once.Do(func() {
		_ = b.Reader.Close()
		gzipReaders.Put(b.Reader)
		err = b.src.Close()
	})
	return err
}

type gzipWriter struct {
	http.ResponseWriter
	zw      *gzip.Writer
	started bool
}

func newGZipWriter(w http.ResponseWriter) *gzipWriter {
	zw := gzipWriters.Get().(*gzip.Writer)
	zw.Reset(w)
	return &gzipWriter{ResponseWriter: w, zw: zw}
}

// WriteHeader switches the response to gzip. The compressed length is not
// known up front, so Content-Length is dropped.
func (g *gzipWriter) WriteHeader(statusCode int) {
	if g.started {
		return
	}
	g.started = true

	header := g.Header()
	header.Set("Content-Encoding", "gzip")
	header.Add("Vary", "Accept-Encoding")
	header.Del("Content-Length")
	g.ResponseWriter.WriteHeader(statusCode)
}

func (g *gzipWriter) Write(p []byte) (int, error) {
	if !g.started {
		if g.Header().Get("Content-Type") == "" {
			g.Header().Set("Content-Type", http.DetectContentType(p))
		}
		g.WriteHeader(http.StatusOK)
	}
	return g.zw.Write(p)
}

// finish writes the gzip trailer of a started response and returns the
// writer to the pool.
func (g *gzipWriter) finish() {
	if g.started {
		_ = g.zw.Close()
	}
	gzipWriters.Put(g.zw)
}
