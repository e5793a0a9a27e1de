package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Middleware func(http.Handler) http.Handler

func useMiddleware(s *http.ServeMux, mws ...Middleware) http.Handler {
	var h http.Handler = s
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func loggingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &loggingResponseWriter{w, http.StatusOK}
		h.ServeHTTP(wrapped, r)
		log.WithFields(logrus.Fields{
			"method":  r.Method,
			"url":     r.URL.String(),
			"status":  wrapped.statusCode,
			"elapsed": time.Since(start).Round(time.Microsecond),
		}).Info("request")
	})
}
