package common

import (
	"fmt"
	"net/http"
)

type HttpServer struct {
	Done        chan Done
	Server      http.Server
	ServiceLogs chan<- ServiceLog
}

func (s *HttpServer) Start() error {
	s.ServiceLogs <- ServiceLogf(LogLevelInfo, "starting http server on %s...", s.Server.Addr)
	go func() {
		<-s.Done
		if err := s.Server.Close(); err != nil {
			s.ServiceLogs <- ServiceLogf(LogLevelError, "server closed: %s", err)
		}
	}()

	if err := s.Server.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %s", err)
	}
	return nil
}

type NewHttpServerOpts struct {
	Addr        string
	BasicAuth   *NewHttpServerBasicAuthOpts
	Done        chan Done
	Handler     http.Handler
	ServiceLogs chan<- ServiceLog
}

type NewHttpServerBasicAuthOpts struct {
	Username string
	Password string
}

func NewHttpServer(opts NewHttpServerOpts) (*HttpServer, error) {
	logger := GetRequestLoggerMiddleware(opts.ServiceLogs)
	metrics := GetCommonMetricsMiddleware(opts.ServiceLogs)

	var handler http.Handler = opts.Handler

	if opts.BasicAuth != nil {
		if opts.BasicAuth.Username == "" || opts.BasicAuth.Password == "" {
			return nil, fmt.Errorf("failed to receive a set of valid credentials for basic auth")
		}
		if len(opts.BasicAuth.Password) < 8 {
			opts.ServiceLogs <- ServiceLogf(LogLevelWarn, "provided basic auth password is less than 8 characters and maybe weak/brute-forceable in a reasonable amount of time")
		}
		basicAuther := GetBasicAuthMiddleware(opts.ServiceLogs, opts.BasicAuth.Username, opts.BasicAuth.Password)
		handler = basicAuther(handler)
	}

	handler = logger(metrics(handler))

	return &HttpServer{
		Done: opts.Done,
		Server: http.Server{
			Addr:              opts.Addr,
			Handler:           handler,
			IdleTimeout:       DefaultDurationConnectionTimeout,
			ReadTimeout:       DefaultDurationConnectionTimeout,
			ReadHeaderTimeout: DefaultDurationConnectionTimeout,
			WriteTimeout:      DefaultDurationConnectionTimeout,
		},
		ServiceLogs: opts.ServiceLogs,
	}, nil
}
