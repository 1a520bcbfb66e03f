package handler

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Serve обслуживает запросы до отмены ctx и возвращается только после того,
// как Shutdown дождался завершения активных запросов.
// Если ln равен nil, сервер слушает server.Addr.
func Serve(ctx context.Context, server *http.Server, ln net.Listener, drainTimeout time.Duration) error {
	drained := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
		defer cancel()
		drained <- server.Shutdown(shutdownCtx)
	}()

	var err error
	if ln == nil {
		err = server.ListenAndServe()
	} else {
		err = server.Serve(ln)
	}
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-drained
}
