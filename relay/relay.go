// Package relay exposes a datagram sender and a console logger over HTTP.
//
//	POST /send?address=A&port=P   body is sent as one datagram to A:P
//	POST /log?level=L             body is printed on the console at level L
//	GET  /outcome                 last outcome message of the sender
package relay

import (
	"context"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/udplog"
	"github.com/lixenwraith/udplog/compat"
)

// StatusHeader carries the numeric udplog status of a /send request
const StatusHeader = "X-Udplog-Status"

// Transport is the sending side the relay forwards to
type Transport interface {
	Send(address string, port int, payload []byte, length int) error
	LastOutcome() string
}

// Relay routes HTTP requests to a transport and a console logger
type Relay struct {
	transport Transport
	logger    *udplog.ConsoleLogger
	server    *fasthttp.Server
}

// New creates a relay. The transport must already be initialized to accept sends.
func New(transport Transport, logger *udplog.ConsoleLogger) *Relay {
	r := &Relay{
		transport: transport,
		logger:    logger,
	}
	r.server = &fasthttp.Server{
		Handler:            r.Handle,
		Name:               "udplog-relay",
		Logger:             compat.NewFastHTTPAdapter(logger),
		MaxRequestBodySize: 64 * 1024, // largest IPv4 UDP payload fits
	}
	return r
}

// ListenAndServe serves on addr until Shutdown
func (r *Relay) ListenAndServe(addr string) error {
	r.logger.Logf(udplog.LevelInfo, "relay: listening on %s", addr)
	return r.server.ListenAndServe(addr)
}

// Shutdown stops the server, waiting for in-flight requests
func (r *Relay) Shutdown(ctx context.Context) error {
	return r.server.ShutdownWithContext(ctx)
}

// Handle dispatches one request
func (r *Relay) Handle(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/send":
		if !ctx.IsPost() {
			methodNotAllowed(ctx, fasthttp.MethodPost)
			return
		}
		r.handleSend(ctx)
	case "/log":
		if !ctx.IsPost() {
			methodNotAllowed(ctx, fasthttp.MethodPost)
			return
		}
		r.handleLog(ctx)
	case "/outcome":
		if !ctx.IsGet() {
			methodNotAllowed(ctx, fasthttp.MethodGet)
			return
		}
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString(r.transport.LastOutcome())
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (r *Relay) handleSend(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	address := string(args.Peek("address"))

	port, err := args.GetUint("port")
	if err != nil {
		ctx.Error("invalid port", fasthttp.StatusBadRequest)
		return
	}

	payload := ctx.PostBody()
	status := udplog.StatusOf(r.transport.Send(address, port, payload, len(payload)))

	ctx.Response.Header.Set(StatusHeader, strconv.Itoa(int(status)))
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(httpStatus(status))
	ctx.SetBodyString(r.transport.LastOutcome())
}

func (r *Relay) handleLog(ctx *fasthttp.RequestCtx) {
	level := udplog.LevelInfo
	if raw := string(ctx.QueryArgs().Peek("level")); raw != "" {
		parsed, err := parseLevel(raw)
		if err != nil {
			ctx.Error(err.Error(), fasthttp.StatusBadRequest)
			return
		}
		level = parsed
	}

	r.logger.Log(level, string(ctx.PostBody()))
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// parseLevel accepts level names and raw integers, unknown integers log as UNKNOWN
func parseLevel(raw string) (int64, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	return udplog.Level(raw)
}

// httpStatus maps a transport status to an HTTP status code
func httpStatus(status udplog.Status) int {
	switch status {
	case udplog.StatusSuccess:
		return fasthttp.StatusOK
	case udplog.StatusInvalidParams:
		return fasthttp.StatusBadRequest
	case udplog.StatusNotInitialized, udplog.StatusAlreadyInitialized:
		return fasthttp.StatusConflict
	default:
		return fasthttp.StatusBadGateway
	}
}

func methodNotAllowed(ctx *fasthttp.RequestCtx, allow string) {
	// Error resets the response, so the header goes on afterwards
	ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
	ctx.Response.Header.Set(fasthttp.HeaderAllow, allow)
}
