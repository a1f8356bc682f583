package custom

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"github.com/samber/lo"
	"github.com/vod-cli/vod/internal/cache"
	"github.com/vod-cli/vod/log"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/net/http2"
)

// Some catalog sites only answer clients that look like a browser at the TLS
// level. Scripts reach them through the http_tls module:
//
//	http_tls.get(url [, headers])  -> body
//	http_tls.request{method = "POST", url = ..., headers = {...}, body = ..., cache = true}
//	                               -> {status = 200, body = "..."}
//
// Connections use a Chrome ClientHello. HTTP/2 is tried first, then HTTP/1.1.

const tlsTimeout = 30 * time.Second

var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "fr-FR,fr;q=0.9,en;q=0.5",
}

func registerTLSClient(L *lua.LState) {
	mod := L.NewTable()
	L.SetField(mod, "get", L.NewFunction(luaTLSGet))
	L.SetField(mod, "request", L.NewFunction(luaTLSRequest))
	L.SetGlobal("http_tls", mod)
}

type tlsRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

type tlsResponse struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func headersFromLua(val lua.LValue) map[string]string {
	headers := make(map[string]string)
	if table, ok := val.(*lua.LTable); ok {
		table.ForEach(func(k, v lua.LValue) {
			headers[k.String()] = v.String()
		})
	}
	return headers
}

func luaTLSGet(L *lua.LState) int {
	req := tlsRequest{
		Method:  http.MethodGet,
		URL:     L.CheckString(1),
		Headers: headersFromLua(L.Get(2)),
	}

	resp, err := doTLSRequest(L.Context(), req)
	if err != nil {
		L.RaiseError("http_tls.get: %s", err)
		return 0
	}

	L.Push(lua.LString(resp.Body))
	return 1
}

func luaTLSRequest(L *lua.LState) int {
	opts := L.CheckTable(1)

	req := tlsRequest{
		Method:  strings.ToUpper(lo.CoalesceOrEmpty(getString(opts, "method"), http.MethodGet)),
		URL:     getString(opts, "url"),
		Headers: headersFromLua(opts.RawGetString("headers")),
		Body:    getString(opts, "body"),
	}

	if req.URL == "" {
		L.RaiseError("http_tls.request: url is required")
		return 0
	}

	useCache := lua.LVAsBool(opts.RawGetString("cache"))
	cacheKey := cache.GenerateKey("http_tls", req.Method, req.URL, req.Body)

	var resp tlsResponse
	if !useCache || !cache.Read(cacheKey, &resp) {
		fetched, err := doTLSRequest(L.Context(), req)
		if err != nil {
			L.RaiseError("http_tls.request: %s", err)
			return 0
		}
		resp = fetched

		if useCache && resp.Status == http.StatusOK {
			if err := cache.Write(cacheKey, resp); err != nil {
				log.Warnf("caching %s: %v", req.URL, err)
			}
		}
	}

	result := L.NewTable()
	result.RawSetString("status", lua.LNumber(resp.Status))
	result.RawSetString("body", lua.LString(resp.Body))
	L.Push(result)
	return 1
}

var (
	h2Once   sync.Once
	h2Client *http.Client
	h1Client = &http.Client{
		Timeout: tlsTimeout,
		Transport: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialChrome(ctx, network, addr, []string{"http/1.1"})
			},
		},
	}
)

func http2Client() *http.Client {
	h2Once.Do(func() {
		h2Client = &http.Client{
			Timeout: tlsTimeout,
			Transport: &http2.Transport{
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					return dialChrome(ctx, network, addr, nil)
				},
			},
		}
	})
	return h2Client
}

func newHTTPRequest(ctx context.Context, req tlsRequest) (*http.Request, error) {
	var body io.Reader
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}

	for k, v := range browserHeaders {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	return httpReq, nil
}

func doTLSRequest(ctx context.Context, req tlsRequest) (tlsResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		resp *http.Response
		err  error
	)

	for _, client := range []*http.Client{http2Client(), h1Client} {
		var httpReq *http.Request
		if httpReq, err = newHTTPRequest(ctx, req); err != nil {
			return tlsResponse{}, err
		}

		if resp, err = client.Do(httpReq); err == nil {
			break
		}
		log.Debugf("http_tls %s %s: %v", req.Method, req.URL, err)
	}

	if err != nil {
		return tlsResponse{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return tlsResponse{}, fmt.Errorf("read body: %w", err)
	}

	return tlsResponse{Status: resp.StatusCode, Body: string(body)}, nil
}

// dialChrome opens a TLS connection with a Chrome fingerprint. nextProtos, when
// set, replaces the protocols the fingerprint advertises.
func dialChrome(ctx context.Context, network, addr string, nextProtos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := (&net.Dialer{Timeout: tlsTimeout}).DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}

	return tlsConn, nil
}
