package probe

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// HTTPChecker issues one GET per Check. The resty client keeps the
// defaults of net/http: no overall timeout, the standard redirect policy
// and no retries.
type HTTPChecker struct {
	Client *resty.Client
	Logger *zap.Logger
}

func NewHTTPChecker(logger *zap.Logger) *HTTPChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := resty.New()
	c.SetLogger(logger.Sugar())
	c.SetRetryCount(0)
	return &HTTPChecker{Client: c, Logger: logger}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) Result {
	start := time.Now()
	resp, err := h.Client.R().SetContext(ctx).Get(target)
	latency := time.Since(start).Seconds() * 1000 // ms

	// Branch on whether a response exists before reading anything off it.
	if err != nil || resp == nil || resp.RawResponse == nil {
		h.Logger.Debug("probe_transport_error",
			zap.String("url", target),
			zap.Float64("latency_ms", latency),
			zap.Error(err),
		)
		return Result{
			Kind:      KindTransportError,
			Err:       &TransportError{URL: target, Err: err},
			LatencyMS: latency,
		}
	}

	r := toResponse(target, resp)
	h.Logger.Debug("probe_response",
		zap.String("url", r.URL),
		zap.Int("status", r.StatusCode),
		zap.Float64("latency_ms", latency),
	)

	if r.StatusCode >= 400 {
		return Result{
			Kind:     KindHTTPStatusError,
			Response: r,
			Err: &StatusError{
				URL:        r.URL,
				StatusCode: r.StatusCode,
				Reason:     r.Reason,
				Body:       r.Body,
			},
			LatencyMS: latency,
		}
	}
	return Result{Kind: KindOK, Response: r, LatencyMS: latency}
}
